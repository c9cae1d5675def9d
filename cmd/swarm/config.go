package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/akmonengine/swarm"
	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/force"
	"github.com/go-gl/mathgl/mgl64"
)

// Config holds the parameters of a scene and of its host
type Config struct {
	Seed  uint64 `toml:"seed"`  // seed of the initial velocities
	Ticks int    `toml:"ticks"` // number of ticks of the run command

	Flock  FlockConfig  `toml:"flock"`
	Bounce BounceConfig `toml:"bounce"`
	Jiggle JiggleConfig `toml:"jiggle"`
	Server ServerConfig `toml:"server"`
}

type FlockConfig struct {
	Count    int     `toml:"count"`
	TimeStep float64 `toml:"time_step"`
	Workers  int     `toml:"workers"`

	A         float64 `toml:"avoidance"`
	V         float64 `toml:"matching"`
	C         float64 `toml:"centering"`
	AMax      float64 `toml:"max_acceleration"`
	Range     float64 `toml:"range"`
	RangeRamp float64 `toml:"range_ramp"`
	FOV       float64 `toml:"fov"`  // unit: degree
	DFOV      float64 `toml:"dfov"` // unit: degree

	// Leader is the index of the particle chasing Goal, -1 for none.
	// With FollowBounce the goal is the bouncing body instead.
	Leader       int        `toml:"leader"`
	Goal         [3]float64 `toml:"goal"`
	FollowBounce bool       `toml:"follow_bounce"`
}

type BounceConfig struct {
	Enabled     bool       `toml:"enabled"`
	Gravity     [3]float64 `toml:"gravity"`
	Mass        float64    `toml:"mass"`
	Restitution float64    `toml:"restitution"`
	Sticky      float64    `toml:"sticky"`
	HalfExtent  float64    `toml:"half_extent"`
	TimeStep    float64    `toml:"time_step"`
}

// JiggleConfig configures a point jiggling behind the flock's leader, or
// behind its centroid when there is no leader
type JiggleConfig struct {
	Enabled   bool    `toml:"enabled"`
	Damping   float64 `toml:"damping"`
	Stiffness float64 `toml:"stiffness"`
	Jiggle    float64 `toml:"jiggle"`

	// Parent frame the jiggle point is reported in
	Origin [3]float64 `toml:"origin"`
	Scale  float64    `toml:"scale"`
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	FrameRate int    `toml:"frame_rate"` // ticks per second of serve and view
}

// DefaultConfig returns the default parameters
func DefaultConfig() *Config {
	flock := force.DefaultParams()
	bounce := swarm.DefaultBounceParams()
	jiggle := swarm.DefaultJiggleParams()

	return &Config{
		Seed:  1,
		Ticks: 1000,
		Flock: FlockConfig{
			Count:     swarm.DefaultFlockParams().Count,
			TimeStep:  swarm.DefaultFlockParams().TimeStep,
			Workers:   flock.Workers,
			A:         flock.A,
			V:         flock.V,
			C:         flock.C,
			AMax:      flock.AMax,
			Range:     flock.Range,
			RangeRamp: flock.RangeRamp,
			FOV:       flock.FOV,
			DFOV:      flock.DFOV,
			Leader:    0,
			Goal:      [3]float64{10, 0, 0},
		},
		Bounce: BounceConfig{
			Enabled:     true,
			Gravity:     bounce.Gravity,
			Mass:        bounce.Mass,
			Restitution: bounce.Restitution,
			Sticky:      bounce.Sticky,
			HalfExtent:  bounce.HalfExtent,
			TimeStep:    bounce.TimeStep,
		},
		Jiggle: JiggleConfig{
			Enabled:   true,
			Damping:   jiggle.Damping,
			Stiffness: jiggle.Stiffness,
			Jiggle:    jiggle.Jiggle,
			Scale:     1,
		},
		Server: ServerConfig{
			Addr:      "localhost:8080",
			FrameRate: 30,
		},
	}
}

// ParseConfig parses the TOML config file whose path is provided.
// The file overwrites the default parameters; unknown keys are an error.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}

	return conf, nil
}

func (c *Config) FlockParams() swarm.FlockParams {
	return swarm.FlockParams{
		Force: force.Params{
			A:         c.Flock.A,
			V:         c.Flock.V,
			C:         c.Flock.C,
			AMax:      c.Flock.AMax,
			Range:     c.Flock.Range,
			RangeRamp: c.Flock.RangeRamp,
			FOV:       c.Flock.FOV,
			DFOV:      c.Flock.DFOV,
			Workers:   c.Flock.Workers,
		},
		Count:    c.Flock.Count,
		TimeStep: c.Flock.TimeStep,
	}
}

func (c *Config) BounceParams() swarm.BounceParams {
	return swarm.BounceParams{
		Gravity:     mgl64.Vec3(c.Bounce.Gravity),
		Mass:        c.Bounce.Mass,
		Restitution: c.Bounce.Restitution,
		Sticky:      c.Bounce.Sticky,
		HalfExtent:  c.Bounce.HalfExtent,
		TimeStep:    c.Bounce.TimeStep,
	}
}

func (c *Config) JiggleParams() swarm.JiggleParams {
	return swarm.JiggleParams{
		Damping:       c.Jiggle.Damping,
		Stiffness:     c.Jiggle.Stiffness,
		Jiggle:        c.Jiggle.Jiggle,
		ParentInverse: c.Parent().InverseMat4(),
	}
}

// Parent returns the transform of the frame the jiggle point is reported in
func (c *Config) Parent() actor.Transform {
	parent := actor.NewTransform()
	parent.Position = mgl64.Vec3(c.Jiggle.Origin)
	parent.Scale = c.Jiggle.Scale

	return parent
}

func (c *Config) Validate() error {
	switch {
	case c.Ticks < 0:
		return fmt.Errorf("ticks must be non-negative, got %d", c.Ticks)
	case c.Server.FrameRate <= 0:
		return fmt.Errorf("server frame_rate must be positive, got %d", c.Server.FrameRate)
	}

	return nil
}
