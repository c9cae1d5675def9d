package main

import (
	"log"

	"github.com/akmonengine/swarm"
	"github.com/akmonengine/swarm/stats"
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is the state of a scene after one tick
type Frame struct {
	Tick   int           `json:"tick"`
	Flock  []mgl64.Vec3  `json:"flock"`
	Leader int           `json:"leader"`
	Bounce *mgl64.Vec3   `json:"bounce,omitempty"`
	Jiggle *mgl64.Vec3   `json:"jiggle,omitempty"`
	Stats  stats.Summary `json:"stats"`
}

// Scene ticks a flock together with the optional bounce and jiggle simulations
type Scene struct {
	Flock  *swarm.FlockSim
	Bounce *swarm.BounceSim
	Jiggle *swarm.JiggleSim
	Events swarm.Events

	conf  *Config
	tick  int
	reset bool
}

func NewScene(conf *Config) (*Scene, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{conf: conf, Events: swarm.NewEvents()}
	s.Events.Subscribe(swarm.IMPACT, logEvent)
	s.Events.Subscribe(swarm.DISCONTINUITY, logEvent)
	s.Events.Subscribe(swarm.RESET, logEvent)

	var err error
	s.Flock, err = swarm.NewFlockSim(conf.FlockParams(), swarm.WithSeed(conf.Seed), swarm.WithEvents(&s.Events))
	if err != nil {
		return nil, err
	}
	s.Flock.SetLeader(conf.Flock.Leader, mgl64.Vec3(conf.Flock.Goal))

	if conf.Bounce.Enabled {
		s.Bounce, err = swarm.NewBounce(conf.BounceParams(), swarm.WithSeed(conf.Seed+1), swarm.WithEvents(&s.Events))
		if err != nil {
			return nil, err
		}
	}

	if conf.Jiggle.Enabled {
		s.Jiggle, err = swarm.NewJiggle(conf.JiggleParams(), swarm.WithEvents(&s.Events))
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Advance ticks every simulation once and returns the resulting frame
func (s *Scene) Advance() Frame {
	now := float64(s.tick)

	reset := s.reset
	s.reset = false

	if s.Bounce != nil {
		s.Bounce.Tick(now, reset)
		if s.conf.Flock.FollowBounce && s.Flock.Leader().Index >= 0 {
			s.Flock.SetLeader(s.Flock.Leader().Index, s.Bounce.Position())
		}
	}

	s.Flock.Tick(now)
	summary := stats.Summarize(s.Flock.Particles)

	frame := Frame{
		Tick:   s.tick,
		Flock:  append([]mgl64.Vec3(nil), s.Flock.Particles.Positions...),
		Leader: s.Flock.Leader().Index,
		Stats:  summary,
	}

	if s.Bounce != nil {
		p := s.Bounce.Position()
		frame.Bounce = &p
	}

	if s.Jiggle != nil {
		if reset {
			s.Jiggle.Reset()
		}
		goal := summary.Centroid
		if leader := s.Flock.Leader(); leader.Leads(leader.Index, s.Flock.Count()) {
			goal = s.Flock.PositionOf(leader.Index)
		}
		p := s.Jiggle.Tick(now, goal)
		frame.Jiggle = &p
	}

	s.tick++

	return frame
}

// Reset puts the bouncing body back at rest and the jiggle point on its goal
// on the next Advance
func (s *Scene) Reset() {
	s.reset = true
}

func logEvent(event swarm.Event) {
	switch e := event.(type) {
	case swarm.ImpactEvent:
		log.Printf("impact: triangle %d at %v, velocity %v", e.Index, e.Position, e.Velocity)
	case swarm.DiscontinuityEvent:
		log.Printf("discontinuity: %v -> %v", e.Previous, e.Now)
	case swarm.ResetEvent:
		log.Printf("reset at %v", e.Now)
	}
}
