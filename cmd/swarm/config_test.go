package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "swarm.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if _, err := NewScene(conf); err != nil {
		t.Fatalf("NewScene(DefaultConfig()) error = %v", err)
	}

	conf.Flock.Count = 1
	if DefaultConfig().Flock.Count == 1 {
		t.Error("DefaultConfig() returned a shared value")
	}
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
seed = 42
ticks = 10

[flock]
count = 5
fov = 120.0
goal = [1.0, 2.0, 3.0]
follow_bounce = true

[bounce]
enabled = false
gravity = [0.0, 0.0, -9.8]

[server]
addr = ":9000"
`)

	conf, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	defaults := DefaultConfig()
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"seed", conf.Seed, uint64(42)},
		{"ticks", conf.Ticks, 10},
		{"flock count", conf.Flock.Count, 5},
		{"flock fov", conf.Flock.FOV, 120.0},
		{"flock goal", conf.Flock.Goal, [3]float64{1, 2, 3}},
		{"follow bounce", conf.Flock.FollowBounce, true},
		{"bounce enabled", conf.Bounce.Enabled, false},
		{"bounce gravity", conf.Bounce.Gravity, [3]float64{0, 0, -9.8}},
		{"server addr", conf.Server.Addr, ":9000"},
		// untouched keys keep their defaults
		{"flock dfov", conf.Flock.DFOV, defaults.Flock.DFOV},
		{"bounce mass", conf.Bounce.Mass, defaults.Bounce.Mass},
		{"jiggle", conf.Jiggle, defaults.Jiggle},
		{"frame rate", conf.Server.FrameRate, defaults.Server.FrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	params := conf.FlockParams()
	if params.Count != 5 || params.Force.FOV != 120 {
		t.Errorf("FlockParams() = %+v", params)
	}
	if conf.BounceParams().Gravity.Z() != -9.8 {
		t.Errorf("BounceParams().Gravity = %v", conf.BounceParams().Gravity)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "[flock]\nspeed = 3.0\n"},
		{"unknown section", "[render]\nwidth = 3\n"},
		{"syntax", "[flock\ncount = 1\n"},
		{"wrong type", "[flock]\ncount = \"many\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("ParseConfig() error = nil, want an error")
			}
		})
	}

	if _, err := ParseConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("ParseConfig() of a missing file returned no error")
	}
}

func TestConfigValidate(t *testing.T) {
	conf := DefaultConfig()
	conf.Server.FrameRate = 0
	if err := conf.Validate(); err == nil {
		t.Error("Validate() accepted a zero frame rate")
	}

	conf = DefaultConfig()
	conf.Ticks = -1
	if err := conf.Validate(); err == nil {
		t.Error("Validate() accepted negative ticks")
	}
}

func TestConfigJiggleParams_Parent(t *testing.T) {
	conf := DefaultConfig()
	if params := conf.JiggleParams(); !params.ParentInverse.ApproxEqualThreshold(mgl64.Ident4(), 1e-12) {
		t.Errorf("default ParentInverse = %v, want identity", params.ParentInverse)
	}

	conf.Jiggle.Origin = [3]float64{1, 2, 3}
	conf.Jiggle.Scale = 2
	local := actor.Apply(conf.JiggleParams().ParentInverse, mgl64.Vec3{3, 2, 3})
	if !local.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("local = %v, want [1 0 0]", local)
	}
}
