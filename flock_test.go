package swarm

import (
	"errors"
	"math"
	"testing"

	"github.com/akmonengine/swarm/force"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestFlockSim(t *testing.T, count int, opts ...Option) *FlockSim {
	t.Helper()

	params := DefaultFlockParams()
	params.Count = count
	sim, err := NewFlockSim(params, opts...)
	if err != nil {
		t.Fatalf("NewFlockSim() error = %v", err)
	}
	return sim
}

func TestNewFlockSim_Validation(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(p *FlockParams)
		expected error
	}{
		{"defaults", func(p *FlockParams) {}, nil},
		{"empty flock", func(p *FlockParams) { p.Count = 0 }, nil},
		{"negative count", func(p *FlockParams) { p.Count = -1 }, ErrInvalidParams},
		{"zero time step", func(p *FlockParams) { p.TimeStep = 0 }, ErrInvalidParams},
		{"bad force params", func(p *FlockParams) { p.Force.RangeRamp = 1 }, force.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultFlockParams()
			tt.modify(&params)

			_, err := NewFlockSim(params)
			if tt.expected == nil && err != nil {
				t.Errorf("NewFlockSim() error = %v, want nil", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("NewFlockSim() error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestNewFlockSim_SeedIsReproducible(t *testing.T) {
	a := newTestFlockSim(t, 10, WithSeed(7))
	b := newTestFlockSim(t, 10, WithSeed(7))
	c := newTestFlockSim(t, 10, WithSeed(8))

	same := true
	for i := range 10 {
		if a.Particles.Velocities[i] != b.Particles.Velocities[i] {
			t.Fatalf("particle %d: velocities %v and %v differ with the same seed", i, a.Particles.Velocities[i], b.Particles.Velocities[i])
		}
		same = same && a.Particles.Velocities[i] == c.Particles.Velocities[i]
	}
	if same {
		t.Error("different seeds produced the same velocities")
	}

	for range 50 {
		a.Step(0.01)
		b.Step(0.01)
	}
	for i := range 10 {
		if a.PositionOf(i) != b.PositionOf(i) {
			t.Fatalf("particle %d: positions diverged", i)
		}
	}
}

func TestFlockSim_LengthsStayEqual(t *testing.T) {
	sim := newTestFlockSim(t, 3, WithSeed(1))

	check := func(when string) {
		n := sim.Count()
		p := sim.Particles
		if len(p.Positions) != n || len(p.Velocities) != n || len(p.Accelerations) != n {
			t.Fatalf("%s: lengths %d/%d/%d, count %d", when, len(p.Positions), len(p.Velocities), len(p.Accelerations), n)
		}
	}

	for i := range 30 {
		switch i % 3 {
		case 0:
			sim.Resize(sim.Count() + 2)
		case 1:
			sim.SetPosition(sim.Count()+1, mgl64.Vec3{1, 1, 1})
		case 2:
			sim.Resize(1)
		}
		check("after resize")
		sim.Tick(float64(i))
		check("after tick")
	}
}

func TestFlockSim_SetPosition(t *testing.T) {
	sim := newTestFlockSim(t, 2)

	sim.SetPosition(4, mgl64.Vec3{1, 2, 3})

	if sim.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", sim.Count())
	}
	if sim.PositionOf(4) != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("PositionOf(4) = %v", sim.PositionOf(4))
	}
	if sim.PositionOf(3) != (mgl64.Vec3{}) {
		t.Errorf("PositionOf(3) = %v, want origin", sim.PositionOf(3))
	}
}

func TestFlockSim_OutOfRangeIndex(t *testing.T) {
	sim := newTestFlockSim(t, 3)

	sim.SetPosition(-1, mgl64.Vec3{1, 2, 3})

	if sim.Count() != 3 {
		t.Errorf("Count() = %d after SetPosition(-1), want 3", sim.Count())
	}
	for _, i := range []int{-1, 3, 100} {
		if got := sim.PositionOf(i); got != (mgl64.Vec3{}) {
			t.Errorf("PositionOf(%d) = %v, want origin", i, got)
		}
		if sim.Particle(i).Valid() {
			t.Errorf("Particle(%d).Valid() = true", i)
		}
	}
}

func TestFlockSim_Leader(t *testing.T) {
	sim := newTestFlockSim(t, 8, WithSeed(3))
	for i := range 8 {
		sim.SetPosition(i, mgl64.Vec3{float64(i), 0, 0})
	}
	goal := mgl64.Vec3{0, 10, 0}
	sim.SetLeader(2, goal)

	sim.Step(0.01)

	accel := sim.Particles.Accelerations[2]
	amax := force.DefaultParams().AMax
	if math.Abs(accel.Len()-amax) > 1e-9 {
		t.Errorf("|leader acceleration| = %v, want %v", accel.Len(), amax)
	}
	toGoal := goal.Sub(sim.PositionOf(2)).Normalize()
	if accel.Normalize().Dot(toGoal) < 1-1e-9 {
		t.Errorf("leader acceleration %v does not point at the goal", accel)
	}

	sim.SetLeader(-1, goal)
	if sim.Leader() != force.NoLeader {
		t.Errorf("Leader() = %v, want NoLeader", sim.Leader())
	}
}

func TestFlockSim_WithModel(t *testing.T) {
	sim := newTestFlockSim(t, 4, WithSeed(2), WithModel(force.Zero{}))
	velocities := append([]mgl64.Vec3(nil), sim.Particles.Velocities...)

	sim.Step(0.5)
	sim.Step(0.5)

	for i, v := range velocities {
		if sim.Particles.Velocities[i] != v {
			t.Errorf("particle %d: velocity changed under the zero model", i)
		}
		if !sim.PositionOf(i).ApproxEqual(v) {
			t.Errorf("particle %d: position %v, want %v", i, sim.PositionOf(i), v)
		}
	}
}

func TestFlockSim_TickContinuity(t *testing.T) {
	sim := newTestFlockSim(t, 5, WithSeed(4))

	for i := range 3 {
		if !sim.Tick(float64(i)) {
			t.Fatalf("Tick(%d) = false", i)
		}
	}

	before := append([]mgl64.Vec3(nil), sim.Particles.Positions...)
	if sim.Tick(3.5) {
		t.Fatal("Tick(3.5) = true after a gap of 1.5")
	}
	for i, p := range before {
		if sim.PositionOf(i) != p {
			t.Errorf("particle %d moved on a broken tick", i)
		}
	}

	if !sim.Tick(4) {
		t.Fatal("Tick(4) = false, the run should restart")
	}
	moved := false
	for i, p := range before {
		moved = moved || sim.PositionOf(i) != p
	}
	if !moved {
		t.Error("no particle moved after the restart")
	}
}
