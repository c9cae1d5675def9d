package swarm

import (
	"fmt"

	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/force"
	"github.com/go-gl/mathgl/mgl64"
)

// FlockParams configures a FlockSim
type FlockParams struct {
	Force    force.Params
	Count    int     // initial number of particles
	TimeStep float64 // dt of one tick
}

func DefaultFlockParams() FlockParams {
	return FlockParams{
		Force:    force.DefaultParams(),
		Count:    20,
		TimeStep: 0.01,
	}
}

func (p FlockParams) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("%w: Count must be non-negative, got %d", ErrInvalidParams, p.Count)
	case !(p.TimeStep > 0):
		return fmt.Errorf("%w: TimeStep must be positive, got %v", ErrInvalidParams, p.TimeStep)
	}

	return nil
}

// FlockSim is a flock of particles advanced by an Integrator
type FlockSim struct {
	Particles  *actor.ParticleSet
	Model      force.Model
	Integrator Integrator
	TimeStep   float64
	Events     *Events

	leader force.Leader
	clock  Clock
}

// NewFlockSim builds a flock of params.Count particles at the origin with
// random velocities. Unless WithModel is given the force law is force.Flock.
func NewFlockSim(params FlockParams, opts ...Option) (*FlockSim, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	model := o.model
	if model == nil {
		flock, err := force.NewFlock(params.Force)
		if err != nil {
			return nil, err
		}
		model = flock
	}

	return &FlockSim{
		Particles: actor.NewParticleSet(params.Count, o.rng),
		Model:     model,
		TimeStep:  params.TimeStep,
		Events:    o.events,
		leader:    force.NoLeader,
	}, nil
}

// SetLeader makes particle index chase goal. A negative index clears the leader.
func (s *FlockSim) SetLeader(index int, goal mgl64.Vec3) {
	if index < 0 {
		s.leader = force.NoLeader
		return
	}
	s.leader = force.Leader{Index: index, Goal: goal}
}

func (s *FlockSim) Leader() force.Leader {
	return s.leader
}

// Step advances the flock by dt, ignoring the clock
func (s *FlockSim) Step(dt float64) {
	s.Integrator.Step(s.Particles, s.Model, s.leader, dt)
}

// Tick advances the flock by one TimeStep at host time now.
// It returns false when the tick broke the run and nothing moved.
func (s *FlockSim) Tick(now float64) bool {
	defer s.Events.flush()

	previous := s.clock.Previous()
	if s.clock.Advance(now) == TICK_BROKEN {
		s.Events.emit(DiscontinuityEvent{Previous: previous, Now: now})
		return false
	}

	s.Step(s.TimeStep)

	return true
}

func (s *FlockSim) Count() int {
	return s.Particles.Count()
}

// Particle returns a handle on particle i, check it with Valid
func (s *FlockSim) Particle(i int) actor.Handle {
	return s.Particles.Handle(i)
}

// PositionOf returns the position of particle i, the origin when there is
// no such particle
func (s *FlockSim) PositionOf(i int) mgl64.Vec3 {
	h := s.Particle(i)
	if !h.Valid() {
		return mgl64.Vec3{}
	}

	return h.Position()
}

// SetPosition moves particle i, growing the flock when i is past its end.
// A negative index is ignored.
func (s *FlockSim) SetPosition(i int, p mgl64.Vec3) {
	if i < 0 {
		return
	}
	if i >= s.Particles.Count() {
		s.Particles.Resize(i + 1)
	}
	s.Particle(i).SetPosition(p)
}

// Resize grows the flock to n particles. It never shrinks.
func (s *FlockSim) Resize(n int) {
	s.Particles.Resize(n)
}
