package swarm

import (
	"fmt"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// JiggleParams configures a JiggleSim. Every coefficient is in [0, 1].
type JiggleParams struct {
	Damping   float64 // share of the velocity lost each tick
	Stiffness float64 // share of the distance to the goal closed each tick
	Jiggle    float64 // 0 pins the output on the goal, 1 is the full follower

	// ParentInverse maps world space to the output space
	ParentInverse mgl64.Mat4
}

func DefaultJiggleParams() JiggleParams {
	return JiggleParams{
		Damping:       0.1,
		Stiffness:     0.2,
		Jiggle:        1,
		ParentInverse: mgl64.Ident4(),
	}
}

func (p JiggleParams) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"Damping", p.Damping},
		{"Stiffness", p.Stiffness},
		{"Jiggle", p.Jiggle},
	} {
		if !(c.value >= 0 && c.value <= 1) {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidParams, c.name, c.value)
		}
	}

	return nil
}

// JiggleSim is a point dragged toward a moving goal by a damped spring
type JiggleSim struct {
	Params JiggleParams
	Events *Events

	current  mgl64.Vec3
	previous mgl64.Vec3
	output   mgl64.Vec3
	clock    Clock
}

func NewJiggle(params JiggleParams, opts ...Option) (*JiggleSim, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.ParentInverse == (mgl64.Mat4{}) {
		params.ParentInverse = mgl64.Ident4()
	}

	o := newOptions(opts)

	return &JiggleSim{Params: params, Events: o.events}, nil
}

// Tick follows goal at host time now and returns the output position.
// The first tick of a run starts at rest on the goal; a tick that breaks the
// run leaves the output unchanged.
func (s *JiggleSim) Tick(now float64, goal mgl64.Vec3) mgl64.Vec3 {
	defer s.Events.flush()

	previous := s.clock.Previous()
	switch s.clock.Advance(now) {
	case TICK_BROKEN:
		s.Events.emit(DiscontinuityEvent{Previous: previous, Now: now})
		return s.output
	case TICK_FIRST:
		s.current = goal
		s.previous = goal
	}

	velocity := s.current.Sub(s.previous).Mul(1 - s.Params.Damping)
	next := s.current.Add(velocity)
	next = next.Add(goal.Sub(next).Mul(s.Params.Stiffness))

	s.previous = s.current
	s.current = next

	jiggled := goal.Add(next.Sub(goal).Mul(s.Params.Jiggle))
	s.output = actor.Apply(s.Params.ParentInverse, jiggled)

	return s.output
}

// Reset starts a new run: the next tick puts the point back at rest on its goal
func (s *JiggleSim) Reset() {
	s.clock.Restart()
}

// Position returns the output of the last tick
func (s *JiggleSim) Position() mgl64.Vec3 {
	return s.output
}
