package swarm

import (
	"fmt"

	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/collision"
	"github.com/akmonengine/swarm/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxBounces bounds the number of contacts resolved in one step
const MaxBounces = 32

// BounceParams configures a BounceSim
type BounceParams struct {
	Gravity     mgl64.Vec3
	Mass        float64
	Restitution float64 // in [0, 1], 0 comes to rest on the faces
	Sticky      float64 // in [0, 1]
	HalfExtent  float64 // half side of the bounding cube
	TimeStep    float64

	// Surface replaces the bounding cube when set
	Surface *collision.Surface
}

func DefaultBounceParams() BounceParams {
	return BounceParams{
		Gravity:     mgl64.Vec3{0, -1, 0},
		Mass:        1,
		Restitution: 1,
		Sticky:      1,
		HalfExtent:  11.8,
		TimeStep:    0.1,
	}
}

func (p BounceParams) Validate() error {
	switch {
	case !(p.Mass > 0):
		return fmt.Errorf("%w: Mass must be positive, got %v", ErrInvalidParams, p.Mass)
	case !(p.Restitution >= 0 && p.Restitution <= 1):
		return fmt.Errorf("%w: Restitution must be in [0, 1], got %v", ErrInvalidParams, p.Restitution)
	case !(p.Sticky >= 0 && p.Sticky <= 1):
		return fmt.Errorf("%w: Sticky must be in [0, 1], got %v", ErrInvalidParams, p.Sticky)
	case p.Surface == nil && !(p.HalfExtent > 0):
		return fmt.Errorf("%w: HalfExtent must be positive, got %v", ErrInvalidParams, p.HalfExtent)
	case !(p.TimeStep > 0):
		return fmt.Errorf("%w: TimeStep must be positive, got %v", ErrInvalidParams, p.TimeStep)
	}

	return nil
}

// BounceSim is a point mass falling and bouncing inside a closed surface
type BounceSim struct {
	Body     *actor.Body
	Gravity  mgl64.Vec3
	Surface  *collision.Surface
	TimeStep float64
	Events   *Events

	gravity mgl64.Vec3
	rests   []constraint.Rest
	clock   Clock
}

// NewBounce creates the simulation with the body at the origin and a random
// initial velocity in [-1,1]^3
func NewBounce(params BounceParams, opts ...Option) (*BounceSim, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	surface := params.Surface
	if surface == nil {
		var err error
		if surface, err = collision.NewBox(params.HalfExtent); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
	}

	o := newOptions(opts)
	material := actor.NewMaterial(params.Mass, params.Restitution, params.Sticky)

	return &BounceSim{
		Body:     actor.NewBody(mgl64.Vec3{}, actor.RandomUnitCube(o.rng), material),
		Gravity:  params.Gravity,
		Surface:  surface,
		TimeStep: params.TimeStep,
		Events:   o.events,
		gravity:  params.Gravity,
	}, nil
}

// Reset puts the body back at rest at the origin and restores the gravity
func (s *BounceSim) Reset() {
	s.Body.Stop()
	s.Gravity = s.gravity
	s.rests = s.rests[:0]
}

// Step advances the body by dt: hold it on the faces it rests on, move,
// bounce off the surface until the step is free of crossings, then accelerate.
func (s *BounceSim) Step(dt float64) {
	acceleration := s.Body.Acceleration(s.Gravity)
	s.handleRests()
	s.Body.Integrate(dt)
	s.handleCollisions(dt)
	s.Body.Accelerate(acceleration, dt)
}

// handleRests resolves the planes the body still lies on and forgets the
// ones it left
func (s *BounceSim) handleRests() {
	kept := s.rests[:0]
	for _, rest := range s.rests {
		if !rest.Touching(s.Body) {
			continue
		}
		rest.Resolve(s.Body)
		kept = append(kept, rest)
	}
	s.rests = kept
}

func (s *BounceSim) addRest(rest constraint.Rest) {
	for i := range s.rests {
		if s.rests[i].Same(rest) {
			s.rests[i] = rest
			return
		}
	}
	s.rests = append(s.rests, rest)
}

func (s *BounceSim) handleCollisions(dt float64) {
	impact := collision.NewImpact(dt)

	for range MaxBounces {
		if !s.Surface.Hit(s.Body.Position, s.Body.Velocity, &impact) {
			return
		}

		contact := constraint.NewContact(impact)
		rest := constraint.NewRest(contact, s.Body)
		contact.Resolve(s.Body)
		s.addRest(rest)

		s.Events.emit(ImpactEvent{
			Triangle: impact.Triangle,
			Index:    impact.Index,
			Time:     impact.Time,
			Position: rest.Point,
			Velocity: s.Body.Velocity,
		})

		// the remaining sub-step bounds the next query
		impact = collision.NewImpact(impact.Time)
	}
}

// Tick applies the reset flag, checks the host time and advances the body by
// one TimeStep. It returns false when the tick broke the run and nothing moved.
func (s *BounceSim) Tick(now float64, reset bool) bool {
	defer s.Events.flush()

	if reset {
		s.Reset()
		s.Events.emit(ResetEvent{Now: now})
	}

	previous := s.clock.Previous()
	if s.clock.Advance(now) == TICK_BROKEN {
		s.Events.emit(DiscontinuityEvent{Previous: previous, Now: now})
		return false
	}

	s.Step(s.TimeStep)

	return true
}

func (s *BounceSim) Position() mgl64.Vec3 {
	return s.Body.Position
}

func (s *BounceSim) Velocity() mgl64.Vec3 {
	return s.Body.Velocity
}
