package force

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidParams is wrapped by every configuration error of this package
var ErrInvalidParams = errors.New("invalid flock parameters")

// Params configures the flocking force law. Angles are in degrees.
type Params struct {
	A float64 // avoidance gain
	V float64 // velocity matching gain
	C float64 // centering gain

	AMax      float64 // acceleration budget
	Range     float64 // neighbors closer than Range have full influence
	RangeRamp float64 // influence fades linearly to zero at RangeRamp
	FOV       float64 // full angle of the cone of full influence
	DFOV      float64 // angular width of the fading shell around the cone

	Workers int // goroutines used by Compute, 0 or 1 runs inline
}

// DefaultParams returns the parameters of a small, loose flock
func DefaultParams() Params {
	return Params{
		A:         0.8,
		V:         1.0,
		C:         1.0,
		AMax:      5.0,
		Range:     3.0,
		RangeRamp: 5.0,
		FOV:       152.0,
		DFOV:      10.0,
		Workers:   1,
	}
}

// Validate reports the first parameter that breaks an invariant
func (p Params) Validate() error {
	switch {
	case p.A < 0 || p.V < 0 || p.C < 0:
		return fmt.Errorf("%w: gains must be non-negative (A=%v, V=%v, C=%v)", ErrInvalidParams, p.A, p.V, p.C)
	case !(p.AMax > 0):
		return fmt.Errorf("%w: AMax must be positive, got %v", ErrInvalidParams, p.AMax)
	case p.Range < 0:
		return fmt.Errorf("%w: Range must be non-negative, got %v", ErrInvalidParams, p.Range)
	case p.RangeRamp < p.Range:
		return fmt.Errorf("%w: RangeRamp (%v) must not be less than Range (%v)", ErrInvalidParams, p.RangeRamp, p.Range)
	case !(p.FOV > 0 && p.FOV <= 360):
		return fmt.Errorf("%w: FOV must be in (0, 360], got %v", ErrInvalidParams, p.FOV)
	case p.DFOV < 0 || p.FOV+p.DFOV > 360:
		return fmt.Errorf("%w: DFOV must be non-negative with FOV+DFOV <= 360, got %v", ErrInvalidParams, p.DFOV)
	case p.Workers < 0:
		return fmt.Errorf("%w: Workers must be non-negative, got %d", ErrInvalidParams, p.Workers)
	}

	return nil
}

// Flock is the boids force law: avoidance, velocity matching and centering
// over the neighbors in range and in sight, under a priority-budgeted
// acceleration limit. The leader, if any, pursues its goal at full budget.
type Flock struct {
	params   Params
	cosInner float64 // cos(FOV/2)
	cosOuter float64 // cos((FOV+DFOV)/2)
}

// NewFlock validates the parameters and derives the field of view thresholds
func NewFlock(params Params) (*Flock, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Flock{
		params:   params,
		cosInner: math.Cos(mgl64.DegToRad(params.FOV / 2)),
		cosOuter: math.Cos(mgl64.DegToRad((params.FOV + params.DFOV) / 2)),
	}, nil
}

func (f *Flock) Params() Params {
	return f.params
}

// Compute fills set.Accelerations. Particles are evaluated independently from
// the positions and velocities of the tick, so the worker count never changes
// the result.
func (f *Flock) Compute(set *actor.ParticleSet, leader Leader, _ float64) {
	count := set.Count()
	task(f.params.Workers, count, func(i int) {
		if leader.Leads(i, count) {
			set.Accelerations[i] = f.pursue(set.Positions[i], leader.Goal)
			return
		}
		set.Accelerations[i] = f.steer(set, i)
	})
}

// pursue heads straight for the goal with the whole budget
func (f *Flock) pursue(position, goal mgl64.Vec3) mgl64.Vec3 {
	dir, ok := actor.Unit(goal.Sub(position))
	if !ok {
		return mgl64.Vec3{}
	}

	return dir.Mul(f.params.AMax)
}

// steer sums the neighbor drives acting on particle a
func (f *Flock) steer(set *actor.ParticleSet, a int) mgl64.Vec3 {
	var avoid, match, center mgl64.Vec3

	xa := set.Positions[a]
	va := set.Velocities[a]
	heading, hasHeading := actor.Unit(va)

	for b := range set.Count() {
		if b == a {
			continue
		}
		xb := set.Positions[b]
		vb := set.Velocities[b]

		offset := xb.Sub(xa)
		r := offset.Len()

		k := f.rangeWeight(r) * f.sightWeight(heading, hasHeading, offset)
		if k == 0 {
			continue
		}

		// avoidance grows as 1/r along b->a, undefined for coincident particles
		if away, ok := actor.Unit(offset.Mul(-1)); ok {
			avoid = avoid.Add(away.Mul(f.params.A * k / r))
		}
		match = match.Add(vb.Sub(va).Mul(f.params.V * k))
		center = center.Add(offset.Mul(f.params.C * k))
	}

	return prioritize(f.params.AMax, avoid, match, center)
}
