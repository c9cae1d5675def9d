package force

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// rangeWeight is 1 up to Range, fades linearly to 0 at RangeRamp
func (f *Flock) rangeWeight(r float64) float64 {
	switch {
	case r <= f.params.Range:
		return 1
	case r >= f.params.RangeRamp:
		return 0
	default:
		return (f.params.RangeRamp - r) / (f.params.RangeRamp - f.params.Range)
	}
}

// sightWeight is 1 when the neighbor lies inside the FOV cone around the
// heading, fades linearly to 0 across the DFOV shell, 0 behind.
// Without a heading, or for a coincident neighbor, there is no angle to judge
// and the neighbor is fully seen.
func (f *Flock) sightWeight(heading mgl64.Vec3, hasHeading bool, offset mgl64.Vec3) float64 {
	dir, ok := actor.Unit(offset)
	if !hasHeading || !ok {
		return 1
	}

	cos := dir.Dot(heading)
	switch {
	case cos >= f.cosInner:
		return 1
	case cos <= f.cosOuter:
		return 0
	default:
		return (cos - f.cosOuter) / (f.cosInner - f.cosOuter)
	}
}
