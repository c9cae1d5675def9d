package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/rand"
)

// Rand is the source of randomness used to seed initial velocities.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic generator for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomUnitCube samples each component uniformly in [-1, 1)
func RandomUnitCube(rng Rand) mgl64.Vec3 {
	return mgl64.Vec3{
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
		rng.Float64()*2 - 1,
	}
}
