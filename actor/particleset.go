package actor

import "github.com/go-gl/mathgl/mgl64"

// ParticleSet stores N particles as parallel arrays (struct of arrays).
// Positions, Velocities and Accelerations always have Count() elements;
// a particle keeps its index for the life of the set, the set only grows.
type ParticleSet struct {
	Positions     []mgl64.Vec3
	Velocities    []mgl64.Vec3
	Accelerations []mgl64.Vec3

	rng Rand
}

// NewParticleSet creates a set of count particles.
// rng seeds the initial velocities; a nil rng uses NewRand(0).
func NewParticleSet(count int, rng Rand) *ParticleSet {
	if rng == nil {
		rng = NewRand(0)
	}
	set := &ParticleSet{rng: rng}
	set.Add(count)

	return set
}

// Count returns the number of particles
func (s *ParticleSet) Count() int {
	return len(s.Positions)
}

// Add grows the set by count particles: zero position, random velocity in the
// unit cube [-1,1]^3, zero acceleration. A non-positive count does nothing.
func (s *ParticleSet) Add(count int) {
	if count <= 0 {
		return
	}

	s.Positions = append(s.Positions, make([]mgl64.Vec3, count)...)
	for range count {
		s.Velocities = append(s.Velocities, RandomUnitCube(s.rng))
	}
	s.Accelerations = append(s.Accelerations, make([]mgl64.Vec3, count)...)
}

// Resize grows the set to n particles. It never shrinks.
func (s *ParticleSet) Resize(n int) {
	s.Add(n - s.Count())
}

// Handle returns an index-based reference to the i-th particle
func (s *ParticleSet) Handle(i int) Handle {
	return Handle{set: s, index: i}
}

// Handle identifies a particle by index. It stays valid when the set grows.
type Handle struct {
	set   *ParticleSet
	index int
}

func (h Handle) Index() int {
	return h.index
}

// Valid reports whether the handle points at an existing particle
func (h Handle) Valid() bool {
	return h.set != nil && h.index >= 0 && h.index < h.set.Count()
}

func (h Handle) Position() mgl64.Vec3 {
	return h.set.Positions[h.index]
}

func (h Handle) SetPosition(p mgl64.Vec3) {
	h.set.Positions[h.index] = p
}

func (h Handle) Velocity() mgl64.Vec3 {
	return h.set.Velocities[h.index]
}

func (h Handle) SetVelocity(v mgl64.Vec3) {
	h.set.Velocities[h.index] = v
}

func (h Handle) Acceleration() mgl64.Vec3 {
	return h.set.Accelerations[h.index]
}
