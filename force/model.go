// Package force holds the force laws that fill a particle set's accelerations.
//
// A Model is driven by the integrator once per tick, between the position
// update and the velocity update. Flock is the production model; Zero is a
// stub that leaves every particle coasting.
package force

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Model computes the acceleration of every particle in the set.
// Implementations only write set.Accelerations.
type Model interface {
	Compute(set *actor.ParticleSet, leader Leader, dt float64)
}

// Leader designates the particle that ignores its neighbors and heads straight
// for Goal. An Index of -1, or any index outside the set, means no leader.
type Leader struct {
	Index int
	Goal  mgl64.Vec3
}

// NoLeader is the Leader value that selects no particle
var NoLeader = Leader{Index: -1}

// Leads reports whether particle i of a set of count particles is the leader
func (l Leader) Leads(i, count int) bool {
	return l.Index >= 0 && l.Index < count && l.Index == i
}

// Zero sets every acceleration to zero
type Zero struct{}

func (Zero) Compute(set *actor.ParticleSet, _ Leader, _ float64) {
	clear(set.Accelerations)
}
