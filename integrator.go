package swarm

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/force"
)

// Integrator advances a particle set by one explicit Euler step.
//
// Positions move with the velocities of the previous step, then the model
// refreshes the accelerations, then the velocities are updated. Hosts rely on
// this ordering, do not swap it for the semi-implicit one.
type Integrator struct{}

// Step advances set by dt, with model computing the accelerations under leader
func (Integrator) Step(set *actor.ParticleSet, model force.Model, leader force.Leader, dt float64) {
	for i := range set.Positions {
		set.Positions[i] = set.Positions[i].Add(set.Velocities[i].Mul(dt))
	}

	model.Compute(set, leader, dt)

	for i := range set.Velocities {
		set.Velocities[i] = set.Velocities[i].Add(set.Accelerations[i].Mul(dt))
	}
}
