// Package swarm drives the particle simulations once per host tick.
//
// FlockSim moves a flock of particles under the force.Flock law, BounceSim
// bounces a single point mass inside a closed collision surface, and
// JiggleSim makes a point lag behind a moving goal. Each simulation owns its
// state and guards against host time jumps with a Clock.
package swarm

import (
	"errors"

	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/force"
)

// ErrInvalidParams is wrapped by every configuration error of this package
var ErrInvalidParams = errors.New("invalid simulation parameters")

type options struct {
	rng    actor.Rand
	model  force.Model
	events *Events
}

// Option customizes a simulation at construction
type Option func(*options)

// WithSeed seeds the generator of initial velocities
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = actor.NewRand(seed)
	}
}

// WithRand injects the generator of initial velocities
func WithRand(rng actor.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithModel replaces the force law of a FlockSim. BounceSim ignores it.
func WithModel(model force.Model) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithEvents shares an event manager with the simulation
func WithEvents(events *Events) Option {
	return func(o *options) {
		o.events = events
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = actor.NewRand(0)
	}
	if o.events == nil {
		events := NewEvents()
		o.events = &events
	}

	return o
}
