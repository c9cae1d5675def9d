package constraint

import (
	"github.com/akmonengine/swarm/actor"
	"github.com/akmonengine/swarm/collision"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is a crossing found by a backward sweep: the body's position is
// past the plane, Time units of time after it crossed.
type Contact struct {
	Normal mgl64.Vec3
	Time   float64
}

func NewContact(impact collision.Impact) Contact {
	return Contact{Normal: impact.Triangle.Normal, Time: impact.Time}
}

// ImpactPoint returns where the body crossed the plane
func (c Contact) ImpactPoint(body *actor.Body) mgl64.Vec3 {
	return body.Position.Sub(body.Velocity.Mul(c.Time))
}

// Resolve bounces the body off the plane: it goes back to the impact point,
// takes the reflected velocity, and travels the remaining Time with it.
func (c Contact) Resolve(body *actor.Body) {
	reflected := Reflect(body.Velocity, c.Normal, body.Material.Restitution, body.Material.Sticky)

	body.Position = c.ImpactPoint(body).Add(reflected.Mul(c.Time))
	body.Velocity = reflected
}
