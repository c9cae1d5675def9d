package constraint

import (
	"math"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// RestTolerance is how far from its plane a body still lies on it
const RestTolerance = 1e-9

// Rest is a plane a body came to lie on after a contact.
// A step that starts on the plane is invisible to the swept test, so the
// motion into the plane is resolved before the body moves.
type Rest struct {
	Normal mgl64.Vec3 // unit, points to the side the body stays on
	Point  mgl64.Vec3
}

// NewRest returns the plane of a contact, facing away from the velocity the
// body hit it with. Call it before the contact is resolved.
func NewRest(contact Contact, body *actor.Body) Rest {
	normal := contact.Normal
	if body.Velocity.Dot(normal) > 0 {
		normal = normal.Mul(-1)
	}

	return Rest{Normal: normal, Point: contact.ImpactPoint(body)}
}

// Distance is the signed distance of point to the plane, positive on the
// body's side
func (r Rest) Distance(point mgl64.Vec3) float64 {
	return point.Sub(r.Point).Dot(r.Normal)
}

func (r Rest) Touching(body *actor.Body) bool {
	return math.Abs(r.Distance(body.Position)) <= RestTolerance
}

// Same reports whether both rests hold the body on the same plane
func (r Rest) Same(other Rest) bool {
	return r.Normal == other.Normal && math.Abs(r.Distance(other.Point)) <= RestTolerance
}

// Resolve puts a body moving into the plane back on it and reflects its
// velocity. A body moving along or away from the plane is left alone.
func (r Rest) Resolve(body *actor.Body) {
	if body.Velocity.Dot(r.Normal) >= 0 {
		return
	}

	body.Position = body.Position.Sub(r.Normal.Mul(r.Distance(body.Position)))
	body.Velocity = Reflect(body.Velocity, r.Normal, body.Material.Restitution, body.Material.Sticky)
}
