// Package collision implements swept point collisions against triangle surfaces.
//
// Sweeps run backward in time: a query (P, V, tmax) describes a point that
// ends a step at P after moving with velocity V for tmax, so the path is the
// segment from P back to P - V*tmax. A hit time t places the crossing at
// P - V*t, i.e. t units of time before the end of the step.
package collision

import (
	"errors"
	"fmt"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// GrazingTolerance is the relative distance to tmax under which a crossing
// counts as touching the start of the sweep rather than crossing the plane.
// It keeps a point that was just placed on a plane from hitting it again.
const GrazingTolerance = 1e-6

var ErrDegenerateTriangle = errors.New("degenerate triangle")

// Triangle is an immutable collision triangle
type Triangle struct {
	P0, P1, P2 mgl64.Vec3
	E1, E2     mgl64.Vec3 // P1-P0, P2-P0
	Normal     mgl64.Vec3 // unit, E1×E2 direction

	cross       mgl64.Vec3 // E1×E2
	crossLenSqr float64
	aabb        actor.AABB
}

// NewTriangle builds a triangle, rejecting vertices that span no area
func NewTriangle(p0, p1, p2 mgl64.Vec3) (*Triangle, error) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	cross := e1.Cross(e2)

	normal, ok := actor.Unit(cross)
	if !ok {
		return nil, fmt.Errorf("%w: %v %v %v", ErrDegenerateTriangle, p0, p1, p2)
	}

	return &Triangle{
		P0:          p0,
		P1:          p1,
		P2:          p2,
		E1:          e1,
		E2:          e2,
		Normal:      normal,
		cross:       cross,
		crossLenSqr: cross.LenSqr(),
		aabb:        actor.NewAABB(p0, p1, p2),
	}, nil
}

func (tri *Triangle) AABB() actor.AABB {
	return tri.aabb
}

func (tri *Triangle) Centroid() mgl64.Vec3 {
	return tri.P0.Add(tri.P1).Add(tri.P2).Mul(1.0 / 3.0)
}

// Hit sweeps the point backward from p along v for tmax and returns the time
// at which it crossed the triangle.
//
// There is no hit when p lies exactly on the plane, when both ends of the
// sweep are strictly on the same side, when the motion is parallel to the
// plane, or when the crossing is within GrazingTolerance of the sweep start.
func (tri *Triangle) Hit(p, v mgl64.Vec3, tmax float64) (float64, bool) {
	if tmax == 0 {
		return 0, false
	}

	d1 := p.Sub(tri.P0).Dot(tri.Normal)
	d2 := p.Sub(v.Mul(tmax)).Sub(tri.P0).Dot(tri.Normal)
	if d1 == 0 || d1*d2 > 0 {
		return 0, false
	}

	nv := tri.Normal.Dot(v)
	if nv == 0 {
		return 0, false
	}

	t := d1 / nv
	if t*tmax < 0 || (tmax-t)/tmax < GrazingTolerance {
		return 0, false
	}

	if !tri.Contains(p.Sub(v.Mul(t))) {
		return 0, false
	}

	return t, true
}

// Contains reports whether a point of the triangle's plane lies inside it,
// edges included. x - P0 = u*E1 + v*E2 is solved with cross products against
// the unnormalized normal.
func (tri *Triangle) Contains(x mgl64.Vec3) bool {
	w := x.Sub(tri.P0)
	u := w.Cross(tri.E2).Dot(tri.cross) / tri.crossLenSqr
	v := tri.E1.Cross(w).Dot(tri.cross) / tri.crossLenSqr

	return u >= 0 && u <= 1 && v >= 0 && v <= 1 && u+v <= 1
}
