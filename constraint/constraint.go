// Package constraint resolves the contacts found by the collision package.
package constraint

import "github.com/go-gl/mathgl/mgl64"

// Reflect splits v along the unit normal n and returns
// sticky*tangential - restitution*normal.
// restitution 1 and sticky 1 is a perfect mirror, restitution 0 kills the
// normal component, sticky 0 kills the sliding component.
func Reflect(v, n mgl64.Vec3, restitution, sticky float64) mgl64.Vec3 {
	vn := v.Dot(n)
	normal := n.Mul(vn)
	tangential := v.Sub(normal)

	return tangential.Mul(sticky).Sub(normal.Mul(restitution))
}
