package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position, orientation and uniform scale in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    1,
	}
}

// Mat4 returns the local-to-parent matrix, translation * rotation * scale
func (t Transform) Mat4() mgl64.Mat4 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())

	return translation.Mul4(t.Rotation.Normalize().Mat4()).Mul4(mgl64.Scale3D(scale, scale, scale))
}

// InverseMat4 returns the parent-to-local matrix
func (t Transform) InverseMat4() mgl64.Mat4 {
	return t.Mat4().Inv()
}

// Apply transforms a point by the matrix
func Apply(m mgl64.Mat4, point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(point, m)
}
