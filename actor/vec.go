package actor

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the length under which a vector has no usable direction
const Epsilon = 1e-12

// Unit returns v scaled to length 1.
// mgl64's Normalize divides by the length and yields NaN for a zero vector,
// so callers that can meet degenerate inputs go through Unit and treat
// ok == false as "no direction".
func Unit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, false
	}

	return v.Mul(1.0 / l), true
}

// ClampLen scales v down to the given length when it is longer, keeping its direction
func ClampLen(v mgl64.Vec3, length float64) mgl64.Vec3 {
	if v.Len() <= length {
		return v
	}
	dir, ok := Unit(v)
	if !ok {
		return mgl64.Vec3{}
	}

	return dir.Mul(length)
}
