package actor

import "github.com/go-gl/mathgl/mgl64"

type Material struct {
	mass        float64
	Restitution float64 // 0 = no rebound, 1 = perfect restitution
	Sticky      float64 // share of tangential velocity kept after a bounce, 1 = no friction
}

func NewMaterial(mass, restitution, sticky float64) Material {
	return Material{mass: mass, Restitution: restitution, Sticky: sticky}
}

func (material Material) GetMass() float64 {
	return material.mass
}

// Body is a single point mass moving under a constant acceleration
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // units per tick time

	Material Material
}

// NewBody creates a body at position with the given initial velocity
func NewBody(position, velocity mgl64.Vec3, material Material) *Body {
	return &Body{
		Position: position,
		Velocity: velocity,
		Material: material,
	}
}

// Acceleration converts the gravity field to the body's acceleration, gravity/mass
func (b *Body) Acceleration(gravity mgl64.Vec3) mgl64.Vec3 {
	return gravity.Mul(1.0 / b.Material.GetMass())
}

// Integrate moves the body along its current velocity
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// Accelerate applies a constant acceleration over dt to the velocity
func (b *Body) Accelerate(acceleration mgl64.Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(acceleration.Mul(dt))
}

// Stop zeroes the position and velocity
func (b *Body) Stop() {
	b.Position = mgl64.Vec3{}
	b.Velocity = mgl64.Vec3{}
}
