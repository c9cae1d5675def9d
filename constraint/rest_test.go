package constraint

import (
	"testing"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRest_FacesTheBody(t *testing.T) {
	tests := []struct {
		name   string
		normal mgl64.Vec3
	}{
		{"outward normal", mgl64.Vec3{0, -1, 0}},
		{"inward normal", mgl64.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := actor.NewBody(mgl64.Vec3{1, -0.5, 0}, mgl64.Vec3{0, -2, 0}, actor.NewMaterial(1, 0, 1))
			rest := NewRest(Contact{Normal: tt.normal, Time: 0.25}, body)

			if rest.Normal != (mgl64.Vec3{0, 1, 0}) {
				t.Errorf("Normal = %v, want [0 1 0]", rest.Normal)
			}
			if !rest.Point.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-12) {
				t.Errorf("Point = %v, want [1 0 0]", rest.Point)
			}
		})
	}
}

func TestRestTouching(t *testing.T) {
	rest := Rest{Normal: mgl64.Vec3{0, 1, 0}, Point: mgl64.Vec3{3, 0, 3}}

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"on the plane", 0, true},
		{"drifted above", 1e-12, true},
		{"drifted below", -1e-12, true},
		{"above", 1e-6, false},
		{"below", -0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := actor.NewBody(mgl64.Vec3{-4, tt.y, 7}, mgl64.Vec3{}, actor.NewMaterial(1, 0, 1))
			if got := rest.Touching(body); got != tt.expected {
				t.Errorf("Touching() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRestResolve(t *testing.T) {
	rest := Rest{Normal: mgl64.Vec3{0, 1, 0}}

	tests := []struct {
		name        string
		position    mgl64.Vec3
		velocity    mgl64.Vec3
		restitution float64
		sticky      float64
		expectedPos mgl64.Vec3
		expectedVel mgl64.Vec3
	}{
		{"inelastic slides", mgl64.Vec3{2, -1e-12, 0}, mgl64.Vec3{1, -3, 0}, 0, 0.5, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0.5, 0, 0}},
		{"elastic bounces", mgl64.Vec3{0, 1e-12, 0}, mgl64.Vec3{0, -2, 0}, 0.5, 1, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"leaving is untouched", mgl64.Vec3{0, 1e-12, 0}, mgl64.Vec3{1, 1, 0}, 0, 0, mgl64.Vec3{0, 1e-12, 0}, mgl64.Vec3{1, 1, 0}},
		{"sliding is untouched", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 0, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := actor.NewBody(tt.position, tt.velocity, actor.NewMaterial(1, tt.restitution, tt.sticky))

			rest.Resolve(body)

			if !body.Position.ApproxEqualThreshold(tt.expectedPos, 1e-15) {
				t.Errorf("Position = %v, want %v", body.Position, tt.expectedPos)
			}
			if !body.Velocity.ApproxEqualThreshold(tt.expectedVel, 1e-12) {
				t.Errorf("Velocity = %v, want %v", body.Velocity, tt.expectedVel)
			}
		})
	}
}

func TestRestSame(t *testing.T) {
	floor := Rest{Normal: mgl64.Vec3{0, 1, 0}, Point: mgl64.Vec3{0, -10, 0}}

	tests := []struct {
		name     string
		other    Rest
		expected bool
	}{
		{"other point of the plane", Rest{Normal: mgl64.Vec3{0, 1, 0}, Point: mgl64.Vec3{4, -10, -2}}, true},
		{"parallel plane", Rest{Normal: mgl64.Vec3{0, 1, 0}, Point: mgl64.Vec3{0, -9, 0}}, false},
		{"opposite side", Rest{Normal: mgl64.Vec3{0, -1, 0}, Point: mgl64.Vec3{0, -10, 0}}, false},
		{"wall", Rest{Normal: mgl64.Vec3{1, 0, 0}, Point: mgl64.Vec3{-10, -10, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := floor.Same(tt.other); got != tt.expected {
				t.Errorf("Same() = %v, want %v", got, tt.expected)
			}
		})
	}
}
