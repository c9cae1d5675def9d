package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Polyhedron describes a convex boundary by its vertices and polygonal faces.
// Each face lists at least three vertex indices in winding order.
type Polyhedron struct {
	Vertices []mgl64.Vec3
	Faces    [][]int
}

// Triangles fans every face around its first vertex, face by face
func (p Polyhedron) Triangles() ([]*Triangle, error) {
	triangles := make([]*Triangle, 0, len(p.Faces)*2)

	for f, face := range p.Faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", f, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(p.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", f, idx, len(p.Vertices))
			}
		}

		for i := 1; i < len(face)-1; i++ {
			tri, err := NewTriangle(p.Vertices[face[0]], p.Vertices[face[i]], p.Vertices[face[i+1]])
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", f, err)
			}
			triangles = append(triangles, tri)
		}
	}

	return triangles, nil
}

// Surface triangulates the polyhedron and indexes the result
func (p Polyhedron) Surface() (*Surface, error) {
	triangles, err := p.Triangles()
	if err != nil {
		return nil, err
	}

	return NewSurface(triangles), nil
}

// BoxPolyhedron is the axis aligned cube [-h, h]^3 as six quads
func BoxPolyhedron(halfExtent float64) Polyhedron {
	h := halfExtent
	return Polyhedron{
		Vertices: []mgl64.Vec3{
			{-h, -h, -h},
			{+h, -h, -h},
			{+h, +h, -h},
			{-h, +h, -h},
			{-h, -h, +h},
			{+h, -h, +h},
			{+h, +h, +h},
			{-h, +h, +h},
		},
		Faces: [][]int{
			{1, 2, 6, 5}, // +X
			{2, 3, 7, 6}, // +Y
			{0, 3, 2, 1}, // -Z
			{0, 4, 7, 3}, // -X
			{0, 1, 5, 4}, // -Y
			{5, 6, 7, 4}, // +Z
		},
	}
}

// NewBox builds the 12 triangle surface of the cube [-h, h]^3
func NewBox(halfExtent float64) (*Surface, error) {
	if !(halfExtent > 0) {
		return nil, fmt.Errorf("box half extent must be positive, got %v", halfExtent)
	}

	return BoxPolyhedron(halfExtent).Surface()
}
