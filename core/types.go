package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one element of a mesh's vertex stream. The field order matches
// the shader's attribute locations: position=0, normal=1, uv=2.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// MeshData is host-side geometry: an ordered vertex sequence plus triangle
// indices. Once handed to the GPU it is never mutated; callers that need a
// different shape build a new MeshData.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Validate checks that every index references a valid vertex slot.
func (m *MeshData) Validate() error {
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d out of range: %d >= %d vertices", i, idx, n)
		}
	}
	return nil
}

// TriangleCount returns the number of indexed triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}
