package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// CreateSphere tessellates a UV sphere. Normals point outward and are unit
// length by construction; UVs wrap longitude over U and latitude over V.
func CreateSphere(radius float32, segments, rings int) *core.MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV: mgl32.Vec2{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return &core.MeshData{Vertices: vertices, Indices: indices}
}

// CreatePlane builds a flat XZ quad of the given half-extents, facing +Y.
func CreatePlane(halfWidth, halfDepth float32) *core.MeshData {
	up := mgl32.Vec3{0, 1, 0}
	return &core.MeshData{
		Vertices: []core.Vertex{
			{Position: mgl32.Vec3{-halfWidth, 0, -halfDepth}, Normal: up, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{halfWidth, 0, -halfDepth}, Normal: up, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{halfWidth, 0, halfDepth}, Normal: up, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-halfWidth, 0, halfDepth}, Normal: up, UV: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}
