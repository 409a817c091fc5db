package gpu

import (
	"fmt"

	"pbr-engine/core"
)

// Geometry is an immutable GPU-resident vertex/index buffer pair. Once
// uploaded the host-side data is never touched again; the buffers live until
// Context.ReleaseGeometry.
type Geometry struct {
	handles    GeometryHandles
	indexCount int32
	released   bool
}

// IndexCount returns the number of indices drawn per call.
func (g *Geometry) IndexCount() int32 { return g.indexCount }

func uploadGeometry(b Backend, data *core.MeshData) (*Geometry, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("empty mesh data")
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("mesh data: %w", err)
	}

	return &Geometry{
		handles:    b.UploadGeometry(data.Vertices, data.Indices),
		indexCount: int32(len(data.Indices)),
	}, nil
}
