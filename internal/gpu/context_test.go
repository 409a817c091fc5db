package gpu

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbr-engine/core"
	"pbr-engine/scene"
)

func quadData() *core.MeshData {
	return &core.MeshData{
		Vertices: []core.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}},
			{Position: mgl32.Vec3{1, 1, 0}},
			{Position: mgl32.Vec3{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestContextUploadGeometry(t *testing.T) {
	ctx := NewContext(newFakeBackend())

	g, err := ctx.UploadGeometry(quadData())
	require.NoError(t, err)
	assert.Equal(t, int32(6), g.IndexCount())
}

func TestContextUploadGeometryRejectsInvalid(t *testing.T) {
	ctx := NewContext(newFakeBackend())

	_, err := ctx.UploadGeometry(&core.MeshData{})
	assert.Error(t, err, "empty mesh")

	_, err = ctx.UploadGeometry(&core.MeshData{
		Vertices: []core.Vertex{{}},
		Indices:  []uint32{0, 1, 2},
	})
	assert.Error(t, err, "out-of-range index")
}

func TestContextReleaseGeometryIdempotent(t *testing.T) {
	backend := newFakeBackend()
	ctx := NewContext(backend)

	g, err := ctx.UploadGeometry(quadData())
	require.NoError(t, err)

	ctx.ReleaseGeometry(g)
	ctx.ReleaseGeometry(g)
	ctx.ReleaseGeometry(nil)

	assert.Len(t, backend.callsNamed("DeleteGeometry"), 1)
}

func TestContextUploadTextureOnce(t *testing.T) {
	backend := newFakeBackend()
	ctx := NewContext(backend)

	tex := scene.NewSolidTexture("white", 255, 255, 255, 255)
	require.NoError(t, ctx.UploadTexture(tex))
	assert.NotZero(t, tex.GLID)

	id := tex.GLID
	require.NoError(t, ctx.UploadTexture(tex))
	assert.Equal(t, id, tex.GLID)
	assert.Len(t, backend.callsNamed("UploadTexture"), 1)
}

func TestContextUploadTextureRejectsBadPixels(t *testing.T) {
	ctx := NewContext(newFakeBackend())

	err := ctx.UploadTexture(&scene.Texture{Name: "short", Width: 2, Height: 2, Pixels: []byte{0}})
	var notReady *ResourceNotReadyError
	require.ErrorAs(t, err, &notReady)

	require.ErrorAs(t, ctx.UploadTexture(nil), &notReady)
}

func TestContextDrawOrdering(t *testing.T) {
	backend := newFakeBackend()
	ctx := NewContext(backend)

	g, err := ctx.UploadGeometry(quadData())
	require.NoError(t, err)

	prog := testProgram(map[string]int32{"uModel": 1})
	backend.calls = nil

	require.NoError(t, ctx.Draw(g, prog, Map{"uModel": Mat4(mgl32.Ident4())}))

	assert.Equal(t, []string{
		"UseProgram(1)",
		"BindGeometry(1)",
		"UniformMatrix4(1)",
		"DrawIndexed(6)",
	}, backend.calls)
}

func TestContextDrawReleasedGeometry(t *testing.T) {
	ctx := NewContext(newFakeBackend())

	g, err := ctx.UploadGeometry(quadData())
	require.NoError(t, err)
	ctx.ReleaseGeometry(g)

	err = ctx.Draw(g, testProgram(nil), Map{})
	var notReady *ResourceNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestContextDrawPendingTextureLeavesNoState(t *testing.T) {
	backend := newFakeBackend()
	ctx := NewContext(backend)

	g, err := ctx.UploadGeometry(quadData())
	require.NoError(t, err)

	prog := testProgram(map[string]int32{"uEnv": 1})
	backend.calls = nil

	err = ctx.Draw(g, prog, Map{"uEnv": Sampler(&scene.Texture{Name: "pending"})})
	var notReady *ResourceNotReadyError
	require.ErrorAs(t, err, &notReady)

	// Readiness is checked before any state change.
	assert.Empty(t, backend.calls)
}

func TestContextResizeAndClear(t *testing.T) {
	backend := newFakeBackend()
	ctx := NewContext(backend)

	ctx.Resize(800, 600)
	w, h := ctx.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	ctx.Clear(core.ColorBlack)
	assert.Equal(t, []string{"SetViewport(800,600)", "ClearColorDepth"}, backend.calls)
}
