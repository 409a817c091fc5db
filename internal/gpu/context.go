package gpu

import (
	"pbr-engine/core"
	"pbr-engine/scene"
)

// Context is the render context: the single writer of all GPU state. Global
// state (viewport, depth test, cull mode) is set through it once per frame
// and persists until changed; per-draw state is sequenced by Draw. It is not
// safe for concurrent use and never needs to be: there is one render
// goroutine.
type Context struct {
	backend    Backend
	dispatcher *Dispatcher
	width      int
	height     int
}

func NewContext(b Backend) *Context {
	return &Context{
		backend:    b,
		dispatcher: NewDispatcher(b),
	}
}

// Resize recomputes the viewport dimensions.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
	c.backend.SetViewport(width, height)
}

// Size returns the current viewport dimensions.
func (c *Context) Size() (int, int) { return c.width, c.height }

// Clear clears the color and depth buffers.
func (c *Context) Clear(col core.Color) {
	c.backend.ClearColorDepth(col.R, col.G, col.B, col.A)
}

// SetDepthTest toggles the depth test. Per-frame state, not per-draw.
func (c *Context) SetDepthTest(enabled bool) {
	c.backend.SetDepthTest(enabled)
}

// SetCullFace sets the face culling mode. Per-frame state, not per-draw.
func (c *Context) SetCullFace(mode CullMode) {
	c.backend.SetCullFace(mode)
}

// UploadGeometry validates and uploads mesh data, returning an immutable
// GPU-resident geometry handle.
func (c *Context) UploadGeometry(data *core.MeshData) (*Geometry, error) {
	return uploadGeometry(c.backend, data)
}

// ReleaseGeometry frees the geometry's GPU buffers. Safe to call twice.
func (c *Context) ReleaseGeometry(g *Geometry) {
	if g == nil || g.released {
		return
	}
	c.backend.DeleteGeometry(g.handles)
	g.released = true
}

// UploadTexture uploads a texture exactly once, recording the GPU handle in
// tex.GLID. Calling it again for an uploaded texture is a no-op, so callers
// may upload defensively before first use.
func (c *Context) UploadTexture(tex *scene.Texture) error {
	if tex == nil {
		return &ResourceNotReadyError{Resource: "nil texture"}
	}
	if tex.GLID != 0 {
		return nil
	}
	if len(tex.Pixels) != tex.Width*tex.Height*4 {
		return &ResourceNotReadyError{Resource: tex.Name}
	}

	filter := FilterLinear
	if tex.Filter == scene.FilterNearest {
		filter = FilterNearest
	}
	tex.GLID = c.backend.UploadTexture(tex.Width, tex.Height, filter, tex.Pixels)
	return nil
}

// DeleteTexture frees a previously uploaded texture and zeroes its handle.
func (c *Context) DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	c.backend.DeleteTexture(tex.GLID)
	tex.GLID = 0
}

// Draw issues one draw call with strictly ordered side effects: bind program,
// bind geometry, dispatch uniforms, indexed draw. Readiness is checked up
// front so a failed draw leaves no partial state behind; any error is fatal
// for the frame; there are no retries.
func (c *Context) Draw(g *Geometry, prog *Program, uniforms Map) error {
	if g == nil || g.released || g.indexCount == 0 {
		return &ResourceNotReadyError{Resource: "geometry"}
	}
	for key, v := range uniforms {
		if v.kind == KindTexture && (v.tex == nil || v.tex.GLID == 0) {
			return &ResourceNotReadyError{Resource: key}
		}
	}

	c.backend.UseProgram(prog.ID())
	c.backend.BindGeometry(g.handles)
	if err := c.dispatcher.Apply(prog, uniforms); err != nil {
		return err
	}
	c.backend.DrawIndexed(g.indexCount)
	return nil
}

// Dispatcher exposes the context's uniform dispatcher.
func (c *Context) Dispatcher() *Dispatcher { return c.dispatcher }
