// Package renderer is the high-level facade over the GPU engine: it owns the
// shader sources, derives the define set from the frame's light
// configuration, assembles the dotted-path uniform map, and sequences draw
// calls through the render context.
package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
	"pbr-engine/internal/gpu"
	"pbr-engine/pbr"
	"pbr-engine/scene"
)

// Geometry is a GPU-resident mesh handle.
type Geometry = gpu.Geometry

// Renderer drives one forward pass per frame. Whether the final color is
// re-encoded to sRGB is fixed at construction: a single policy per
// instance, never per draw.
type Renderer struct {
	ctx        *gpu.Context
	cache      *gpu.ProgramCache
	outputSRGB bool

	iblEnabled bool
	envTex     *scene.Texture

	// Per-frame state, valid between BeginFrame and the next BeginFrame.
	frameProg     *gpu.Program
	frameUniforms gpu.Map
}

// Config holds renderer construction options.
type Config struct {
	Width      int
	Height     int
	OutputSRGB bool // re-encode the final linear color for display
}

func DefaultConfig(width, height int) Config {
	return Config{Width: width, Height: height, OutputSRGB: true}
}

// New creates a renderer over the given backend and applies the initial
// per-frame global state: depth test on, back-face culling.
func New(backend gpu.Backend, cfg Config) *Renderer {
	ctx := gpu.NewContext(backend)
	ctx.Resize(cfg.Width, cfg.Height)
	ctx.SetDepthTest(true)
	ctx.SetCullFace(gpu.CullBack)

	return &Renderer{
		ctx:        ctx,
		cache:      gpu.NewProgramCache(backend),
		outputSRGB: cfg.OutputSRGB,
	}
}

// NewGL creates a renderer over the production OpenGL backend. The GLFW
// context must be current.
func NewGL(cfg Config) (*Renderer, error) {
	backend, err := gpu.NewGLBackend()
	if err != nil {
		return nil, err
	}
	return New(backend, cfg), nil
}

// EnableIBL convolves the sky gradient into a diffuse-irradiance environment
// map, uploads it, and switches subsequent frames to the USE_IBL variant.
// height is the equirect map height in texels; width is 2*height.
func (r *Renderer) EnableIBL(sky pbr.SkyGradient, height int) error {
	if height < 8 {
		height = 8
	}
	width := height * 2
	pixels := pbr.IrradianceMap(sky, width, height, 16)

	tex := &scene.Texture{
		Name:   "diffuse-irradiance",
		Width:  width,
		Height: height,
		Pixels: pixels,
		Filter: scene.FilterLinear,
	}
	if err := r.ctx.UploadTexture(tex); err != nil {
		return fmt.Errorf("irradiance map upload: %w", err)
	}
	if r.envTex != nil {
		r.ctx.DeleteTexture(r.envTex)
	}
	r.envTex = tex
	r.iblEnabled = true
	return nil
}

// SetIBLEnabled toggles image-based lighting without regenerating the
// environment map. Enabling requires a prior EnableIBL call.
func (r *Renderer) SetIBLEnabled(enabled bool) {
	if enabled && r.envTex == nil {
		return
	}
	r.iblEnabled = enabled
}

// IBLEnabled reports whether image-based lighting is active.
func (r *Renderer) IBLEnabled() bool { return r.iblEnabled }

// Resize recomputes the viewport dimensions.
func (r *Renderer) Resize(width, height int) {
	r.ctx.Resize(width, height)
}

// Clear clears the color and depth buffers.
func (r *Renderer) Clear(col core.Color) {
	r.ctx.Clear(col)
}

// SetDepthTest toggles the depth test for subsequent frames.
func (r *Renderer) SetDepthTest(enabled bool) {
	r.ctx.SetDepthTest(enabled)
}

// UploadGeometry uploads host-side mesh data, returning an immutable handle.
func (r *Renderer) UploadGeometry(data *core.MeshData) (*Geometry, error) {
	return r.ctx.UploadGeometry(data)
}

// ReleaseGeometry frees a geometry's GPU buffers.
func (r *Renderer) ReleaseGeometry(g *Geometry) {
	r.ctx.ReleaseGeometry(g)
}

// UploadTexture uploads a texture; must be called before the texture's first
// use in a draw call.
func (r *Renderer) UploadTexture(tex *scene.Texture) error {
	return r.ctx.UploadTexture(tex)
}

// BeginFrame compiles (or fetches) the program matching the frame's light
// configuration and assembles the shared per-frame uniforms. A compile/link
// failure or an unknown light variant aborts the frame immediately.
func (r *Renderer) BeginFrame(cam *scene.Camera, lights []scene.Light) error {
	defines := frameDefines(len(lights), r.iblEnabled, r.outputSRGB)
	prog, err := r.cache.GetOrCompile(vertexShaderSrc, fragmentShaderSrc, defines)
	if err != nil {
		return err
	}

	uniforms := gpu.Map{
		"uView":       gpu.Mat4(cam.ViewMatrix()),
		"uProjection": gpu.Mat4(cam.ProjectionMatrix()),
		"uCameraPos":  gpu.Vec3(cam.Position),
	}
	if err := appendLightUniforms(uniforms, lights); err != nil {
		return err
	}
	if r.iblEnabled {
		uniforms["uEnvDiffuse"] = gpu.Sampler(r.envTex)
		uniforms["uEnvRange"] = gpu.Float(pbr.RGBMRange)
	}

	r.frameProg = prog
	r.frameUniforms = uniforms
	return nil
}

// Draw renders one geometry with the given model transform and material.
// Must be called after BeginFrame.
func (r *Renderer) Draw(g *Geometry, model mgl32.Mat4, mat scene.Material) error {
	if r.frameProg == nil {
		return fmt.Errorf("Draw called before BeginFrame")
	}

	u := r.frameUniforms.Clone()
	u["uModel"] = gpu.Mat4(model)
	u["uAttributes.albedo"] = gpu.RGB(mat.Albedo)
	u["uAttributes.metallic"] = gpu.Float(mat.Metallic)
	u["uAttributes.roughness"] = gpu.Float(mat.Roughness)

	return r.ctx.Draw(g, r.frameProg, u)
}

// Compiles reports how many shader programs have been compiled so far.
func (r *Renderer) Compiles() int { return r.cache.Compiles() }

// Destroy releases every GPU resource the renderer owns.
func (r *Renderer) Destroy() {
	if r.envTex != nil {
		r.ctx.DeleteTexture(r.envTex)
		r.envTex = nil
	}
	r.cache.Release()
}
