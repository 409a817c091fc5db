// Package gpu is the GPU resource and uniform binding engine: shader program
// compilation and caching under preprocessor define sets, geometry and
// texture upload, and the per-draw resolution of dotted-path uniform maps
// into typed upload calls.
//
// All GPU traffic goes through the Backend interface. Production code uses
// the go-gl implementation in NewGLBackend; tests substitute a recording
// fake. There is exactly one render goroutine, so nothing here locks.
package gpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// ShaderStage identifies which stage of a program a shader source feeds.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// UniformInfo is one active uniform as declared by the linked program.
// Name is verbatim, including array index and struct member syntax
// (e.g. "uLights[2].position"); it doubles as the dispatch key.
type UniformInfo struct {
	Name     string
	Location int32
}

// AttributeInfo is one active vertex attribute of the linked program.
type AttributeInfo struct {
	Name     string
	Location int32
}

// TextureFilter selects the sampling filter for an uploaded texture.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// CullMode selects the per-frame face culling state.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// GeometryHandles are the raw buffer object names of an uploaded mesh.
type GeometryHandles struct {
	VAO uint32
	VBO uint32
	EBO uint32
}

// Backend is the set of low-level graphics calls the engine issues. The
// grain is one method per engine-level operation, not one per GL entry
// point, so a test fake stays small.
type Backend interface {
	// CompileShader compiles source for one stage; on failure the error is a
	// *CompileError carrying the driver's info log. One synchronous attempt,
	// no retries.
	CompileShader(stage ShaderStage, source string) (uint32, error)
	DeleteShader(id uint32)
	// LinkProgram links two compiled stages into a program and releases the
	// shader objects; on failure the error is a *LinkError.
	LinkProgram(vertexShader, fragmentShader uint32) (uint32, error)
	DeleteProgram(id uint32)
	// ProgramUniforms enumerates every active uniform with array elements
	// expanded to per-index verbatim names.
	ProgramUniforms(program uint32) []UniformInfo
	ProgramAttributes(program uint32) []AttributeInfo
	UseProgram(program uint32)

	Uniform1f(location int32, x float32)
	Uniform1i(location int32, x int32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	UploadTexture(width, height int, filter TextureFilter, pixels []byte) uint32
	BindTexture(unit int, id uint32)
	DeleteTexture(id uint32)

	UploadGeometry(vertices []core.Vertex, indices []uint32) GeometryHandles
	BindGeometry(h GeometryHandles)
	DrawIndexed(indexCount int32)
	DeleteGeometry(h GeometryHandles)

	SetViewport(width, height int)
	ClearColorDepth(r, g, b, a float32)
	SetDepthTest(enabled bool)
	SetCullFace(mode CullMode)
}
