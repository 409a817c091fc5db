package gpu

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// fakeBackend records every call in order so tests can assert on sequencing
// and arguments. Object names come from monotonically increasing counters;
// compile and link failures are injected per test.
type fakeBackend struct {
	calls []string

	nextShader  uint32
	nextProgram uint32
	nextTexture uint32
	nextBuffer  uint32

	compileCount int
	failStage    map[ShaderStage]string // stage -> injected info log
	failLink     string

	uniforms   []UniformInfo
	attributes []AttributeInfo
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{failStage: make(map[ShaderStage]string)}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// callsNamed returns the recorded calls whose name matches one of the given
// prefixes, preserving order.
func (f *fakeBackend) callsNamed(prefixes ...string) []string {
	var out []string
	for _, c := range f.calls {
		for _, p := range prefixes {
			if len(c) >= len(p) && c[:len(p)] == p {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (f *fakeBackend) CompileShader(stage ShaderStage, source string) (uint32, error) {
	f.compileCount++
	f.record("CompileShader(%s)", stage)
	if log, ok := f.failStage[stage]; ok {
		return 0, &CompileError{Stage: stage, Log: log}
	}
	f.nextShader++
	return f.nextShader, nil
}

func (f *fakeBackend) DeleteShader(id uint32) {
	f.record("DeleteShader(%d)", id)
}

func (f *fakeBackend) LinkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	f.record("LinkProgram(%d,%d)", vertexShader, fragmentShader)
	if f.failLink != "" {
		return 0, &LinkError{Log: f.failLink}
	}
	f.nextProgram++
	return f.nextProgram, nil
}

func (f *fakeBackend) DeleteProgram(id uint32) {
	f.record("DeleteProgram(%d)", id)
}

func (f *fakeBackend) ProgramUniforms(program uint32) []UniformInfo {
	return f.uniforms
}

func (f *fakeBackend) ProgramAttributes(program uint32) []AttributeInfo {
	return f.attributes
}

func (f *fakeBackend) UseProgram(program uint32) {
	f.record("UseProgram(%d)", program)
}

func (f *fakeBackend) Uniform1f(location int32, x float32) {
	f.record("Uniform1f(%d,%g)", location, x)
}

func (f *fakeBackend) Uniform1i(location int32, x int32) {
	f.record("Uniform1i(%d,%d)", location, x)
}

func (f *fakeBackend) Uniform2f(location int32, x, y float32) {
	f.record("Uniform2f(%d,%g,%g)", location, x, y)
}

func (f *fakeBackend) Uniform3f(location int32, x, y, z float32) {
	f.record("Uniform3f(%d,%g,%g,%g)", location, x, y, z)
}

func (f *fakeBackend) Uniform4f(location int32, x, y, z, w float32) {
	f.record("Uniform4f(%d,%g,%g,%g,%g)", location, x, y, z, w)
}

func (f *fakeBackend) UniformMatrix4(location int32, m mgl32.Mat4) {
	f.record("UniformMatrix4(%d)", location)
}

func (f *fakeBackend) UploadTexture(width, height int, filter TextureFilter, pixels []byte) uint32 {
	f.nextTexture++
	f.record("UploadTexture(%dx%d)=%d", width, height, f.nextTexture)
	return f.nextTexture
}

func (f *fakeBackend) BindTexture(unit int, id uint32) {
	f.record("BindTexture(%d,%d)", unit, id)
}

func (f *fakeBackend) DeleteTexture(id uint32) {
	f.record("DeleteTexture(%d)", id)
}

func (f *fakeBackend) UploadGeometry(vertices []core.Vertex, indices []uint32) GeometryHandles {
	f.nextBuffer += 3
	f.record("UploadGeometry(%d,%d)", len(vertices), len(indices))
	return GeometryHandles{VAO: f.nextBuffer - 2, VBO: f.nextBuffer - 1, EBO: f.nextBuffer}
}

func (f *fakeBackend) BindGeometry(h GeometryHandles) {
	f.record("BindGeometry(%d)", h.VAO)
}

func (f *fakeBackend) DrawIndexed(indexCount int32) {
	f.record("DrawIndexed(%d)", indexCount)
}

func (f *fakeBackend) DeleteGeometry(h GeometryHandles) {
	f.record("DeleteGeometry(%d)", h.VAO)
}

func (f *fakeBackend) SetViewport(width, height int) {
	f.record("SetViewport(%d,%d)", width, height)
}

func (f *fakeBackend) ClearColorDepth(r, g, b, a float32) {
	f.record("ClearColorDepth")
}

func (f *fakeBackend) SetDepthTest(enabled bool) {
	f.record("SetDepthTest(%t)", enabled)
}

func (f *fakeBackend) SetCullFace(mode CullMode) {
	f.record("SetCullFace(%d)", mode)
}
