package gpu

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"pbr-engine/core"
)

// GLBackend is the production Backend over go-gl. The GLFW context must be
// current on the calling goroutine before NewGLBackend.
type GLBackend struct{}

// NewGLBackend initialises OpenGL function pointers.
func NewGLBackend() (*GLBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)
	return &GLBackend{}, nil
}

// ── Shaders ───────────────────────────────────────────────────────────────────

func (*GLBackend) CompileShader(stage ShaderStage, source string) (uint32, error) {
	glStage := uint32(gl.VERTEX_SHADER)
	if stage == StageFragment {
		glStage = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(glStage)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func (*GLBackend) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (*GLBackend) LinkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)

	// The program keeps the linked binary; the shader objects can go.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}
	return prog, nil
}

func (*GLBackend) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

// ProgramUniforms enumerates the program's active uniforms. Array uniforms
// are reported by the driver as "name[0]" with a size; each element is
// expanded to its verbatim indexed name with its own queried location, so
// struct-array members like "uLights[2].position" become dispatch keys.
func (*GLBackend) ProgramUniforms(program uint32) []UniformInfo {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}

	out := make([]UniformInfo, 0, count)
	buf := make([]uint8, maxLen+1)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])

		if size > 1 && strings.HasSuffix(name, "[0]") {
			base := strings.TrimSuffix(name, "[0]")
			for idx := int32(0); idx < size; idx++ {
				element := fmt.Sprintf("%s[%d]", base, idx)
				loc := gl.GetUniformLocation(program, gl.Str(element+"\x00"))
				if loc >= 0 {
					out = append(out, UniformInfo{Name: element, Location: loc})
				}
			}
			continue
		}

		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc >= 0 {
			out = append(out, UniformInfo{Name: name, Location: loc})
		}
	}
	return out
}

func (*GLBackend) ProgramAttributes(program uint32) []AttributeInfo {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}

	out := make([]AttributeInfo, 0, count)
	buf := make([]uint8, maxLen+1)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc >= 0 {
			out = append(out, AttributeInfo{Name: name, Location: loc})
		}
	}
	return out
}

func (*GLBackend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// ── Uniform uploads ───────────────────────────────────────────────────────────

func (*GLBackend) Uniform1f(location int32, x float32)          { gl.Uniform1f(location, x) }
func (*GLBackend) Uniform1i(location int32, x int32)            { gl.Uniform1i(location, x) }
func (*GLBackend) Uniform2f(location int32, x, y float32)       { gl.Uniform2f(location, x, y) }
func (*GLBackend) Uniform3f(location int32, x, y, z float32)    { gl.Uniform3f(location, x, y, z) }
func (*GLBackend) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

func (*GLBackend) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// ── Textures ──────────────────────────────────────────────────────────────────

func (*GLBackend) UploadTexture(width, height int, filter TextureFilter, pixels []byte) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// No mipmaps: RGBM-encoded environment maps must not interpolate across
	// the shared-multiplier alpha channel.
	glFilter := int32(gl.LINEAR)
	if filter == FilterNearest {
		glFilter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func (*GLBackend) BindTexture(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (*GLBackend) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// ── Geometry ──────────────────────────────────────────────────────────────────

func (*GLBackend) UploadGeometry(vertices []core.Vertex, indices []uint32) GeometryHandles {
	var h GeometryHandles
	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gl.GenVertexArrays(1, &h.VAO)
	gl.GenBuffers(1, &h.VBO)
	gl.BindVertexArray(h.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, h.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(vertices)*int(stride),
		gl.Ptr(vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &h.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(indices)*4,
		gl.Ptr(indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return h
}

func (*GLBackend) BindGeometry(h GeometryHandles) {
	gl.BindVertexArray(h.VAO)
}

func (*GLBackend) DrawIndexed(indexCount int32) {
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil)
}

func (*GLBackend) DeleteGeometry(h GeometryHandles) {
	gl.DeleteVertexArrays(1, &h.VAO)
	gl.DeleteBuffers(1, &h.VBO)
	gl.DeleteBuffers(1, &h.EBO)
}

// ── Global state ──────────────────────────────────────────────────────────────

func (*GLBackend) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (*GLBackend) ClearColorDepth(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (*GLBackend) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (*GLBackend) SetCullFace(mode CullMode) {
	switch mode {
	case CullNone:
		gl.Disable(gl.CULL_FACE)
	case CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	}
}
