// Package opengl implements fadeline.Device on OpenGL ES 3.1 through go-gl,
// and provides a GLFW window that hosts a fadeline.Demo.
package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/go-theft-auto/fadeline"
)

// Device issues fadeline's GL calls to the current OpenGL ES context.
// gl.Init must have succeeded on the calling thread first.
type Device struct{}

var _ fadeline.Device = (*Device)(nil)

// NewDevice returns a Device bound to whatever context is current.
func NewDevice() *Device {
	return &Device{}
}

// CreateShader creates a shader object of the given stage.
func (*Device) CreateShader(kind fadeline.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource replaces the source text of shader.
func (*Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(cstr(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles shader.
func (*Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// ShaderCompiled reports whether the last compile of shader succeeded.
func (*Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// ShaderInfoLog returns at most maxLen bytes of the shader info log.
func (*Device) ShaderInfoLog(shader uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	buf := make([]byte, maxLen)
	var n int32
	gl.GetShaderInfoLog(shader, int32(maxLen), &n, &buf[0])
	return string(buf[:clampLen(n, maxLen)])
}

// DeleteShader releases shader.
func (*Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (*Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches shader to program.
func (*Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links program.
func (*Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// ProgramLinked reports whether the last link of program succeeded.
func (*Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// ProgramInfoLog returns at most maxLen bytes of the program info log.
func (*Device) ProgramInfoLog(program uint32, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	buf := make([]byte, maxLen)
	var n int32
	gl.GetProgramInfoLog(program, int32(maxLen), &n, &buf[0])
	return string(buf[:clampLen(n, maxLen)])
}

// UseProgram makes program current.
func (*Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation looks up a uniform of program by name.
func (*Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

// Uniform1f sets a float uniform of the current program.
func (*Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

// DeleteProgram releases program.
func (*Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// GenBuffers allocates n buffer names.
func (*Device) GenBuffers(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	bufs := make([]uint32, n)
	gl.GenBuffers(int32(n), &bufs[0])
	return bufs
}

// BindArrayBuffer binds buffer to ARRAY_BUFFER.
func (*Device) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

// StaticArrayBufferData uploads data to the bound array buffer with STATIC_DRAW.
func (*Device) StaticArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// VertexAttribPointer declares attribute index as size tightly packed floats.
func (*Device) VertexAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
}

// EnableVertexAttribArray enables attribute index.
func (*Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// DrawArrays draws count vertices from first.
func (*Device) DrawArrays(mode fadeline.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

// DeleteBuffers releases buffers.
func (*Device) DeleteBuffers(buffers []uint32) {
	if len(buffers) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

// ClearColor sets the color Clear fills with.
func (*Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear resets the framebuffer planes selected by mask.
func (*Device) Clear(mask fadeline.ClearMask) {
	var bits uint32
	if mask&fadeline.ColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&fadeline.DepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// Viewport sets the pixel rectangle rendering maps onto.
func (*Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Finish blocks until all submitted commands have completed.
func (*Device) Finish() {
	gl.Finish()
}

func shaderType(kind fadeline.ShaderKind) uint32 {
	if kind == fadeline.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func primitive(mode fadeline.Primitive) uint32 {
	if mode == fadeline.Lines {
		return gl.LINES
	}
	return gl.TRIANGLE_FAN
}

// cstr NUL-terminates s for the go-gl string helpers.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func clampLen(n int32, maxLen int) int {
	switch {
	case n < 0:
		return 0
	case int(n) > maxLen:
		return maxLen
	}
	return int(n)
}
