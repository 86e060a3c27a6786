package fadeline

// Device is the subset of the OpenGL ES 3.1 API the demo drives.
// Every method must be called on the thread that owns the GL context.
//
// backend/opengl provides the go-gl implementation; tests substitute a fake
// that records calls.
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderCompiled reports the COMPILE_STATUS of shader.
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the shader info log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramLinked reports the LINK_STATUS of program.
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the program info log.
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	DeleteProgram(program uint32)

	GenBuffers(n int) []uint32
	BindArrayBuffer(buffer uint32)
	// StaticArrayBufferData fills the bound array buffer with a
	// STATIC_DRAW usage hint.
	StaticArrayBufferData(data []float32)
	// VertexAttribPointer declares attribute index as size tightly packed
	// floats starting at offset 0 of the bound array buffer.
	VertexAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode Primitive, first, count int32)
	DeleteBuffers(buffers []uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int32)
	// Finish blocks until all submitted commands have completed.
	Finish()
}
