package fadeline_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/fadeline"
)

// fakeDevice records every GL call and simulates just enough driver state
// (shader sources, compile/link status, buffer contents) for the tests.
type fakeDevice struct {
	next  uint32
	calls []string

	// broken maps a shader source to the info log its compile produces.
	broken map[string]string

	sources  map[uint32]string
	compiled map[uint32]bool
	attached map[uint32][]uint32
	linked   map[uint32]bool
	linkLog  map[uint32]string

	bound     uint32
	buffers   map[uint32][]float32
	uniforms  []float32
	locations map[string]int32
	viewport  [4]int32

	deletedPrograms []uint32
	deletedBuffers  []uint32
	deletedShaders  []uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		broken:    make(map[string]string),
		sources:   make(map[uint32]string),
		compiled:  make(map[uint32]bool),
		attached:  make(map[uint32][]uint32),
		linked:    make(map[uint32]bool),
		linkLog:   make(map[uint32]string),
		buffers:   make(map[uint32][]float32),
		locations: make(map[string]int32),
	}
}

var _ fadeline.Device = (*fakeDevice)(nil)

func (d *fakeDevice) record(name string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	d.calls = append(d.calls, name+"("+strings.Join(parts, ", ")+")")
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

// callNames returns the method names recorded since index from.
func (d *fakeDevice) callNames(from int) []string {
	var names []string
	for _, c := range d.calls[from:] {
		names = append(names, c[:strings.IndexByte(c, '(')])
	}
	return names
}

func (d *fakeDevice) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, name+"(") {
			n++
		}
	}
	return n
}

func (d *fakeDevice) CreateShader(kind fadeline.ShaderKind) uint32 {
	h := d.handle()
	d.record("CreateShader", kind)
	return h
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource", shader)
	d.sources[shader] = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	d.record("CompileShader", shader)
	src := d.sources[shader]
	_, isBroken := d.broken[src]
	d.compiled[shader] = !isBroken && !strings.Contains(src, "#error")
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool {
	d.record("ShaderCompiled", shader)
	return d.compiled[shader]
}

func (d *fakeDevice) ShaderInfoLog(shader uint32, maxLen int) string {
	d.record("ShaderInfoLog", shader, maxLen)
	log, ok := d.broken[d.sources[shader]]
	if !ok {
		log = "0:1: '#error' : user error\n\x00"
	}
	if len(log) > maxLen {
		log = log[:maxLen]
	}
	return log
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader", shader)
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	h := d.handle()
	d.record("CreateProgram")
	return h
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) LinkProgram(program uint32) {
	d.record("LinkProgram", program)
	d.linked[program] = true
	for _, s := range d.attached[program] {
		if !d.compiled[s] {
			d.linked[program] = false
			d.linkLog[program] = "Attached shader is not compiled."
		}
	}
}

func (d *fakeDevice) ProgramLinked(program uint32) bool {
	d.record("ProgramLinked", program)
	return d.linked[program]
}

func (d *fakeDevice) ProgramInfoLog(program uint32, maxLen int) string {
	d.record("ProgramInfoLog", program, maxLen)
	return d.linkLog[program]
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram", program)
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation", program, name)
	loc, ok := d.locations[name]
	if !ok {
		loc = int32(len(d.locations))
		d.locations[name] = loc
	}
	return loc
}

func (d *fakeDevice) Uniform1f(location int32, v float32) {
	d.record("Uniform1f", location, v)
	d.uniforms = append(d.uniforms, v)
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram", program)
	d.deletedPrograms = append(d.deletedPrograms, program)
}

func (d *fakeDevice) GenBuffers(n int) []uint32 {
	d.record("GenBuffers", n)
	bufs := make([]uint32, n)
	for i := range bufs {
		bufs[i] = d.handle()
	}
	return bufs
}

func (d *fakeDevice) BindArrayBuffer(buffer uint32) {
	d.record("BindArrayBuffer", buffer)
	d.bound = buffer
}

func (d *fakeDevice) StaticArrayBufferData(data []float32) {
	d.record("StaticArrayBufferData", len(data))
	d.buffers[d.bound] = append([]float32(nil), data...)
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size int32) {
	d.record("VertexAttribPointer", index, size)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *fakeDevice) DrawArrays(mode fadeline.Primitive, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *fakeDevice) DeleteBuffers(buffers []uint32) {
	d.record("DeleteBuffers", len(buffers))
	d.deletedBuffers = append(d.deletedBuffers, buffers...)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}

func (d *fakeDevice) Clear(mask fadeline.ClearMask) {
	d.record("Clear", mask)
}

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	d.viewport = [4]int32{x, y, width, height}
}

func (d *fakeDevice) Finish() {
	d.record("Finish")
}
