package fadeline

// Buffer slots in the pair allocated by Init.
const (
	rectangleSlot = iota
	lineSlot
	bufferSlots
)

// positionAttrib is the attribute location both vertex shaders read.
const positionAttrib = 0

var (
	// Counter-clockwise fan: bottom-left, bottom-right, top-right, top-left.
	rectangleVertices = [4]Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	lineVertices      = [2]Vec2{{-1, 0}, {1, 0}}
)

// RectangleVertices returns a copy of the quad drawn as a triangle fan.
func RectangleVertices() []Vec2 {
	v := rectangleVertices
	return v[:]
}

// LineVertices returns a copy of the line segment endpoints.
func LineVertices() []Vec2 {
	v := lineVertices
	return v[:]
}

// VertexBuffer is a GPU array buffer and the positions uploaded into it.
type VertexBuffer struct {
	Handle   uint32
	Vertices []Vec2
}

// Count is the number of vertices to draw from the buffer.
func (b VertexBuffer) Count() int32 {
	return int32(len(b.Vertices))
}

// UploadStatic fills buffer with vertices using a static-draw hint. The
// returned VertexBuffer keeps its own copy of vertices.
func UploadStatic(dev Device, buffer uint32, vertices []Vec2) VertexBuffer {
	dev.BindArrayBuffer(buffer)
	dev.StaticArrayBufferData(flatten(vertices))

	owned := make([]Vec2, len(vertices))
	copy(owned, vertices)
	return VertexBuffer{Handle: buffer, Vertices: owned}
}

// draw binds b, declares the position layout and issues one draw call.
func (b VertexBuffer) draw(dev Device, mode Primitive) {
	dev.BindArrayBuffer(b.Handle)
	dev.VertexAttribPointer(positionAttrib, 2)
	dev.EnableVertexAttribArray(positionAttrib)
	dev.DrawArrays(mode, 0, b.Count())
}
