package fadeline

// Vec2 is a 2D position in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// flatten packs positions as consecutive x, y floats, the layout attribute 0
// expects (2 components, tightly packed).
func flatten(vs []Vec2) []float32 {
	out := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		out = append(out, v.X, v.Y)
	}
	return out
}

// ShaderKind selects a shader stage.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

// String returns the stage name used in diagnostics.
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive is the draw mode passed to DrawArrays.
type Primitive uint8

const (
	TriangleFan Primitive = iota
	Lines
)

// ClearMask selects the framebuffer planes Clear resets.
type ClearMask uint8

const (
	ColorBuffer ClearMask = 1 << iota
	DepthBuffer
)
