package fadeline

// render issues one frame: clear, rectangle, advance, line, finish.
// The call order is fixed; the line uniform is looked up every frame.
func (r *resources) render(dev Device, anim *Animation) {
	dev.ClearColor(0, 0, 0, 1)
	dev.Clear(ColorBuffer | DepthBuffer)

	dev.UseProgram(r.rectangle.Handle)
	r.rectangleBuf.draw(dev, TriangleFan)

	offset := anim.Advance()

	dev.UseProgram(r.line.Handle)
	loc := dev.UniformLocation(r.line.Handle, OffsetUniform)
	dev.Uniform1f(loc, offset)
	r.lineBuf.draw(dev, Lines)

	dev.Finish()
}
