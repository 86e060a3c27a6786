package fadeline

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInitialized is returned by Init when the demo already owns GPU resources.
var ErrInitialized = errors.New("fadeline: already initialized")

// resources holds every GPU object owned between Init and Deinit.
type resources struct {
	rectangle    Program
	line         Program
	rectangleBuf VertexBuffer
	lineBuf      VertexBuffer
}

// Demo drives the rectangle-and-line scene through its lifecycle. A host
// calls Init once a GL context is current, Resize whenever the surface
// changes, Render once per display refresh and Deinit before the context
// goes away. All calls must come from the context's thread.
type Demo struct {
	dev    Device
	log    *slog.Logger
	strict bool
	anim   Animation
	res    *resources
}

// New creates a Demo that issues its GL calls to dev.
func New(dev Device, opts ...Option) *Demo {
	d := &Demo{
		dev: dev,
		log: DefaultLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Init builds both programs and uploads both vertex buffers.
//
// Shader compile and link failures are logged and Init carries on with the
// broken program, so the buffers are still uploaded and Render still runs.
// With WithStrictShaders(true) Init instead releases the programs and
// returns the failures, each a *ShaderError.
//
// Init does not reset the animation phase.
func (d *Demo) Init(width, height int) error {
	if d.res != nil {
		return ErrInitialized
	}
	d.log.Info("init", "width", width, "height", height)

	rect, rectErr := BuildProgram(d.dev, RectangleProgram)
	line, lineErr := BuildProgram(d.dev, LineProgram)
	if err := errors.Join(rectErr, lineErr); err != nil {
		if d.strict {
			d.dev.DeleteProgram(rect.Handle)
			d.dev.DeleteProgram(line.Handle)
			return fmt.Errorf("build programs: %w", err)
		}
		d.logShaderErrors(err)
	}

	bufs := d.dev.GenBuffers(bufferSlots)
	d.res = &resources{
		rectangle:    rect,
		line:         line,
		rectangleBuf: UploadStatic(d.dev, bufs[rectangleSlot], RectangleVertices()),
		lineBuf:      UploadStatic(d.dev, bufs[lineSlot], LineVertices()),
	}

	return nil
}

// Resize maps rendering onto the [0,width) x [0,height) pixel rectangle.
// It may be called at any time, including before Init.
func (d *Demo) Resize(width, height int) {
	d.log.Info("resize", "width", width, "height", height)
	d.dev.Viewport(0, 0, int32(width), int32(height))
}

// Render draws one frame and blocks until the GPU has finished it.
// It does nothing unless the demo is initialized.
func (d *Demo) Render(width, height int) {
	if d.res == nil {
		return
	}
	d.log.Debug("render", "width", width, "height", height)
	d.res.render(d.dev, &d.anim)
}

// Deinit releases both programs and both buffers. It does nothing unless
// the demo is initialized; afterwards Init may be called again.
func (d *Demo) Deinit(width, height int) {
	if d.res == nil {
		return
	}
	d.log.Info("deinit", "width", width, "height", height)

	d.dev.DeleteProgram(d.res.rectangle.Handle)
	d.dev.DeleteProgram(d.res.line.Handle)
	d.dev.DeleteBuffers([]uint32{d.res.rectangleBuf.Handle, d.res.lineBuf.Handle})
	d.res = nil
}

// Initialized reports whether the demo currently owns GPU resources.
func (d *Demo) Initialized() bool {
	return d.res != nil
}

// LineOffset returns the animation accumulator, in [0, 2).
func (d *Demo) LineOffset() float32 {
	return d.anim.Offset()
}

func (d *Demo) logShaderErrors(err error) {
	for _, se := range shaderErrors(err) {
		if se.Kind == ProgramLinkFailure {
			d.log.Error("program linking failed", "program", se.Program, "log", se.Log)
			continue
		}
		d.log.Error("shader compilation failed",
			"program", se.Program, "stage", se.Stage.String(), "log", se.Log)
	}
}

// shaderErrors flattens a tree of joined errors into its *ShaderError leaves.
func shaderErrors(err error) []*ShaderError {
	if se, ok := err.(*ShaderError); ok {
		return []*ShaderError{se}
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var out []*ShaderError
	for _, e := range joined.Unwrap() {
		out = append(out, shaderErrors(e)...)
	}
	return out
}
