package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fadeline"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	// Frames stops the loop after that many rendered frames; 0 runs until
	// the window is closed.
	Frames int
}

// Window is a GLFW window with a current OpenGL ES 3.1 context. It plays
// the host role for a fadeline.Demo: surface created, changed, drawn and
// destroyed map onto Init, Resize, Render and Deinit.
//
// GLFW must run on the main thread; callers lock it with
// runtime.LockOSThread before NewWindow.
type Window struct {
	win    *glfw.Window
	cfg    WindowConfig
	log    *slog.Logger
	width  int
	height int
}

// NewWindow initializes GLFW, opens the window, makes its context current
// and loads the GL entry points.
func NewWindow(cfg WindowConfig, log *slog.Logger) (*Window, error) {
	if log == nil {
		log = fadeline.DefaultLogger()
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	w := &Window{win: win, cfg: cfg, log: log}
	w.width, w.height = win.GetFramebufferSize()
	return w, nil
}

// Run drives demo until the window closes or cfg.Frames frames have been
// rendered. Deinit runs before Run returns, while the context is current.
func (w *Window) Run(demo *fadeline.Demo) error {
	if err := demo.Init(w.width, w.height); err != nil {
		return fmt.Errorf("init demo: %w", err)
	}
	defer func() { demo.Deinit(w.width, w.height) }()

	demo.Resize(w.width, w.height)
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		demo.Resize(width, height)
	})
	defer w.win.SetFramebufferSizeCallback(nil)

	for frame := 0; !w.win.ShouldClose(); frame++ {
		if w.cfg.Frames > 0 && frame >= w.cfg.Frames {
			w.log.Info("frame limit reached", "frames", frame)
			break
		}
		demo.Render(w.width, w.height)
		w.win.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
