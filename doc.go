/*
Package fadeline renders a small OpenGL ES 3.1 scene: a static white
rectangle and a horizontal line that sweeps across the surface, its alpha
fading from opaque on the left to transparent on the right.

# Overview

A host owns the window or surface and the GL context. It drives a Demo
through four lifecycle calls, all on the context's thread:

	Init(width, height)    once, after the context is current
	Resize(width, height)  whenever the surface size changes
	Render(width, height)  once per display refresh
	Deinit(width, height)  once, before the context is destroyed

The Demo issues GL calls through the Device interface. backend/opengl
implements Device on go-gl and provides a GLFW host window; tests use a
fake that records calls.

# Quick Start

	dev := opengl.NewDevice()
	demo := fadeline.New(dev, fadeline.WithLogger(slog.Default()))

	if err := demo.Init(800, 600); err != nil {
	    return err
	}
	demo.Resize(800, 600)

	for !window.ShouldClose() {
	    demo.Render(800, 600)
	    window.SwapBuffers()
	    glfw.PollEvents()
	}

	demo.Deinit(800, 600)

# Frame

Each Render clears color and depth to opaque black, draws the rectangle as
a four-vertex triangle fan, advances the animation by DefaultStep, submits
the new offset minus one as the line program's uOffset uniform, draws the
line, and calls Finish.

The animation accumulator wraps at 2.0, so the line sweeps from the left
edge to the left edge every 200 frames. It belongs to the Demo and survives
Deinit/Init cycles.

# Shader Failures

CompileShader and LinkProgram return result values and never log.
BuildProgram joins their failures as *ShaderError values matching
ErrShaderCompile or ErrProgramLink. Demo.Init logs them and continues by
default; WithStrictShaders(true) turns them into an Init error.

# Logging

Logs go through log/slog. The default sink is chosen at build time: the
Android system log (tag RENDERER) on android, standard output elsewhere.
Per-frame logs are emitted at debug level.
*/
package fadeline
