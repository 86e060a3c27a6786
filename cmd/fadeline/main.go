// Command fadeline opens a window and runs the fadeline demo in it.
//
//	go run ./cmd/fadeline -width 1024 -height 768
//	go run ./cmd/fadeline -config fadeline.yml -log-level debug
//
// It needs a display and an OpenGL ES 3.1 capable driver.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/fadeline"
	"github.com/go-theft-auto/fadeline/backend/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level, _ := cfg.Level()
	log := fadeline.NewPlatformLogger(level)

	win, err := opengl.NewWindow(opengl.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
		Frames: cfg.Frames,
	}, log)
	if err != nil {
		return err
	}
	defer win.Destroy()

	demo := fadeline.New(opengl.NewDevice(),
		fadeline.WithLogger(log),
		fadeline.WithStrictShaders(cfg.Strict),
	)

	if err := win.Run(demo); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
