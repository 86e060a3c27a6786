package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the host settings. It can be loaded from a YAML file and
// overridden by command-line flags.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	Frames   int    `yaml:"frames"` // 0 renders until the window closes
	Strict   bool   `yaml:"strict"` // fail on shader compile/link errors
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// says otherwise.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		Title:    "fadeline",
		VSync:    true,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", c.Frames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// parseConfig builds the Config from args: defaults, then the file named by
// -config if any, then every flag set explicitly.
func parseConfig(args []string, output io.Writer) (Config, error) {
	def := DefaultConfig()
	var fl Config

	fs := flag.NewFlagSet("fadeline", flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", "", "path to a YAML config file")
	fs.IntVar(&fl.Width, "width", def.Width, "window width in screen coordinates")
	fs.IntVar(&fl.Height, "height", def.Height, "window height in screen coordinates")
	fs.StringVar(&fl.Title, "title", def.Title, "window title")
	fs.BoolVar(&fl.VSync, "vsync", def.VSync, "wait for vertical sync between frames")
	fs.IntVar(&fl.Frames, "frames", def.Frames, "stop after this many frames (0 = until closed)")
	fs.BoolVar(&fl.Strict, "strict", def.Strict, "exit on shader compile or link errors")
	fs.StringVar(&fl.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *path != "" {
		var err error
		if cfg, err = LoadConfig(*path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = fl.Width
		case "height":
			cfg.Height = fl.Height
		case "title":
			cfg.Title = fl.Title
		case "vsync":
			cfg.VSync = fl.VSync
		case "frames":
			cfg.Frames = fl.Frames
		case "strict":
			cfg.Strict = fl.Strict
		case "log-level":
			cfg.LogLevel = fl.LogLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
