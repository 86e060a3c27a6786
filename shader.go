package fadeline

import (
	"errors"
	"fmt"
	"strings"
)

// InfoLogLimit bounds the diagnostic text fetched for a failed compile or link.
const InfoLogLimit = 512

var (
	// ErrShaderCompile matches any *ShaderError of kind ShaderCompileFailure.
	ErrShaderCompile = errors.New("shader compilation failed")
	// ErrProgramLink matches any *ShaderError of kind ProgramLinkFailure.
	ErrProgramLink = errors.New("program linking failed")
)

// FailureKind classifies a ShaderError.
type FailureKind uint8

const (
	ShaderCompileFailure FailureKind = iota
	ProgramLinkFailure
)

func (k FailureKind) String() string {
	if k == ProgramLinkFailure {
		return "link"
	}
	return "compile"
}

// ShaderError describes a compile or link failure together with the
// (truncated) driver diagnostic.
type ShaderError struct {
	Kind    FailureKind
	Program string     // name of the ProgramSource, empty if unknown
	Stage   ShaderKind // meaningful for ShaderCompileFailure only
	Log     string
}

func (e *ShaderError) Error() string {
	name := e.Program
	if name == "" {
		name = "program"
	}
	if e.Kind == ProgramLinkFailure {
		return fmt.Sprintf("%s: %v: %s", name, ErrProgramLink, e.Log)
	}
	return fmt.Sprintf("%s: %s %v: %s", name, e.Stage, ErrShaderCompile, e.Log)
}

func (e *ShaderError) Unwrap() error {
	if e.Kind == ProgramLinkFailure {
		return ErrProgramLink
	}
	return ErrShaderCompile
}

// ShaderResult is the outcome of CompileShader. Handle is always set, even
// when compilation failed.
type ShaderResult struct {
	Handle   uint32
	Kind     ShaderKind
	Compiled bool
	Log      string
}

// Err returns a *ShaderError when compilation failed, nil otherwise.
func (r ShaderResult) Err() error {
	if r.Compiled {
		return nil
	}
	return &ShaderError{Kind: ShaderCompileFailure, Stage: r.Kind, Log: r.Log}
}

// LinkResult is the outcome of LinkProgram. Handle is always set, even when
// linking failed.
type LinkResult struct {
	Handle uint32
	Linked bool
	Log    string
}

// Err returns a *ShaderError when linking failed, nil otherwise.
func (r LinkResult) Err() error {
	if r.Linked {
		return nil
	}
	return &ShaderError{Kind: ProgramLinkFailure, Log: r.Log}
}

// CompileShader creates a shader of the given kind and compiles source.
// The compile status is checked but never acted upon: the caller decides
// whether a failed result is fatal.
func CompileShader(dev Device, kind ShaderKind, source string) ShaderResult {
	shader := dev.CreateShader(kind)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	res := ShaderResult{Handle: shader, Kind: kind, Compiled: dev.ShaderCompiled(shader)}
	if !res.Compiled {
		res.Log = clampLog(dev.ShaderInfoLog(shader, InfoLogLimit))
	}
	return res
}

// LinkProgram creates a program, attaches both shaders and links it.
func LinkProgram(dev Device, vertex, fragment uint32) LinkResult {
	program := dev.CreateProgram()
	dev.AttachShader(program, vertex)
	dev.AttachShader(program, fragment)
	dev.LinkProgram(program)

	res := LinkResult{Handle: program, Linked: dev.ProgramLinked(program)}
	if !res.Linked {
		res.Log = clampLog(dev.ProgramInfoLog(program, InfoLogLimit))
	}
	return res
}

// ProgramSource is the GLSL text of a two-stage program.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// Program is a linked (or failed) GPU program and the source it came from.
type Program struct {
	Handle uint32
	Source ProgramSource
}

// BuildProgram compiles both stages of src and links them. The returned
// Program always carries the GL handle; the error joins every compile and
// link failure encountered, each a *ShaderError.
func BuildProgram(dev Device, src ProgramSource) (Program, error) {
	vs := CompileShader(dev, VertexShader, src.Vertex)
	fs := CompileShader(dev, FragmentShader, src.Fragment)
	link := LinkProgram(dev, vs.Handle, fs.Handle)

	// The program keeps the stages alive; drop our references.
	dev.DeleteShader(vs.Handle)
	dev.DeleteShader(fs.Handle)

	var errs []error
	for _, err := range []error{vs.Err(), fs.Err(), link.Err()} {
		if err == nil {
			continue
		}
		var se *ShaderError
		if errors.As(err, &se) {
			se.Program = src.Name
		}
		errs = append(errs, err)
	}

	return Program{Handle: link.Handle, Source: src}, errors.Join(errs...)
}

// clampLog trims a driver log to InfoLogLimit bytes, dropping the trailing
// NUL and newlines drivers tend to append.
func clampLog(s string) string {
	if len(s) > InfoLogLimit {
		s = s[:InfoLogLimit]
	}
	return strings.TrimRight(s, "\x00\r\n ")
}
