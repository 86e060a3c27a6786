package fadeline_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/fadeline"
)

func TestCompileShaderSuccess(t *testing.T) {
	dev := newFakeDevice()

	res := fadeline.CompileShader(dev, fadeline.VertexShader, fadeline.RectangleProgram.Vertex)

	if !res.Compiled {
		t.Fatal("expected shader to compile")
	}
	if res.Handle == 0 {
		t.Error("expected a shader handle")
	}
	if res.Log != "" {
		t.Errorf("expected empty log, got %q", res.Log)
	}
	if err := res.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	// A successful compile never asks for the info log.
	if n := dev.count("ShaderInfoLog"); n != 0 {
		t.Errorf("expected no info log queries, got %d", n)
	}
}

func TestCompileShaderFailureKeepsHandle(t *testing.T) {
	dev := newFakeDevice()

	res := fadeline.CompileShader(dev, fadeline.FragmentShader, "#version 310 es\n#error broken\n")

	if res.Compiled {
		t.Fatal("expected compile failure")
	}
	if res.Handle == 0 {
		t.Error("failed compile should still return the shader handle")
	}
	if !strings.Contains(res.Log, "#error") {
		t.Errorf("expected driver log, got %q", res.Log)
	}
	if strings.ContainsAny(res.Log, "\x00\n") {
		t.Errorf("log should be trimmed, got %q", res.Log)
	}

	err := res.Err()
	if !errors.Is(err, fadeline.ErrShaderCompile) {
		t.Fatalf("expected ErrShaderCompile, got %v", err)
	}
	var se *fadeline.ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShaderError, got %T", err)
	}
	if se.Kind != fadeline.ShaderCompileFailure || se.Stage != fadeline.FragmentShader {
		t.Errorf("unexpected error fields: %+v", se)
	}
}

func TestCompileShaderLogIsBounded(t *testing.T) {
	dev := newFakeDevice()
	src := "bad source"
	dev.broken[src] = strings.Repeat("x", 4*fadeline.InfoLogLimit)

	res := fadeline.CompileShader(dev, fadeline.VertexShader, src)

	if len(res.Log) != fadeline.InfoLogLimit {
		t.Errorf("expected log of %d bytes, got %d", fadeline.InfoLogLimit, len(res.Log))
	}
	want := "ShaderInfoLog(1, 512)"
	found := false
	for _, c := range dev.calls {
		if c == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected call %s, got %v", want, dev.calls)
	}
}

func TestLinkProgram(t *testing.T) {
	dev := newFakeDevice()
	vs := fadeline.CompileShader(dev, fadeline.VertexShader, fadeline.LineProgram.Vertex)
	fs := fadeline.CompileShader(dev, fadeline.FragmentShader, fadeline.LineProgram.Fragment)

	res := fadeline.LinkProgram(dev, vs.Handle, fs.Handle)

	if !res.Linked {
		t.Fatalf("expected link success, log %q", res.Log)
	}
	if got := dev.attached[res.Handle]; len(got) != 2 || got[0] != vs.Handle || got[1] != fs.Handle {
		t.Errorf("expected shaders %d, %d attached, got %v", vs.Handle, fs.Handle, got)
	}
	if err := res.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestLinkProgramFailure(t *testing.T) {
	dev := newFakeDevice()
	vs := fadeline.CompileShader(dev, fadeline.VertexShader, "#error")
	fs := fadeline.CompileShader(dev, fadeline.FragmentShader, fadeline.LineProgram.Fragment)

	res := fadeline.LinkProgram(dev, vs.Handle, fs.Handle)

	if res.Linked {
		t.Fatal("expected link failure")
	}
	if res.Handle == 0 {
		t.Error("failed link should still return the program handle")
	}
	if !errors.Is(res.Err(), fadeline.ErrProgramLink) {
		t.Errorf("expected ErrProgramLink, got %v", res.Err())
	}
	if errors.Is(res.Err(), fadeline.ErrShaderCompile) {
		t.Error("link error should not match ErrShaderCompile")
	}
}

func TestBuildProgram(t *testing.T) {
	dev := newFakeDevice()

	prog, err := fadeline.BuildProgram(dev, fadeline.RectangleProgram)
	if err != nil {
		t.Fatalf("BuildProgram returned error: %v", err)
	}
	if prog.Source.Name != "rectangle" {
		t.Errorf("expected source name rectangle, got %q", prog.Source.Name)
	}
	if !dev.linked[prog.Handle] {
		t.Error("expected linked program")
	}
	// Both stages are released once linked.
	if len(dev.deletedShaders) != 2 {
		t.Errorf("expected 2 deleted shaders, got %v", dev.deletedShaders)
	}
}

func TestBuildProgramCollectsEveryFailure(t *testing.T) {
	dev := newFakeDevice()
	src := fadeline.ProgramSource{
		Name:     "broken",
		Vertex:   fadeline.LineProgram.Vertex,
		Fragment: "#version 310 es\nvoid main() { #error }\n",
	}

	prog, err := fadeline.BuildProgram(dev, src)

	if prog.Handle == 0 {
		t.Error("expected a program handle despite failures")
	}
	if !errors.Is(err, fadeline.ErrShaderCompile) {
		t.Errorf("expected ErrShaderCompile in %v", err)
	}
	if !errors.Is(err, fadeline.ErrProgramLink) {
		t.Errorf("expected ErrProgramLink in %v", err)
	}

	var se *fadeline.ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShaderError, got %T", err)
	}
	if se.Program != "broken" {
		t.Errorf("expected program name on error, got %q", se.Program)
	}
	if !strings.HasPrefix(err.Error(), "broken: fragment shader compilation failed") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestShaderKindString(t *testing.T) {
	tests := []struct {
		kind fadeline.ShaderKind
		want string
	}{
		{fadeline.VertexShader, "vertex"},
		{fadeline.FragmentShader, "fragment"},
		{fadeline.ShaderKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ShaderKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
