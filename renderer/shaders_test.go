package renderer

import (
	"strings"
	"testing"
)

func TestBuildShaderSourceHeader(t *testing.T) {
	src := BuildShaderSource("void main() {}", map[string]int{"B": 2, "A": 1})

	lines := strings.Split(src, "\n")
	if lines[0] != "#version 330" {
		t.Errorf("first line = %q, want version header", lines[0])
	}
	// Defines come out sorted so identical inputs produce identical text
	if lines[1] != "#define A 1" || lines[2] != "#define B 2" {
		t.Errorf("defines not in sorted order: %q, %q", lines[1], lines[2])
	}
}

func TestVertexSourceAttenuationFlag(t *testing.T) {
	with := VertexSource(true)
	if !strings.Contains(with, "#define USE_SIZEATTENUATION 1") {
		t.Error("expected attenuation define when enabled")
	}

	without := VertexSource(false)
	if strings.Contains(without, "#define USE_SIZEATTENUATION") {
		t.Error("unexpected attenuation define when disabled")
	}
	// The guarded branch stays in the text either way; only the define changes
	if !strings.Contains(without, "gl_PointSize = uSize;") {
		t.Error("expected fixed point size fallback branch")
	}
}

func TestShaderUniformDeclarations(t *testing.T) {
	vs := VertexSource(true)
	for _, name := range []string{"uTime", "uSize", "uRangeY"} {
		if !strings.Contains(vs, "uniform float "+name) {
			t.Errorf("vertex shader missing uniform %s", name)
		}
	}

	fs := FragmentSource()
	for _, name := range []string{"uAlphaTest", "uFogEnabled", "uFogNear", "uFogFar"} {
		if !strings.Contains(fs, "uniform float "+name) {
			t.Errorf("fragment shader missing uniform %s", name)
		}
	}
	if !strings.Contains(fs, "uniform vec3 uFogColor") {
		t.Error("fragment shader missing fog color uniform")
	}
	if !strings.Contains(fs, "discard") {
		t.Error("fragment shader missing alpha-test discard")
	}
}
