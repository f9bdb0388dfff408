package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fog holds the fog uniform values merged into every snow material.
type Fog struct {
	Enabled bool
	Color   [3]uint8
	Near    float32
	Far     float32
}

// Material binds the snow shader pair, a point texture and the uniform
// values shared by one particle population. The time uniform is rewritten
// every frame; everything else changes only on explicit parameter edits.
type Material struct {
	Shader  rl.Shader
	Texture rl.Texture2D

	timeLoc       int32
	sizeLoc       int32
	rangeYLoc     int32
	alphaTestLoc  int32
	fogEnabledLoc int32
	fogColorLoc   int32
	fogNearLoc    int32
	fogFarLoc     int32
}

// MaterialParams holds everything needed to build one material.
type MaterialParams struct {
	Size            float32 // Base point size
	RangeY          float32 // Vertical wrap distance
	AlphaTest       float32
	SizeAttenuation bool
	TexturePath     string
	Fog             Fog
}

// NewMaterial compiles the preprocessed shader pair, loads the texture and
// seeds all uniforms. Returns an error when the shader fails to compile -
// the one condition treated as fatal (rendering capability absence).
func NewMaterial(p MaterialParams) (*Material, error) {
	shader := rl.LoadShaderFromMemory(
		VertexSource(p.SizeAttenuation),
		FragmentSource(),
	)
	if shader.ID == 0 {
		return nil, fmt.Errorf("snow shader failed to compile")
	}

	m := &Material{
		Shader:  shader,
		Texture: loadPointTexture(p.TexturePath),

		timeLoc:       rl.GetShaderLocation(shader, "uTime"),
		sizeLoc:       rl.GetShaderLocation(shader, "uSize"),
		rangeYLoc:     rl.GetShaderLocation(shader, "uRangeY"),
		alphaTestLoc:  rl.GetShaderLocation(shader, "uAlphaTest"),
		fogEnabledLoc: rl.GetShaderLocation(shader, "uFogEnabled"),
		fogColorLoc:   rl.GetShaderLocation(shader, "uFogColor"),
		fogNearLoc:    rl.GetShaderLocation(shader, "uFogNear"),
		fogFarLoc:     rl.GetShaderLocation(shader, "uFogFar"),
	}

	m.SetTime(0)
	rl.SetShaderValue(shader, m.sizeLoc, []float32{p.Size}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, m.rangeYLoc, []float32{p.RangeY}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, m.alphaTestLoc, []float32{p.AlphaTest}, rl.ShaderUniformFloat)
	m.SetFog(p.Fog)

	return m, nil
}

// SetTime writes the elapsed-seconds uniform. Called once per frame.
func (m *Material) SetTime(t float32) {
	rl.SetShaderValue(m.Shader, m.timeLoc, []float32{t}, rl.ShaderUniformFloat)
}

// SetFog rewrites the fog uniforms on the live shader.
func (m *Material) SetFog(f Fog) {
	// Float uniform rather than int: SetShaderValue only carries float data.
	enabled := float32(0)
	if f.Enabled {
		enabled = 1
	}
	rl.SetShaderValue(m.Shader, m.fogEnabledLoc, []float32{enabled}, rl.ShaderUniformFloat)

	color := []float32{
		float32(f.Color[0]) / 255,
		float32(f.Color[1]) / 255,
		float32(f.Color[2]) / 255,
	}
	rl.SetShaderValue(m.Shader, m.fogColorLoc, color, rl.ShaderUniformVec3)
	rl.SetShaderValue(m.Shader, m.fogNearLoc, []float32{f.Near}, rl.ShaderUniformFloat)
	rl.SetShaderValue(m.Shader, m.fogFarLoc, []float32{f.Far}, rl.ShaderUniformFloat)
}

// Unload releases the shader and texture.
func (m *Material) Unload() {
	rl.UnloadShader(m.Shader)
	rl.UnloadTexture(m.Texture)
}

// loadPointTexture loads a point-sprite texture, falling back to a single
// white pixel when the file is missing or undecodable. The fallback keeps
// the field rendering as plain points instead of aborting the scene.
func loadPointTexture(path string) rl.Texture2D {
	if path != "" {
		tex := rl.LoadTexture(path)
		if tex.ID != 0 {
			rl.SetTextureFilter(tex, rl.FilterBilinear)
			return tex
		}
	}

	img := rl.GenImageColor(1, 1, rl.White)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return tex
}
