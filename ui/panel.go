package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lahkro/snowfall/config"
)

// sliderSpec defines one slider-backed parameter.
type sliderSpec struct {
	label  string
	param  Param
	min    float32
	max    float32
	step   float32
	format string
	get    func(*config.Config) float32
	set    func(*config.Config, float32)
}

// checkSpec defines one checkbox-backed parameter.
type checkSpec struct {
	label string
	param Param
	get   func(*config.Config) bool
	set   func(*config.Config, bool)
}

// section groups controls under a header.
type section struct {
	title   string
	sliders []sliderSpec
	checks  []checkSpec
}

// Panel is the live settings panel. It mutates the config in place and
// reports which parameters changed each frame; the scene prices and
// applies the edits.
type Panel struct {
	theme    Theme
	sections []section
	visible  bool
	width    int32
}

// NewPanel creates the settings panel with the full parameter layout.
func NewPanel() *Panel {
	return &Panel{
		theme:    DefaultTheme(),
		width:    280,
		sections: panelSections(),
	}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible returns whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

func panelSections() []section {
	return []section{
		{
			title: "Scene",
			sliders: []sliderSpec{
				{"Fog near", ParamFogNear, 0, 200, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Scene.FogNear) },
					func(c *config.Config, v float32) { c.Scene.FogNear = float64(v) }},
				{"Fog far", ParamFogFar, 0, 200, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Scene.FogFar) },
					func(c *config.Config, v float32) { c.Scene.FogFar = float64(v) }},
				{"Camera Z", ParamCameraZ, 0, 200, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Camera.Z) },
					func(c *config.Config, v float32) { c.Camera.Z = float64(v) }},
			},
			checks: []checkSpec{
				{"Fog", ParamFog,
					func(c *config.Config) bool { return c.Scene.Fog },
					func(c *config.Config, v bool) { c.Scene.Fog = v }},
			},
		},
		{
			title: "Particles",
			sliders: []sliderSpec{
				{"Count", ParamCount, 0, 20000, 100, "%.0f",
					func(c *config.Config) float32 { return float32(c.Snow.Count) },
					func(c *config.Config, v float32) { c.Snow.Count = int(v) }},
				{"Sprite ratio", ParamSpriteRatio, 0, 1, 0.01, "%.2f",
					func(c *config.Config) float32 { return float32(c.Snow.SpriteRatio) },
					func(c *config.Config, v float32) { c.Snow.SpriteRatio = float64(v) }},
				{"Range X", ParamRangeX, 1, 1000, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Snow.RangeX) },
					func(c *config.Config, v float32) { c.Snow.RangeX = float64(v) }},
				{"Range Y", ParamRangeY, 1, 1000, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Snow.RangeY) },
					func(c *config.Config, v float32) { c.Snow.RangeY = float64(v) }},
				{"Range Z", ParamRangeZ, 1, 1000, 1, "%.0f",
					func(c *config.Config) float32 { return float32(c.Snow.RangeZ) },
					func(c *config.Config, v float32) { c.Snow.RangeZ = float64(v) }},
				{"Velocity Y", ParamVelocityY, 0, 10, 0.1, "%.1f",
					func(c *config.Config) float32 { return float32(c.Snow.VelocityY) },
					func(c *config.Config, v float32) { c.Snow.VelocityY = float64(v) }},
				{"Amplitude X", ParamAmplitudeX, 0, 5, 0.1, "%.1f",
					func(c *config.Config) float32 { return float32(c.Snow.AmplitudeX) },
					func(c *config.Config, v float32) { c.Snow.AmplitudeX = float64(v) }},
				{"Angle bias", ParamAngleBias, 0, 2, 0.05, "%.2f",
					func(c *config.Config) float32 { return float32(c.Snow.AngleBias) },
					func(c *config.Config, v float32) { c.Snow.AngleBias = float64(v) }},
			},
		},
		{
			title: "Appearance",
			sliders: []sliderSpec{
				{"Snow size", ParamSnowSize, 0, 10, 0.5, "%.1f",
					func(c *config.Config) float32 { return float32(c.Snow.SnowSize) },
					func(c *config.Config, v float32) { c.Snow.SnowSize = float64(v) }},
				{"Sprite size", ParamSpriteSize, 0, 20, 0.5, "%.1f",
					func(c *config.Config) float32 { return float32(c.Snow.SpriteSize) },
					func(c *config.Config, v float32) { c.Snow.SpriteSize = float64(v) }},
				{"Alpha test", ParamAlphaTest, 0, 1, 0.01, "%.2f",
					func(c *config.Config) float32 { return float32(c.Snow.AlphaTest) },
					func(c *config.Config, v float32) { c.Snow.AlphaTest = float64(v) }},
			},
			checks: []checkSpec{
				{"Size attenuation", ParamSizeAttenuation,
					func(c *config.Config) bool { return c.Snow.SizeAttenuation },
					func(c *config.Config, v bool) { c.Snow.SizeAttenuation = v }},
			},
		},
	}
}

const pickerHeight = 96

// Draw renders the panel and applies edits to cfg in place. It returns
// the parameters that changed this frame and whether a save was requested.
func (p *Panel) Draw(cfg *config.Config) ([]Param, bool) {
	if !p.visible {
		return nil, false
	}

	t := p.theme
	x := int32(10)
	y := int32(10)
	pad := t.Padding

	height := p.contentHeight()
	rl.DrawRectangle(x, y, p.width, height, t.PanelBg)
	rl.DrawRectangleLines(x, y, p.width, height, t.PanelBorder)

	var changed []Param
	cx := x + pad
	cy := y + pad

	rl.DrawText("Snowfall Settings", cx, cy, 16, rl.White)
	cy += t.LineHeight + 6

	cy, edited := p.drawBackgroundPicker(cx, cy, cfg)
	if edited {
		changed = append(changed, ParamBackground)
	}

	for _, sec := range p.sections {
		rl.DrawText(sec.title, cx, cy, t.HeaderFontSize, t.SectionHeader)
		cy += t.LineHeight + 2

		for _, c := range sec.checks {
			cur := c.get(cfg)
			next := gui.CheckBox(
				rl.Rectangle{X: float32(cx), Y: float32(cy), Width: 14, Height: 14},
				c.label, cur,
			)
			if next != cur {
				c.set(cfg, next)
				changed = append(changed, c.param)
			}
			cy += t.LineHeight + 4
		}

		for _, s := range sec.sliders {
			cur := s.get(cfg)
			if next, ok := p.drawSlider(cx, cy, s, cur); ok {
				s.set(cfg, next)
				changed = append(changed, s.param)
			}
			cy += t.LineHeight + 4
		}

		cy += 4
	}

	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(cy), Width: float32(p.width - pad*2), Height: 26}, "Rebuild") {
		changed = append(changed, ParamRebuild)
	}
	cy += 32

	save := false
	btnW := float32(p.width-pad*3) / 2
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(cy), Width: btnW, Height: 26}, "Save") {
		save = true
	}
	if gui.Button(rl.Rectangle{X: float32(cx) + btnW + float32(pad), Y: float32(cy), Width: btnW, Height: 26}, "Reset") {
		changed = append(changed, p.reset(cfg)...)
	}

	return changed, save
}

// drawSlider renders one labelled slider row. Returns the quantized new
// value and whether it differs from the current one.
func (p *Panel) drawSlider(x, y int32, s sliderSpec, cur float32) (float32, bool) {
	t := p.theme
	labelW := int32(90)
	valueW := int32(44)
	barW := p.width - t.Padding*2 - labelW - valueW

	rl.DrawText(s.label, x, y+2, t.FontSize, t.LabelColor)

	raw := gui.SliderBar(
		rl.Rectangle{
			X:      float32(x + labelW),
			Y:      float32(y),
			Width:  float32(barW),
			Height: float32(t.SliderHeight),
		},
		"", "", cur, s.min, s.max,
	)

	rl.DrawText(fmt.Sprintf(s.format, cur), x+labelW+barW+6, y+2, t.FontSize, t.ValueColor)

	// An untouched slider echoes its input; quantizing it anyway would
	// report phantom edits whenever the config value sits off the grid.
	if raw == cur {
		return cur, false
	}
	next := quantize(raw, s.min, s.step)
	if next == cur {
		return cur, false
	}
	return next, true
}

// drawBackgroundPicker renders the background color picker and writes the
// chosen color back as a hex string.
func (p *Panel) drawBackgroundPicker(x, y int32, cfg *config.Config) (int32, bool) {
	t := p.theme

	rl.DrawText("Background", x, y, t.HeaderFontSize, t.SectionHeader)
	y += t.LineHeight + 2

	rgb := cfg.Derived.BackgroundRGB
	cur := rl.NewColor(rgb[0], rgb[1], rgb[2], 255)

	// The picker reserves space on its right for the hue bar.
	side := float32(p.width - t.Padding*2 - 30)
	next := gui.ColorPicker(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: side, Height: pickerHeight},
		"", cur,
	)
	y += pickerHeight + 8

	if next.R == cur.R && next.G == cur.G && next.B == cur.B {
		return y, false
	}

	cfg.Scene.Background = fmt.Sprintf("#%02x%02x%02x", next.R, next.G, next.B)
	return y, true
}

// reset restores embedded defaults in place and reports every parameter
// as changed so the scene rebuilds from scratch.
func (p *Panel) reset(cfg *config.Config) []Param {
	def, err := config.Load("")
	if err != nil {
		return nil
	}
	*cfg = *def

	all := make([]Param, 0, len(allParams))
	all = append(all, allParams...)
	return all
}

var allParams = []Param{
	ParamBackground, ParamFog, ParamFogNear, ParamFogFar, ParamCameraZ,
	ParamCount, ParamRangeX, ParamRangeY, ParamRangeZ,
	ParamVelocityY, ParamAmplitudeX, ParamAngleBias,
	ParamSpriteRatio, ParamSnowSize, ParamSpriteSize,
	ParamAlphaTest, ParamSizeAttenuation,
}

// quantize snaps a slider value onto the step grid.
func quantize(v, min, step float32) float32 {
	if step <= 0 {
		return v
	}
	return min + float32(math.Round(float64((v-min)/step)))*step
}

// contentHeight computes the panel height from the control layout.
func (p *Panel) contentHeight() int32 {
	t := p.theme
	h := t.Padding*2 + t.LineHeight + 6       // title
	h += t.LineHeight + 2 + pickerHeight + 8  // background picker
	for _, sec := range p.sections {
		h += t.LineHeight + 2 // header
		h += int32(len(sec.checks)+len(sec.sliders)) * (t.LineHeight + 4)
		h += 4
	}
	h += 32 + 26 // buttons
	return h
}
