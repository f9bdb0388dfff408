package snow

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update advances the scene by one frame: input, resize propagation and
// the per-frame time uniform. The elapsed clock is the only animation
// state; all motion derives from it in the vertex shader.
func (s *Scene) Update() {
	s.handleInput()

	t := float32(rl.GetTime())
	s.snowMat.SetTime(t)
	s.spriteMat.SetTime(t)
}

// handleInput processes keyboard input.
func (s *Scene) handleInput() {
	s.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		s.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyD) {
		s.showStats = !s.showStats
	}
}

// handleResize checks for window resize and propagates new dimensions.
// Only the shared scale value changes on the particle side; positions and
// motion attributes are regenerated solely on explicit parameter edits.
func (s *Scene) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == s.rig.ViewportW && h == s.rig.ViewportH {
		return
	}

	s.rig.Resize(w, h)
	s.snowField.Rescale(s.rig.PointScale())
	s.spriteField.Rescale(s.rig.PointScale())

	slog.Debug("viewport resized", "width", w, "height", h, "aspect", s.rig.Aspect())
}
