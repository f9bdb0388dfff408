package snow

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders one frame of the scene and services the control panel.
func (s *Scene) Draw() {
	rgb := s.cfg.Derived.BackgroundRGB

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(rgb[0], rgb[1], rgb[2], 255))

	rl.BeginMode3D(s.rig.Camera)
	s.snowField.Draw()
	s.spriteField.Draw()
	rl.EndMode3D()

	// Panel widgets are immediate-mode; edits surface here and dispatch
	// through the policy table.
	if s.panel.Visible() {
		changed, save := s.panel.Draw(s.cfg)
		s.Apply(changed)
		if save {
			s.saveConfig()
		}
	} else {
		rl.DrawText("[Tab] settings", 10, 10, 16, rl.Fade(rl.White, 0.4))
	}

	if s.showStats {
		s.drawStats()
	}

	rl.EndDrawing()

	s.frame++
	s.collectFrameStats()
}

// drawStats renders the frame-time overlay.
func (s *Scene) drawStats() {
	stats := s.perf.Stats()
	y := int32(rl.GetScreenHeight()) - 55

	rl.DrawRectangle(5, y-5, 260, 55, rl.NewColor(0, 0, 0, 180))
	rl.DrawText(fmt.Sprintf("FPS: %.0f", stats.FPS), 10, y, 16, rl.White)
	rl.DrawText(fmt.Sprintf("frame avg/max: %v / %v",
		stats.AvgFrame.Round(10*time.Microsecond),
		stats.MaxFrame.Round(10*time.Microsecond)), 10, y+20, 16, rl.White)
	rl.DrawText(fmt.Sprintf("particles: %d", s.snowField.Count()+s.spriteField.Count()), 10, y+40, 16, rl.White)
}

// collectFrameStats feeds the perf collector and flushes windowed
// statistics to the log and CSV output when a window completes.
func (s *Scene) collectFrameStats() {
	s.perf.RecordFrame()

	dur := s.perf.LastFrame()
	if dur <= 0 {
		return
	}

	ws, done := s.stats.Observe(dur)
	if !done {
		return
	}

	if s.logStats {
		ws.Log()
	}
	if s.output != nil {
		if err := s.output.WriteFrameStats(ws); err != nil {
			slog.Warn("writing frame stats", "error", err)
		}
	}
}

// saveConfig writes the current parameter set next to the binary.
func (s *Scene) saveConfig() {
	const path = "snowfall.yaml"
	if err := s.cfg.WriteYAML(path); err != nil {
		slog.Error("saving config", "error", err)
		return
	}
	slog.Info("config saved", "path", path)
}
