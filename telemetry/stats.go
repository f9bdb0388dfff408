package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated frame timing for one completed window.
// Field tags drive the CSV output schema.
type WindowStats struct {
	Window      int     `csv:"window"`
	Frames      int     `csv:"frames"`
	DurationSec float64 `csv:"duration_sec"`
	FPS         float64 `csv:"fps"`

	// Frame time distribution in milliseconds
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameStdMS  float64 `csv:"frame_std_ms"`
	FrameMinMS  float64 `csv:"frame_min_ms"`
	FrameP50MS  float64 `csv:"frame_p50_ms"`
	FrameP90MS  float64 `csv:"frame_p90_ms"`
	FrameP99MS  float64 `csv:"frame_p99_ms"`
	FrameMaxMS  float64 `csv:"frame_max_ms"`
}

// StatsWindow accumulates frame durations and emits a WindowStats record
// whenever the accumulated time crosses the window length. Windowing is
// driven by the observed durations themselves, not the wall clock, so the
// aggregation is deterministic under test.
type StatsWindow struct {
	windowSec float64
	frames    []float64 // milliseconds
	elapsed   time.Duration
	window    int
}

// NewStatsWindow creates a stats window of the given length in seconds.
func NewStatsWindow(sec float64) *StatsWindow {
	if sec <= 0 {
		sec = 5
	}
	return &StatsWindow{windowSec: sec}
}

// Observe records one frame duration. When the window completes it
// returns the aggregate and true, then starts a fresh window.
func (w *StatsWindow) Observe(d time.Duration) (WindowStats, bool) {
	w.frames = append(w.frames, float64(d)/float64(time.Millisecond))
	w.elapsed += d

	if w.elapsed.Seconds() < w.windowSec {
		return WindowStats{}, false
	}
	return w.flush(), true
}

// flush computes the window aggregate and resets accumulation state.
func (w *StatsWindow) flush() WindowStats {
	n := len(w.frames)

	sorted := make([]float64, n)
	copy(sorted, w.frames)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(w.frames, nil)

	var fps float64
	if sec := w.elapsed.Seconds(); sec > 0 {
		fps = float64(n) / sec
	}

	ws := WindowStats{
		Window:      w.window,
		Frames:      n,
		DurationSec: w.elapsed.Seconds(),
		FPS:         fps,
		FrameMeanMS: mean,
		FrameStdMS:  std,
		FrameMinMS:  sorted[0],
		FrameP50MS:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		FrameP90MS:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		FrameP99MS:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
		FrameMaxMS:  sorted[n-1],
	}

	w.frames = w.frames[:0]
	w.elapsed = 0
	w.window++

	return ws
}

// Log logs the window stats using slog.
func (s WindowStats) Log() {
	slog.Info("frame stats",
		"window", s.Window,
		"frames", s.Frames,
		"duration_sec", s.DurationSec,
		"fps", s.FPS,
		"frame_mean_ms", s.FrameMeanMS,
		"frame_std_ms", s.FrameStdMS,
		"frame_min_ms", s.FrameMinMS,
		"frame_p50_ms", s.FrameP50MS,
		"frame_p90_ms", s.FrameP90MS,
		"frame_p99_ms", s.FrameP99MS,
		"frame_max_ms", s.FrameMaxMS,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window", s.Window),
		slog.Int("frames", s.Frames),
		slog.Float64("duration_sec", s.DurationSec),
		slog.Float64("fps", s.FPS),
		slog.Float64("frame_mean_ms", s.FrameMeanMS),
		slog.Float64("frame_std_ms", s.FrameStdMS),
		slog.Float64("frame_min_ms", s.FrameMinMS),
		slog.Float64("frame_p50_ms", s.FrameP50MS),
		slog.Float64("frame_p90_ms", s.FrameP90MS),
		slog.Float64("frame_p99_ms", s.FrameP99MS),
		slog.Float64("frame_max_ms", s.FrameMaxMS),
	)
}
