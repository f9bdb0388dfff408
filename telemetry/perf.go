// Package telemetry collects frame timing statistics for the snowfall
// scene and writes windowed aggregates to structured logs and CSV files.
package telemetry

import (
	"log/slog"
	"time"
)

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int

	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// RecordFrame records the time since the previous call as one frame.
// The first call only establishes the reference point.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if p.lastFrameTime.IsZero() {
		p.lastFrameTime = now
		return
	}

	p.frameDuration = now.Sub(p.lastFrameTime)
	p.lastFrameTime = now

	p.samples[p.writeIndex] = p.frameDuration
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// LastFrame returns the most recent frame duration, zero before the
// second RecordFrame call.
func (p *PerfCollector) LastFrame() time.Duration {
	return p.frameDuration
}

// PerfStats holds aggregated frame timing statistics.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	FPS      float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{}
	}

	var total time.Duration
	var min, max time.Duration
	for i := 0; i < p.sampleCount; i++ {
		d := p.samples[i]
		total += d
		if i == 0 || d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	avg := total / time.Duration(p.sampleCount)

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	return PerfStats{
		AvgFrame: avg,
		MinFrame: min,
		MaxFrame: max,
		FPS:      fps,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Float64("fps", s.FPS),
	)
}
