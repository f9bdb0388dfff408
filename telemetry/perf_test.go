package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// First call establishes baseline
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond) // ~60fps frame time
	// Second call measures duration
	pc.RecordFrame()

	if pc.LastFrame() < 15*time.Millisecond {
		t.Errorf("expected last frame >= 15ms, got %v", pc.LastFrame())
	}

	stats := pc.Stats()

	if stats.AvgFrame < 15*time.Millisecond {
		t.Errorf("expected avg frame >= 15ms, got %v", stats.AvgFrame)
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}

	// With 16ms frames, expect ~60 FPS (allow range 40-80)
	if stats.FPS < 40 || stats.FPS > 80 {
		t.Errorf("expected FPS between 40-80 with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	pc.RecordFrame()
	for i := 0; i < 10; i++ {
		time.Sleep(time.Millisecond)
		pc.RecordFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrame <= 0 {
		t.Error("expected positive average frame duration after window filled")
	}

	if stats.MinFrame <= 0 {
		t.Error("expected positive minimum frame duration")
	}

	if stats.MaxFrame < stats.MinFrame {
		t.Errorf("max frame %v below min frame %v", stats.MaxFrame, stats.MinFrame)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgFrame != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}

	if stats.FPS != 0 {
		t.Error("expected zero FPS for empty collector")
	}
}

func TestPerfCollector_FirstFrameOnlySetsBaseline(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()

	if pc.LastFrame() != 0 {
		t.Error("expected zero last frame after single RecordFrame call")
	}
	if stats := pc.Stats(); stats.AvgFrame != 0 {
		t.Error("expected no samples after single RecordFrame call")
	}
}
