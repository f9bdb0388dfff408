package renderer

import (
	"testing"

	"github.com/lahkro/snowfall/particles"
)

// A scene that lost its fields after a failed rebuild must still be safe
// to update, draw and tear down. None of these calls may reach the GPU
// for a nil or empty field.
func TestFieldNilReceiverSafe(t *testing.T) {
	var f *Field

	f.Draw()
	f.Rescale(720)
	f.Unload()

	if f.Count() != 0 {
		t.Errorf("nil field Count() = %d, want 0", f.Count())
	}
}

func TestFieldEmptyBatchSafe(t *testing.T) {
	f := NewField(particles.Batch{}, nil)

	f.Draw()
	f.Rescale(720)

	if f.Count() != 0 {
		t.Errorf("empty field Count() = %d, want 0", f.Count())
	}

	f.Unload()
	if f.Count() != 0 {
		t.Errorf("unloaded field Count() = %d, want 0", f.Count())
	}
}
