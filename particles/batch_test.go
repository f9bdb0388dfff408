package particles

import (
	"math/rand"
	"testing"
)

func testParams() Params {
	return Params{
		RangeX:     400,
		RangeY:     500,
		RangeZ:     300,
		VelocityY:  2,
		AmplitudeX: 1,
		AngleBias:  0.5,
	}
}

func TestGenerateBufferSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := Generate(100, testParams(), rng, 720)

	if b.Count != 100 {
		t.Fatalf("expected count 100, got %d", b.Count)
	}
	if len(b.Positions) != 300 {
		t.Errorf("expected 300 position floats, got %d", len(b.Positions))
	}
	for name, buf := range map[string][]float32{
		"scales":     b.Scales,
		"velocities": b.VelocitiesY,
		"amplitudes": b.AmplitudesX,
		"angles":     b.Angles,
	} {
		if len(buf) != 100 {
			t.Errorf("expected 100 %s, got %d", name, len(buf))
		}
	}
}

func TestGenerateZeroAndNegativeCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	b := Generate(0, testParams(), rng, 720)
	if b.Count != 0 || len(b.Positions) != 0 {
		t.Errorf("expected empty batch for count 0, got count=%d positions=%d", b.Count, len(b.Positions))
	}

	// Negative counts clamp to zero rather than panicking (degenerate
	// config values like ratio > 1 produce these).
	b = Generate(-5, testParams(), rng, 720)
	if b.Count != 0 {
		t.Errorf("expected count clamped to 0, got %d", b.Count)
	}
}

// The sampled interval is [-range/2, +range/2) per axis: the lower edge
// is attainable (Float32 can return exactly 0), the upper is not.
func TestGeneratePositionBounds(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(42))
	b := Generate(2000, p, rng, 720)

	halves := [3]float32{p.RangeX / 2, p.RangeY / 2, p.RangeZ / 2}
	for i := 0; i < b.Count; i++ {
		for axis := 0; axis < 3; axis++ {
			v := b.Positions[i*3+axis]
			if v < -halves[axis] || v > halves[axis] {
				t.Fatalf("particle %d axis %d position %f outside [%f, %f]",
					i, axis, v, -halves[axis], halves[axis])
			}
		}
	}
}

func TestGenerateVelocityBounds(t *testing.T) {
	for _, v := range []float32{0, 0.5, 2, 100} {
		p := testParams()
		p.VelocityY = v

		lo := -(v + 1)
		hi := -v + 1
		if hi > 0 {
			hi = 0
		}

		rng := rand.New(rand.NewSource(7))
		b := Generate(1000, p, rng, 720)
		for i, vel := range b.VelocitiesY {
			if vel < lo || vel > hi {
				t.Fatalf("v=%f: velocity[%d]=%f outside [%f, %f]", v, i, vel, lo, hi)
			}
			if vel > 0 {
				t.Fatalf("v=%f: velocity[%d]=%f points upward", v, i, vel)
			}
		}
	}
}

func TestGenerateAmplitudeBounds(t *testing.T) {
	for _, a := range []float32{0, 0.5, 1, 50} {
		p := testParams()
		p.AmplitudeX = a

		lo := a - 1
		if lo < 0 {
			lo = 0
		}
		hi := a + 1

		rng := rand.New(rand.NewSource(7))
		b := Generate(1000, p, rng, 720)
		for i, amp := range b.AmplitudesX {
			if amp < lo || amp > hi {
				t.Fatalf("a=%f: amplitude[%d]=%f outside [%f, %f]", a, i, amp, lo, hi)
			}
			if amp < 0 {
				t.Fatalf("a=%f: amplitude[%d]=%f is negative", a, i, amp)
			}
		}
	}
}

func TestGenerateAngleBounds(t *testing.T) {
	p := testParams()
	p.AngleBias = 1.5

	rng := rand.New(rand.NewSource(7))
	b := Generate(1000, p, rng, 720)
	for i, ang := range b.Angles {
		if ang < 1.5-0.1-1e-5 || ang > 1.5+0.1+1e-5 {
			t.Fatalf("angle[%d]=%f outside [%f, %f]", i, ang, 1.4, 1.6)
		}
	}
}

func TestGenerateSharedScale(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := Generate(500, testParams(), rng, 1080)

	for i, s := range b.Scales {
		if s != 1080 {
			t.Fatalf("scale[%d]=%f, want 1080", i, s)
		}
	}
}

func TestSetScaleOnlyTouchesScales(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := Generate(300, testParams(), rng, 720)

	positions := append([]float32(nil), b.Positions...)
	velocities := append([]float32(nil), b.VelocitiesY...)
	amplitudes := append([]float32(nil), b.AmplitudesX...)
	angles := append([]float32(nil), b.Angles...)

	b.SetScale(900)

	for i, s := range b.Scales {
		if s != 900 {
			t.Fatalf("after SetScale, scale[%d]=%f, want 900", i, s)
		}
	}
	for i := range positions {
		if b.Positions[i] != positions[i] {
			t.Fatalf("position[%d] changed on resize", i)
		}
	}
	for i := range velocities {
		if b.VelocitiesY[i] != velocities[i] || b.AmplitudesX[i] != amplitudes[i] || b.Angles[i] != angles[i] {
			t.Fatalf("motion attribute %d changed on resize", i)
		}
	}
}

func TestSplitCounts(t *testing.T) {
	tests := []struct {
		total       int
		ratio       float64
		snow, sprite int
	}{
		{100, 0.1, 90, 10},
		{100, 0, 100, 0},
		{100, 1, 0, 100},
		{0, 0.5, 0, 0},
		// Round-half-away-from-zero on each side independently
		{10, 0.25, 8, 3},
		// Ratios outside [0,1] clamp the negative side to zero
		{100, 1.5, 0, 150},
		{100, -0.5, 150, 0},
	}
	for _, tt := range tests {
		snow, sprite := SplitCounts(tt.total, tt.ratio)
		if snow != tt.snow || sprite != tt.sprite {
			t.Errorf("SplitCounts(%d, %f) = (%d, %d), want (%d, %d)",
				tt.total, tt.ratio, snow, sprite, tt.snow, tt.sprite)
		}
		if snow < 0 || sprite < 0 {
			t.Errorf("SplitCounts(%d, %f) produced negative count", tt.total, tt.ratio)
		}
	}
}

// Two generations with identical parameters must be structurally equivalent:
// same counts and same sampling bounds, though not identical samples.
func TestRegenerateStructurallyEquivalent(t *testing.T) {
	p := testParams()
	b1 := Generate(1000, p, rand.New(rand.NewSource(1)), 720)
	b2 := Generate(1000, p, rand.New(rand.NewSource(2)), 720)

	if b1.Count != b2.Count {
		t.Fatalf("counts differ: %d vs %d", b1.Count, b2.Count)
	}

	mean := func(xs []float32) float64 {
		var sum float64
		for _, x := range xs {
			sum += float64(x)
		}
		return sum / float64(len(xs))
	}

	// Means of bounded uniform samples land near each other for any seed.
	if d := mean(b1.VelocitiesY) - mean(b2.VelocitiesY); d > 0.1 || d < -0.1 {
		t.Errorf("velocity distributions diverge: delta=%f", d)
	}
	if d := mean(b1.AmplitudesX) - mean(b2.AmplitudesX); d > 0.1 || d < -0.1 {
		t.Errorf("amplitude distributions diverge: delta=%f", d)
	}
}
