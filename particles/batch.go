// Package particles generates per-particle static attributes for the
// snowfall point fields. All sampling is bounded and seeded; the output is
// flat float32 buffers ready for GPU upload.
package particles

import (
	"math"
	"math/rand"
)

// Params holds the sampling bounds for one batch.
type Params struct {
	RangeX, RangeY, RangeZ float32 // Positions sample uniformly in [-range/2, +range/2) per axis; Float32 can return exactly 0, so the lower edge is attainable
	VelocityY              float32 // Fall speed magnitude; samples land in [-(v+1), min(-v+1, 0)]
	AmplitudeX             float32 // Sway amplitude; samples land in [max(a-1, 0), a+1]
	AngleBias              float32 // Phase angle; samples land in [bias-0.1, bias+0.1]
}

// Batch holds the generated attribute buffers for one particle population.
// Positions is 3 floats per particle; the rest are 1 float per particle.
// All buffers are immutable after generation except Scales, which is
// rewritten in place on viewport resize via SetScale.
type Batch struct {
	Count       int
	Positions   []float32
	Scales      []float32
	VelocitiesY []float32
	AmplitudesX []float32
	Angles      []float32
}

// Generate samples a batch of count particles from p. The shared scale
// value is the current viewport height, identical across the batch.
// count <= 0 yields empty buffers.
func Generate(count int, p Params, rng *rand.Rand, viewportH float32) Batch {
	if count < 0 {
		count = 0
	}

	b := Batch{
		Count:       count,
		Positions:   make([]float32, count*3),
		Scales:      make([]float32, count),
		VelocitiesY: make([]float32, count),
		AmplitudesX: make([]float32, count),
		Angles:      make([]float32, count),
	}

	// Velocity interval [-(v+1), min(-v+1, 0)]: always downward-biased, but
	// small v admits near-zero outliers.
	velLo := -(p.VelocityY + 1)
	velHi := -p.VelocityY + 1
	if velHi > 0 {
		velHi = 0
	}

	// Amplitude interval [max(a-1, 0), a+1]: never negative.
	ampLo := p.AmplitudeX - 1
	if ampLo < 0 {
		ampLo = 0
	}
	ampHi := p.AmplitudeX + 1

	for i := 0; i < count; i++ {
		b.Positions[i*3+0] = (rng.Float32() - 0.5) * p.RangeX
		b.Positions[i*3+1] = (rng.Float32() - 0.5) * p.RangeY
		b.Positions[i*3+2] = (rng.Float32() - 0.5) * p.RangeZ

		b.Scales[i] = viewportH
		b.VelocitiesY[i] = velLo + rng.Float32()*(velHi-velLo)
		b.AmplitudesX[i] = ampLo + rng.Float32()*(ampHi-ampLo)
		b.Angles[i] = p.AngleBias - 0.1 + rng.Float32()*0.2
	}

	return b
}

// SetScale rewrites every scale slot in place with the new viewport height.
// No other buffer is touched; positions and motion attributes survive resize.
func (b *Batch) SetScale(viewportH float32) {
	for i := range b.Scales {
		b.Scales[i] = viewportH
	}
}

// SplitCounts divides a total particle count into snow and sprite
// populations. Each side rounds half away from zero independently, so the
// two results can differ from total by one at .5 boundaries. Negative
// results clamp to zero, which also absorbs ratios outside [0,1].
func SplitCounts(total int, ratio float64) (snow, sprite int) {
	snow = int(math.Round(float64(total) * (1 - ratio)))
	sprite = int(math.Round(float64(total) * ratio))
	if snow < 0 {
		snow = 0
	}
	if sprite < 0 {
		sprite = 0
	}
	return snow, sprite
}
