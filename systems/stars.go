package systems

import (
	"math/rand"

	"github.com/pthm-cable/starfield/config"
)

// Bounds describes the star generation volume, derived from the visible
// surface. AreaMultiplier widens the planar spawn area past the surface so
// the parallax shift never reveals an empty edge.
type Bounds struct {
	Width, Height  float32
	AreaMultiplier float32
}

// Star is a single simulated point. X and Y are planar offsets from the
// vanishing-point origin; Z is depth in surface-width units and stays
// strictly positive for as long as the star is alive.
type Star struct {
	X, Y  float32
	Z     float32
	Size  float32
	Speed float32
}

// Field holds the full star population, grouped into one bucket per palette
// color. Bucket order follows palette declaration order so iteration (and
// draw-call order) is deterministic. A star keeps its bucket for the whole
// process lifetime; only a full reinit moves stars between buckets.
type Field struct {
	Palette []config.RGBA
	Buckets [][]Star

	bounds Bounds
	count  int

	minSize, maxSize   float32
	minSpeed, maxSpeed float32

	rng *rand.Rand
}

// NewField creates a field from the given configuration and populates it
// for the given bounds.
func NewField(cfg *config.Config, bounds Bounds, rng *rand.Rand) *Field {
	f := &Field{
		Palette:  cfg.Derived.Palette,
		Buckets:  make([][]Star, len(cfg.Derived.Palette)),
		count:    cfg.Field.Count,
		minSize:  cfg.Derived.MinSize32,
		maxSize:  cfg.Derived.MaxSize32,
		minSpeed: cfg.Derived.MinSpeed32,
		maxSpeed: cfg.Derived.MaxSpeed32,
		rng:      rng,
	}
	f.Init(bounds)
	return f
}

// Bounds returns the generation bounds the field was last initialized with.
func (f *Field) Bounds() Bounds {
	return f.bounds
}

// Count returns the configured population size.
func (f *Field) Count() int {
	return f.count
}

// Len returns the current number of stars across all buckets.
func (f *Field) Len() int {
	n := 0
	for _, b := range f.Buckets {
		n += len(b)
	}
	return n
}

// Init fully repopulates the field for the given bounds: every bucket is
// cleared, then count stars are dealt to uniformly chosen buckets. Initial
// depths are spread over [0, width] so the field does not spawn from a
// single depth plane. In-flight positions from a previous init are
// discarded, not rescaled.
func (f *Field) Init(bounds Bounds) {
	f.bounds = bounds

	for i := range f.Buckets {
		f.Buckets[i] = f.Buckets[i][:0]
	}

	for i := 0; i < f.count; i++ {
		ci := f.rng.Intn(len(f.Buckets))

		var s Star
		f.resample(&s)
		s.Z = f.rng.Float32() * bounds.Width

		f.Buckets[ci] = append(f.Buckets[ci], s)
	}
}

// resample redraws a star in place: planar position uniform over the
// generation area, depth reset to the far plane, fresh size and speed.
// Width is positive for any visible surface, so Z is strictly positive
// afterwards and the projector never divides by zero.
func (f *Field) resample(s *Star) {
	s.X = (f.rng.Float32() - 0.5) * f.bounds.Width * f.bounds.AreaMultiplier
	s.Y = (f.rng.Float32() - 0.5) * f.bounds.Height * f.bounds.AreaMultiplier
	s.Z = f.bounds.Width
	s.Size = f.minSize + f.rng.Float32()*(f.maxSize-f.minSize)
	s.Speed = f.minSpeed + f.rng.Float32()*(f.maxSpeed-f.minSpeed)
}

// Step advances every star one frame: depth decreases by the star's speed,
// and an exhausted star is resampled in the same pass so it reappears at
// the far plane without a gap frame. The population never shrinks or grows.
// Returns the number of stars recycled this frame.
func (f *Field) Step() int {
	resampled := 0
	for bi := range f.Buckets {
		bucket := f.Buckets[bi]
		for i := range bucket {
			s := &bucket[i]
			s.Z -= s.Speed
			if s.Z <= 0 {
				f.resample(s)
				resampled++
			}
		}
	}
	return resampled
}
