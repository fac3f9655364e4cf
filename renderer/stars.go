package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/systems"
)

// StarRenderer draws the star field grouped by color bucket: one backend
// color conversion per bucket instead of one per star, and a bucket
// iteration order fixed by palette declaration order so draw ordering is
// deterministic. raylib applies color per submitted shape and batches the
// geometry internally, so per-star alpha is exact within a bucket.
type StarRenderer struct{}

// NewStarRenderer creates a new star renderer.
func NewStarRenderer() *StarRenderer {
	return &StarRenderer{}
}

// Draw renders all visible stars against the given viewpoint and returns
// the number drawn. Culled stars are skipped here only; their simulation
// state was already advanced by the field step.
func (r *StarRenderer) Draw(f *systems.Field, vp camera.Viewpoint) int {
	drawn := 0
	for bi := range f.Buckets {
		base := toRaylib(f.Palette[bi])

		bucket := f.Buckets[bi]
		for i := range bucket {
			s := &bucket[i]

			sx, sy, visible := vp.Project(s.X, s.Y, s.Z)
			if !visible {
				continue
			}

			size, alpha := vp.Shade(s.Z, s.Size)
			if size <= 0 {
				// Freshly resampled stars sit at the far plane with zero
				// rendered size; submitting them is wasted geometry.
				continue
			}

			c := base
			c.A = uint8(alpha * float32(base.A))
			rl.DrawCircleV(rl.Vector2{X: vp.VX + sx, Y: vp.VY + sy}, size/2, c)
			drawn++
		}
	}
	return drawn
}

// toRaylib converts a parsed palette color to a raylib color.
func toRaylib(c config.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
