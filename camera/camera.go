// Package camera provides the perspective projection and parallax viewpoint
// for the starfield.
package camera

import "math"

// View holds the camera state for the visible surface: DPI-normalized
// dimensions and the pointer-derived parallax offset. Pointer and resize
// updates land here asynchronously; the frame loop reads a consistent
// Viewpoint once per frame via Snapshot.
type View struct {
	// Visible surface dimensions in DPI-normalized units
	Width, Height float32

	// Pointer offset in [-0.5, 0.5], zero when no pointer is present
	PointerX, PointerY float32

	// ParallaxFactor scales the pointer-driven vanishing point shift
	ParallaxFactor float32

	// ProjectionK is the perspective scale numerator (k = ProjectionK / z)
	ProjectionK float32

	// BrightnessPower shapes the depth-to-size emergence curve
	BrightnessPower float32

	// MinAlpha is the opacity floor at the far plane
	MinAlpha float32
}

// New creates a view for the given surface dimensions with default
// projection parameters.
func New(width, height float32) *View {
	return &View{
		Width:           width,
		Height:          height,
		ParallaxFactor:  0.1,
		ProjectionK:     128,
		BrightnessPower: 10,
		MinAlpha:        0.7,
	}
}

// Resize updates the visible surface dimensions.
func (v *View) Resize(width, height float32) {
	v.Width = width
	v.Height = height
}

// SetPointer stores a normalized pointer offset, clamped to [-0.5, 0.5].
func (v *View) SetPointer(nx, ny float32) {
	v.PointerX = clamp(nx, -0.5, 0.5)
	v.PointerY = clamp(ny, -0.5, 0.5)
}

// ClearPointer zeroes the parallax offset (touch-only environments).
func (v *View) ClearPointer() {
	v.PointerX = 0
	v.PointerY = 0
}

// Viewpoint is an immutable per-frame capture of the view: vanishing point,
// dimensions and projection parameters. Taking it once at frame start gives
// asynchronous pointer/resize updates at most one frame of latency.
type Viewpoint struct {
	VX, VY        float32 // vanishing point on the surface
	Width, Height float32

	projectionK     float32
	brightnessPower float32
	minAlpha        float32
}

// Snapshot captures the current viewpoint. The vanishing point is the
// surface center shifted against the pointer offset, scaled by the parallax
// factor and the surface dimension.
func (v *View) Snapshot() Viewpoint {
	return Viewpoint{
		VX:              v.Width/2 - v.PointerX*v.ParallaxFactor*v.Width,
		VY:              v.Height/2 - v.PointerY*v.ParallaxFactor*v.Height,
		Width:           v.Width,
		Height:          v.Height,
		projectionK:     v.ProjectionK,
		brightnessPower: v.BrightnessPower,
		minAlpha:        v.MinAlpha,
	}
}

// Project converts a star's planar offset and depth into an offset from the
// vanishing point. The star is visible iff the projected point falls inside
// the surface rectangle once the origin is translated to the vanishing
// point; the bounds are inclusive.
func (vp Viewpoint) Project(x, y, z float32) (sx, sy float32, visible bool) {
	k := vp.projectionK / z
	sx = x * k
	sy = y * k

	visible = sx >= -vp.VX && sx <= vp.Width-vp.VX &&
		sy >= -vp.VY && sy <= vp.Height-vp.VY
	return sx, sy, visible
}

// DepthFactor maps depth to [0, 1]: 0 at the far plane, approaching 1 as
// the star reaches the viewer.
func (vp Viewpoint) DepthFactor(z float32) float32 {
	df := 1 - z/vp.Width
	if df < 0 {
		return 0
	}
	return df
}

// Shade derives the rendered size and alpha for a visible star. The steep
// power curve keeps far stars near-invisible so they emerge suddenly from
// the vanishing point; alpha floors at minAlpha and saturates at 1.
func (vp Viewpoint) Shade(z, size float32) (finalSize, alpha float32) {
	df := vp.DepthFactor(z)
	finalSize = float32(math.Pow(float64(df), float64(vp.brightnessPower))) * size
	alpha = vp.minAlpha + df*(1-vp.minAlpha)
	if alpha > 1 {
		alpha = 1
	}
	return finalSize, alpha
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
