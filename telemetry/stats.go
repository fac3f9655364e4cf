package telemetry

import "sort"

// WindowStats holds aggregated starfield statistics for a frame window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	WallTimeSec      float64 `csv:"wall_time"`

	// Population at window end
	StarCount   int `csv:"stars"`
	BucketCount int `csv:"buckets"`

	// Per-frame drawn star counts across the window
	DrawnMean float64 `csv:"drawn_mean"`
	DrawnP10  float64 `csv:"drawn_p10"`
	DrawnP50  float64 `csv:"drawn_p50"`
	DrawnP90  float64 `csv:"drawn_p90"`

	// Depth-exhaustion recycles during the window
	Resamples       int     `csv:"resamples"`
	ResamplesPerSec float64 `csv:"resamples_per_sec"`

	// Frames the driver spent stopped (surface not visible)
	StoppedFrames int `csv:"stopped_frames"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSampleStats calculates mean and percentiles from sample values.
func ComputeSampleStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	// Sort for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}
