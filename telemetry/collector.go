package telemetry

import "time"

// Collector accumulates per-frame events within wall-clock windows and
// produces WindowStats.
type Collector struct {
	windowDuration time.Duration

	windowStartFrame int64
	windowStart      time.Time
	started          bool

	// Event accumulators for the current window
	drawnCounts   []float64
	resamples     int
	stoppedFrames int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wall-clock seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 5
	}
	return &Collector{
		windowDuration: time.Duration(windowDurationSec * float64(time.Second)),
	}
}

// RecordFrame records one rendered frame: the number of stars drawn and the
// number recycled at the far plane.
func (c *Collector) RecordFrame(drawn, resampled int) {
	c.drawnCounts = append(c.drawnCounts, float64(drawn))
	c.resamples += resampled
}

// RecordStopped records a frame the driver spent in the Stopped state.
func (c *Collector) RecordStopped() {
	c.stoppedFrames++
}

// ShouldFlush returns true once the window duration has elapsed.
func (c *Collector) ShouldFlush(now time.Time) bool {
	if !c.started {
		c.windowStart = now
		c.started = true
		return false
	}
	return now.Sub(c.windowStart) >= c.windowDuration
}

// Flush produces a WindowStats and resets accumulators for the next window.
func (c *Collector) Flush(now time.Time, currentFrame int64, starCount, bucketCount int) WindowStats {
	elapsed := now.Sub(c.windowStart).Seconds()

	mean, p10, p50, p90 := ComputeSampleStats(c.drawnCounts)

	var resamplesPerSec float64
	if elapsed > 0 {
		resamplesPerSec = float64(c.resamples) / elapsed
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		WallTimeSec:      elapsed,

		StarCount:   starCount,
		BucketCount: bucketCount,

		DrawnMean: mean,
		DrawnP10:  p10,
		DrawnP50:  p50,
		DrawnP90:  p90,

		Resamples:       c.resamples,
		ResamplesPerSec: resamplesPerSec,

		StoppedFrames: c.stoppedFrames,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.windowStart = now
	c.drawnCounts = c.drawnCounts[:0]
	c.resamples = 0
	c.stoppedFrames = 0

	return stats
}
