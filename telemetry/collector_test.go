package telemetry

import (
	"testing"
	"time"
)

func TestCollectorWindowFlush(t *testing.T) {
	c := NewCollector(5.0)

	start := time.Now()

	// First call arms the window
	if c.ShouldFlush(start) {
		t.Error("collector should not flush before the window is armed")
	}
	if c.ShouldFlush(start.Add(2 * time.Second)) {
		t.Error("collector should not flush mid-window")
	}
	if !c.ShouldFlush(start.Add(6 * time.Second)) {
		t.Error("collector should flush after the window elapses")
	}
}

func TestCollectorFlushAggregates(t *testing.T) {
	c := NewCollector(1.0)

	start := time.Now()
	c.ShouldFlush(start) // arm the window

	c.RecordFrame(100, 3)
	c.RecordFrame(200, 1)
	c.RecordFrame(300, 0)
	c.RecordStopped()

	stats := c.Flush(start.Add(2*time.Second), 180, 3000, 3)

	if stats.WindowEndFrame != 180 {
		t.Errorf("window end frame = %d, want 180", stats.WindowEndFrame)
	}
	if stats.StarCount != 3000 || stats.BucketCount != 3 {
		t.Errorf("population = (%d, %d), want (3000, 3)", stats.StarCount, stats.BucketCount)
	}
	if stats.DrawnMean != 200 {
		t.Errorf("drawn mean = %f, want 200", stats.DrawnMean)
	}
	if stats.Resamples != 4 {
		t.Errorf("resamples = %d, want 4", stats.Resamples)
	}
	if stats.ResamplesPerSec != 2 {
		t.Errorf("resamples/sec = %f, want 2", stats.ResamplesPerSec)
	}
	if stats.StoppedFrames != 1 {
		t.Errorf("stopped frames = %d, want 1", stats.StoppedFrames)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(1.0)

	start := time.Now()
	c.ShouldFlush(start)
	c.RecordFrame(100, 5)
	c.Flush(start.Add(time.Second), 60, 3000, 3)

	stats := c.Flush(start.Add(2*time.Second), 120, 3000, 3)

	if stats.WindowStartFrame != 60 {
		t.Errorf("window start frame = %d, want 60", stats.WindowStartFrame)
	}
	if stats.Resamples != 0 || stats.DrawnMean != 0 {
		t.Error("accumulators should be reset after flush")
	}
}
