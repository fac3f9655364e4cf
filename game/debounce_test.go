package game

import (
	"testing"
	"time"
)

func TestDebouncerFiresAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	start := time.Now()

	d.Signal(start)

	if d.Fire(start.Add(100 * time.Millisecond)) {
		t.Error("should not fire inside the quiet period")
	}
	if !d.Fire(start.Add(300 * time.Millisecond)) {
		t.Error("should fire after the quiet period")
	}
}

func TestDebouncerBurstCoalesces(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	start := time.Now()

	// A drag-resize: signals every 50ms for 500ms
	for i := 0; i <= 10; i++ {
		at := start.Add(time.Duration(i*50) * time.Millisecond)
		d.Signal(at)
		if d.Fire(at) {
			t.Fatalf("fired mid-burst at signal %d", i)
		}
	}

	// Quiet period measured from the LAST signal (500ms), not the first
	if d.Fire(start.Add(600 * time.Millisecond)) {
		t.Error("deadline should have been reset by the last signal")
	}
	if !d.Fire(start.Add(800 * time.Millisecond)) {
		t.Error("should fire once the burst settles")
	}
}

func TestDebouncerFiresOncePerBurst(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	start := time.Now()

	d.Signal(start)
	later := start.Add(time.Second)

	if !d.Fire(later) {
		t.Fatal("expected fire")
	}
	if d.Fire(later.Add(time.Second)) {
		t.Error("a burst must trigger exactly once")
	}
	if d.Pending() {
		t.Error("no trigger should be pending after firing")
	}
}

func TestDebouncerIdleDoesNotFire(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)

	if d.Fire(time.Now()) {
		t.Error("unarmed debouncer must never fire")
	}
	if d.Pending() {
		t.Error("unarmed debouncer has nothing pending")
	}
}
