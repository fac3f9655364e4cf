package game

import "time"

// Debouncer coalesces signal bursts into a single trigger after a quiet
// period. Every signal resets the deadline, so a drag-resize only fires
// once the user lets go. It is a reset-and-restart deadline, not a queue.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Signal records an event and restarts the quiet period.
func (d *Debouncer) Signal(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Pending reports whether a trigger is waiting on the quiet period.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Fire returns true exactly once per burst, after the quiet period has
// elapsed with no further signals.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	return true
}
