package game

// State is the animation driver state.
type State uint8

const (
	// Stopped: the surface is not presented; no simulation or drawing runs.
	Stopped State = iota
	// Running: one simulate+draw pass per frame.
	Running
)

// String returns the state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Driver owns the run/stop lifecycle of the frame loop. It is driven by the
// host visibility signal and is the only component allowed to start or stop
// frame production. Transitions are idempotent so rapid visibility toggling
// cannot double-start a loop or double-cancel one.
type Driver struct {
	state State
}

// NewDriver creates a driver in the Stopped state. The caller starts it once
// the surface is confirmed present.
func NewDriver() *Driver {
	return &Driver{state: Stopped}
}

// State returns the current state.
func (d *Driver) State() State {
	return d.state
}

// Running reports whether frames should be produced.
func (d *Driver) Running() bool {
	return d.state == Running
}

// Start transitions Stopped -> Running. Returns true if a transition
// happened, false if already running.
func (d *Driver) Start() bool {
	if d.state == Running {
		return false
	}
	d.state = Running
	return true
}

// Stop transitions Running -> Stopped. Returns true if a transition
// happened, false if already stopped.
func (d *Driver) Stop() bool {
	if d.state == Stopped {
		return false
	}
	d.state = Stopped
	return true
}

// SetVisible maps the host visibility signal onto the state machine.
// Returns true when the state changed.
func (d *Driver) SetVisible(visible bool) bool {
	if visible {
		return d.Start()
	}
	return d.Stop()
}
