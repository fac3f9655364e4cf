package game

import "testing"

func TestDriverInitialState(t *testing.T) {
	d := NewDriver()

	if d.State() != Stopped {
		t.Errorf("expected initial state stopped, got %s", d.State())
	}
	if d.Running() {
		t.Error("new driver should not be running")
	}
}

func TestDriverTransitions(t *testing.T) {
	d := NewDriver()

	if !d.Start() {
		t.Error("first start should transition")
	}
	if d.State() != Running {
		t.Errorf("expected running, got %s", d.State())
	}

	if !d.Stop() {
		t.Error("stop from running should transition")
	}
	if d.State() != Stopped {
		t.Errorf("expected stopped, got %s", d.State())
	}
}

func TestDriverIdempotentTransitions(t *testing.T) {
	d := NewDriver()
	d.Start()

	// Re-starting a running driver must not report a transition: only one
	// frame loop may ever be in flight.
	if d.Start() {
		t.Error("second start should be a no-op")
	}

	d.Stop()
	if d.Stop() {
		t.Error("second stop should be a no-op")
	}
}

func TestDriverVisibilityToggling(t *testing.T) {
	d := NewDriver()
	d.Start()

	// Rapid toggling: every loss/gain pair lands back in Running with
	// exactly one transition per edge.
	for i := 0; i < 10; i++ {
		if !d.SetVisible(false) {
			t.Fatalf("toggle %d: visibility loss should stop the driver", i)
		}
		if d.SetVisible(false) {
			t.Fatalf("toggle %d: repeated loss should be a no-op", i)
		}
		if !d.SetVisible(true) {
			t.Fatalf("toggle %d: visibility gain should resume the driver", i)
		}
		if d.SetVisible(true) {
			t.Fatalf("toggle %d: repeated gain should be a no-op", i)
		}
	}

	if !d.Running() {
		t.Error("driver should be running after final visibility gain")
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Stopped.String() != "stopped" {
		t.Error("unexpected state names")
	}
}
