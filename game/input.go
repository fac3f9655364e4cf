package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input and the pointer signal.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}

	// Pointer position normalized to [-0.5, 0.5]; read here, consumed once
	// per frame when the viewpoint is snapshotted.
	if g.hasPointer && g.view.Width > 0 && g.view.Height > 0 {
		pos := rl.GetMousePosition()
		g.view.SetPointer(pos.X/g.view.Width-0.5, pos.Y/g.view.Height-0.5)
	}
}

// pollVisibility maps the window visibility signal onto the driver state
// machine. Transitions are idempotent under rapid toggling.
func (g *Game) pollVisibility() {
	visible := !rl.IsWindowHidden() && !rl.IsWindowMinimized()
	if g.driver.SetVisible(visible) {
		slog.Info("visibility changed", "state", g.driver.State().String())
	}
}

// pollResize feeds the debouncer and applies the resize once the burst
// settles.
func (g *Game) pollResize(now time.Time) {
	if rl.IsWindowResized() {
		g.resize.Signal(now)
	}
	if g.resize.Fire(now) {
		g.applyResize()
	}
}

// applyResize recomputes surface dimensions and fully reinitializes the
// field. In-flight star positions are discarded, not rescaled.
func (g *Game) applyResize() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	g.view.Resize(w, h)
	g.field.Init(g.bounds())

	slog.Info("surface resized", "width", w, "height", h)
}
