package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/camera"
)

// TuningPanel exposes the camera parameters as live sliders, for eyeballing
// parallax and emergence-curve settings without editing the config.
type TuningPanel struct {
	x, y  float32
	width float32
}

// NewTuningPanel creates a panel anchored to the top-right corner.
func NewTuningPanel() *TuningPanel {
	return &TuningPanel{x: -280, y: 10, width: 260}
}

// Draw renders the panel and applies slider values to the view. Returns
// true when the user requested a field regeneration.
func (p *TuningPanel) Draw(view *camera.View) bool {
	panelX := p.x
	if panelX < 0 {
		// Negative x anchors from the right edge
		panelX = view.Width + p.x
	}
	panelY := p.y

	rl.DrawRectangle(int32(panelX-10), int32(panelY-5), int32(p.width+20), 170, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Tuning", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += 30

	rl.DrawText("Parallax factor", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	view.ParallaxFactor = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: p.width - 60, Height: 20},
		"0", "0.5",
		view.ParallaxFactor, 0, 0.5,
	)
	rl.DrawText(fmt.Sprintf("%.2f", view.ParallaxFactor), int32(panelX+p.width-50), int32(panelY+2), 16, rl.LightGray)
	panelY += 30

	rl.DrawText("Brightness curve power", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	view.BrightnessPower = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: p.width - 60, Height: 20},
		"1", "20",
		view.BrightnessPower, 1, 20,
	)
	rl.DrawText(fmt.Sprintf("%.0f", view.BrightnessPower), int32(panelX+p.width-50), int32(panelY+2), 16, rl.LightGray)
	panelY += 30

	rl.DrawText("Opacity floor", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	view.MinAlpha = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: p.width - 60, Height: 20},
		"0", "1",
		view.MinAlpha, 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", view.MinAlpha), int32(panelX+p.width-50), int32(panelY+2), 16, rl.LightGray)
	panelY += 30

	return gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 26}, "Regenerate field")
}
