package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/systems"
	"github.com/pthm-cable/starfield/telemetry"
	"github.com/pthm-cable/starfield/ui"
)

// Options holds construction options for the game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game owns the animation driver and wires the field, camera, renderer and
// telemetry together. All mutation happens on the single frame-loop
// goroutine; asynchronous inputs (pointer, resize, visibility) are polled at
// the start of each frame.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	view  *camera.View
	field *systems.Field
	stars *renderer.StarRenderer
	hud   *ui.HUD
	panel *ui.TuningPanel

	driver *Driver
	resize *Debouncer

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	frame         int64
	paused        bool
	showPanel     bool
	lastDrawn     int
	lastResampled int

	headless       bool
	logStats       bool
	hasPointer     bool
	stepsPerUpdate int
}

// NewGameWithOptions creates a game instance. In graphical mode the window
// must already exist; its current dimensions seed the view. In headless mode
// the configured screen dimensions are used and raylib is never touched.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	w, h := cfg.Derived.ScreenW32, cfg.Derived.ScreenH32
	if !opts.Headless {
		w = float32(rl.GetScreenWidth())
		h = float32(rl.GetScreenHeight())
	}

	view := camera.New(w, h)
	view.ParallaxFactor = float32(cfg.Camera.ParallaxFactor)
	view.ProjectionK = float32(cfg.Camera.ProjectionConstant)
	view.BrightnessPower = float32(cfg.Camera.BrightnessCurvePower)
	view.MinAlpha = float32(cfg.Camera.MinAlpha)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		view:           view,
		stars:          renderer.NewStarRenderer(),
		hud:            ui.NewHUD(),
		panel:          ui.NewTuningPanel(),
		driver:         NewDriver(),
		resize:         NewDebouncer(time.Duration(cfg.Driver.ResizeDebounceMs) * time.Millisecond),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector:      telemetry.NewCollector(statsWindow),
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		hasPointer:     !opts.Headless,
		stepsPerUpdate: stepsPerUpdate,
	}

	g.field = systems.NewField(cfg, g.bounds(), g.rng)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	// The caller only constructs a game once the surface is confirmed
	// present, so the driver enters Running immediately.
	g.driver.Start()

	return g
}

// bounds derives the star generation bounds from the current view. Without
// a pointer there is no parallax and the larger static multiplier
// compensates for the unshifted edges.
func (g *Game) bounds() systems.Bounds {
	mult := g.cfg.Field.AreaMultiplier
	if !g.hasPointer {
		mult = g.cfg.Field.TouchAreaMultiplier
	}
	return systems.Bounds{
		Width:          g.view.Width,
		Height:         g.view.Height,
		AreaMultiplier: float32(mult),
	}
}

// Update polls inputs and advances the simulation one frame.
func (g *Game) Update() {
	now := time.Now()

	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)

	g.handleInput()
	g.pollVisibility()
	g.pollResize(now)

	if !g.driver.Running() {
		g.collector.RecordStopped()
		return
	}

	if g.paused {
		return
	}

	g.perf.StartPhase(telemetry.PhaseSimulate)
	g.lastResampled = g.field.Step()
	g.frame++
}

// Draw renders the current frame. While Stopped the surface is still
// presented (keeps the event pump and frame pacing alive) but no field work
// runs, which is the poll-model equivalent of cancelling the frame request.
func (g *Game) Draw() {
	if g.headless {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if g.driver.Running() {
		g.perf.StartPhase(telemetry.PhaseDraw)

		vp := g.view.Snapshot()
		g.lastDrawn = g.stars.Draw(g.field, vp)

		g.hud.Draw(g.hudData())
		g.hud.DrawControls(int32(g.view.Height))
		if g.showPanel && g.panel.Draw(g.view) {
			g.field.Init(g.bounds())
		}

		g.perf.StartPhase(telemetry.PhaseTelemetry)
		g.collector.RecordFrame(g.lastDrawn, g.lastResampled)
		g.lastResampled = 0
		g.flushTelemetry(time.Now())
		g.perf.EndFrame()
	}

	rl.EndDrawing()
}

// UpdateHeadless advances the simulation without a surface. Visibility
// counting replaces drawing so telemetry stays meaningful.
func (g *Game) UpdateHeadless() {
	now := time.Now()

	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseSimulate)

	resampled := 0
	for i := 0; i < g.stepsPerUpdate; i++ {
		resampled += g.field.Step()
		g.frame++
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	vp := g.view.Snapshot()
	g.collector.RecordFrame(countVisible(g.field, vp), resampled)
	g.flushTelemetry(now)
	g.perf.EndFrame()
}

// countVisible projects every star and counts the ones inside the surface.
func countVisible(f *systems.Field, vp camera.Viewpoint) int {
	n := 0
	for _, bucket := range f.Buckets {
		for i := range bucket {
			s := &bucket[i]
			if _, _, visible := vp.Project(s.X, s.Y, s.Z); visible {
				n++
			}
		}
	}
	return n
}

// flushTelemetry emits window stats once per stats window.
func (g *Game) flushTelemetry(now time.Time) {
	if !g.collector.ShouldFlush(now) {
		return
	}

	stats := g.collector.Flush(now, g.frame, g.field.Len(), len(g.field.Buckets))
	perfStats := g.perf.Stats()

	if g.logStats {
		slog.Info("window",
			"window_end", stats.WindowEndFrame,
			"stars", stats.StarCount,
			"drawn_mean", stats.DrawnMean,
			"resamples_per_sec", stats.ResamplesPerSec,
			"stopped_frames", stats.StoppedFrames,
		)
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(perfStats.ToCSV(g.frame)); err != nil {
		slog.Warn("perf write failed", "error", err)
	}
}

// hudData assembles the HUD snapshot for this frame.
func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Title:     g.cfg.Screen.Title,
		Frame:     g.frame,
		FPS:       rl.GetFPS(),
		StarCount: g.field.Len(),
		Buckets:   len(g.field.Buckets),
		Drawn:     g.lastDrawn,
		Paused:    g.paused,
	}
}

// Frame returns the current frame counter.
func (g *Game) Frame() int64 {
	return g.frame
}

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
}
