// Benchmark for the starfield simulation step: runs headless across a range
// of population sizes and reports per-frame timing as CSV.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/systems"
	"github.com/pthm-cable/starfield/telemetry"
)

// Result is one benchmark row.
type Result struct {
	Stars             int     `csv:"stars"`
	Frames            int     `csv:"frames"`
	AvgStepUS         float64 `csv:"avg_step_us"`
	P50StepUS         float64 `csv:"p50_step_us"`
	P90StepUS         float64 `csv:"p90_step_us"`
	MaxStepUS         float64 `csv:"max_step_us"`
	ResamplesPerFrame float64 `csv:"resamples_per_frame"`
}

var populations = []int{500, 1000, 3000, 5000, 10000}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	frames := flag.Int("frames", 1000, "Frames to simulate per population size")
	seed := flag.Int64("seed", 42, "RNG seed")
	out := flag.String("out", "", "CSV output path (empty = stdout)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	bounds := systems.Bounds{
		Width:          cfg.Derived.ScreenW32,
		Height:         cfg.Derived.ScreenH32,
		AreaMultiplier: float32(cfg.Field.AreaMultiplier),
	}

	results := make([]Result, 0, len(populations))
	for _, count := range populations {
		cfg.Field.Count = count
		slog.Info("benchmarking", "stars", count, "frames", *frames)
		results = append(results, run(cfg, bounds, *frames, *seed))
	}

	dest := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		dest = f
	}

	if err := gocsv.Marshal(results, dest); err != nil {
		slog.Error("failed to write results", "error", err)
		os.Exit(1)
	}
}

// run simulates one population size and aggregates step timings.
func run(cfg *config.Config, bounds systems.Bounds, frames int, seed int64) Result {
	field := systems.NewField(cfg, bounds, rand.New(rand.NewSource(seed)))

	stepUS := make([]float64, 0, frames)
	resamples := 0

	for i := 0; i < frames; i++ {
		start := time.Now()
		resamples += field.Step()
		stepUS = append(stepUS, float64(time.Since(start).Microseconds()))
	}

	sorted := make([]float64, len(stepUS))
	copy(sorted, stepUS)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range stepUS {
		sum += v
	}

	return Result{
		Stars:             cfg.Field.Count,
		Frames:            frames,
		AvgStepUS:         sum / float64(frames),
		P50StepUS:         telemetry.Percentile(sorted, 0.50),
		P90StepUS:         telemetry.Percentile(sorted, 0.90),
		MaxStepUS:         sorted[len(sorted)-1],
		ResamplesPerFrame: float64(resamples) / float64(frames),
	}
}
