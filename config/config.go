// Package config provides configuration loading and access for the starfield.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all starfield configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Camera    CameraConfig    `yaml:"camera"`
	Driver    DriverConfig    `yaml:"driver"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds star population parameters.
type FieldConfig struct {
	Count               int      `yaml:"count"`                 // Total stars across all color buckets
	MinSize             float64  `yaml:"min_size"`              // Base render size range
	MaxSize             float64  `yaml:"max_size"`
	MinSpeed            float64  `yaml:"min_speed"`             // Depth decrement per frame
	MaxSpeed            float64  `yaml:"max_speed"`
	AreaMultiplier      float64  `yaml:"area_multiplier"`       // Generation area scale (pointer devices)
	TouchAreaMultiplier float64  `yaml:"touch_area_multiplier"` // Generation area scale without parallax
	Palette             []string `yaml:"palette"`               // Hex colors, one bucket each
}

// CameraConfig holds projection and parallax parameters.
type CameraConfig struct {
	ParallaxFactor       float64 `yaml:"parallax_factor"`        // Vanishing point shift per pointer unit
	ProjectionConstant   float64 `yaml:"projection_constant"`    // Perspective scale numerator
	BrightnessCurvePower float64 `yaml:"brightness_curve_power"` // Size emergence curve exponent
	MinAlpha             float64 `yaml:"min_alpha"`              // Opacity floor at the far plane
}

// DriverConfig holds animation driver parameters.
type DriverConfig struct {
	ResizeDebounceMs int `yaml:"resize_debounce_ms"` // Quiescence window before field reinit
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// RGBA is a parsed palette color.
type RGBA struct {
	R, G, B, A uint8
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
	MinSize32  float32
	MaxSize32  float32
	MinSpeed32 float32
	MaxSpeed32 float32
	Palette    []RGBA // Parsed Field.Palette, declaration order
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
// The only failure mode is an unparseable palette entry.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.MinSize32 = float32(c.Field.MinSize)
	c.Derived.MaxSize32 = float32(c.Field.MaxSize)
	c.Derived.MinSpeed32 = float32(c.Field.MinSpeed)
	c.Derived.MaxSpeed32 = float32(c.Field.MaxSpeed)

	if len(c.Field.Palette) == 0 {
		c.Field.Palette = []string{"#ffffff"}
	}

	c.Derived.Palette = make([]RGBA, len(c.Field.Palette))
	for i, hex := range c.Field.Palette {
		rgba, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("palette entry %d: %w", i, err)
		}
		c.Derived.Palette[i] = rgba
	}

	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into an RGBA.
func ParseHexColor(s string) (RGBA, error) {
	raw := strings.TrimPrefix(s, "#")

	var r, g, b uint64
	var a uint64 = 0xff
	var err error

	switch len(raw) {
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(raw[0:1], 2), 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(strings.Repeat(raw[1:2], 2), 16, 8); err != nil {
			break
		}
		b, err = strconv.ParseUint(strings.Repeat(raw[2:3], 2), 16, 8)
	case 8:
		if a, err = strconv.ParseUint(raw[6:8], 16, 8); err != nil {
			break
		}
		fallthrough
	case 6:
		if r, err = strconv.ParseUint(raw[0:2], 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(raw[2:4], 16, 8); err != nil {
			break
		}
		b, err = strconv.ParseUint(raw[4:6], 16, 8)
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
