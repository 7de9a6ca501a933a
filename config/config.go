// Package config provides configuration loading and access for the heart field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid config")

// Config holds all heart field configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Frame     FrameConfig     `yaml:"frame"`
	Tiers     []TierConfig    `yaml:"tiers"`
	Particle  ParticleConfig  `yaml:"particle"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"` // host callback rate, not the update rate
	Resizable bool   `yaml:"resizable"`
	Title     string `yaml:"title"`
}

// FrameConfig holds frame pacing settings.
type FrameConfig struct {
	TargetRate float64 `yaml:"target_rate"` // updates per second
}

// TierConfig describes one viewport tier.
type TierConfig struct {
	Name              string  `yaml:"name"`
	MaxWidth          int     `yaml:"max_width"` // exclusive; 0 = unbounded
	ParticleCount     int     `yaml:"particle_count"`
	ParticleScale     float64 `yaml:"particle_scale"`
	InteractionRadius float64 `yaml:"interaction_radius"`
}

// ParticleConfig holds particle appearance ranges.
type ParticleConfig struct {
	Color     string  `yaml:"color"` // hex, e.g. "#ff0000"
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MinAlpha  float64 `yaml:"min_alpha"`
	MaxAlpha  float64 `yaml:"max_alpha"`
}

// PhysicsConfig holds per-tick motion parameters.
type PhysicsConfig struct {
	EaseFactor        float64 `yaml:"ease_factor"`        // fraction of the home offset closed per tick
	RepulsionStrength float64 `yaml:"repulsion_strength"` // displacement at zero distance
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// HeadlessConfig holds settings for the synthetic host.
type HeadlessConfig struct {
	HostRate    float64 `yaml:"host_rate"`
	SweepPeriod float64 `yaml:"sweep_period"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameInterval time.Duration  // 1/Frame.TargetRate
	HostStep      time.Duration  // 1/Headless.HostRate
	StatsWindow   time.Duration  // Telemetry.StatsWindow as a duration
	SweepPeriod   time.Duration  // Headless.SweepPeriod as a duration
	BaseColor     colorful.Color // parsed Particle.Color
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Merge unmarshals data over cfg. Only fields present in data are overwritten;
// a tiers list replaces the default list as a whole.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate reports the first configuration error. Degenerate values that
// would only surface as bad arithmetic at frame time are rejected here.
func (c *Config) Validate() error {
	if !(c.Frame.TargetRate > 0) || math.IsInf(c.Frame.TargetRate, 0) {
		return fmt.Errorf("frame.target_rate must be positive, got %v: %w", c.Frame.TargetRate, ErrInvalid)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one tier is required: %w", ErrInvalid)
	}
	prevMax := 0
	for i, t := range c.Tiers {
		if t.ParticleCount <= 0 {
			return fmt.Errorf("tier %q: particle_count must be positive: %w", t.Name, ErrInvalid)
		}
		if !(t.ParticleScale > 0) || math.IsInf(t.ParticleScale, 0) {
			return fmt.Errorf("tier %q: particle_scale must be positive: %w", t.Name, ErrInvalid)
		}
		if !(t.InteractionRadius > 0) || math.IsInf(t.InteractionRadius, 0) {
			return fmt.Errorf("tier %q: interaction_radius must be positive: %w", t.Name, ErrInvalid)
		}
		last := i == len(c.Tiers)-1
		switch {
		case t.MaxWidth == 0 && !last:
			return fmt.Errorf("tier %q: only the last tier may be unbounded: %w", t.Name, ErrInvalid)
		case t.MaxWidth < 0:
			return fmt.Errorf("tier %q: max_width must not be negative: %w", t.Name, ErrInvalid)
		case t.MaxWidth != 0 && t.MaxWidth <= prevMax:
			return fmt.Errorf("tier %q: max_width must be ascending: %w", t.Name, ErrInvalid)
		}
		prevMax = t.MaxWidth
	}

	p := c.Particle
	if _, err := colorful.Hex(p.Color); err != nil {
		return fmt.Errorf("particle.color %q: %v: %w", p.Color, err, ErrInvalid)
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		return fmt.Errorf("particle radius range [%v, %v] is invalid: %w", p.MinRadius, p.MaxRadius, ErrInvalid)
	}
	if p.MinAlpha < 0 || p.MaxAlpha > 1 || p.MaxAlpha < p.MinAlpha {
		return fmt.Errorf("particle alpha range [%v, %v] is invalid: %w", p.MinAlpha, p.MaxAlpha, ErrInvalid)
	}

	if !(c.Physics.EaseFactor > 0 && c.Physics.EaseFactor < 1) {
		return fmt.Errorf("physics.ease_factor must be in (0, 1), got %v: %w", c.Physics.EaseFactor, ErrInvalid)
	}
	if c.Physics.RepulsionStrength < 0 || math.IsInf(c.Physics.RepulsionStrength, 0) {
		return fmt.Errorf("physics.repulsion_strength must be finite and non-negative: %w", ErrInvalid)
	}

	if !(c.Telemetry.StatsWindow > 0) || math.IsInf(c.Telemetry.StatsWindow, 0) {
		return fmt.Errorf("telemetry.stats_window must be positive: %w", ErrInvalid)
	}
	if !(c.Headless.HostRate > 0) || math.IsInf(c.Headless.HostRate, 0) {
		return fmt.Errorf("headless.host_rate must be positive: %w", ErrInvalid)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FrameInterval = rateToInterval(c.Frame.TargetRate)
	// Rounded up so that whole host steps never fall 1ns short of a frame
	c.Derived.HostStep = time.Duration(math.Ceil(float64(time.Second) / c.Headless.HostRate))
	c.Derived.StatsWindow = time.Duration(c.Telemetry.StatsWindow * float64(time.Second))
	c.Derived.SweepPeriod = time.Duration(c.Headless.SweepPeriod * float64(time.Second))

	// Validated above
	c.Derived.BaseColor, _ = colorful.Hex(c.Particle.Color)

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Telemetry.PerfCollectorWindow < 1 {
		c.Telemetry.PerfCollectorWindow = 60
	}
}

func rateToInterval(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / rate)
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
