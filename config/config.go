// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Population   PopulationConfig   `yaml:"population"`
	Cell         CellConfig         `yaml:"cell"`
	Energy       EnergyConfig       `yaml:"energy"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Food         FoodConfig         `yaml:"food"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The world rectangle equals the
// window, so width/height double as the simulation bounds.
type ScreenConfig struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	TargetFPS int      `yaml:"target_fps"`
	TopColor  RGBColor `yaml:"top_color"`
	BotColor  RGBColor `yaml:"bottom_color"`
}

// RGBColor is an RGB triple usable directly from YAML.
type RGBColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// PopulationConfig holds initial population parameters.
type PopulationConfig struct {
	Initial     int     `yaml:"initial"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Distance from the world edge for seeded cells
}

// CellConfig holds per-cell construction and behavior parameters.
type CellConfig struct {
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	BaseSpeed   float64 `yaml:"base_speed"`   // Per-tick step length scale
	SenseRadius float64 `yaml:"sense_radius"` // Food detection distance
	MaxTurn     float64 `yaml:"max_turn"`     // Max heading change per tick (radians)
	WalkJitter  float64 `yaml:"walk_jitter"`  // Random-walk heading perturbation bound
	WallMargin  float64 `yaml:"wall_margin"`  // Boundary clamp distance
	TrailLength int     `yaml:"trail_length"`
	MinEnergy   float64 `yaml:"min_energy"`  // Initial energy range lower bound
	MaxEnergy   float64 `yaml:"max_energy"`  // Initial energy range upper bound
	ColorFloor  int     `yaml:"color_floor"` // Minimum channel value for seeded cell colors
}

// EnergyConfig holds the energy economy parameters.
type EnergyConfig struct {
	LossPerSec float64 `yaml:"loss_per_sec"`
	FromFood   float64 `yaml:"from_food"`
	Max        float64 `yaml:"max"`
}

// ReproductionConfig holds splitting parameters.
type ReproductionConfig struct {
	SplitThreshold    float64 `yaml:"split_threshold"`
	SplitCost         float64 `yaml:"split_cost"`
	Chance            float64 `yaml:"chance"`     // Per-tick split trial probability for qualifying cells
	MinViable         float64 `yaml:"min_viable"` // Below this post-split energy the split aborts
	ChildRadiusFactor float64 `yaml:"child_radius_factor"`
	ColorJitter       int     `yaml:"color_jitter"` // Per-channel offspring color jitter bound
}

// FoodConfig holds food spawn and consumption parameters.
type FoodConfig struct {
	Radius      float64         `yaml:"radius"`
	SpawnBatch  int             `yaml:"spawn_batch"`  // Items per manual batch spawn (F key)
	Max         int             `yaml:"max"`          // Upper bound on live food items
	SpawnMargin float64         `yaml:"spawn_margin"` // Distance from the world edge for random spawns
	AutoSpawn   AutoSpawnConfig `yaml:"auto_spawn"`
}

// AutoSpawnConfig holds the timed food drip parameters.
type AutoSpawnConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Interval float64 `yaml:"interval"` // Simulation seconds between batches
	BatchMin int     `yaml:"batch_min"`
	BatchMax int     `yaml:"batch_max"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW32      float32 // Screen.Width as float32
	WorldH32      float32 // Screen.Height as float32
	SenseRadiusSq float32 // Cell.SenseRadius squared, for hot-path comparisons
	FoodRadius32  float32
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WorldW32 = float32(c.Screen.Width)
	c.Derived.WorldH32 = float32(c.Screen.Height)
	c.Derived.SenseRadiusSq = float32(c.Cell.SenseRadius * c.Cell.SenseRadius)
	c.Derived.FoodRadius32 = float32(c.Food.Radius)
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
