// Package config provides configuration loading and access for the spatial
// pipeline and its demos.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Kinematics KinematicsConfig `yaml:"kinematics"`
	Sync       SyncConfig       `yaml:"sync"`
	Logging    LoggingConfig    `yaml:"logging"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Demo       DemoConfig       `yaml:"demo"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// KinematicsConfig controls the integration stage.
type KinematicsConfig struct {
	Enabled bool    `yaml:"enabled"`
	MaxDT   float64 `yaml:"max_dt"` // Longest frame integrated in one step (0 = no clamp)
}

// SyncConfig holds the comparison tolerances used by the sync stages.
type SyncConfig struct {
	DirectionTolerance float64 `yaml:"direction_tolerance"` // Per-component slack between unit directions
	PlanarTolerance    float64 `yaml:"planar_tolerance"`    // Largest x/y quaternion part treated as a z rotation
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json or console
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow      int    `yaml:"perf_window"`       // Ticks averaged by the perf collector
	PerfLogInterval int    `yaml:"perf_log_interval"` // Ticks between perf log lines (0 = off)
	OutputDir       string `yaml:"output_dir"`        // Directory for CSV traces (empty = off)
}

// DemoConfig holds settings for the example programs.
type DemoConfig struct {
	Screen         ScreenConfig `yaml:"screen"`
	TimeStep       float64      `yaml:"time_step"`
	PlayArea       AreaConfig   `yaml:"play_area"`
	PlayerSpeed    float64      `yaml:"player_speed"`     // World units per second
	PlayerTurnRate float64      `yaml:"player_turn_rate"` // Degrees per second
	EnemyTurnRate  float64      `yaml:"enemy_turn_rate"`  // Degrees per second
	Life           LifeConfig   `yaml:"life"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// AreaConfig is a rectangle centred on the origin.
type AreaConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// LifeConfig holds the terminal Game of Life settings.
type LifeConfig struct {
	Width       int     `yaml:"width"`        // Board width in cells (0 = terminal width)
	Height      int     `yaml:"height"`       // Board height in cells (0 = terminal height)
	SeedDensity float64 `yaml:"seed_density"` // Fraction of cells alive at start
	TickMS      int     `yaml:"tick_ms"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxDT32    float32 // Kinematics.MaxDT as float32
	TimeStep32 float32 // Demo.TimeStep as float32
	ScreenW32  float32
	ScreenH32  float32
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

// Defaults returns the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
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
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Kinematics.MaxDT < 0 {
		return fmt.Errorf("kinematics.max_dt must not be negative, got %g", c.Kinematics.MaxDT)
	}
	if c.Sync.DirectionTolerance < 0 || c.Sync.PlanarTolerance < 0 {
		return fmt.Errorf("sync tolerances must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("logging.encoding must be json or console, got %q", c.Logging.Encoding)
	}
	if d := c.Demo.Life.SeedDensity; d < 0 || d > 1 {
		return fmt.Errorf("demo.life.seed_density must be in [0, 1], got %g", d)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MaxDT32 = float32(c.Kinematics.MaxDT)
	c.Derived.TimeStep32 = float32(c.Demo.TimeStep)
	c.Derived.ScreenW32 = float32(c.Demo.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Demo.Screen.Height)
}

// NewLogger builds a zap logger from the logging section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	if c.Logging.Encoding == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc := zap.Config{
		Level:            level,
		Encoding:         c.Logging.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
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
