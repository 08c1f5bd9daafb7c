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
	World        WorldConfig        `yaml:"world"`
	Population   PopulationConfig   `yaml:"population"`
	Blob         BlobConfig         `yaml:"blob"`
	Mutation     MutationConfig     `yaml:"mutation"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Survival     SurvivalConfig     `yaml:"survival"`
	Food         FoodConfig         `yaml:"food"`
	Day          DayConfig          `yaml:"day"`
	Simulation   SimulationConfig   `yaml:"simulation"`
	Screen       ScreenConfig       `yaml:"screen"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

// WorldConfig holds the world bounds. Positions live in [0, Width] x [0, Height].
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig holds founder population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// BlobConfig holds per-blob defaults and foraging heuristics.
type BlobConfig struct {
	InitialEnergy            float64 `yaml:"initial_energy"`
	InitialSpeed             float64 `yaml:"initial_speed"`
	InitialSightDistance     float64 `yaml:"initial_sight_distance"`
	ReturnHomeAfterEating    int     `yaml:"return_home_after_eating"`     // go home as soon as this much is eaten
	MinReturnHomeAfterEating int     `yaml:"min_return_home_after_eating"` // above this, go home when energy barely allows it
}

// MutationConfig holds trait mutation parameters.
type MutationConfig struct {
	Chance float64 `yaml:"chance"` // per-gene probability in [0, 1]
	Max    float64 `yaml:"max"`    // perturbation magnitude is drawn from [0, Max)
}

// ReproductionConfig holds reproduction parameters.
type ReproductionConfig struct {
	Threshold   int     `yaml:"threshold"`
	SpawnOffset float64 `yaml:"spawn_offset"`
}

// SurvivalConfig holds the day-end survival rule.
type SurvivalConfig struct {
	Threshold int `yaml:"threshold"`
}

// FoodConfig holds per-day food generation parameters.
type FoodConfig struct {
	Count      int     `yaml:"count"`
	Energy     float64 `yaml:"energy"`
	Spread     float64 `yaml:"spread"`      // gaussian sigma as a fraction of world size
	EdgeMargin float64 `yaml:"edge_margin"` // minimum distance from a world edge
}

// DayConfig holds day-cycle parameters.
type DayConfig struct {
	Length int `yaml:"length"` // ticks per day
}

// SimulationConfig holds tick dispatch parameters.
type SimulationConfig struct {
	Parallel          bool `yaml:"parallel"`
	Workers           int  `yaml:"workers"` // 0 = GOMAXPROCS
	ParallelThreshold int  `yaml:"parallel_threshold"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // ticks averaged by the perf collector
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

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
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
