package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.World.Width != 1000 || cfg.World.Height != 1000 {
		t.Errorf("world = %gx%g, want 1000x1000", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Population.Initial != 20 {
		t.Errorf("population.initial = %d, want 20", cfg.Population.Initial)
	}
	if cfg.Blob.InitialEnergy != 300 || cfg.Blob.InitialSpeed != 15 || cfg.Blob.InitialSightDistance != 30 {
		t.Errorf("unexpected blob defaults: %+v", cfg.Blob)
	}
	if cfg.Food.Count != 750 || cfg.Food.Energy != 100 {
		t.Errorf("unexpected food defaults: %+v", cfg.Food)
	}
	if cfg.Day.Length != 24 {
		t.Errorf("day.length = %d, want 24", cfg.Day.Length)
	}
	if cfg.Survival.Threshold != 1 || cfg.Reproduction.Threshold != 2 {
		t.Errorf("thresholds = %d/%d, want 1/2", cfg.Survival.Threshold, cfg.Reproduction.Threshold)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "food:\n  count: 10\nday:\n  length: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Food.Count != 10 {
		t.Errorf("food.count = %d, want 10", cfg.Food.Count)
	}
	if cfg.Day.Length != 5 {
		t.Errorf("day.length = %d, want 5", cfg.Day.Length)
	}
	// Untouched keys keep their defaults
	if cfg.Food.Energy != 100 {
		t.Errorf("food.energy = %g, want default 100", cfg.Food.Energy)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }, "world.width"},
		{"negative height", func(c *Config) { c.World.Height = -1 }, "world.height"},
		{"empty roster", func(c *Config) { c.Population.Initial = 0 }, "population.initial"},
		{"empty food pool", func(c *Config) { c.Food.Count = 0 }, "food.count"},
		{"mutation chance above one", func(c *Config) { c.Mutation.Chance = 1.5 }, "mutation.chance"},
		{"mutation chance below zero", func(c *Config) { c.Mutation.Chance = -0.1 }, "mutation.chance"},
		{"negative survival threshold", func(c *Config) { c.Survival.Threshold = -1 }, "survival.threshold"},
		{"negative reproduction threshold", func(c *Config) { c.Reproduction.Threshold = -2 }, "reproduction.threshold"},
		{"zero day length", func(c *Config) { c.Day.Length = 0 }, "day.length"},
		{"margin swallows world", func(c *Config) { c.Food.EdgeMargin = 500 }, "food.edge_margin"},
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }, "screen"},
		{"negative fps", func(c *Config) { c.Screen.TargetFPS = -1 }, "screen.target_fps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestValidateAcceptsZeroThresholds(t *testing.T) {
	cfg := Default()
	cfg.Survival.Threshold = 0
	cfg.Reproduction.Threshold = 0
	cfg.Blob.ReturnHomeAfterEating = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero thresholds should be valid: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0
	cfg.Day.Length = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "world.width") || !strings.Contains(msg, "day.length") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Food.Count = 42
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestCfgAfterInit(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Day.Length != 24 {
		t.Errorf("Cfg().Day.Length = %d, want 24", Cfg().Day.Length)
	}
}
