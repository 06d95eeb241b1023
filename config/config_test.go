package config

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridpath/parameter"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GridSize != parameter.DefaultGridSize || cfg.AnimationDelay != parameter.DefaultAnimationDelay {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

// TestLoadEnv_Overlay verifies every variable maps to its field
func TestLoadEnv_Overlay(t *testing.T) {
	cfg := Default()
	err := cfg.LoadEnv(envMap(map[string]string{
		EnvGridSize: "40",
		EnvDensity:  "300",
		EnvAnimate:  "false",
		EnvDelayMs:  "250",
		EnvSound:    "true",
		EnvSeed:     "77",
		EnvDebug:    "1",
		EnvMaze:     "random",
	}))
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}

	if cfg.GridSize != 40 || cfg.Density != 300 || cfg.Animate || !cfg.Sound || !cfg.Debug {
		t.Errorf("overlay mismatch: %+v", cfg)
	}
	if cfg.AnimationDelay != 250*time.Millisecond {
		t.Errorf("AnimationDelay = %v", cfg.AnimationDelay)
	}
	if cfg.Seed != 77 || cfg.Maze != "random" {
		t.Errorf("Seed/Maze = %d/%q", cfg.Seed, cfg.Maze)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("overlaid config invalid: %v", err)
	}
}

func TestLoadEnv_Malformed(t *testing.T) {
	for _, key := range []string{EnvGridSize, EnvDensity, EnvAnimate, EnvDelayMs, EnvSound, EnvSeed, EnvDebug} {
		cfg := Default()
		if err := cfg.LoadEnv(envMap(map[string]string{key: "not-a-value"})); err == nil {
			t.Errorf("%s: expected parse error", key)
		}
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid too small", func(c *Config) { c.GridSize = 1 }},
		{"grid too large", func(c *Config) { c.GridSize = parameter.MaxGridSize + 1 }},
		{"density too high", func(c *Config) { c.GridSize = 4; c.Density = 16 }},
		{"negative delay", func(c *Config) { c.AnimationDelay = -time.Millisecond }},
		{"delay too long", func(c *Config) { c.AnimationDelay = parameter.MaxAnimationDelay + time.Millisecond }},
		{"unknown maze", func(c *Config) { c.Maze = "hex" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := Default()
	cfg.GridSize = 4
	cfg.Density = MaxDensity(4)
	if err := cfg.Validate(); err != nil {
		t.Errorf("max density rejected: %v", err)
	}
}

func TestFitDensity(t *testing.T) {
	cfg := Default()
	cfg.GridSize = 5
	cfg.FitDensity()
	if cfg.Density != 24 {
		t.Errorf("Density = %d, want 24", cfg.Density)
	}
	cfg.Density = 3
	cfg.FitDensity()
	if cfg.Density != 3 {
		t.Errorf("Density changed to %d", cfg.Density)
	}
}

// TestLoad_FitsDensityToGrid verifies a small env grid lowers the default density
func TestLoad_FitsDensityToGrid(t *testing.T) {
	t.Setenv(EnvGridSize, "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GridSize != 5 || cfg.Density != 24 {
		t.Errorf("size/density = %d/%d, want 5/24", cfg.GridSize, cfg.Density)
	}
}

func TestLoad_ExplicitDensityValidated(t *testing.T) {
	t.Setenv(EnvGridSize, "5")
	t.Setenv(EnvDensity, "100")

	if _, err := Load(); err == nil {
		t.Error("explicit density above the grid limit accepted")
	}
}
