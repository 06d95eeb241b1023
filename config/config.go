// Package config resolves runtime settings from defaults and GRIDPATH_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/parameter"
)

// Environment variable names
const (
	EnvGridSize = "GRIDPATH_GRID_SIZE"
	EnvDensity  = "GRIDPATH_DENSITY"
	EnvAnimate  = "GRIDPATH_ANIMATE"
	EnvDelayMs  = "GRIDPATH_DELAY_MS"
	EnvSound    = "GRIDPATH_SOUND"
	EnvSeed     = "GRIDPATH_SEED"
	EnvDebug    = "GRIDPATH_DEBUG"
	EnvMaze     = "GRIDPATH_MAZE"
)

// Config holds visualizer and CLI settings
type Config struct {
	GridSize       int
	Density        int
	Animate        bool
	AnimationDelay time.Duration
	Sound          bool
	Seed           int64  // 0 = time-based
	Debug          bool   // Enables file logging
	Maze           string // Generator kind name
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		GridSize:       parameter.DefaultGridSize,
		Density:        parameter.DefaultMazeDensity,
		Animate:        true,
		AnimationDelay: parameter.DefaultAnimationDelay,
		Sound:          false,
		Maze:           parameter.DefaultMazeKind,
	}
}

// Load returns defaults overlaid with the environment, validated. Unless GRIDPATH_DENSITY is
// set, density is fitted to the configured grid size.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.LoadEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if _, ok := os.LookupEnv(EnvDensity); !ok {
		cfg.FitDensity()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv overlays values found through lookup; unset variables leave fields untouched
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGridSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvGridSize)
		}
		c.GridSize = n
	}

	if v, ok := lookup(EnvDensity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvDensity)
		}
		c.Density = n
	}

	if v, ok := lookup(EnvAnimate); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvAnimate)
		}
		c.Animate = b
	}

	if v, ok := lookup(EnvDelayMs); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvDelayMs)
		}
		c.AnimationDelay = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvSound)
		}
		c.Sound = b
	}

	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvSeed)
		}
		c.Seed = s
	}

	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvDebug)
		}
		c.Debug = b
	}

	if v, ok := lookup(EnvMaze); ok {
		c.Maze = v
	}

	return nil
}

// Validate checks ranges. Density must leave room for start, end and every barrier the
// random generator may draw, otherwise its rejection sampling cannot finish.
func (c *Config) Validate() error {
	if c.GridSize < parameter.MinGridSize || c.GridSize > parameter.MaxGridSize {
		return errors.Errorf("grid size %d outside [%d, %d]", c.GridSize, parameter.MinGridSize, parameter.MaxGridSize)
	}
	if limit := MaxDensity(c.GridSize); c.Density > limit {
		return errors.Errorf("density %d exceeds %d for a %dx%d grid", c.Density, limit, c.GridSize, c.GridSize)
	}
	if c.AnimationDelay < 0 || c.AnimationDelay > parameter.MaxAnimationDelay {
		return errors.Errorf("animation delay %v outside [0, %v]", c.AnimationDelay, parameter.MaxAnimationDelay)
	}
	if _, err := maze.ParseKind(c.Maze); err != nil {
		return errors.Wrap(err, "maze")
	}
	return nil
}

// MaxDensity is the largest density whose barrier draw always fits: at most density-1
// barriers plus start and end must not exceed the cell count
func MaxDensity(gridSize int) int {
	return gridSize*gridSize - 1
}

// FitDensity lowers Density to the grid's limit when it exceeds it
func (c *Config) FitDensity() {
	if limit := MaxDensity(c.GridSize); c.Density > limit {
		c.Density = limit
	}
}
