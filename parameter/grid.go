package parameter

import "time"

// Grid
const (
	// DefaultGridSize is the side length of a fresh grid (cells)
	DefaultGridSize = 30

	// MinGridSize is the smallest grid maze generation accepts
	MinGridSize = 2

	// MaxGridSize bounds interactive resizing; larger grids do not fit a terminal
	MaxGridSize = 200
)

// Maze generation
const (
	// DefaultMazeDensity is the exclusive upper bound on random barriers
	DefaultMazeDensity = 100

	// MinMazeDensity is the lower bound of the interactive density control
	MinMazeDensity = 0

	// MazeDensityStep is the increment applied by the density keys
	MazeDensityStep = 25

	// DefaultMazeKind names the generator used when none is given
	DefaultMazeKind = "prims"
)

// Animation
const (
	// DefaultAnimationDelay is the time between replayed cells
	DefaultAnimationDelay = 100 * time.Millisecond

	// MaxAnimationDelay is the upper bound of the delay control
	MaxAnimationDelay = 500 * time.Millisecond

	// AnimationDelayStep is the increment applied by the delay keys
	AnimationDelayStep = 25 * time.Millisecond

	// MinAnimationTick keeps a zero delay from spinning the event loop
	MinAnimationTick = time.Millisecond
)

// Labels shown in the status panel
const (
	AlgorithmName = "A*"
	HeuristicName = "Euclidean"
)
