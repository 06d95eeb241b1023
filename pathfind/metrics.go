package pathfind

import (
	"time"

	"github.com/lixenwraith/gridpath/grid"
)

// Optimality scores how close the path comes to the Manhattan lower bound, 0..100.
// An empty path scores 0 and start == end scores 100. Integer arithmetic gives an exact floor;
// the score is clamped to 100 for paths shorter than the bound.
func Optimality(start, end grid.Position, path []grid.Position) int {
	if len(path) == 0 {
		return 0
	}
	theoreticalMin := start.Manhattan(end)
	if theoreticalMin == 0 {
		return 100
	}
	actualLength := len(path) - 1
	if actualLength <= 0 {
		return 100
	}
	return clampPercent(theoreticalMin * 100 / actualLength)
}

// Efficiency is the share of the grid the search did not touch, 0..100.
// Out-of-range inputs clamp; a non-positive total scores 0.
func Efficiency(exploredCount, totalCells int) int {
	if totalCells <= 0 {
		return 0
	}
	if exploredCount < 0 {
		exploredCount = 0
	}
	return clampPercent(100 - exploredCount*100/totalCells)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Report collects the figures shown after a search
type Report struct {
	Found         bool
	PathLength    int
	NodesExplored int
	TotalCells    int
	BarrierCount  int
	Optimality    int
	Efficiency    int
	Elapsed       time.Duration // Set by the caller that timed the search
}

// Analyze derives a Report from a finished search on a size×size grid
func Analyze(size, barrierCount int, start, end grid.Position, r Result) Report {
	total := size * size
	rep := Report{
		Found:         r.Found(),
		PathLength:    r.PathLength(),
		NodesExplored: r.Explored(),
		TotalCells:    total,
		BarrierCount:  barrierCount,
	}
	// No-path runs report zero for both indicators
	if rep.Found {
		rep.Optimality = Optimality(start, end, r.Path)
		rep.Efficiency = Efficiency(r.Explored(), total)
	}
	return rep
}
