package pathfind

import (
	"fmt"

	"github.com/lixenwraith/gridpath/grid"
)

// ValidatePath checks that path is a well-formed solution: in bounds, starting at start,
// ending at end, moving one orthogonal step at a time and avoiding barriers except at the
// endpoints. An empty path is valid.
func ValidatePath(size int, barriers *grid.BarrierSet, start, end grid.Position, path []grid.Position) error {
	if len(path) == 0 {
		return nil
	}
	if path[0] != start {
		return fmt.Errorf("path starts at %v, want %v", path[0], start)
	}
	if last := path[len(path)-1]; last != end {
		return fmt.Errorf("path ends at %v, want %v", last, end)
	}
	for i, p := range path {
		if !p.InBounds(size) {
			return fmt.Errorf("step %d: %w", i, grid.CheckBounds(p, size))
		}
		if p != start && p != end && barriers.Has(p) {
			return fmt.Errorf("step %d: %v is a barrier", i, p)
		}
		if i > 0 && path[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("step %d: %v -> %v is not a unit move", i, path[i-1], p)
		}
	}
	return nil
}
