package pathfind

import "github.com/lixenwraith/gridpath/grid"

// searchNode is a candidate cell held in the per-search arena.
// parent indexes into the same arena, -1 for the root.
type searchNode struct {
	pos    grid.Position
	g      int
	h      float64
	f      float64
	parent int
}

// frontierEntry references an arena node; seq is the arena index and doubles as insertion order
type frontierEntry struct {
	f   float64
	seq int
}

// before orders by f, then by insertion so equal-f nodes pop FIFO
func (e frontierEntry) before(o frontierEntry) bool {
	if e.f != o.f {
		return e.f < o.f
	}
	return e.seq < o.seq
}

// --- Min-heap keyed on f ---

type frontier []frontierEntry

func (h *frontier) push(e frontierEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].before((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *frontier) pop() frontierEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].before((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].before((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}
