// Package pathfind runs a best-first (A*-shaped) search over a 4-connected square grid
// and scores the outcome.
//
// The search marks a cell visited as soon as it is enqueued, so a cell first reached by a
// longer route is never improved later. Combined with a Euclidean heuristic this means the
// returned path is not guaranteed to be the shortest one.
package pathfind

import (
	"math"

	"github.com/lixenwraith/gridpath/grid"
)

// Result is the outcome of a single search
type Result struct {
	// Exploration holds every cell popped from the frontier, in pop order
	Exploration []grid.Position
	// Path runs from start to end inclusive; empty when end is unreachable
	Path []grid.Position
}

// Found reports whether a path was produced
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Explored returns the number of cells popped from the frontier
func (r Result) Explored() int {
	return len(r.Exploration)
}

// PathLength returns the number of steps in the path, 0 when none was found
func (r Result) PathLength() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// PathFinder searches a fixed grid snapshot. It is immutable after construction
// and safe for concurrent FindPath calls.
type PathFinder struct {
	size     int
	barriers *grid.BarrierSet
}

// New binds a finder to a grid size and a copy of the barrier set
func New(size int, barriers *grid.BarrierSet) (*PathFinder, error) {
	if err := grid.ValidateSize(size); err != nil {
		return nil, err
	}
	return &PathFinder{
		size:     size,
		barriers: barriers.Clone(),
	}, nil
}

// Size returns the grid dimension
func (pf *PathFinder) Size() int {
	return pf.size
}

// FindPath searches from start to end. An error is returned only for endpoints off the grid;
// an unreachable end yields a Result with an empty Path.
func (pf *PathFinder) FindPath(start, end grid.Position) (Result, error) {
	if err := grid.CheckBounds(start, pf.size); err != nil {
		return Result{}, err
	}
	if err := grid.CheckBounds(end, pf.size); err != nil {
		return Result{}, err
	}

	visited := make([]bool, pf.size*pf.size)
	nodes := make([]searchNode, 0, 64)
	open := make(frontier, 0, 64)
	var exploration []grid.Position

	enqueue := func(p grid.Position, g, parent int) {
		h := heuristic(p, end)
		nodes = append(nodes, searchNode{
			pos:    p,
			g:      g,
			h:      h,
			f:      float64(g) + h,
			parent: parent,
		})
		idx := len(nodes) - 1
		open.push(frontierEntry{f: nodes[idx].f, seq: idx})
	}

	// Start is pushed unconditionally, barrier or not
	enqueue(start, 0, -1)

	for len(open) > 0 {
		idx := open.pop().seq
		current := nodes[idx]
		exploration = append(exploration, current.pos)
		visited[current.pos.Index(pf.size)] = true

		if current.pos == end {
			return Result{
				Exploration: exploration,
				Path:        reconstruct(nodes, idx),
			}, nil
		}

		for _, d := range grid.Directions {
			next := current.pos.Add(d.Row, d.Col)
			if !next.InBounds(pf.size) {
				continue
			}
			ni := next.Index(pf.size)
			if visited[ni] || pf.barriers.Has(next) {
				continue
			}
			enqueue(next, current.g+1, idx)
			// Visited on enqueue: a later, cheaper route cannot replace this one
			visited[ni] = true
		}
	}

	return Result{Exploration: exploration, Path: []grid.Position{}}, nil
}

// heuristic is the straight-line distance to end
func heuristic(p, end grid.Position) float64 {
	dr := float64(p.Row - end.Row)
	dc := float64(p.Col - end.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// reconstruct walks parent links from the goal node and returns the path start-first
func reconstruct(nodes []searchNode, idx int) []grid.Position {
	var path []grid.Position
	for i := idx; i >= 0; i = nodes[i].parent {
		path = append(path, nodes[i].pos)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
