package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/gridpath/grid"
)

// Reachable returns every open cell connected to from through orthogonal moves.
// A blocked or off-grid origin yields an empty set.
func Reachable(size int, barriers *grid.BarrierSet, from grid.Position) mapset.Set[grid.Position] {
	visited := mapset.New[grid.Position]()
	if !from.InBounds(size) || barriers.Has(from) {
		return visited
	}

	queue := []grid.Position{from}
	visited.Put(from)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range grid.Directions {
			next := curr.Add(d.Row, d.Col)
			if next.InBounds(size) && !barriers.Has(next) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// Connected reports whether End can be reached from Start
func (d Data) Connected() bool {
	return Reachable(d.Size, d.Barriers, d.Start).Has(d.End)
}

// Isolated returns the open cells, other than End, that Start cannot reach
func (d Data) Isolated() []grid.Position {
	reach := Reachable(d.Size, d.Barriers, d.Start)
	var out []grid.Position
	for r := 0; r < d.Size; r++ {
		for c := 0; c < d.Size; c++ {
			p := grid.Position{Row: r, Col: c}
			if p != d.End && !d.Barriers.Has(p) && !reach.Has(p) {
				out = append(out, p)
			}
		}
	}
	return out
}
