package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// BarrierSet is a set of blocked cells with constant-time membership.
// A nil *BarrierSet behaves as an empty set for reads.
type BarrierSet struct {
	set mapset.Set[Position]
}

// NewBarrierSet creates a set holding the given positions
func NewBarrierSet(positions ...Position) *BarrierSet {
	b := &BarrierSet{set: mapset.New[Position]()}
	for _, p := range positions {
		b.set.Put(p)
	}
	return b
}

// Add inserts p and reports whether it was not already present
func (b *BarrierSet) Add(p Position) bool {
	if b.set.Has(p) {
		return false
	}
	b.set.Put(p)
	return true
}

// Remove deletes p, reporting whether it was present
func (b *BarrierSet) Remove(p Position) bool {
	if !b.set.Has(p) {
		return false
	}
	b.set.Remove(p)
	return true
}

// Has reports membership
func (b *BarrierSet) Has(p Position) bool {
	if b == nil {
		return false
	}
	return b.set.Has(p)
}

// Len returns the number of barriers
func (b *BarrierSet) Len() int {
	if b == nil {
		return 0
	}
	return b.set.Size()
}

// Clear removes every barrier
func (b *BarrierSet) Clear() {
	b.set = mapset.New[Position]()
}

// Positions returns the barriers in row-major order
func (b *BarrierSet) Positions() []Position {
	if b == nil {
		return nil
	}
	out := make([]Position, 0, b.set.Size())
	b.set.Each(func(p Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Clone returns an independent copy; cloning nil yields an empty set
func (b *BarrierSet) Clone() *BarrierSet {
	c := NewBarrierSet()
	if b == nil {
		return c
	}
	b.set.Each(func(p Position) {
		c.set.Put(p)
	})
	return c
}
