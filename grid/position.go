package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when an engine is constructed with an unusable grid size
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds is returned when a position falls outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Position is a (row, col) grid coordinate
type Position struct {
	Row, Col int
}

// Directions lists the orthogonal moves in expansion order: right, down, left, up.
// Exploration traces depend on this order.
var Directions = [4]Position{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
}

// Add returns the position offset by (dRow, dCol)
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// InBounds reports whether p lies on a size×size grid
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Manhattan returns the 4-connected step distance between p and q
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Index returns the row-major flat index of p on a grid of the given size
func (p Position) Index(size int) int {
	return p.Row*size + p.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ValidateSize rejects non-positive grid sizes
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("grid size %d: %w", size, ErrInvalidConfiguration)
	}
	return nil
}

// CheckBounds returns ErrOutOfBounds if p is not on the grid
func CheckBounds(p Position, size int) error {
	if !p.InBounds(size) {
		return fmt.Errorf("%v on %dx%d grid: %w", p, size, size, ErrOutOfBounds)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
