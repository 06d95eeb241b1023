// Package maze generates start/end/barrier layouts for square grids.
package maze

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/gridpath/grid"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

// Kind selects a generation algorithm
type Kind int

const (
	KindRandom Kind = iota // Density-based random scatter
	KindPrims              // Randomized Prim's perfect maze
)

func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindPrims:
		return "prims"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a mode name to a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "density":
		return KindRandom, nil
	case "prims", "prim":
		return KindPrims, nil
	}
	return 0, fmt.Errorf("unknown maze kind %q", s)
}

// Data is a generated layout. Start and End always differ.
type Data struct {
	Size       int
	Start, End grid.Position
	Barriers   *grid.BarrierSet
}

// Open reports whether p is on the grid and not a barrier
func (d Data) Open(p grid.Position) bool {
	return p.InBounds(d.Size) && !d.Barriers.Has(p)
}

// Grid returns a [row][col] Wall/Passage view of the layout
func (d Data) Grid() [][]bool {
	g := make([][]bool, d.Size)
	for r := range g {
		g[r] = make([]bool, d.Size)
		for c := range g[r] {
			g[r][c] = d.Barriers.Has(grid.Position{Row: r, Col: c})
		}
	}
	return g
}

type options struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator
type Option func(*options)

// WithSeed fixes the random sequence; 0 selects a time-based seed
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand supplies the random source directly, overriding WithSeed
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// Generator produces layouts for a fixed grid size. Safe for concurrent use.
type Generator struct {
	size int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator for size×size grids. Size must be at least 2
// so that distinct start and end cells exist.
func NewGenerator(size int, opts ...Option) (*Generator, error) {
	if size < 2 {
		return nil, fmt.Errorf("maze size %d, need at least 2: %w", size, grid.ErrInvalidConfiguration)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.rng
	if rng == nil {
		seed := o.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Generator{size: size, rng: rng}, nil
}

// Size returns the grid dimension
func (g *Generator) Size() int {
	return g.size
}

// Generate dispatches on kind; density is ignored for KindPrims
func (g *Generator) Generate(kind Kind, density int) (Data, error) {
	switch kind {
	case KindRandom:
		return g.RandomMaze(density), nil
	case KindPrims:
		return g.PrimsMaze(), nil
	}
	return Data{}, fmt.Errorf("generate: unsupported kind %v", kind)
}

// RandomMaze scatters between 0 and density-1 barriers uniformly, never on start or end.
// A non-positive density yields no barriers. Barriers are rejection-sampled, so density
// must leave enough free cells; values near size² stall.
func (g *Generator) RandomMaze(density int) Data {
	g.mu.Lock()
	defer g.mu.Unlock()

	start, end := g.endpoints()
	d := Data{
		Size:     g.size,
		Start:    start,
		End:      end,
		Barriers: grid.NewBarrierSet(),
	}

	numBarriers := 0
	if density > 0 {
		numBarriers = g.rng.Intn(density)
	}

	for i := 0; i < numBarriers; i++ {
		var p grid.Position
		for {
			p = g.randomPosition()
			if p != start && p != end && !d.Barriers.Has(p) {
				break
			}
		}
		d.Barriers.Add(p)
	}

	return d
}

// PrimsMaze carves a perfect maze from the start cell with randomized Prim's algorithm.
// Every remaining wall except start and end becomes a barrier. End is left open without a
// connectivity check, so it can occasionally sit isolated from the carved region; use
// Connected to detect that.
func (g *Generator) PrimsMaze() Data {
	g.mu.Lock()
	defer g.mu.Unlock()

	start, end := g.endpoints()

	walls := make([]bool, g.size*g.size)
	for i := range walls {
		walls[i] = Wall
	}
	walls[start.Index(g.size)] = Passage

	// Candidate list keeps duplicates; the same wall may be inspected several times
	candidates := g.neighbors(start, nil)

	for len(candidates) > 0 {
		i := g.rng.Intn(len(candidates))
		wall := candidates[i]

		open := lo.CountBy(g.neighbors(wall, nil), func(p grid.Position) bool {
			return walls[p.Index(g.size)] == Passage
		})
		if open == 1 {
			walls[wall.Index(g.size)] = Passage
			candidates = g.neighbors(wall, candidates)
		}

		// Order-preserving removal of the inspected entry
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	d := Data{
		Size:     g.size,
		Start:    start,
		End:      end,
		Barriers: grid.NewBarrierSet(),
	}
	for idx, isWall := range walls {
		p := grid.Position{Row: idx / g.size, Col: idx % g.size}
		if isWall && p != start && p != end {
			d.Barriers.Add(p)
		}
	}
	return d
}

// --- Helpers ---

// endpoints draws a start cell then redraws end until it differs. Caller holds mu.
func (g *Generator) endpoints() (start, end grid.Position) {
	start = g.randomPosition()
	for {
		end = g.randomPosition()
		if end != start {
			return start, end
		}
	}
}

func (g *Generator) randomPosition() grid.Position {
	return grid.Position{Row: g.rng.Intn(g.size), Col: g.rng.Intn(g.size)}
}

// neighbors appends the in-bounds orthogonal neighbors of p to dst
func (g *Generator) neighbors(p grid.Position, dst []grid.Position) []grid.Position {
	for _, d := range primDirections {
		n := p.Add(d.Row, d.Col)
		if n.InBounds(g.size) {
			dst = append(dst, n)
		}
	}
	return dst
}

// primDirections is the neighbor order used while carving: right, left, down, up
var primDirections = [4]grid.Position{
	{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0},
}
