package pathfind

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/gridpath/grid"
)

type pos = grid.Position

func mustFinder(t *testing.T, size int, barriers ...pos) *PathFinder {
	t.Helper()
	pf, err := New(size, grid.NewBarrierSet(barriers...))
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return pf
}

func equalPositions(a, b []pos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		if _, err := New(size, nil); !errors.Is(err, grid.ErrInvalidConfiguration) {
			t.Errorf("New(%d) error = %v, want ErrInvalidConfiguration", size, err)
		}
	}
}

func TestFindPath_OutOfBounds(t *testing.T) {
	pf := mustFinder(t, 3)
	if pf.Size() != 3 {
		t.Fatalf("Size = %d, want 3", pf.Size())
	}
	if _, err := pf.FindPath(pos{0, 0}, pos{3, 0}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("end off grid: error = %v", err)
	}
	if _, err := pf.FindPath(pos{-1, 0}, pos{0, 0}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("start off grid: error = %v", err)
	}
}

func TestFindPath_Trivial(t *testing.T) {
	pf := mustFinder(t, 4)
	res, err := pf.FindPath(pos{0, 0}, pos{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if res.Explored() != 1 {
		t.Errorf("Explored = %d, want 1", res.Explored())
	}
	if !equalPositions(res.Path, []pos{{0, 0}}) {
		t.Errorf("Path = %v, want [(0,0)]", res.Path)
	}
	if res.PathLength() != 0 {
		t.Errorf("PathLength = %d, want 0", res.PathLength())
	}
}

// TestFindPath_OpenGrid verifies the exact trace on an open 5x5 grid, including FIFO tie order
func TestFindPath_OpenGrid(t *testing.T) {
	pf := mustFinder(t, 5)
	start, end := pos{0, 0}, pos{4, 4}

	res, err := pf.FindPath(start, end)
	if err != nil {
		t.Fatal(err)
	}

	wantPath := []pos{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}}
	if !equalPositions(res.Path, wantPath) {
		t.Errorf("Path = %v, want %v", res.Path, wantPath)
	}
	if res.PathLength() != start.Manhattan(end) {
		t.Errorf("PathLength = %d, want %d", res.PathLength(), start.Manhattan(end))
	}
	if got := Optimality(start, end, res.Path); got != 100 {
		t.Errorf("Optimality = %d, want 100", got)
	}

	wantPrefix := []pos{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 2}, {2, 0}, {1, 2}, {2, 1}, {2, 2}}
	if res.Explored() != 25 || !equalPositions(res.Exploration[:len(wantPrefix)], wantPrefix) {
		t.Errorf("Exploration = %v", res.Exploration)
	}
}

func TestFindPath_NoPath(t *testing.T) {
	pf := mustFinder(t, 3, pos{0, 1}, pos{1, 0}, pos{1, 1})
	start, end := pos{0, 0}, pos{2, 2}

	res, err := pf.FindPath(start, end)
	if err != nil {
		t.Fatal(err)
	}
	if res.Found() || len(res.Path) != 0 {
		t.Errorf("Path = %v, want empty", res.Path)
	}
	if !equalPositions(res.Exploration, []pos{{0, 0}}) {
		t.Errorf("Exploration = %v, want [(0,0)]", res.Exploration)
	}
	if got := Optimality(start, end, res.Path); got != 0 {
		t.Errorf("Optimality = %d, want 0", got)
	}
}

func TestFindPath_AroundBarriers(t *testing.T) {
	pf := mustFinder(t, 4, pos{1, 1}, pos{1, 2}, pos{2, 1})
	res, err := pf.FindPath(pos{0, 0}, pos{3, 3})
	if err != nil {
		t.Fatal(err)
	}

	wantPath := []pos{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}}
	if !equalPositions(res.Path, wantPath) {
		t.Errorf("Path = %v, want %v", res.Path, wantPath)
	}
	wantExploration := []pos{
		{0, 0}, {0, 1}, {1, 0}, {0, 2}, {2, 0}, {0, 3},
		{3, 0}, {1, 3}, {3, 1}, {2, 3}, {3, 2}, {3, 3},
	}
	if !equalPositions(res.Exploration, wantExploration) {
		t.Errorf("Exploration = %v, want %v", res.Exploration, wantExploration)
	}
}

// TestFindPath_BarrierEndpoints covers barriers placed on the endpoints themselves
func TestFindPath_BarrierEndpoints(t *testing.T) {
	// End on a barrier is never enqueued
	pf := mustFinder(t, 3, pos{2, 2})
	res, err := pf.FindPath(pos{0, 0}, pos{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Found() {
		t.Errorf("barrier end reached: %v", res.Path)
	}
	if res.Explored() != 8 {
		t.Errorf("Explored = %d, want 8", res.Explored())
	}

	// Start on a barrier is still expanded
	pf = mustFinder(t, 3, pos{0, 0})
	res, err = pf.FindPath(pos{0, 0}, pos{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !equalPositions(res.Path, []pos{{0, 0}, {0, 1}, {0, 2}}) {
		t.Errorf("Path = %v", res.Path)
	}
}

// TestFindPath_Deterministic verifies repeated searches produce identical traces
func TestFindPath_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	barriers := grid.NewBarrierSet()
	for i := 0; i < 120; i++ {
		barriers.Add(pos{rng.Intn(20), rng.Intn(20)})
	}
	start, end := pos{0, 0}, pos{19, 19}
	barriers.Remove(start)
	barriers.Remove(end)

	pf, err := New(20, barriers)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := pf.FindPath(start, end)
	for i := 0; i < 5; i++ {
		again, _ := pf.FindPath(start, end)
		if !equalPositions(first.Exploration, again.Exploration) || !equalPositions(first.Path, again.Path) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

// TestFindPath_SnapshotIsolation verifies later barrier edits do not leak into a built finder
func TestFindPath_SnapshotIsolation(t *testing.T) {
	barriers := grid.NewBarrierSet()
	pf, err := New(3, barriers)
	if err != nil {
		t.Fatal(err)
	}
	barriers.Add(pos{0, 1})
	barriers.Add(pos{1, 0})

	res, _ := pf.FindPath(pos{0, 0}, pos{2, 2})
	if !res.Found() {
		t.Error("barrier added after construction blocked the search")
	}
}

// TestFindPath_RandomGridsValid checks path validity and trace uniqueness over random layouts
func TestFindPath_RandomGridsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		size := 2 + rng.Intn(14)
		barriers := grid.NewBarrierSet()
		for i := 0; i < size*size/3; i++ {
			barriers.Add(pos{rng.Intn(size), rng.Intn(size)})
		}
		start := pos{rng.Intn(size), rng.Intn(size)}
		end := pos{rng.Intn(size), rng.Intn(size)}
		barriers.Remove(start)
		barriers.Remove(end)

		pf, err := New(size, barriers)
		if err != nil {
			t.Fatal(err)
		}
		res, err := pf.FindPath(start, end)
		if err != nil {
			t.Fatal(err)
		}
		if err := ValidatePath(size, barriers, start, end, res.Path); err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}

		seen := make(map[pos]bool, res.Explored())
		for _, p := range res.Exploration {
			if seen[p] {
				t.Fatalf("trial %d: %v explored twice", trial, p)
			}
			seen[p] = true
		}
		if res.Found() && res.Exploration[res.Explored()-1] != end {
			t.Fatalf("trial %d: last explored cell is not the end", trial)
		}
		if eff := Efficiency(res.Explored(), size*size); eff < 0 || eff > 100 {
			t.Fatalf("trial %d: efficiency %d out of range", trial, eff)
		}
	}
}

func TestFrontier_Order(t *testing.T) {
	var h frontier
	entries := []frontierEntry{{f: 3, seq: 0}, {f: 1, seq: 1}, {f: 2, seq: 2}, {f: 1, seq: 3}, {f: 0.5, seq: 4}}
	for _, e := range entries {
		h.push(e)
	}
	wantSeq := []int{4, 1, 3, 2, 0}
	for i, want := range wantSeq {
		if got := h.pop().seq; got != want {
			t.Errorf("pop %d: seq %d, want %d", i, got, want)
		}
	}
}
