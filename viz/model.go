// Package viz is the terminal presentation layer: an editable grid model, a tcell renderer
// and the event loop that replays search results cell by cell.
package viz

import (
	"fmt"
	"log"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/gridpath/config"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/parameter"
	"github.com/lixenwraith/gridpath/pathfind"
)

// Mode is the current pointer interaction
type Mode int

const (
	ModePlaceStart Mode = iota
	ModePlaceEnd
	ModeAddBarriers
	ModeRemoveBarriers
	ModeMove
)

func (m Mode) String() string {
	switch m {
	case ModePlaceStart:
		return "Place Start"
	case ModePlaceEnd:
		return "Place End"
	case ModeAddBarriers:
		return "Add Barriers"
	case ModeRemoveBarriers:
		return "Remove Barriers"
	case ModeMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// hint is the status message shown when a mode is selected
func (m Mode) hint() string {
	switch m {
	case ModePlaceStart:
		return "Select a cell to place the start point"
	case ModePlaceEnd:
		return "Select a cell to place the end point"
	case ModeAddBarriers:
		return "Select or drag to add barriers"
	case ModeRemoveBarriers:
		return "Select or drag to remove barriers"
	case ModeMove:
		return "Drag the start or end point to move it"
	}
	return ""
}

// Level grades status messages
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Cue is an audible event raised by the model and drained by the app
type Cue int

const (
	CueFound Cue = iota
	CueNoPath
	CueMaze
)

// CellKind classifies a cell for rendering
type CellKind int

const (
	CellEmpty CellKind = iota
	CellStart
	CellEnd
	CellBarrier
	CellExplored
	CellPath
)

// Status is the dashboard content
type Status struct {
	Report  pathfind.Report
	Message string
	Level   Level
}

// overlay holds the revealed part of the last search
type overlay struct {
	order map[grid.Position]int // Exploration index of each revealed cell
	path  mapset.Set[grid.Position]
	total int // Full exploration length, for gradient scaling
}

func newOverlay(total int) overlay {
	return overlay{
		order: make(map[grid.Position]int, total),
		path:  mapset.New[grid.Position](),
		total: total,
	}
}

// animation replays a result: exploration first, then the path
type animation struct {
	result   pathfind.Result
	report   pathfind.Report
	expIdx   int
	pathIdx  int
	finished bool
}

// Model is the editable grid state behind the visualizer. It is not safe for concurrent use;
// the app's event loop owns it.
type Model struct {
	size     int
	start    grid.Position
	end      grid.Position
	hasStart bool
	hasEnd   bool
	barriers *grid.BarrierSet

	Cursor     grid.Position
	mode       Mode
	Density    int
	Animate    bool
	Delay      time.Duration
	ShowStatus bool
	ShowLegend bool

	overlay overlay
	anim    *animation
	status  Status
	cues    []Cue

	// Pointer gesture state
	dragging   bool
	paintAdd   bool
	dragSource *grid.Position

	seed int64
	gen  *maze.Generator
	now  func() time.Time
}

// NewModel builds an empty grid from cfg
func NewModel(cfg *config.Config) (*Model, error) {
	gen, err := maze.NewGenerator(cfg.GridSize, maze.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	m := &Model{
		size:       cfg.GridSize,
		barriers:   grid.NewBarrierSet(),
		Density:    cfg.Density,
		Animate:    cfg.Animate,
		Delay:      cfg.AnimationDelay,
		ShowStatus: true,
		ShowLegend: true,
		overlay:    newOverlay(0),
		seed:       cfg.Seed,
		gen:        gen,
		now:        time.Now,
	}
	m.resetStatus("Ready")
	return m, nil
}

// --- Accessors ---

func (m *Model) Size() int { return m.size }

func (m *Model) Mode() Mode { return m.mode }

func (m *Model) Status() Status { return m.status }

func (m *Model) Barriers() *grid.BarrierSet { return m.barriers }

func (m *Model) Start() (grid.Position, bool) { return m.start, m.hasStart }

func (m *Model) End() (grid.Position, bool) { return m.end, m.hasEnd }

// Animating reports whether a replay is in progress
func (m *Model) Animating() bool {
	return m.anim != nil && !m.anim.finished
}

// Cell classifies p; for explored cells it also returns the exploration index and total
func (m *Model) Cell(p grid.Position) (kind CellKind, order, total int) {
	switch {
	case m.hasStart && p == m.start:
		return CellStart, 0, 0
	case m.hasEnd && p == m.end:
		return CellEnd, 0, 0
	case m.barriers.Has(p):
		return CellBarrier, 0, 0
	case m.overlay.path.Has(p):
		return CellPath, 0, 0
	}
	if idx, ok := m.overlay.order[p]; ok {
		return CellExplored, idx, m.overlay.total
	}
	return CellEmpty, 0, 0
}

// TakeCues returns and clears pending audio cues
func (m *Model) TakeCues() []Cue {
	cues := m.cues
	m.cues = nil
	return cues
}

// --- Interaction ---

// SetMode switches the pointer mode. Asking to place an endpoint that already exists
// selects Move instead.
func (m *Model) SetMode(mode Mode) {
	switch {
	case mode == ModePlaceStart && m.hasStart:
		mode = ModeMove
	case mode == ModePlaceEnd && m.hasEnd:
		mode = ModeMove
	}
	m.mode = mode
	m.setMessage(mode.hint(), LevelInfo)
}

// MoveCursor shifts the keyboard cursor, clamped to the grid. While a gesture is active the
// new cell is treated as a drag target.
func (m *Model) MoveCursor(dRow, dCol int) {
	next := m.Cursor.Add(dRow, dCol)
	if !next.InBounds(m.size) {
		return
	}
	m.Cursor = next
	if m.dragging {
		m.Drag(next)
	}
}

// Press starts a pointer gesture at p according to the current mode
func (m *Model) Press(p grid.Position) {
	if !p.InBounds(m.size) {
		return
	}

	switch m.mode {
	case ModePlaceStart:
		if m.hasEnd && p == m.end {
			m.setMessage("Start and end must differ", LevelWarning)
			return
		}
		m.StopAnimation()
		m.start, m.hasStart = p, true
		m.barriers.Remove(p)
		m.ClearPath()
		if m.hasEnd {
			m.mode = ModeAddBarriers
		} else {
			m.mode = ModePlaceEnd
		}
		m.setMessage(m.mode.hint(), LevelInfo)
		m.liveRun()

	case ModePlaceEnd:
		if m.hasStart && p == m.start {
			m.setMessage("Start and end must differ", LevelWarning)
			return
		}
		m.StopAnimation()
		m.end, m.hasEnd = p, true
		m.barriers.Remove(p)
		m.ClearPath()
		m.mode = ModeAddBarriers
		m.setMessage(m.mode.hint(), LevelInfo)
		if m.hasStart {
			m.runInstant()
		}

	case ModeAddBarriers:
		if m.isEndpoint(p) {
			return
		}
		m.dragging, m.paintAdd = true, true
		m.paint(p)

	case ModeRemoveBarriers:
		m.dragging, m.paintAdd = true, false
		m.paint(p)

	case ModeMove:
		if m.isEndpoint(p) {
			src := p
			m.dragging, m.dragSource = true, &src
		}
	}
}

// Drag continues the active gesture over p
func (m *Model) Drag(p grid.Position) {
	if !m.dragging || !p.InBounds(m.size) {
		return
	}

	switch m.mode {
	case ModeAddBarriers, ModeRemoveBarriers:
		m.paint(p)

	case ModeMove:
		if m.dragSource == nil || p == *m.dragSource || m.isEndpoint(p) {
			return
		}
		if m.hasStart && *m.dragSource == m.start {
			m.start = p
		} else if m.hasEnd && *m.dragSource == m.end {
			m.end = p
		}
		src := p
		m.dragSource = &src
		m.ClearPath()
		m.liveRun()
	}
}

// Release ends the gesture. A moved endpoint dropped on a barrier clears that barrier.
func (m *Model) Release() {
	if m.dragSource != nil {
		p := *m.dragSource
		if m.isEndpoint(p) && m.barriers.Remove(p) {
			m.ClearPath()
			m.liveRun()
		}
	}
	m.dragging = false
	m.dragSource = nil
}

// Dragging reports whether a gesture is active
func (m *Model) Dragging() bool {
	return m.dragging
}

// paint adds or removes a barrier at p for the active stroke
func (m *Model) paint(p grid.Position) {
	if m.isEndpoint(p) {
		return
	}
	var changed bool
	if m.paintAdd {
		changed = m.barriers.Add(p)
	} else {
		changed = m.barriers.Remove(p)
	}
	if !changed {
		return
	}
	m.StopAnimation()
	m.ClearPath()
	m.status.Report.BarrierCount = m.barriers.Len()
	m.liveRun()
}

func (m *Model) isEndpoint(p grid.Position) bool {
	return (m.hasStart && p == m.start) || (m.hasEnd && p == m.end)
}

// --- Search ---

// Run searches from start to end. With animation enabled the result is replayed by Tick,
// otherwise it is shown at once.
func (m *Model) Run() {
	if !m.hasStart || !m.hasEnd {
		m.setMessage("Set both start and end points first!", LevelWarning)
		return
	}
	m.StopAnimation()
	m.ClearPath()

	res, rep, err := m.search()
	if err != nil {
		m.setMessage(err.Error(), LevelError)
		return
	}

	if !res.Found() {
		m.reveal(res)
		m.status.Report = rep
		m.setMessage("No path exists!", LevelError)
		m.cues = append(m.cues, CueNoPath)
		return
	}

	if !m.Animate {
		m.reveal(res)
		m.finish(rep)
		return
	}

	m.overlay = newOverlay(res.Explored())
	m.anim = &animation{result: res, report: rep}
	m.setMessage("Searching...", LevelInfo)
}

// Tick reveals the next replayed cell. It returns false once nothing is left to show.
func (m *Model) Tick() bool {
	a := m.anim
	if a == nil || a.finished {
		return false
	}

	if a.expIdx < len(a.result.Exploration) {
		p := a.result.Exploration[a.expIdx]
		m.overlay.order[p] = a.expIdx
		a.expIdx++
		return true
	}
	if a.pathIdx < len(a.result.Path) {
		m.overlay.path.Put(a.result.Path[a.pathIdx])
		a.pathIdx++
		return true
	}

	a.finished = true
	m.finish(a.report)
	return false
}

// StopAnimation aborts a replay, leaving the revealed cells and the run's metrics
func (m *Model) StopAnimation() {
	if !m.Animating() {
		return
	}
	m.anim.finished = true
	m.status.Report = m.anim.report
	m.setMessage("Animation stopped", LevelWarning)
}

// liveRun re-runs the search instantly after an edit when animation is off
func (m *Model) liveRun() {
	if m.Animate || !m.hasStart || !m.hasEnd {
		return
	}
	m.runInstant()
}

// runInstant searches and reveals without replay or cues
func (m *Model) runInstant() {
	res, rep, err := m.search()
	if err != nil {
		m.setMessage(err.Error(), LevelError)
		return
	}
	m.reveal(res)
	m.status.Report = rep
	if res.Found() {
		m.setMessage("Path found!", LevelSuccess)
	} else {
		m.setMessage("No path exists!", LevelError)
	}
}

func (m *Model) search() (pathfind.Result, pathfind.Report, error) {
	pf, err := pathfind.New(m.size, m.barriers)
	if err != nil {
		return pathfind.Result{}, pathfind.Report{}, err
	}

	began := m.now()
	res, err := pf.FindPath(m.start, m.end)
	if err != nil {
		return pathfind.Result{}, pathfind.Report{}, err
	}
	rep := pathfind.Analyze(m.size, m.barriers.Len(), m.start, m.end, res)
	rep.Elapsed = m.now().Sub(began)

	log.Printf("search %v -> %v: found=%t length=%d explored=%d elapsed=%v",
		m.start, m.end, rep.Found, rep.PathLength, rep.NodesExplored, rep.Elapsed)
	return res, rep, nil
}

// reveal shows a whole result at once
func (m *Model) reveal(res pathfind.Result) {
	m.overlay = newOverlay(res.Explored())
	for i, p := range res.Exploration {
		m.overlay.order[p] = i
	}
	for _, p := range res.Path {
		m.overlay.path.Put(p)
	}
}

func (m *Model) finish(rep pathfind.Report) {
	m.status.Report = rep
	m.setMessage("Path found!", LevelSuccess)
	m.cues = append(m.cues, CueFound)
}

// ClearPath removes the search overlay, keeping start, end and barriers
func (m *Model) ClearPath() {
	m.anim = nil
	m.overlay = newOverlay(0)
}

// Reset clears the whole grid and returns to start placement
func (m *Model) Reset() {
	m.anim = nil
	m.hasStart, m.hasEnd = false, false
	m.barriers.Clear()
	m.ClearPath()
	m.dragging, m.dragSource = false, nil
	m.mode = ModePlaceStart
	m.resetStatus("Grid cleared")
}

// --- Maze & settings ---

// GenerateMaze replaces the grid with a generated layout
func (m *Model) GenerateMaze(kind maze.Kind) error {
	data, err := m.gen.Generate(kind, m.Density)
	if err != nil {
		return err
	}

	m.Reset()
	m.start, m.hasStart = data.Start, true
	m.end, m.hasEnd = data.End, true
	m.barriers = data.Barriers
	m.mode = ModeAddBarriers
	m.status.Report.BarrierCount = m.barriers.Len()

	msg := "Maze generated (Density)"
	if kind == maze.KindPrims {
		msg = "Prim's Maze generated"
		if !data.Connected() {
			msg += " (end is not connected)"
		}
	}
	m.setMessage(msg, LevelSuccess)
	m.cues = append(m.cues, CueMaze)

	log.Printf("maze %v on %dx%d: start=%v end=%v barriers=%d",
		kind, m.size, m.size, data.Start, data.End, m.barriers.Len())
	return nil
}

// Resize rebuilds an empty grid of the given size
func (m *Model) Resize(size int) error {
	if size < parameter.MinGridSize || size > parameter.MaxGridSize {
		m.setMessage(fmt.Sprintf("Grid size must be between %d and %d", parameter.MinGridSize, parameter.MaxGridSize), LevelError)
		return fmt.Errorf("resize to %d: %w", size, grid.ErrInvalidConfiguration)
	}
	gen, err := maze.NewGenerator(size, maze.WithSeed(m.seed))
	if err != nil {
		return err
	}
	m.size = size
	m.gen = gen
	m.Reset()
	m.Cursor = grid.Position{}
	if limit := config.MaxDensity(size); m.Density > limit {
		m.Density = limit
	}
	m.status.Report.TotalCells = size * size
	m.setMessage(fmt.Sprintf("Grid size updated to %dx%d", size, size), LevelInfo)
	return nil
}

// AdjustDensity changes the random-maze density within its limits
func (m *Model) AdjustDensity(delta int) {
	m.Density = clamp(m.Density+delta, parameter.MinMazeDensity, config.MaxDensity(m.size))
	m.setMessage(fmt.Sprintf("Maze density %d", m.Density), LevelInfo)
}

// AdjustDelay changes the replay delay within its limits
func (m *Model) AdjustDelay(delta time.Duration) {
	d := m.Delay + delta
	if d < 0 {
		d = 0
	}
	if d > parameter.MaxAnimationDelay {
		d = parameter.MaxAnimationDelay
	}
	m.Delay = d
	m.setMessage(fmt.Sprintf("Animation delay %v", m.Delay), LevelInfo)
}

// ToggleAnimate flips replay mode
func (m *Model) ToggleAnimate() {
	m.Animate = !m.Animate
	if !m.Animate {
		m.StopAnimation()
	}
	m.setMessage(fmt.Sprintf("Animation %s", onOff(m.Animate)), LevelInfo)
}

func (m *Model) setMessage(msg string, level Level) {
	m.status.Message = msg
	m.status.Level = level
}

func (m *Model) resetStatus(msg string) {
	m.status = Status{
		Report: pathfind.Report{TotalCells: m.size * m.size},
	}
	m.setMessage(msg, LevelInfo)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
