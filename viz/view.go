package viz

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/parameter"
)

// CellWidth is the number of terminal columns per grid cell, keeping cells roughly square
const CellWidth = 2

// Layout maps grid cells to screen coordinates
type Layout struct {
	OriginX, OriginY int
}

// CellAt converts a screen coordinate into a grid position
func (l Layout) CellAt(x, y int) grid.Position {
	return grid.Position{
		Row: y - l.OriginY,
		Col: floorDiv(x-l.OriginX, CellWidth),
	}
}

// ScreenOf returns the top-left screen coordinate of a cell
func (l Layout) ScreenOf(p grid.Position) (x, y int) {
	return l.OriginX + p.Col*CellWidth, l.OriginY + p.Row
}

// Draw renders the model onto the screen and shows it
func Draw(s tcell.Screen, m *Model, l Layout) {
	s.Clear()
	w, h := s.Size()

	drawGrid(s, m, l, w, h)

	y := l.OriginY + m.Size() + 1
	for _, line := range panelLines(m) {
		if y >= h-1 {
			break
		}
		drawText(s, 0, y, w, line, tcell.StyleDefault.Foreground(RgbStatusFg))
		y++
	}

	st := m.Status()
	drawText(s, 0, h-1, w, st.Message, tcell.StyleDefault.Foreground(levelColor(st.Level)).Bold(true))

	s.Show()
}

func drawGrid(s tcell.Screen, m *Model, l Layout, w, h int) {
	size := m.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := grid.Position{Row: row, Col: col}
			x, y := l.ScreenOf(p)
			if y >= h || x+CellWidth > w {
				continue
			}

			style := cellStyle(m, p)
			glyph := ' '
			if p == m.Cursor {
				glyph = '◆'
				style = style.Foreground(RgbCursor)
			}
			s.SetContent(x, y, glyph, nil, style)
			for i := 1; i < CellWidth; i++ {
				s.SetContent(x+i, y, ' ', nil, style)
			}
		}
	}
}

func cellStyle(m *Model, p grid.Position) tcell.Style {
	kind, order, total := m.Cell(p)
	base := tcell.StyleDefault
	switch kind {
	case CellStart:
		return base.Background(RgbStart)
	case CellEnd:
		return base.Background(RgbEnd)
	case CellBarrier:
		return base.Background(RgbBarrier)
	case CellPath:
		return base.Background(RgbPath)
	case CellExplored:
		return base.Background(ExploredColor(order, total))
	}
	if (p.Row+p.Col)%2 == 0 {
		return base.Background(RgbEmpty)
	}
	return base.Background(RgbGridAlt)
}

// panelLines builds the dashboard and legend text
func panelLines(m *Model) []string {
	var lines []string
	rep := m.Status().Report

	if m.ShowStatus {
		lines = append(lines,
			fmt.Sprintf("Path Length: %d   Nodes Explored: %d   Time Taken: %v",
				rep.PathLength, rep.NodesExplored, rep.Elapsed),
			fmt.Sprintf("Algorithm: %s   Heuristic: %s   Grid: %dx%d (%d barriers)",
				parameter.AlgorithmName, parameter.HeuristicName, m.Size(), m.Size(), m.Barriers().Len()),
			fmt.Sprintf("Optimality: %d%%   Efficiency: %d%%", rep.Optimality, rep.Efficiency),
			fmt.Sprintf("Mode: %s   Animation: %s (%v)   Density: %d",
				m.Mode(), onOff(m.Animate), m.Delay, m.Density),
		)
	}
	if m.ShowLegend {
		lines = append(lines,
			"Legend: blue=start red=end black=barrier gold..orange=explored green=path",
			"Keys: arrows/hjkl move  enter place  1-5 mode  f find  x stop  c clear  R reset  p prims  r random",
			"      [ ] density  - + delay  a animate  < > size  t status  L legend  q quit",
		)
	}
	return lines
}

// drawText writes s at (x, y), truncated to the remaining width
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if width-x <= 0 {
		return
	}
	text = runewidth.Truncate(text, width-x, "…")
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func onOff(v bool) string {
	return lo.Ternary(v, "on", "off")
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
