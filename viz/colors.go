package viz

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell palette
var (
	RgbEmpty    = tcell.NewRGBColor(235, 235, 235) // Near white
	RgbGridAlt  = tcell.NewRGBColor(220, 220, 220) // Checker shade for empty cells
	RgbStart    = tcell.NewRGBColor(0, 0, 220)     // Bright blue
	RgbEnd      = tcell.NewRGBColor(220, 0, 0)     // Bright red
	RgbBarrier  = tcell.NewRGBColor(20, 20, 20)    // Near black
	RgbPath     = tcell.NewRGBColor(0, 180, 0)     // Bright green
	RgbCursor   = tcell.NewRGBColor(255, 0, 255)   // Magenta marker
	RgbStatusFg = tcell.NewRGBColor(230, 230, 230) // Light gray text

	RgbMsgInfo    = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbMsgSuccess = tcell.NewRGBColor(50, 220, 50)   // Green
	RgbMsgWarning = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMsgError   = tcell.NewRGBColor(255, 80, 80)   // Red
)

// Exploration gradient endpoints: first explored cells are gold, the last are deep orange
var (
	exploredFirst = colorful.Color{R: 1.0, G: 0.843, B: 0.0}
	exploredLast  = colorful.Color{R: 0.95, G: 0.45, B: 0.05}
)

// ExploredColor grades a cell by its position in the exploration order
func ExploredColor(order, total int) tcell.Color {
	t := 0.0
	if total > 1 {
		t = float64(order) / float64(total-1)
	}
	c := exploredFirst.BlendHcl(exploredLast, t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func levelColor(l Level) tcell.Color {
	switch l {
	case LevelSuccess:
		return RgbMsgSuccess
	case LevelWarning:
		return RgbMsgWarning
	case LevelError:
		return RgbMsgError
	default:
		return RgbMsgInfo
	}
}
