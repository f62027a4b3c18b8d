package state

import (
	"image/color"

	"CanvasScroll/internal/geom"
)

// Stroke is one continuous pointer-down, move, up gesture. Points are in
// drawing order.
type Stroke struct {
	ID     string
	Points []geom.Point
}

// Clone returns a stroke that shares no memory with s.
func (s Stroke) Clone() Stroke {
	points := make([]geom.Point, len(s.Points))
	copy(points, s.Points)
	return Stroke{ID: s.ID, Points: points}
}

// StrokeHistory is the linear undo/redo stack. A stroke lives in exactly one
// of Committed and Redo.
type StrokeHistory struct {
	Committed []Stroke
	Redo      []Stroke
}

// Style is the pen used for every stroke of a memo.
type Style struct {
	Width float64
	Color color.Color
}

// DefaultStyle is a dark grey 8px round pen.
var DefaultStyle = Style{
	Width: 8,
	Color: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
}

func cloneStrokes(strokes []Stroke) []Stroke {
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.Clone()
	}
	return out
}
