// Package state holds the freehand stroke history: capture of the stroke in
// progress, committed strokes and the redo buffer.
package state

import (
	"log"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/surface"
)

// Memo captures freehand strokes onto a surface and keeps a linear
// undo/redo history of them.
type Memo struct {
	surface surface.Surface
	bounds  geom.Rect
	style   Style

	current *Stroke
	history StrokeHistory
}

// MemoOption configures a Memo.
type MemoOption func(*Memo)

// WithStyle replaces the default pen.
func WithStyle(s Style) MemoOption {
	return func(m *Memo) {
		m.style = s
	}
}

// NewMemo creates a memo drawing onto s. bounds is the region cleared on undo
// and by ClearSurface.
func NewMemo(s surface.Surface, bounds geom.Rect, opts ...MemoOption) *Memo {
	m := &Memo{
		surface: s,
		bounds:  bounds,
		style:   DefaultStyle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Style returns the pen in use.
func (m *Memo) Style() Style {
	return m.style
}

// Drawing reports whether a stroke is in progress.
func (m *Memo) Drawing() bool {
	return m.current != nil
}

// Current returns a copy of the points of the stroke in progress.
func (m *Memo) Current() []geom.Point {
	if m.current == nil {
		return nil
	}
	return m.current.Clone().Points
}

// History returns a deep copy of the committed strokes and the redo buffer.
func (m *Memo) History() StrokeHistory {
	return StrokeHistory{
		Committed: cloneStrokes(m.history.Committed),
		Redo:      cloneStrokes(m.history.Redo),
	}
}

// Counts returns how many strokes are committed and how many wait to be
// redone, without copying them.
func (m *Memo) Counts() (committed, redo int) {
	return len(m.history.Committed), len(m.history.Redo)
}

// Committed returns a deep copy of the committed strokes.
func (m *Memo) Committed() []Stroke {
	return cloneStrokes(m.history.Committed)
}

// CanUndo reports whether Undo would do anything.
func (m *Memo) CanUndo() bool {
	return len(m.history.Committed) > 0
}

// CanRedo reports whether Redo would do anything.
func (m *Memo) CanRedo() bool {
	return len(m.history.Redo) > 0
}

// StrokeStart begins a stroke at p. A stroke already in progress is
// abandoned: its points are dropped, not committed.
func (m *Memo) StrokeStart(p geom.Point) {
	if m.current != nil {
		log.Printf("[MEMO] abandoning stroke %s with %d points", m.current.ID, len(m.current.Points))
	}
	m.current = &Stroke{ID: newStrokeID(), Points: []geom.Point{p}}
}

// StrokeMove extends the stroke in progress to p and draws only the new
// segment. Without a stroke in progress it does nothing.
func (m *Memo) StrokeMove(p geom.Point) {
	if m.current == nil {
		return
	}
	prev := m.current.Points[len(m.current.Points)-1]
	m.current.Points = append(m.current.Points, p)

	m.surface.MoveTo(prev)
	m.surface.LineTo(p)
	m.surface.Stroke(m.style.Width, m.style.Color)
}

// StrokeEnd commits the stroke in progress, even a single-point one.
// Without a stroke in progress it does nothing. The redo buffer is kept.
func (m *Memo) StrokeEnd() {
	if m.current == nil {
		return
	}
	m.history.Committed = append(m.history.Committed, *m.current)
	log.Printf("[MEMO] stroke %s committed with %d points", m.current.ID, len(m.current.Points))
	m.current = nil
}

// Undo moves the newest committed stroke to the redo buffer, then clears the
// surface and replays every remaining committed stroke.
func (m *Memo) Undo() {
	n := len(m.history.Committed)
	if n == 0 {
		return
	}
	last := m.history.Committed[n-1]
	m.history.Committed = m.history.Committed[:n-1:n-1]
	m.history.Redo = append(m.history.Redo, last)
	log.Printf("[MEMO] undo stroke %s", last.ID)

	m.Replay()
}

// Redo moves the newest undone stroke back into the committed strokes and
// draws only that stroke on top of what is shown.
func (m *Memo) Redo() {
	n := len(m.history.Redo)
	if n == 0 {
		return
	}
	last := m.history.Redo[n-1]
	m.history.Redo = m.history.Redo[:n-1:n-1]
	m.history.Committed = append(m.history.Committed, last)
	log.Printf("[MEMO] redo stroke %s", last.ID)

	surface.Polyline(m.surface, last.Points, m.style.Width, m.style.Color)
}

// Replay clears the surface and redraws every committed stroke in order.
func (m *Memo) Replay() {
	m.surface.Clear(m.bounds)
	ReplayOnto(m.surface, m.history.Committed, m.style)
}

// ClearAll forgets the committed strokes, the redo buffer and any stroke in
// progress. The surface is left as it is; see ClearSurface.
func (m *Memo) ClearAll() {
	m.history = StrokeHistory{}
	m.current = nil
	log.Println("[MEMO] history cleared")
}

// ClearSurface wipes the drawing surface without touching the history.
func (m *Memo) ClearSurface() {
	m.surface.Clear(m.bounds)
}

// Bounds returns the bounding box of every committed point.
func (m *Memo) Bounds() (geom.Rect, bool) {
	return StrokesBounds(m.history.Committed)
}

// ReplayOnto draws strokes as polylines onto s in order.
func ReplayOnto(s surface.Surface, strokes []Stroke, style Style) {
	for _, st := range strokes {
		surface.Polyline(s, st.Points, style.Width, style.Color)
	}
}

// StrokesBounds returns the bounding box covering every point of strokes.
func StrokesBounds(strokes []Stroke) (geom.Rect, bool) {
	var (
		box geom.Rect
		ok  bool
	)
	for _, st := range strokes {
		b, has := geom.BoundingBox(st.Points)
		if !has {
			continue
		}
		if !ok {
			box, ok = b, true
			continue
		}
		box = box.Union(b)
	}
	return box, ok
}
