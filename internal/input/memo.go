package input

import (
	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/state"
)

// MemoController drives a memo from pointer events and history commands.
type MemoController struct {
	memo *state.Memo
}

func NewMemoController(m *state.Memo) *MemoController {
	return &MemoController{memo: m}
}

// Memo returns the driven memo.
func (c *MemoController) Memo() *state.Memo {
	return c.memo
}

func (c *MemoController) PointerDown(pos geom.Point) {
	c.memo.StrokeStart(pos)
}

func (c *MemoController) PointerMove(pos geom.Point) {
	c.memo.StrokeMove(pos)
}

func (c *MemoController) PointerUp(geom.Point) {
	c.memo.StrokeEnd()
}

// PointerLeave finishes the stroke the way pointer-up does.
func (c *MemoController) PointerLeave() {
	c.memo.StrokeEnd()
}

func (c *MemoController) Undo() { c.memo.Undo() }
func (c *MemoController) Redo() { c.memo.Redo() }

// Clear forgets the history and wipes the surface.
func (c *MemoController) Clear() {
	c.memo.ClearAll()
	c.memo.ClearSurface()
}
