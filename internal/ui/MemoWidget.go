package ui

import (
	"fmt"
	"image/color"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/input"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// MemoWidget captures freehand strokes with the primary button.
type MemoWidget struct {
	widget.BaseWidget
	raster  *surface.Raster
	control *input.MemoController
	last    fyne.Position

	// OnChanged is told the committed and redo counts after every redraw.
	OnChanged func(committed, redo int)
}

var _ fyne.Widget = (*MemoWidget)(nil)
var _ fyne.Draggable = (*MemoWidget)(nil)
var _ desktop.Mouseable = (*MemoWidget)(nil)
var _ desktop.Hoverable = (*MemoWidget)(nil)

func NewMemoWidget(width, height int, opts ...state.MemoOption) *MemoWidget {
	r := surface.NewRaster(width, height, color.White)
	m := state.NewMemo(r, geom.Rect{Width: float64(width), Height: float64(height)}, opts...)
	w := &MemoWidget{
		raster:  r,
		control: input.NewMemoController(m),
	}
	w.ExtendBaseWidget(w)
	return w
}

// Controller exposes the event controller.
func (w *MemoWidget) Controller() *input.MemoController {
	return w.control
}

// Raster returns the surface strokes are drawn onto.
func (w *MemoWidget) Raster() *surface.Raster {
	return w.raster
}

func (w *MemoWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.last = e.Position
	w.control.PointerDown(toPoint(e.Position))
	w.Refresh()
}

func (w *MemoWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.control.PointerUp(toPoint(e.Position))
	w.Refresh()
}

func (w *MemoWidget) Dragged(e *fyne.DragEvent) {
	w.last = e.Position
	w.control.PointerMove(toPoint(e.Position))
	w.Refresh()
}

func (w *MemoWidget) DragEnd() {
	w.control.PointerUp(toPoint(w.last))
	w.Refresh()
}

func (w *MemoWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *MemoWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *MemoWidget) MouseOut() {
	w.control.PointerLeave()
	w.Refresh()
}

func (w *MemoWidget) Undo() {
	w.control.Undo()
	w.Refresh()
}

func (w *MemoWidget) Redo() {
	w.control.Redo()
	w.Refresh()
}

func (w *MemoWidget) Clear() {
	w.control.Clear()
	w.Refresh()
}

func (w *MemoWidget) Refresh() {
	w.BaseWidget.Refresh()
	if w.OnChanged != nil {
		w.OnChanged(w.control.Memo().Counts())
	}
}

func (w *MemoWidget) CreateRenderer() fyne.WidgetRenderer {
	return newRasterRenderer(w.raster)
}

func describeHistory(committed, redo int) string {
	return fmt.Sprintf("%d strokes, %d to redo", committed, redo)
}
