package ui

import (
	"bytes"
	"image/color"
	"testing"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func press(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, dy),
	}
}

func TestViewportWidgetDrag(t *testing.T) {
	test.NewTempApp(t)

	w := NewViewportWidget(300, 200)
	start := w.Controller().Viewport().State()

	var seen []viewport.State
	w.OnChanged = func(s viewport.State) { seen = append(seen, s) }

	w.MouseDown(press(10, 10))
	w.Dragged(drag(30, 10, 20, 0))
	w.DragEnd()
	w.MouseUp(press(30, 10))

	want := start.Panned(geom.Pt(20, 0))
	if got := w.Controller().Viewport().State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
	if len(seen) == 0 {
		t.Error("OnChanged was never called")
	}
}

func TestViewportWidgetSecondaryButtonIgnored(t *testing.T) {
	test.NewTempApp(t)

	w := NewViewportWidget(300, 200)
	e := press(10, 10)
	e.Button = desktop.MouseButtonSecondary
	w.MouseDown(e)

	if w.Controller().Viewport().Dragging() {
		t.Error("secondary button opened a drag")
	}
}

func TestViewportWidgetScrollSyncsSlider(t *testing.T) {
	test.NewTempApp(t)

	w := NewViewportWidget(300, 200)
	slider := NewZoomSlider(w)

	w.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)},
		Scrolled:   fyne.NewDelta(0, 10),
	})

	if got := w.Controller().SliderValue(); got != 1 {
		t.Errorf("SliderValue() = %v, want 1", got)
	}
	if slider.Value != 1 {
		t.Errorf("slider.Value = %v, want 1", slider.Value)
	}
	if got, want := w.Controller().Viewport().State().Scale, viewport.SliderScale(1); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}

	slider.OnChanged(-10)
	if got := w.Controller().Viewport().State().Scale; got < 0.0999 || got > 0.1001 {
		t.Errorf("Scale after slider = %v, want 0.1", got)
	}
}

func TestMemoWidgetStrokeUndoRedo(t *testing.T) {
	test.NewTempApp(t)

	w := NewMemoWidget(300, 300)
	w.MouseDown(press(0, 0))
	w.Dragged(drag(5, 0, 5, 0))
	w.Dragged(drag(5, 5, 0, 5))
	w.DragEnd()

	memo := w.Controller().Memo()
	h := memo.History()
	if len(h.Committed) != 1 {
		t.Fatalf("Committed = %d strokes, want 1", len(h.Committed))
	}
	if got := len(h.Committed[0].Points); got != 3 {
		t.Errorf("stroke points = %d, want 3", got)
	}

	w.Undo()
	if memo.CanUndo() || !memo.CanRedo() {
		t.Errorf("after Undo: CanUndo=%v CanRedo=%v", memo.CanUndo(), memo.CanRedo())
	}
	w.Redo()
	if !memo.CanUndo() || memo.CanRedo() {
		t.Errorf("after Redo: CanUndo=%v CanRedo=%v", memo.CanUndo(), memo.CanRedo())
	}

	w.Clear()
	if memo.CanUndo() || memo.CanRedo() {
		t.Error("Clear left history behind")
	}
}

func TestMemoWidgetReportsCounts(t *testing.T) {
	test.NewTempApp(t)

	w := NewMemoWidget(100, 100, state.WithStyle(state.Style{Width: 3, Color: color.Black}))
	var committed, redo int
	w.OnChanged = func(c, r int) { committed, redo = c, r }

	w.MouseDown(press(10, 10))
	w.Dragged(drag(20, 20, 10, 10))
	w.MouseUp(press(20, 20))
	w.Undo()

	if committed != 0 || redo != 1 {
		t.Errorf("OnChanged(%d, %d), want (0, 1)", committed, redo)
	}
	if got := describeHistory(committed, redo); got != "0 strokes, 1 to redo" {
		t.Errorf("describeHistory() = %q", got)
	}
	if got := w.Controller().Memo().Style().Width; got != 3 {
		t.Errorf("pen width = %v, want 3", got)
	}
}

func TestExportMemo(t *testing.T) {
	test.NewTempApp(t)

	w := NewMemoWidget(100, 100)
	w.MouseDown(press(10, 10))
	w.Dragged(drag(50, 50, 40, 40))
	w.MouseUp(press(50, 50))

	var pdf bytes.Buffer
	if err := exportMemo(w, &pdf, ".PDF"); err != nil {
		t.Fatalf("exportMemo(pdf) error = %v", err)
	}
	if !bytes.HasPrefix(pdf.Bytes(), []byte("%PDF")) {
		t.Error("pdf export is not a PDF")
	}

	var png bytes.Buffer
	if err := exportMemo(w, &png, ".png"); err != nil {
		t.Fatalf("exportMemo(png) error = %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Error("png export is not a PNG")
	}

	if err := exportMemo(w, &png, ".svg"); err == nil {
		t.Error("exportMemo(svg) succeeded, want error")
	}
}
