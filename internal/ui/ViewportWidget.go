package ui

import (
	"fmt"
	"image/color"
	"log"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/input"
	"CanvasScroll/internal/surface"
	"CanvasScroll/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ViewportWidget pans on drag and zooms on wheel, showing the viewport's
// reference geometry.
type ViewportWidget struct {
	widget.BaseWidget
	raster  *surface.Raster
	control *input.ViewportController
	last    fyne.Position

	// OnChanged is called after every redraw, e.g. to update a status line.
	OnChanged func(viewport.State)
}

var _ fyne.Widget = (*ViewportWidget)(nil)
var _ fyne.Draggable = (*ViewportWidget)(nil)
var _ fyne.Scrollable = (*ViewportWidget)(nil)
var _ desktop.Mouseable = (*ViewportWidget)(nil)
var _ desktop.Hoverable = (*ViewportWidget)(nil)

func NewViewportWidget(width, height int, opts ...viewport.Option) *ViewportWidget {
	r := surface.NewRaster(width, height, color.White)
	v := viewport.New(r, geom.Pt(float64(width), float64(height)), opts...)
	w := &ViewportWidget{
		raster:  r,
		control: input.NewViewportController(v),
	}
	w.ExtendBaseWidget(w)
	v.Render()
	return w
}

// Controller exposes the event controller, e.g. for wiring a slider.
func (w *ViewportWidget) Controller() *input.ViewportController {
	return w.control
}

// Raster returns the surface the viewport draws onto.
func (w *ViewportWidget) Raster() *surface.Raster {
	return w.raster
}

func (w *ViewportWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.last = e.Position
	w.control.PointerDown(toPoint(e.Position))
	w.Refresh()
}

func (w *ViewportWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.control.PointerUp(toPoint(e.Position))
	w.Refresh()
}

func (w *ViewportWidget) Dragged(e *fyne.DragEvent) {
	w.last = e.Position
	w.control.PointerMove(toPoint(e.Position))
	w.Refresh()
}

func (w *ViewportWidget) DragEnd() {
	w.control.PointerUp(toPoint(w.last))
	w.Refresh()
}

func (w *ViewportWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *ViewportWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *ViewportWidget) MouseOut() {
	w.control.PointerLeave()
	w.Refresh()
}

// Scrolled zooms one slider notch around the pointer; scrolling up zooms in.
func (w *ViewportWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY == 0 {
		return
	}
	if err := w.control.Wheel(float64(e.Scrolled.DY), toPoint(e.Position)); err != nil {
		log.Printf("[VIEWPORT] wheel zoom failed: %v", err)
		return
	}
	w.Refresh()
}

// SetSlider applies a zoom slider position.
func (w *ViewportWidget) SetSlider(value float64) {
	if value == w.control.SliderValue() {
		return
	}
	if err := w.control.Slider(value); err != nil {
		log.Printf("[VIEWPORT] slider zoom failed: %v", err)
		return
	}
	w.Refresh()
}

func (w *ViewportWidget) Refresh() {
	w.BaseWidget.Refresh()
	if w.OnChanged != nil {
		w.OnChanged(w.control.Viewport().Provisional())
	}
}

func (w *ViewportWidget) CreateRenderer() fyne.WidgetRenderer {
	return newRasterRenderer(w.raster)
}

func describeState(s viewport.State) string {
	return fmt.Sprintf("scale %.2fx  origin %v", s.Scale, s.Origin)
}
