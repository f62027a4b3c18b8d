// Package input translates pointer, wheel and slider events into engine
// calls. The fyne widgets and the headless replay both dispatch through it.
package input

import (
	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/viewport"
)

// ViewportController drives a viewport from pointer, wheel and slider events.
type ViewportController struct {
	view   *viewport.Viewport
	slider float64

	// OnSlider, if set, is told the new slider value after a wheel step so a
	// slider widget can follow.
	OnSlider func(value float64)
}

// NewViewportController wraps v, starting the slider at the notch nearest to
// the viewport's current scale.
func NewViewportController(v *viewport.Viewport) *ViewportController {
	return &ViewportController{
		view:   v,
		slider: viewport.ScaleSlider(v.State().Scale),
	}
}

// Viewport returns the driven viewport.
func (c *ViewportController) Viewport() *viewport.Viewport {
	return c.view
}

// SliderValue returns the current slider position.
func (c *ViewportController) SliderValue() float64 {
	return c.slider
}

func (c *ViewportController) PointerDown(pos geom.Point) {
	c.view.BeginDrag(pos)
}

func (c *ViewportController) PointerMove(pos geom.Point) {
	c.view.DragTo(pos)
}

func (c *ViewportController) PointerUp(pos geom.Point) {
	c.view.EndDrag(pos)
}

// PointerLeave ends the drag where the pointer was last seen inside.
func (c *ViewportController) PointerLeave() {
	if last, ok := c.view.LastPointer(); ok {
		c.view.EndDrag(last)
	}
}

// Wheel moves the slider one notch per call, towards zoom-in when direction
// is positive, and zooms around the pointer. At either end of the slider
// range the wheel does nothing.
func (c *ViewportController) Wheel(direction float64, pos geom.Point) error {
	step := -1.0
	if direction > 0 {
		step = 1
	}
	value := viewport.ClampSlider(c.slider + step)
	if value == c.slider {
		return nil
	}
	if err := c.view.ZoomAround(viewport.SliderScale(value), pos); err != nil {
		return err
	}
	c.slider = value
	if c.OnSlider != nil {
		c.OnSlider(value)
	}
	return nil
}

// Slider sets the slider position and zooms around the viewport centre.
func (c *ViewportController) Slider(value float64) error {
	value = viewport.ClampSlider(value)
	if err := c.view.ZoomAroundCenter(viewport.SliderScale(value)); err != nil {
		return err
	}
	c.slider = value
	return nil
}
