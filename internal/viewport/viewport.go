package viewport

import (
	"image/color"
	"log"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/surface"
)

// Reference geometry drawn by Render, in logical units.
const (
	axisX     = 50.0
	axisY     = 100.0
	axisWidth = 10.0
)

// DragSession is an in-flight pan. Base is the state the drag is measured
// from; the persisted state does not move until the drag ends.
type DragSession struct {
	Start geom.Point
	Last  geom.Point
	Base  State
}

// Viewport owns the persisted State and the optional DragSession, and
// renders reference axes plus a marker circle through the current mapping.
type Viewport struct {
	surface surface.Surface
	size    geom.Point

	state State
	drag  *DragSession

	axisColor    color.Color
	marker       geom.Point
	markerRadius float64
	markerColor  color.Color
}

// Option configures a Viewport.
type Option func(*Viewport)

// WithState sets the initial state. An invalid scale is ignored.
func WithState(s State) Option {
	return func(v *Viewport) {
		if s.Validate() == nil {
			v.state = s
		}
	}
}

// WithMarker places the marker circle at a logical point with a logical radius.
func WithMarker(center geom.Point, radius float64) Option {
	return func(v *Viewport) {
		v.marker = center
		v.markerRadius = radius
	}
}

// New creates a viewport of size pixels drawing onto s. The logical origin
// starts 50 pixels in from the top-left corner at scale 1.
func New(s surface.Surface, size geom.Point, opts ...Option) *Viewport {
	v := &Viewport{
		surface:      s,
		size:         size,
		state:        State{Origin: geom.Pt(-50, -50), Scale: 1},
		axisColor:    color.Black,
		marker:       geom.Pt(100, 50),
		markerRadius: 10,
		markerColor:  color.RGBA{R: 220, G: 40, B: 40, A: 255},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State returns the persisted state.
func (v *Viewport) State() State {
	return v.state
}

// Size returns the viewport size in pixels.
func (v *Viewport) Size() geom.Point {
	return v.size
}

// Dragging reports whether a drag session is open.
func (v *Viewport) Dragging() bool {
	return v.drag != nil
}

// Provisional returns the state currently on screen: the drag preview while
// dragging, the persisted state otherwise.
func (v *Viewport) Provisional() State {
	if v.drag == nil {
		return v.state
	}
	return v.drag.Base.Panned(v.drag.Last.Sub(v.drag.Start))
}

// BeginDrag opens a drag session at pointer position pA. A session that is
// already open is abandoned without committing.
func (v *Viewport) BeginDrag(pA geom.Point) {
	if v.drag != nil {
		log.Printf("[VIEWPORT] abandoning drag started at %v", v.drag.Start)
	}
	v.drag = &DragSession{Start: pA, Last: pA, Base: v.state}
}

// DragTo previews the pan to pA. Without an open session it does nothing.
func (v *Viewport) DragTo(pA geom.Point) {
	if v.drag == nil {
		return
	}
	v.drag.Last = pA
	v.Render()
}

// EndDrag commits the pan to pA and closes the session. Without an open
// session it does nothing.
func (v *Viewport) EndDrag(pA geom.Point) {
	if v.drag == nil {
		return
	}
	v.drag.Last = pA
	v.state = v.Provisional()
	v.drag = nil
	log.Printf("[VIEWPORT] drag committed, origin %v scale %.3f", v.state.Origin, v.state.Scale)
	v.Render()
}

// LastPointer returns the most recent pointer position of the open drag.
func (v *Viewport) LastPointer() (geom.Point, bool) {
	if v.drag == nil {
		return geom.Point{}, false
	}
	return v.drag.Last, true
}

// ZoomAround switches to scale while keeping the logical point under centerA
// in place. It commits immediately, also mid-drag: the drag base is moved so
// the preview keeps following the pointer without a jump.
func (v *Viewport) ZoomAround(scale float64, centerA geom.Point) error {
	if err := (State{Scale: scale}).Validate(); err != nil {
		return err
	}

	b := v.ToB(centerA)
	if v.drag == nil {
		v.state = zoomed(b, centerA, scale)
	} else {
		// Solve for the base whose panned preview keeps b under centerA.
		delta := v.drag.Last.Sub(v.drag.Start)
		base := zoomed(b, centerA, scale)
		base.Origin = base.Origin.Add(delta.Div(scale))
		v.drag.Base = base
		v.state = base
	}

	log.Printf("[VIEWPORT] zoom to %.3f around %v", scale, centerA)
	v.Render()
	return nil
}

// ZoomAroundCenter zooms around the middle of the viewport.
func (v *Viewport) ZoomAroundCenter(scale float64) error {
	return v.ZoomAround(scale, geom.RectFromSize(v.size).Center())
}

// Transform returns the mapping for the state on screen.
func (v *Viewport) Transform() Transform {
	t, err := NewTransform(v.Provisional())
	if err != nil {
		// Scales are validated on the way in.
		panic(err)
	}
	return t
}

// ToA maps a logical point to viewport pixels.
func (v *Viewport) ToA(pB geom.Point) geom.Point {
	return v.Transform().ToA(pB)
}

// ToB maps a viewport pixel to logical coordinates.
func (v *Viewport) ToB(pA geom.Point) geom.Point {
	return v.Transform().ToB(pA)
}

// Render clears the viewport and draws the axes and the marker.
func (v *Viewport) Render() {
	v.RenderOnto(v.surface)
}

// RenderOnto draws what Render would onto s instead of the viewport's own
// surface, e.g. an export page.
func (v *Viewport) RenderOnto(s surface.Surface) {
	t := v.Transform()
	scale := v.Provisional().Scale
	origin := t.ToA(geom.Point{})

	s.Clear(geom.RectFromSize(v.size))

	s.MoveTo(origin)
	s.LineTo(origin.Add(geom.Pt(axisX*scale, 0)))
	s.MoveTo(origin)
	s.LineTo(origin.Add(geom.Pt(0, axisY*scale)))
	s.Stroke(axisWidth, v.axisColor)

	s.FillCircle(t.ToA(v.marker), v.markerRadius*scale, v.markerColor)
}
