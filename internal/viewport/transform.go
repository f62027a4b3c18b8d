// Package viewport maps a fixed-size viewport (A) onto a pannable, zoomable
// logical surface (B) and renders reference geometry through that mapping.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"CanvasScroll/internal/geom"

	"github.com/gogpu/gg"
)

// ErrInvalidScale is returned when a scale would make the transform
// non-invertible.
var ErrInvalidScale = errors.New("viewport: scale must be positive")

// State is where the logical surface sits under the viewport.
// Origin is the logical point shown at the viewport's top-left corner;
// Scale is how many viewport pixels one logical unit covers.
type State struct {
	Origin geom.Point
	Scale  float64
}

// Panned returns the state after the pointer moved delta viewport pixels.
// The logical origin moves by delta/Scale so content tracks the pointer at
// the same pixel speed at every zoom level.
func (s State) Panned(delta geom.Point) State {
	if delta.IsZero() {
		return s
	}
	return State{Origin: s.Origin.Sub(delta.Div(s.Scale)), Scale: s.Scale}
}

// Validate reports ErrInvalidScale unless both the scale and its inverse are
// positive finite numbers.
func (s State) Validate() error {
	if !(s.Scale > 0) || math.IsInf(s.Scale, 0) || math.IsInf(1/s.Scale, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, s.Scale)
	}
	return nil
}

// Transform holds both directions of the affine mapping for one State.
type Transform struct {
	toA gg.Matrix
	toB gg.Matrix
}

// NewTransform builds the mapping for s. gg.Matrix.Invert falls back to the
// identity on singular input, so the scale is checked first.
func NewTransform(s State) (Transform, error) {
	if err := s.Validate(); err != nil {
		return Transform{}, err
	}
	toA := gg.Scale(s.Scale, s.Scale).Multiply(gg.Translate(-s.Origin.X, -s.Origin.Y))
	return Transform{toA: toA, toB: toA.Invert()}, nil
}

// ToA maps a logical point to viewport pixels.
func (t Transform) ToA(p geom.Point) geom.Point {
	q := t.toA.TransformPoint(gg.Pt(p.X, p.Y))
	return geom.Pt(q.X, q.Y)
}

// ToB maps a viewport pixel to logical coordinates.
func (t Transform) ToB(p geom.Point) geom.Point {
	q := t.toB.TransformPoint(gg.Pt(p.X, p.Y))
	return geom.Pt(q.X, q.Y)
}

// zoomed returns s rescaled so that the logical point b stays under the
// viewport pixel centerA.
func zoomed(b geom.Point, centerA geom.Point, scale float64) State {
	return State{Origin: b.Sub(centerA.Div(scale)), Scale: scale}
}
