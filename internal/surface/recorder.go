package surface

import (
	"fmt"
	"image/color"

	"CanvasScroll/internal/geom"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpMoveTo
	OpLineTo
	OpStroke
	OpFillCircle
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpStroke:
		return "stroke"
	case OpFillCircle:
		return "fillCircle"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Region geom.Rect
	Point  geom.Point
	Width  float64
	Radius float64
	Color  color.Color
}

func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear %+v", o.Region)
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s %v", o.Kind, o.Point)
	case OpStroke:
		return fmt.Sprintf("stroke width=%.2f", o.Width)
	case OpFillCircle:
		return fmt.Sprintf("fillCircle %v r=%.2f", o.Point, o.Radius)
	}
	return o.Kind.String()
}

// Recorder is a Surface that remembers every call, optionally forwarding
// them to another surface.
type Recorder struct {
	ops  []Op
	next Surface
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a recorder forwarding to next, which may be nil.
func NewRecorder(next Surface) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Clear(region geom.Rect) {
	r.ops = append(r.ops, Op{Kind: OpClear, Region: region})
	if r.next != nil {
		r.next.Clear(region)
	}
}

func (r *Recorder) MoveTo(p geom.Point) {
	r.ops = append(r.ops, Op{Kind: OpMoveTo, Point: p})
	if r.next != nil {
		r.next.MoveTo(p)
	}
}

func (r *Recorder) LineTo(p geom.Point) {
	r.ops = append(r.ops, Op{Kind: OpLineTo, Point: p})
	if r.next != nil {
		r.next.LineTo(p)
	}
}

func (r *Recorder) Stroke(width float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Width: width, Color: c})
	if r.next != nil {
		r.next.Stroke(width, c)
	}
}

func (r *Recorder) FillCircle(center geom.Point, radius float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Point: center, Radius: radius, Color: c})
	if r.next != nil {
		r.next.FillCircle(center, radius, c)
	}
}

// Ops returns a copy of every recorded call.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return ops
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Visible returns the stroked polylines painted since the most recent clear,
// one entry per subpath. Paths that were never stroked are left out.
func (r *Recorder) Visible() [][]geom.Point {
	var (
		visible [][]geom.Point
		pending [][]geom.Point
	)
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			visible, pending = nil, nil
		case OpMoveTo:
			pending = append(pending, []geom.Point{op.Point})
		case OpLineTo:
			if len(pending) == 0 {
				pending = append(pending, nil)
			}
			last := len(pending) - 1
			pending[last] = append(pending[last], op.Point)
		case OpStroke:
			visible = append(visible, pending...)
			pending = nil
		}
	}
	return visible
}
