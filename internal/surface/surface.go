// Package surface defines the 2D drawing surface the engines render onto and
// provides raster, PDF and recording implementations of it.
package surface

import (
	"image/color"

	"CanvasScroll/internal/geom"
)

// Surface is the minimal set of drawing primitives the engines need.
// MoveTo and LineTo build a path in surface coordinates; Stroke paints and
// discards it.
type Surface interface {
	Clear(region geom.Rect)
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	Stroke(width float64, c color.Color)
	FillCircle(center geom.Point, radius float64, c color.Color)
}

// Polyline traces points as one connected path and strokes it.
// A single point produces an empty path, like a canvas moveTo followed by stroke.
func Polyline(s Surface, points []geom.Point, width float64, c color.Color) {
	if len(points) == 0 {
		return
	}
	s.MoveTo(points[0])
	for _, p := range points[1:] {
		s.LineTo(p)
	}
	s.Stroke(width, c)
}
