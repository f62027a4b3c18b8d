package geom

// Rect is an axis-aligned rectangle on a drawing surface.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromSize returns the rectangle anchored at the origin with the given size.
func RectFromSize(size Point) Rect {
	return Rect{Width: size.X, Height: size.Y}
}

func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := r.X, r.Y
	if o.X < minX {
		minX = o.X
	}
	if o.Y < minY {
		minY = o.Y
	}
	maxX, maxY := r.X+r.Width, r.Y+r.Height
	if o.X+o.Width > maxX {
		maxX = o.X + o.Width
	}
	if o.Y+o.Height > maxY {
		maxY = o.Y + o.Height
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Inset grows r by pad on every side. A negative pad shrinks it.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
}

// BoundingBox returns the bounding box of points. ok is false when points is empty.
func BoundingBox(points []Point) (box Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
