package surface

import (
	"image"
	"image/color"
	"io"
	"log"

	"CanvasScroll/internal/geom"

	"github.com/gogpu/gg"
)

// Raster is a Surface backed by a gg software context.
type Raster struct {
	dc         *gg.Context
	background color.Color
	bounds     geom.Rect
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a raster surface of the given pixel size filled with background.
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		dc:         gg.NewContext(width, height),
		background: background,
		bounds:     geom.Rect{Width: float64(width), Height: float64(height)},
	}
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	r.Clear(r.bounds)
	return r
}

// Bounds returns the full surface rectangle.
func (r *Raster) Bounds() geom.Rect {
	return r.bounds
}

// Clear paints region with the background colour. A region covering the whole
// surface resets every pixel, including any transparency left behind.
func (r *Raster) Clear(region geom.Rect) {
	r.dc.ClearPath()
	if region.X <= 0 && region.Y <= 0 &&
		region.X+region.Width >= r.bounds.Width && region.Y+region.Height >= r.bounds.Height {
		r.dc.ClearWithColor(gg.FromColor(r.background))
		return
	}
	r.dc.DrawRectangle(region.X, region.Y, region.Width, region.Height)
	r.dc.SetColor(r.background)
	if err := r.dc.Fill(); err != nil {
		log.Printf("[SURFACE] clear %+v failed: %v", region, err)
	}
}

func (r *Raster) MoveTo(p geom.Point) {
	r.dc.MoveTo(p.X, p.Y)
}

func (r *Raster) LineTo(p geom.Point) {
	r.dc.LineTo(p.X, p.Y)
}

func (r *Raster) Stroke(width float64, c color.Color) {
	r.dc.SetLineWidth(width)
	r.dc.SetColor(c)
	if err := r.dc.Stroke(); err != nil {
		log.Printf("[SURFACE] stroke failed: %v", err)
	}
}

func (r *Raster) FillCircle(center geom.Point, radius float64, c color.Color) {
	r.dc.ClearPath()
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(c)
	if err := r.dc.Fill(); err != nil {
		log.Printf("[SURFACE] fill circle at %v failed: %v", center, err)
	}
}

// Image returns a snapshot of the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the underlying context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
