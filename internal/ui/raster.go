package ui

import (
	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func toPoint(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

// rasterRenderer shows the pixels of a surface.Raster at one fyne unit per
// pixel, anchored at the widget's top-left corner.
type rasterRenderer struct {
	raster *surface.Raster
	image  *canvas.Image
}

func newRasterRenderer(r *surface.Raster) *rasterRenderer {
	img := canvas.NewImageFromImage(r.Image())
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels
	return &rasterRenderer{raster: r, image: img}
}

func (r *rasterRenderer) MinSize() fyne.Size {
	b := r.raster.Bounds()
	return fyne.NewSize(float32(b.Width), float32(b.Height))
}

func (r *rasterRenderer) Layout(fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.MinSize())
}

func (r *rasterRenderer) Refresh() {
	r.image.Image = r.raster.Image()
	r.image.Refresh()
}

func (r *rasterRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *rasterRenderer) Destroy() {}
