// Package export writes the rendered surface or the committed strokes to
// PNG and PDF files.
package export

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/surface"
	"CanvasScroll/internal/viewport"
)

// A4 portrait in points, and the blank border kept around fitted strokes.
var (
	A4     = geom.Pt(595.28, 841.89)
	margin = 36.0
)

// MemoPDF writes strokes onto an A4 page, scaled to fit inside the margins.
// Nothing is scaled up: small drawings keep their size. Stroke ids go into
// the document keywords in drawing order.
func MemoPDF(w io.Writer, strokes []state.Stroke, style state.Style) error {
	page := surface.NewPDF(A4)

	ids := make([]string, len(strokes))
	for i, s := range strokes {
		ids[i] = s.ID
	}
	page.SetMetadata("Memo", ids)

	if box, ok := state.StrokesBounds(strokes); ok {
		box = box.Inset(style.Width / 2)
		scale := math.Min((A4.X-2*margin)/math.Max(box.Width, 1), (A4.Y-2*margin)/math.Max(box.Height, 1))
		scale = math.Min(scale, 1)
		page.Place(scale, geom.Pt(margin-box.X*scale, margin-box.Y*scale))
	}
	state.ReplayOnto(page, strokes, style)

	if err := page.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	log.Printf("[EXPORT] %d strokes written as pdf", len(strokes))
	return nil
}

// ViewportPDF renders what v shows onto a page the size of the viewport.
func ViewportPDF(w io.Writer, v *viewport.Viewport) error {
	page := surface.NewPDF(v.Size())
	page.SetMetadata("Viewport", nil)
	v.RenderOnto(page)

	if err := page.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// PNG writes the pixels of r.
func PNG(w io.Writer, r *surface.Raster) error {
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// WriteFile creates path and hands it to write, closing it afterwards.
func WriteFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Printf("[EXPORT] wrote %s", path)
	return nil
}
