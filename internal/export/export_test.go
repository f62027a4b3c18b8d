package export

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/surface"
	"CanvasScroll/internal/viewport"
)

func TestMemoPDF(t *testing.T) {
	strokes := []state.Stroke{
		{ID: "a", Points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}},
		{ID: "b", Points: []geom.Point{{X: 2000, Y: 3000}, {X: 2100, Y: 3100}}},
	}

	var buf bytes.Buffer
	if err := MemoPDF(&buf, strokes, state.DefaultStyle); err != nil {
		t.Fatalf("MemoPDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("MemoPDF() output is not a PDF")
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Keywords (a b)")) {
		t.Error("MemoPDF() did not record the stroke ids as keywords")
	}
}

func TestMemoPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := MemoPDF(&buf, nil, state.DefaultStyle); err != nil {
		t.Fatalf("MemoPDF(nil) error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("MemoPDF(nil) wrote nothing")
	}
}

func TestViewportPDF(t *testing.T) {
	v := viewport.New(surface.NewRecorder(nil), geom.Pt(300, 200))
	var buf bytes.Buffer
	if err := ViewportPDF(&buf, v); err != nil {
		t.Fatalf("ViewportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("ViewportPDF() output is not a PDF")
	}
}

func TestViewportPDFKeepsMarker(t *testing.T) {
	v := viewport.New(surface.NewRecorder(nil), geom.Pt(300, 200), viewport.WithMarker(geom.Pt(0, 0), 20))
	if err := v.ZoomAround(2, geom.Pt(50, 50)); err != nil {
		t.Fatal(err)
	}

	page := surface.NewRecorder(nil)
	v.RenderOnto(page)
	ops := page.Ops()
	last := ops[len(ops)-1]
	if last.Kind != surface.OpFillCircle {
		t.Fatalf("last op = %v, want fillCircle", last)
	}
	if last.Point != geom.Pt(50, 50) || last.Radius != 40 {
		t.Errorf("marker = %v r=%v, want (50,50) r=40", last.Point, last.Radius)
	}

	var buf bytes.Buffer
	if err := ViewportPDF(&buf, v); err != nil {
		t.Fatalf("ViewportPDF() error = %v", err)
	}
}

func TestWriteFilePNG(t *testing.T) {
	r := surface.NewRaster(32, 32, color.White)
	defer r.Close()

	path := filepath.Join(t.TempDir(), "out.png")
	err := WriteFile(path, func(w io.Writer) error { return PNG(w, r) })
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("written file is not a PNG")
	}
}

func TestWriteFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")
	if err := WriteFile(path, func(io.Writer) error { return nil }); err == nil {
		t.Error("WriteFile() into a missing directory succeeded")
	}
}
