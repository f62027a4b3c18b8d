package surface

import (
	"bytes"
	"image/color"
	"testing"

	"CanvasScroll/internal/geom"
)

func TestRecorderVisible(t *testing.T) {
	r := NewRecorder(nil)

	Polyline(r, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}, 2, color.Black)
	if got := len(r.Visible()); got != 1 {
		t.Fatalf("len(Visible()) = %d, want 1", got)
	}

	r.MoveTo(geom.Pt(1, 1))
	r.LineTo(geom.Pt(2, 2))
	if got := len(r.Visible()); got != 1 {
		t.Errorf("unstroked path should not be visible, len(Visible()) = %d", got)
	}

	r.Clear(geom.Rect{Width: 10, Height: 10})
	if got := r.Visible(); len(got) != 0 {
		t.Errorf("Visible() after clear = %v, want none", got)
	}

	if got := r.Count(OpClear); got != 1 {
		t.Errorf("Count(OpClear) = %d, want 1", got)
	}
}

func TestRecorderForwards(t *testing.T) {
	inner := NewRecorder(nil)
	outer := NewRecorder(inner)

	outer.FillCircle(geom.Pt(3, 4), 2, color.Black)
	outer.Clear(geom.Rect{Width: 1, Height: 1})

	if got, want := len(inner.Ops()), 2; got != want {
		t.Fatalf("forwarded ops = %d, want %d", got, want)
	}
	if inner.Ops()[0].Kind != OpFillCircle {
		t.Errorf("first forwarded op = %v, want fillCircle", inner.Ops()[0].Kind)
	}

	outer.Reset()
	if got := len(outer.Ops()); got != 0 {
		t.Errorf("Ops() after Reset = %d, want 0", got)
	}
}

func TestPolylineSinglePoint(t *testing.T) {
	r := NewRecorder(nil)
	Polyline(r, []geom.Point{{X: 4, Y: 4}}, 8, color.Black)
	Polyline(r, nil, 8, color.Black)

	if got := r.Count(OpMoveTo); got != 1 {
		t.Errorf("Count(OpMoveTo) = %d, want 1", got)
	}
	if got := r.Count(OpStroke); got != 1 {
		t.Errorf("Count(OpStroke) = %d, want 1", got)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(100, 100, color.White)
	defer r.Close()

	r.FillCircle(geom.Pt(50, 50), 20, color.RGBA{R: 255, A: 255})

	red, green, _, _ := r.Image().At(50, 50).RGBA()
	if red>>8 < 200 || green>>8 > 50 {
		t.Errorf("centre pixel = (%d, %d), want red", red>>8, green>>8)
	}

	red, green, _, _ = r.Image().At(5, 5).RGBA()
	if red>>8 != 255 || green>>8 != 255 {
		t.Errorf("corner pixel = (%d, %d), want white background", red>>8, green>>8)
	}
}

func TestRasterClearRegion(t *testing.T) {
	r := NewRaster(40, 40, color.White)
	defer r.Close()

	r.FillCircle(geom.Pt(20, 20), 15, color.Black)
	r.Clear(r.Bounds())

	red, _, _, _ := r.Image().At(20, 20).RGBA()
	if red>>8 != 255 {
		t.Errorf("pixel after full clear = %d, want 255", red>>8)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG() did not write a PNG header")
	}
}

func TestPDFOutput(t *testing.T) {
	p := NewPDF(geom.Pt(300, 200))
	p.Place(0.5, geom.Pt(10, 10))
	p.Clear(geom.Rect{Width: 300, Height: 200})
	Polyline(p, []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 50}}, 8, color.Black)
	p.FillCircle(geom.Pt(100, 50), 10, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("Output() does not start with %%PDF")
	}
}
