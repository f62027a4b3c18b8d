package surface

import (
	"image/color"
	"io"
	"strings"

	"CanvasScroll/internal/geom"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"
)

// PDF is a Surface drawing onto a single gofpdf page. Points pass through a
// placement matrix before reaching the page, so callers can fit logical
// content to the paper.
type PDF struct {
	doc       *gofpdf.Fpdf
	place     gg.Matrix
	lineScale float64
	pathOpen  bool
}

var _ Surface = (*PDF)(nil)

// NewPDF starts a one-page document of the given size in points.
func NewPDF(size geom.Point) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.X, Ht: size.Y},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	return &PDF{doc: doc, place: gg.Identity(), lineScale: 1}
}

// Place sets the uniform scale and offset applied to every subsequent point.
// Line widths and radii are scaled by the same factor.
func (p *PDF) Place(scale float64, offset geom.Point) {
	p.place = gg.Translate(offset.X, offset.Y).Multiply(gg.Scale(scale, scale))
	p.lineScale = scale
}

func (p *PDF) at(pt geom.Point) gg.Point {
	return p.place.TransformPoint(gg.Pt(pt.X, pt.Y))
}

// Clear paints region white; paper has no transparency.
func (p *PDF) Clear(region geom.Rect) {
	lo := p.at(region.Min())
	hi := p.at(region.Max())
	p.doc.SetFillColor(255, 255, 255)
	p.doc.Rect(lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y, "F")
	p.pathOpen = false
}

func (p *PDF) MoveTo(pt geom.Point) {
	q := p.at(pt)
	p.doc.MoveTo(q.X, q.Y)
	p.pathOpen = true
}

func (p *PDF) LineTo(pt geom.Point) {
	q := p.at(pt)
	p.doc.LineTo(q.X, q.Y)
}

func (p *PDF) Stroke(width float64, c color.Color) {
	if !p.pathOpen {
		return
	}
	r, g, b := rgb8(c)
	p.doc.SetDrawColor(r, g, b)
	p.doc.SetLineWidth(width * p.lineScale)
	p.doc.DrawPath("D")
	p.pathOpen = false
}

func (p *PDF) FillCircle(center geom.Point, radius float64, c color.Color) {
	q := p.at(center)
	r, g, b := rgb8(c)
	p.doc.SetFillColor(r, g, b)
	p.doc.Circle(q.X, q.Y, radius*p.lineScale, "F")
}

// SetMetadata fills in the document title and its space separated keywords.
func (p *PDF) SetMetadata(title string, keywords []string) {
	p.doc.SetTitle(title, false)
	p.doc.SetKeywords(strings.Join(keywords, " "), false)
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

func rgb8(c color.Color) (int, int, int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}
