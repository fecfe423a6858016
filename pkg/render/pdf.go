package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/logging"
)

const tsFormat = "2006-01-02 15:04:05"

// corner radius of roundRect shapes relative to the shorter side
const cornerRatio = 0.16667

func renderPDF(c *Context, d *deckgen.Deck, w io.Writer) error {
	logging.Debug("Render PDF for deck %q, %d slides", d.ID, d.NumSlides())
	pdf, tr := setupPDF(d)

	for _, s := range d.Slides() {
		renderSlidePDF(c, pdf, tr, s)
		if pdf.Err() {
			return pdf.Error()
		}
	}

	return pdf.Output(w)
}

// setupPDF returns the document and the translator from UTF-8 to the
// cp1252 encoding of the core fonts.
func setupPDF(d *deckgen.Deck) (*gofpdf.Fpdf, func(string) string) {
	// the page has the canvas size, "P" keeps width and height as given
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: d.Width().Points(),
			Ht: d.Height().Points(),
		},
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("deckgen", true)
	pdf.SetTitle(d.Title, true)
	if !d.Created.IsZero() {
		pdf.SetCreationDate(d.Created.UTC())
		pdf.SetModificationDate(d.Created.UTC())
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cell(0, 10, footerText(d, tr, pdf.PageNo()))
	})

	return pdf, tr
}

func footerText(d *deckgen.Deck, tr func(string) string, page int) string {
	return fmt.Sprintf("%d / {totalPages}  |  %v  |  %v",
		page,
		tr(d.Title),
		d.Created.Local().Format(tsFormat))
}

func renderSlidePDF(c *Context, pdf *gofpdf.Fpdf, tr func(string) string, s *deckgen.Slide) {
	pdf.AddPage()
	w, h := pdf.GetPageSize()

	setFillPDF(pdf, c.color(s.Background))
	pdf.Rect(0, 0, w, h, "F")

	th := s.Deck().Theme()
	for _, sh := range s.Shapes() {
		switch v := sh.(type) {
		case *deckgen.TextBox:
			b := pointRect(v.Bounds())
			op := boxStyle(c, pdf, v.Fill, v.Border)
			if op != "" {
				pdf.Rect(b.x, b.y, b.w, b.h, op)
			}
			textPDF(c, pdf, tr, th, v.Bounds(), v.Frame())
		case *deckgen.AutoShape:
			shapePDF(c, pdf, v)
			textPDF(c, pdf, tr, th, v.Bounds(), v.Frame())
		case *deckgen.Connector:
			connectorPDF(c, pdf, th, v)
		}
	}
}

type fRect struct {
	x, y, w, h float64
}

func pointRect(r deckgen.Rect) fRect {
	return fRect{r.X.Points(), r.Y.Points(), r.W.Points(), r.H.Points()}
}

func setFillPDF(pdf *gofpdf.Fpdf, c deckgen.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDrawPDF(pdf *gofpdf.Fpdf, c deckgen.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

// boxStyle sets fill and draw colors and returns the gofpdf style string,
// empty if there is nothing to draw.
func boxStyle(c *Context, pdf *gofpdf.Fpdf, fill, border *deckgen.Color) string {
	op := ""
	if fill != nil {
		setFillPDF(pdf, c.color(*fill))
		op += "F"
	}
	if border != nil {
		setDrawPDF(pdf, c.color(*border))
		pdf.SetLineWidth(1)
		op += "D"
	}
	return op
}

func shapePDF(c *Context, pdf *gofpdf.Fpdf, a *deckgen.AutoShape) {
	op := boxStyle(c, pdf, a.Fill, a.Border)
	if op == "" {
		return
	}
	b := pointRect(a.Bounds())

	switch a.Geometry {
	case deckgen.Rectangle:
		pdf.Rect(b.x, b.y, b.w, b.h, op)
	case deckgen.RoundedRectangle:
		r := cornerRatio * minf(b.w, b.h)
		pdf.RoundedRect(b.x, b.y, b.w, b.h, r, "1234", op)
	case deckgen.Oval:
		pdf.Ellipse(b.x+b.w/2, b.y+b.h/2, b.w/2, b.h/2, 0, op)
	case deckgen.Cloud:
		// outline all lobes, then fill over the inner strokes
		if a.Border != nil {
			for _, e := range cloudLobes {
				pdf.Ellipse(b.x+e.cx*b.w, b.y+e.cy*b.h, e.rx*b.w, e.ry*b.h, 0, "D")
			}
		}
		if a.Fill != nil {
			for _, e := range cloudLobes {
				pdf.Ellipse(b.x+e.cx*b.w, b.y+e.cy*b.h, e.rx*b.w, e.ry*b.h, 0, "F")
			}
		}
	}
}

func connectorPDF(c *Context, pdf *gofpdf.Fpdf, th *deckgen.Theme, cn *deckgen.Connector) {
	col, width := connectorStyle(th, cn)
	setDrawPDF(pdf, c.color(col))
	pdf.SetLineWidth(width.Points())

	pts := connectorPath(cn)
	for i := range pts {
		pts[i] = point{pts[i].x / float64(deckgen.Point), pts[i].y / float64(deckgen.Point)}
	}

	if cn.Kind == deckgen.Curved {
		p := pts
		pdf.CurveBezierCubic(p[0].x, p[0].y, p[1].x, p[1].y, p[2].x, p[2].y, p[3].x, p[3].y, "D")
		return
	}
	for i := 1; i < len(pts); i++ {
		pdf.Line(pts[i-1].x, pts[i-1].y, pts[i].x, pts[i].y)
	}
}

type pdfLine struct {
	text   string
	style  style
	indent float64
	align  string
}

var pdfAlign = map[deckgen.Alignment]string{
	deckgen.AlignLeft:   "L",
	deckgen.AlignCenter: "C",
	deckgen.AlignRight:  "R",
}

func setFontPDF(pdf *gofpdf.Fpdf, s style) {
	family := "helvetica"
	if s.mono {
		family = "courier"
	}
	fs := ""
	if s.bold {
		fs = "B"
	}
	pdf.SetFont(family, fs, s.size)
}

func textPDF(c *Context, pdf *gofpdf.Fpdf, tr func(string) string, th *deckgen.Theme, bounds deckgen.Rect, f *deckgen.TextFrame) {
	if strings.TrimSpace(f.Text()) == "" {
		return
	}
	area := pointRect(textArea(bounds, f))

	var lines []pdfLine
	height := 0.0
	for _, p := range f.Paragraphs() {
		st := resolveStyle(th, p)
		setFontPDF(pdf, st)
		indent := levelIndent.Points() * float64(p.Level)
		for _, segment := range strings.Split(p.Text, "\n") {
			wrapped := []string{tr(segment)}
			if f.WordWrap && segment != "" {
				wrapped = wrapped[:0]
				for _, l := range pdf.SplitLines([]byte(tr(segment)), area.w-indent) {
					wrapped = append(wrapped, string(l))
				}
			}
			for _, l := range wrapped {
				lines = append(lines, pdfLine{text: l, style: st, indent: indent, align: pdfAlign[p.Align]})
				height += st.size * lineSpacing
			}
		}
	}

	y := area.y + anchorOffset(f.Anchor, area.h, height)
	for _, l := range lines {
		lh := l.style.size * lineSpacing
		setFontPDF(pdf, l.style)
		col := c.color(l.style.color)
		pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
		pdf.SetXY(area.x+l.indent, y)
		pdf.CellFormat(area.w-l.indent, lh, l.text, "", 0, l.align, false, 0, "")
		y += lh
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
