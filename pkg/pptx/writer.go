// Package pptx reads and writes decks as Office Open XML presentations.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// Encoder writes a deck as a PPTX package.
// It implements deckgen.Encoder.
type Encoder struct{}

// NewEncoder creates a PPTX encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes the complete package for d to w.
func (e *Encoder) Encode(w io.Writer, d *deckgen.Deck) error {
	zw := zip.NewWriter(w)
	err := writePackage(zw, d)
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Marshal returns the PPTX package for d.
func Marshal(d *deckgen.Deck) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := NewEncoder().Encode(buf, d)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type part struct {
	name  string
	write func(x *xmlWriter)
}

func writePackage(zw *zip.Writer, d *deckgen.Deck) error {
	parts := []part{
		{partContentTypes, func(x *xmlWriter) { writeContentTypes(x, d) }},
		{partRootRels, writeRootRels},
		{partCore, func(x *xmlWriter) { writeCoreProps(x, d) }},
		{partApp, func(x *xmlWriter) { writeAppProps(x, d) }},
		{partPresentation, func(x *xmlWriter) { writePresentation(x, d) }},
		{partPresRels, func(x *xmlWriter) { writePresentationRels(x, d) }},
		{partMaster, func(x *xmlWriter) { writeMaster(x, d) }},
		{partMasterRels, writeMasterRels},
		{partLayout, writeLayout},
		{partLayoutRels, writeLayoutRels},
		{partTheme, func(x *xmlWriter) { writeTheme(x, d) }},
		{partPresProps, writePresProps},
		{partViewProps, writeViewProps},
		{partTableStyles, writeTableStyles},
	}
	for _, s := range d.Slides() {
		parts = append(parts,
			part{slidePart(s.Number()), func(x *xmlWriter) { writeSlide(x, s) }},
			part{slideRelsPart(s.Number()), writeSlideRels},
		)
	}

	for _, p := range parts {
		err := writePart(zw, d, p)
		if err != nil {
			return errors.Wrap(err, "part %q", p.name)
		}
	}
	logging.Debug("Wrote %d parts for deck %q", len(parts), d.ID)
	return nil
}

func writePart(zw *zip.Writer, d *deckgen.Deck, p part) error {
	h := &zip.FileHeader{
		Name:     p.name,
		Method:   zip.Deflate,
		Modified: d.Created,
	}
	w, err := zw.CreateHeader(h)
	if err != nil {
		return err
	}
	x := &xmlWriter{w: w}
	p.write(x)
	return x.err
}

// xmlWriter keeps the first write error, later writes are no-ops.
type xmlWriter struct {
	w   io.Writer
	err error
}

func (x *xmlWriter) raw(s string) {
	if x.err != nil {
		return
	}
	_, x.err = io.WriteString(x.w, s)
}

func (x *xmlWriter) printf(format string, v ...interface{}) {
	if x.err != nil {
		return
	}
	_, x.err = fmt.Fprintf(x.w, format, v...)
}

func (x *xmlWriter) text(s string) {
	if x.err != nil {
		return
	}
	x.err = xml.EscapeText(x.w, []byte(s))
}

// esc escapes s for use in an attribute value.
func esc(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func hundredths(pt float64) int {
	return int(math.Round(pt * 100))
}

var presetGeometry = map[deckgen.Geometry]string{
	deckgen.Rectangle:        "rect",
	deckgen.RoundedRectangle: "roundRect",
	deckgen.Oval:             "ellipse",
	deckgen.Cloud:            "cloud",
}

var presetConnector = map[deckgen.ConnectorKind]string{
	deckgen.Straight: "straightConnector1",
	deckgen.Elbow:    "bentConnector3",
	deckgen.Curved:   "curvedConnector3",
}

var alignValues = map[deckgen.Alignment]string{
	deckgen.AlignLeft:   "l",
	deckgen.AlignCenter: "ctr",
	deckgen.AlignRight:  "r",
}

var anchorValues = map[deckgen.Anchor]string{
	deckgen.AnchorTop:    "t",
	deckgen.AnchorMiddle: "ctr",
	deckgen.AnchorBottom: "b",
}

func writeSlide(x *xmlWriter, s *deckgen.Slide) {
	x.raw(xmlHeader)
	x.printf(`<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsA, nsR, nsP)
	x.raw(`<p:cSld><p:bg><p:bgPr>`)
	writeSolidFill(x, s.Background)
	x.raw(`<a:effectLst/></p:bgPr></p:bg>`)
	x.raw(`<p:spTree>` + emptyTree)

	for _, sh := range s.Shapes() {
		writeShape(x, s, sh)
	}

	x.raw(`</p:spTree></p:cSld>`)
	x.raw(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	x.raw(`</p:sld>`)
}

func writeShape(x *xmlWriter, s *deckgen.Slide, sh deckgen.Shape) {
	switch v := sh.(type) {
	case *deckgen.TextBox:
		writeTextBox(x, v)
	case *deckgen.AutoShape:
		writeAutoShape(x, v)
	case *deckgen.Connector:
		writeConnector(x, s.Deck(), v)
	default:
		if x.err == nil {
			x.err = fmt.Errorf("unsupported shape type %T", sh)
		}
	}
}

func writeTextBox(x *xmlWriter, t *deckgen.TextBox) {
	x.raw(`<p:sp><p:nvSpPr>`)
	x.printf(`<p:cNvPr id="%d" name="%s"/>`, t.ID(), esc(t.Name()))
	x.raw(`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	x.raw(`<p:spPr>`)
	writeXfrm(x, t.Bounds(), false, false)
	x.raw(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	writeFill(x, t.Fill)
	writeOutline(x, t.Border, deckgen.Pt(1))
	x.raw(`</p:spPr>`)
	writeTextBody(x, t.Frame())
	x.raw(`</p:sp>`)
}

func writeAutoShape(x *xmlWriter, a *deckgen.AutoShape) {
	prst, ok := presetGeometry[a.Geometry]
	if !ok {
		if x.err == nil {
			x.err = fmt.Errorf("unsupported geometry %v", a.Geometry)
		}
		return
	}
	x.raw(`<p:sp><p:nvSpPr>`)
	x.printf(`<p:cNvPr id="%d" name="%s"/>`, a.ID(), esc(a.Name()))
	x.raw(`<p:cNvSpPr/><p:nvPr/></p:nvSpPr>`)
	x.raw(`<p:spPr>`)
	writeXfrm(x, a.Bounds(), false, false)
	x.printf(`<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, prst)
	writeFill(x, a.Fill)
	writeOutline(x, a.Border, deckgen.Pt(1))
	x.raw(`</p:spPr>`)
	// unstyled text uses dk1, the theme's primary text color
	x.raw(`<p:style><a:lnRef idx="1"><a:schemeClr val="accent1"/></a:lnRef>` +
		`<a:fillRef idx="3"><a:schemeClr val="accent1"/></a:fillRef>` +
		`<a:effectRef idx="2"><a:schemeClr val="accent1"/></a:effectRef>` +
		`<a:fontRef idx="minor"><a:schemeClr val="dk1"/></a:fontRef></p:style>`)
	writeTextBody(x, a.Frame())
	x.raw(`</p:sp>`)
}

func writeConnector(x *xmlWriter, d *deckgen.Deck, c *deckgen.Connector) {
	prst, ok := presetConnector[c.Kind]
	if !ok {
		if x.err == nil {
			x.err = fmt.Errorf("unsupported connector kind %v", c.Kind)
		}
		return
	}
	col := c.Color
	if col == nil && d != nil {
		col = d.Theme().TextSecondary.Ptr()
	}
	width := c.Width
	if width == 0 {
		width = deckgen.Pt(1)
	}

	x.raw(`<p:cxnSp><p:nvCxnSpPr>`)
	x.printf(`<p:cNvPr id="%d" name="%s"/>`, c.ID(), esc(c.Name()))
	x.raw(`<p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>`)
	x.raw(`<p:spPr>`)
	writeXfrm(x, c.Bounds(), c.FlipH(), c.FlipV())
	x.printf(`<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, prst)
	if col != nil {
		writeOutline(x, col, width)
	}
	x.raw(`</p:spPr>`)
	x.raw(`</p:cxnSp>`)
}

func writeXfrm(x *xmlWriter, r deckgen.Rect, flipH, flipV bool) {
	x.raw(`<a:xfrm`)
	if flipH {
		x.raw(` flipH="1"`)
	}
	if flipV {
		x.raw(` flipV="1"`)
	}
	x.raw(`>`)
	x.printf(`<a:off x="%d" y="%d"/>`, r.X.EMU(), r.Y.EMU())
	x.printf(`<a:ext cx="%d" cy="%d"/>`, r.W.EMU(), r.H.EMU())
	x.raw(`</a:xfrm>`)
}

func writeSolidFill(x *xmlWriter, c deckgen.Color) {
	x.printf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, c.Hex())
}

func writeFill(x *xmlWriter, c *deckgen.Color) {
	if c == nil {
		x.raw(`<a:noFill/>`)
		return
	}
	writeSolidFill(x, *c)
}

func writeOutline(x *xmlWriter, c *deckgen.Color, w deckgen.Length) {
	if c == nil {
		x.raw(`<a:ln><a:noFill/></a:ln>`)
		return
	}
	x.printf(`<a:ln w="%d">`, w.EMU())
	writeSolidFill(x, *c)
	x.raw(`</a:ln>`)
}

func writeTextBody(x *xmlWriter, f *deckgen.TextFrame) {
	x.raw(`<p:txBody><a:bodyPr`)
	if f.WordWrap {
		x.raw(` wrap="square"`)
	} else {
		x.raw(` wrap="none"`)
	}
	if in, ok := f.Margins(); ok {
		x.printf(` lIns="%d" tIns="%d" rIns="%d" bIns="%d"`,
			in.Left.EMU(), in.Top.EMU(), in.Right.EMU(), in.Bottom.EMU())
	}
	x.printf(` anchor="%s" rtlCol="0"><a:noAutofit/></a:bodyPr>`, anchorValues[f.Anchor])
	x.raw(`<a:lstStyle/>`)
	for _, p := range f.Paragraphs() {
		writeParagraph(x, p)
	}
	x.raw(`</p:txBody>`)
}

func writeParagraph(x *xmlWriter, p *deckgen.Paragraph) {
	x.raw(`<a:p>`)
	if p.Level != 0 || p.Align != deckgen.AlignLeft {
		x.raw(`<a:pPr`)
		if p.Level != 0 {
			x.printf(` lvl="%d"`, p.Level)
		}
		if p.Align != deckgen.AlignLeft {
			x.printf(` algn="%s"`, alignValues[p.Align])
		}
		x.raw(`/>`)
	}

	for i, line := range strings.Split(p.Text, "\n") {
		if i > 0 {
			x.raw(`<a:br>`)
			writeRunProps(x, "a:rPr", p)
			x.raw(`</a:br>`)
		}
		if line == "" {
			continue
		}
		x.raw(`<a:r>`)
		writeRunProps(x, "a:rPr", p)
		x.raw(`<a:t>`)
		x.text(line)
		x.raw(`</a:t></a:r>`)
	}

	writeRunProps(x, "a:endParaRPr", p)
	x.raw(`</a:p>`)
}

func writeRunProps(x *xmlWriter, tag string, p *deckgen.Paragraph) {
	x.printf(`<%s lang="en-US"`, tag)
	if p.Size > 0 {
		x.printf(` sz="%d"`, hundredths(p.Size))
	}
	if p.Bold {
		x.raw(` b="1"`)
	}
	x.raw(` dirty="0"`)
	if p.Color == nil && p.Font == "" {
		x.raw(`/>`)
		return
	}
	x.raw(`>`)
	if p.Color != nil {
		writeSolidFill(x, *p.Color)
	}
	if p.Font != "" {
		x.printf(`<a:latin typeface="%s"/>`, esc(p.Font))
	}
	x.printf(`</%s>`, tag)
}
