package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// Open reads the PPTX file at path.
func Open(path string) (*deckgen.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no deck at %q", path)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	d, err := Decode(f, info.Size())
	if err != nil {
		return nil, errors.Wrap(err, "read %q", path)
	}
	return d, nil
}

// Unmarshal reads a deck from PPTX bytes.
func Unmarshal(data []byte) (*deckgen.Deck, error) {
	return Decode(bytes.NewReader(data), int64(len(data)))
}

// Decode reads a PPTX package back into a deck.
//
// It understands the subset of PresentationML written by Encoder:
// text boxes, preset geometries, connectors and solid colors.
// Other elements are skipped.
func Decode(r io.ReaderAt, size int64) (*deckgen.Deck, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "open package")
	}
	pkg := &pkgReader{files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		pkg.files[f.Name] = f
	}

	var pres xPresentation
	err = pkg.readPart(partPresentation, &pres)
	if err != nil {
		return nil, err
	}
	var rels xRelationships
	err = pkg.readPart(partPresRels, &rels)
	if err != nil {
		return nil, err
	}

	slides := make([]*xSlide, len(pres.SlideIDs))
	for i, id := range pres.SlideIDs {
		target, ok := rels.target(id.RID)
		if !ok {
			return nil, errors.Wrap(errors.NewValidationError("no relationship %q", id.RID), "part %q", partPresRels)
		}
		name := resolve("ppt", target)
		var s xSlide
		err = pkg.readPart(name, &s)
		if err != nil {
			return nil, err
		}
		slides[i] = &s
	}

	bg := deckgen.Black
	if len(slides) > 0 {
		bg = slides[0].background(bg)
	}
	d := deckgen.NewDeck(deckgen.Length(pres.SlideSize.Cx), deckgen.Length(pres.SlideSize.Cy), bg)

	var core xCoreProps
	if pkg.has(partCore) {
		err = pkg.readPart(partCore, &core)
		if err != nil {
			return nil, err
		}
		core.apply(d)
	}

	for i, xs := range slides {
		s := d.NewSlide(xs.background(bg))
		for _, xsh := range xs.CSld.SpTree.Shapes {
			err = xsh.addTo(s)
			if err != nil {
				return nil, errors.Wrap(err, "part %q", slidePart(i+1))
			}
		}
	}
	d.Finalize()

	logging.Debug("Decoded deck %q with %d slides", d.ID, d.NumSlides())
	return d, nil
}

type pkgReader struct {
	files map[string]*zip.File
}

func (p *pkgReader) has(name string) bool {
	_, ok := p.files[name]
	return ok
}

func (p *pkgReader) readPart(name string, v interface{}) error {
	f, ok := p.files[name]
	if !ok {
		return errors.Wrap(errors.NewValidationError("missing part"), "part %q", name)
	}
	rc, err := f.Open()
	if err != nil {
		return errors.Wrap(err, "part %q", name)
	}
	defer rc.Close()

	err = xml.NewDecoder(rc).Decode(v)
	if err != nil {
		return errors.Wrap(err, "part %q", name)
	}
	return nil
}

// resolve turns a relationship target into a part name.
func resolve(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

type xPresentation struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SlideSize struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type xRelationships struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func (r xRelationships) target(id string) (string, bool) {
	for _, rel := range r.Relationships {
		if rel.ID == id {
			return rel.Target, true
		}
	}
	return "", false
}

type xCoreProps struct {
	Title      string `xml:"title"`
	Identifier string `xml:"identifier"`
	Created    string `xml:"created"`
}

func (c xCoreProps) apply(d *deckgen.Deck) {
	d.Title = c.Title
	if c.Identifier != "" {
		d.ID = c.Identifier
	}
	if c.Created != "" {
		t, err := time.Parse(time.RFC3339, c.Created)
		if err != nil {
			logging.Warning("Ignore invalid creation date %q: %v", c.Created, err)
		} else {
			d.Created = t
		}
	}
}

type xColor struct {
	Val string `xml:"val,attr"`
}

type xSolidFill struct {
	SRGB *xColor `xml:"srgbClr"`
}

// color returns nil unless the fill is an explicit RGB color.
func (f *xSolidFill) color() *deckgen.Color {
	if f == nil || f.SRGB == nil {
		return nil
	}
	c, err := deckgen.ParseColor(f.SRGB.Val)
	if err != nil {
		logging.Warning("Ignore invalid color: %v", err)
		return nil
	}
	return &c
}

type xSlide struct {
	CSld struct {
		Bg *struct {
			BgPr *struct {
				SolidFill *xSolidFill `xml:"solidFill"`
			} `xml:"bgPr"`
		} `xml:"bg"`
		SpTree xSpTree `xml:"spTree"`
	} `xml:"cSld"`
}

func (s *xSlide) background(fallback deckgen.Color) deckgen.Color {
	bg := s.CSld.Bg
	if bg == nil || bg.BgPr == nil {
		return fallback
	}
	c := bg.BgPr.SolidFill.color()
	if c == nil {
		return fallback
	}
	return *c
}

// xSpTree keeps sp and cxnSp elements in document order.
type xSpTree struct {
	Shapes []xShape
}

type xShape struct {
	sp  *xSp
	cxn *xCxnSp
}

func (t *xSpTree) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				sp := &xSp{}
				err = d.DecodeElement(sp, &el)
				t.Shapes = append(t.Shapes, xShape{sp: sp})
			case "cxnSp":
				cxn := &xCxnSp{}
				err = d.DecodeElement(cxn, &el)
				t.Shapes = append(t.Shapes, xShape{cxn: cxn})
			default:
				err = d.Skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (x xShape) addTo(s *deckgen.Slide) error {
	if x.cxn != nil {
		return x.cxn.addTo(s)
	}
	return x.sp.addTo(s)
}

type xNonVisual struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xXfrm struct {
	FlipH bool `xml:"flipH,attr"`
	FlipV bool `xml:"flipV,attr"`
	Off   struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"off"`
	Ext struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"ext"`
}

type xLine struct {
	W         int64       `xml:"w,attr"`
	SolidFill *xSolidFill `xml:"solidFill"`
}

type xShapeProps struct {
	Xfrm     xXfrm `xml:"xfrm"`
	PrstGeom struct {
		Prst string `xml:"prst,attr"`
	} `xml:"prstGeom"`
	SolidFill *xSolidFill `xml:"solidFill"`
	Ln        *xLine      `xml:"ln"`
}

func (p xShapeProps) outline() *deckgen.Color {
	if p.Ln == nil {
		return nil
	}
	return p.Ln.SolidFill.color()
}

type xSp struct {
	NvSpPr struct {
		CNvPr   xNonVisual `xml:"cNvPr"`
		CNvSpPr struct {
			TxBox bool `xml:"txBox,attr"`
		} `xml:"cNvSpPr"`
	} `xml:"nvSpPr"`
	SpPr   xShapeProps `xml:"spPr"`
	TxBody *xTextBody  `xml:"txBody"`
}

func (x *xSp) addTo(s *deckgen.Slide) error {
	xf := x.SpPr.Xfrm
	px, py := deckgen.Length(xf.Off.X), deckgen.Length(xf.Off.Y)
	w, h := deckgen.Length(xf.Ext.Cx), deckgen.Length(xf.Ext.Cy)
	fill := x.SpPr.SolidFill.color()
	border := x.SpPr.outline()

	var frame *deckgen.TextFrame
	if x.NvSpPr.CNvSpPr.TxBox {
		frame = s.AddTextBox("", px, py, w, h, 0, deckgen.Black, false)
		tb := s.Shapes()[s.NumShapes()-1].(*deckgen.TextBox)
		tb.SetName(x.NvSpPr.CNvPr.Name)
		tb.Fill = fill
		tb.Border = border
	} else {
		g, ok := geometryByPreset[x.SpPr.PrstGeom.Prst]
		if !ok {
			return errors.NewValidationError("unsupported geometry %q", x.SpPr.PrstGeom.Prst)
		}
		a := s.AddShape(g, px, py, w, h, fill, border)
		a.SetName(x.NvSpPr.CNvPr.Name)
		frame = a.Frame()
	}

	if x.TxBody != nil {
		x.TxBody.applyTo(frame)
	}
	return nil
}

type xCxnSp struct {
	NvCxnSpPr struct {
		CNvPr xNonVisual `xml:"cNvPr"`
	} `xml:"nvCxnSpPr"`
	SpPr xShapeProps `xml:"spPr"`
}

func (x *xCxnSp) addTo(s *deckgen.Slide) error {
	k, ok := connectorByPreset[x.SpPr.PrstGeom.Prst]
	if !ok {
		return errors.NewValidationError("unsupported connector %q", x.SpPr.PrstGeom.Prst)
	}
	xf := x.SpPr.Xfrm
	x1, y1 := deckgen.Length(xf.Off.X), deckgen.Length(xf.Off.Y)
	x2, y2 := x1+deckgen.Length(xf.Ext.Cx), y1+deckgen.Length(xf.Ext.Cy)
	if xf.FlipH {
		x1, x2 = x2, x1
	}
	if xf.FlipV {
		y1, y2 = y2, y1
	}

	c := s.AddConnector(k, x1, y1, x2, y2)
	c.SetName(x.NvCxnSpPr.CNvPr.Name)
	c.Color = x.SpPr.outline()
	if x.SpPr.Ln != nil {
		c.Width = deckgen.Length(x.SpPr.Ln.W)
	}
	return nil
}

type xBodyProps struct {
	Wrap   string `xml:"wrap,attr"`
	Anchor string `xml:"anchor,attr"`
	LIns   *int64 `xml:"lIns,attr"`
	TIns   *int64 `xml:"tIns,attr"`
	RIns   *int64 `xml:"rIns,attr"`
	BIns   *int64 `xml:"bIns,attr"`
}

type xTextBody struct {
	BodyPr     xBodyProps   `xml:"bodyPr"`
	Paragraphs []xParagraph `xml:"p"`
}

func (b *xTextBody) applyTo(f *deckgen.TextFrame) {
	bp := b.BodyPr
	f.WordWrap = bp.Wrap != "none"
	f.Anchor = anchorByValue[bp.Anchor]

	if bp.LIns != nil || bp.TIns != nil || bp.RIns != nil || bp.BIns != nil {
		in := deckgen.DefaultInsets
		setInset(&in.Left, bp.LIns)
		setInset(&in.Top, bp.TIns)
		setInset(&in.Right, bp.RIns)
		setInset(&in.Bottom, bp.BIns)
		f.SetMargins(in)
	}

	for i, xp := range b.Paragraphs {
		p := xp.paragraph()
		if i == 0 {
			*f.First() = *p
		} else {
			f.Append(p)
		}
	}
}

func setInset(dst *deckgen.Length, v *int64) {
	if v != nil {
		*dst = deckgen.Length(*v)
	}
}

type xRunProps struct {
	Size      int         `xml:"sz,attr"`
	Bold      bool        `xml:"b,attr"`
	SolidFill *xSolidFill `xml:"solidFill"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

type xParaProps struct {
	Level int    `xml:"lvl,attr"`
	Align string `xml:"algn,attr"`
}

type xRun struct {
	RPr  *xRunProps `xml:"rPr"`
	Text string     `xml:"t"`
}

// xParagraph collects runs and line breaks in document order.
type xParagraph struct {
	props  xParaProps
	style  *xRunProps
	text   string
	styled bool
}

func (p *xParagraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pPr":
				err = d.DecodeElement(&p.props, &el)
			case "r", "fld":
				var r xRun
				err = d.DecodeElement(&r, &el)
				p.text += r.Text
				p.setStyle(r.RPr, true)
			case "br":
				p.text += "\n"
				err = d.Skip()
			case "endParaRPr":
				var rp xRunProps
				err = d.DecodeElement(&rp, &el)
				p.setStyle(&rp, false)
			default:
				err = d.Skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// setStyle keeps the first run's properties,
// endParaRPr only applies to paragraphs without runs.
func (p *xParagraph) setStyle(rp *xRunProps, fromRun bool) {
	if rp == nil || p.styled {
		return
	}
	p.style = rp
	p.styled = fromRun
}

func (p *xParagraph) paragraph() *deckgen.Paragraph {
	out := &deckgen.Paragraph{
		Text:  p.text,
		Level: p.props.Level,
		Align: alignByValue[p.props.Align],
	}
	if rp := p.style; rp != nil {
		out.Size = float64(rp.Size) / 100
		out.Bold = rp.Bold
		out.Color = rp.SolidFill.color()
		if rp.Latin != nil {
			out.Font = rp.Latin.Typeface
		}
	}
	return out
}

var (
	geometryByPreset  = make(map[string]deckgen.Geometry)
	connectorByPreset = make(map[string]deckgen.ConnectorKind)
	alignByValue      = make(map[string]deckgen.Alignment)
	anchorByValue     = make(map[string]deckgen.Anchor)
)

func init() {
	for k, v := range presetGeometry {
		geometryByPreset[v] = k
	}
	for k, v := range presetConnector {
		connectorByPreset[v] = k
	}
	// PowerPoint writes this for plain lines
	connectorByPreset["line"] = deckgen.Straight
	for k, v := range alignValues {
		alignByValue[v] = k
	}
	for k, v := range anchorValues {
		anchorByValue[v] = k
	}
}
