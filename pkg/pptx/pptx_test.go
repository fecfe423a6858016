package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/errors"
)

var darkBG = deckgen.RGB(10, 10, 15)

func newDeck() *deckgen.Deck {
	d := deckgen.NewDeck(deckgen.WidescreenWidth, deckgen.WidescreenHeight, darkBG)
	d.Title = "Test Deck"
	return d
}

func readEntry(t *testing.T, data []byte, name string) string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("no entry %q", name)
	return ""
}

func TestHelloScenario(t *testing.T) {
	d := newDeck()
	b := deckgen.NewBuilder(d, NewEncoder())
	s := b.NewDefaultSlide()
	s.AddTextBox("Hello", deckgen.Inches(1), deckgen.Inches(1), deckgen.Inches(3), deckgen.Inches(1),
		18, deckgen.White, false)

	path := filepath.Join(t.TempDir(), "hello.pptx")
	require.NoError(t, b.Save(path))

	out, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumSlides())

	slide, err := out.Slide(0)
	require.NoError(t, err)
	assert.Equal(t, darkBG, slide.Background)
	require.Equal(t, 1, slide.NumShapes())

	tb, ok := slide.Shapes()[0].(*deckgen.TextBox)
	require.True(t, ok, "expected a text box")
	assert.Equal(t, deckgen.R(deckgen.Inches(1), deckgen.Inches(1), deckgen.Inches(3), deckgen.Inches(1)), tb.Bounds())

	f := tb.Frame()
	require.Equal(t, 1, f.NumParagraphs())
	p := f.First()
	assert.Equal(t, "Hello", p.Text)
	assert.Equal(t, 18.0, p.Size)
	assert.False(t, p.Bold)
	require.NotNil(t, p.Color)
	assert.Equal(t, deckgen.White, *p.Color)
	assert.Equal(t, "Arial", p.Font)
	assert.True(t, f.WordWrap)

	assert.Equal(t, d.ID, out.ID)
	assert.Equal(t, "Test Deck", out.Title)
	assert.Equal(t, deckgen.WidescreenWidth, out.Width())
	assert.Equal(t, deckgen.WidescreenHeight, out.Height())
}

func TestFourBullets(t *testing.T) {
	d := newDeck()
	s := d.NewSlide(darkBG)
	f := s.AddTextBox("What is Ripes?", deckgen.Inches(1), deckgen.Inches(2), deckgen.Inches(5), deckgen.Inches(4),
		24, deckgen.RGB(255, 68, 102), false)
	bullets := []string{
		"Visual RISC-V Processor Simulator",
		"Pipeline visualization (IF, ID, EX, MEM, WB)",
		"Register file inspection",
		"Memory-Mapped I/O support",
	}
	deckgen.AddBullets(f, bullets...)

	data, err := Marshal(d)
	require.NoError(t, err)
	out, err := Unmarshal(data)
	require.NoError(t, err)

	slide, _ := out.Slide(0)
	frame := slide.Shapes()[0].(deckgen.TextShape).Frame()
	require.Equal(t, 5, frame.NumParagraphs())
	assert.Equal(t, "What is Ripes?", frame.First().Text)
	for i, p := range frame.Paragraphs()[1:] {
		assert.Equal(t, bullets[i], p.Text)
		assert.Equal(t, 18.0, p.Size)
		assert.Equal(t, deckgen.RGB(160, 160, 176), *p.Color)
		assert.Equal(t, 0, p.Level)
	}
}

func TestRoundTrip(t *testing.T) {
	d := newDeck()
	for i := 0; i < 3; i++ {
		s := d.NewSlide(deckgen.RGB(uint8(i), 0, 0))
		s.AddTitle("Slide")
	}
	s, _ := d.Slide(1)
	box := s.AddShape(deckgen.Cloud, deckgen.Inches(5), deckgen.Inches(2), deckgen.Inches(3), deckgen.Inches(4),
		deckgen.RGB(40, 30, 60).Ptr(), deckgen.RGB(153, 102, 255).Ptr())
	box.Frame().SetText("MQTT Broker\nhivemq.com\n\n<Topics>")
	box.Frame().First().SetAlign(deckgen.AlignCenter)
	s.AddConnector(deckgen.Straight, deckgen.Inches(4), deckgen.Inches(3.5), deckgen.Inches(5), deckgen.Inches(3.5))
	code := "main_loop:\n    li t0, 0xF0000000      # Load\n\n    bnez a0, unsafe_mode"
	s.AddCodeBlock(code, deckgen.Inches(1), deckgen.Inches(5), deckgen.Inches(11), deckgen.Inches(2))
	plain := s.AddShape(deckgen.Oval, 0, 0, deckgen.Inches(1), deckgen.Inches(1), nil, nil)
	plain.Frame().First().SetText("AM").SetLevel(2)

	data, err := Marshal(d)
	require.NoError(t, err)
	out, err := Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, 3, out.NumSlides())
	for i, slide := range out.Slides() {
		assert.Equal(t, deckgen.RGB(uint8(i), 0, 0), slide.Background)
	}

	slide, _ := out.Slide(1)
	shapes := slide.Shapes()
	require.Len(t, shapes, 5)
	assert.Equal(t, deckgen.TextBoxType, shapes[0].Type())
	assert.Equal(t, deckgen.AutoShapeType, shapes[1].Type())
	assert.Equal(t, deckgen.ConnectorType, shapes[2].Type())
	assert.Equal(t, deckgen.AutoShapeType, shapes[3].Type())

	cloud := shapes[1].(*deckgen.AutoShape)
	assert.Equal(t, deckgen.Cloud, cloud.Geometry)
	assert.Equal(t, deckgen.RGB(40, 30, 60), *cloud.Fill)
	assert.Equal(t, deckgen.RGB(153, 102, 255), *cloud.Border)
	assert.Equal(t, "MQTT Broker\nhivemq.com\n\n<Topics>", cloud.Frame().Text())
	assert.Equal(t, deckgen.AlignCenter, cloud.Frame().First().Align)
	assert.Equal(t, deckgen.AnchorMiddle, cloud.Frame().Anchor)
	assert.Equal(t, s.Shapes()[1].Name(), cloud.Name())

	cb := shapes[3].(*deckgen.AutoShape)
	assert.Equal(t, deckgen.RoundedRectangle, cb.Geometry)
	assert.Equal(t, code, cb.Frame().First().Text)
	assert.Equal(t, "Courier New", cb.Frame().First().Font)
	in, ok := cb.Frame().Margins()
	assert.True(t, ok)
	assert.Equal(t, deckgen.Inches(0.2), in.Left)
	assert.Equal(t, deckgen.Inches(0.2), in.Top)

	oval := shapes[4].(*deckgen.AutoShape)
	assert.Nil(t, oval.Fill)
	assert.Nil(t, oval.Border)
	assert.Equal(t, 2, oval.Frame().First().Level)

	assert.NoError(t, out.Validate())
}

func TestConnectorFlipEncoding(t *testing.T) {
	d := newDeck()
	s := d.NewSlide(darkBG)
	s.AddConnector(deckgen.Elbow, deckgen.Inches(8), deckgen.Inches(3.5), deckgen.Inches(9), deckgen.Inches(3.5))
	s.AddConnector(deckgen.Curved, deckgen.Inches(9), deckgen.Inches(5), deckgen.Inches(8), deckgen.Inches(4))

	data, err := Marshal(d)
	require.NoError(t, err)

	xml := readEntry(t, data, "ppt/slides/slide1.xml")
	assert.Contains(t, xml, `prst="bentConnector3"`)
	assert.Contains(t, xml, `prst="curvedConnector3"`)
	assert.Equal(t, 1, strings.Count(xml, `flipH="1"`))
	assert.Equal(t, 1, strings.Count(xml, `flipV="1"`))

	out, err := Unmarshal(data)
	require.NoError(t, err)
	slide, _ := out.Slide(0)
	c := slide.Shapes()[1].(*deckgen.Connector)
	assert.Equal(t, deckgen.Curved, c.Kind)
	assert.Equal(t, deckgen.Pos{X: deckgen.Inches(9), Y: deckgen.Inches(5)}, c.From)
	assert.Equal(t, deckgen.Pos{X: deckgen.Inches(8), Y: deckgen.Inches(4)}, c.To)
}

func TestEscaping(t *testing.T) {
	d := newDeck()
	d.Title = `Fish & "Chips"`
	s := d.NewSlide(darkBG)
	s.AddTextBox("if (a < b && c > d) {}", 0, 0, deckgen.Inches(4), deckgen.Inches(1), 12, deckgen.White, false)

	data, err := Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, readEntry(t, data, "ppt/slides/slide1.xml"), "if (a &lt; b &amp;&amp; c &gt; d) {}")

	out, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, `Fish & "Chips"`, out.Title)
	slide, _ := out.Slide(0)
	assert.Equal(t, "if (a < b && c > d) {}", slide.Shapes()[0].(deckgen.TextShape).Frame().Text())
}

func TestPackageParts(t *testing.T) {
	d := newDeck()
	d.NewSlide(darkBG)
	d.NewSlide(darkBG)

	data, err := Marshal(d)
	require.NoError(t, err)

	ct := readEntry(t, data, "[Content_Types].xml")
	assert.Contains(t, ct, `PartName="/ppt/slides/slide2.xml"`)

	pres := readEntry(t, data, "ppt/presentation.xml")
	assert.Contains(t, pres, `<p:sldId id="256" r:id="rId2"/>`)
	assert.Contains(t, pres, `<p:sldId id="257" r:id="rId3"/>`)
	assert.Contains(t, pres, `<p:sldSz cx="12191695" cy="6858000"/>`)

	rels := readEntry(t, data, "ppt/slides/_rels/slide2.xml.rels")
	assert.Contains(t, rels, "slideLayout1.xml")
}

func TestOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")

	d := newDeck()
	b := deckgen.NewBuilder(d, NewEncoder())
	for i := 0; i < 4; i++ {
		b.NewDefaultSlide().AddTitle("first")
	}
	require.NoError(t, b.Save(path))

	d = newDeck()
	b = deckgen.NewBuilder(d, NewEncoder())
	b.NewDefaultSlide().AddTitle("second")
	require.NoError(t, b.Save(path))

	out, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, out.NumSlides())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pptx"))
	assert.True(t, errors.IsNotFound(err))

	_, err = Unmarshal([]byte("not a zip file"))
	assert.Error(t, err)

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	w, _ := zw.Create("ppt/presentation.xml")
	w.Write([]byte("<p:presentation"))
	zw.Close()
	_, err = Unmarshal(buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ppt/presentation.xml")
}

func TestSummarize(t *testing.T) {
	d := newDeck()
	b := deckgen.NewBuilder(d, NewEncoder())
	b.NewDefaultSlide().AddTitle("Problem Statement")
	b.NewDefaultSlide().AddTitle("Project Objectives")

	path := filepath.Join(t.TempDir(), "summary.pptx")
	require.NoError(t, b.Save(path))

	sum, err := Summarize(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.NumSlides())

	buf := &bytes.Buffer{}
	require.NoError(t, sum.Print(buf))
	assert.Contains(t, buf.String(), "2 slides")

	_, err = Summarize(filepath.Join(t.TempDir(), "nope.pptx"))
	assert.True(t, errors.IsNotFound(err))
}
