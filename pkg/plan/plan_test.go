package plan

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/errors"
)

type nopEncoder struct{}

func (n nopEncoder) Encode(w io.Writer, d *deckgen.Deck) error {
	return nil
}

func build(t *testing.T, p *Plan) *deckgen.Deck {
	d, err := p.NewDeck()
	require.NoError(t, err)
	b := deckgen.NewBuilder(d, nopEncoder{})
	require.NoError(t, p.Apply(b))
	return d
}

func TestLoadFile(t *testing.T) {
	p, err := LoadFile("testdata/corridor.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Smart Corridor", p.Title)
	require.Len(t, p.Slides, 2)
	bullets := p.Slides[0].Elements[1].Bullets
	require.Len(t, bullets, 2)
	assert.Equal(t, Bullet{Text: "corridor/sensor/+/presence"}, bullets[0])
	assert.Equal(t, Bullet{Text: "QoS 1 for state", Level: 1}, bullets[1])
	assert.NoError(t, p.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.True(t, errors.IsNotFound(err))
}

func TestUnknownField(t *testing.T) {
	_, err := LoadFile("testdata/unknown.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "elemnts")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(bytes.NewReader(nil))
	assert.True(t, errors.IsValidation(err))
}

func TestLoadJSON(t *testing.T) {
	src := `{"title": "J", "slides": [{"elements": [{"type": "title", "text": "Hi"}]}]}`
	p, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	d := build(t, p)
	assert.Equal(t, 1, d.NumSlides())
}

func TestValidateNamesElement(t *testing.T) {
	p, err := LoadFile("testdata/invalid.yaml")
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "slide 2: element 1 (shape)")
	assert.Contains(t, err.Error(), "hexagon")

	b := deckgen.NewBuilder(deckgen.NewDeck(deckgen.WidescreenWidth, deckgen.WidescreenHeight, deckgen.DarkBackground), nopEncoder{})
	assert.Error(t, p.Apply(b))
	assert.Equal(t, 0, b.Deck().NumSlides())
}

func TestValidateCases(t *testing.T) {
	cases := []struct {
		name string
		e    Element
	}{
		{"missing type", Element{}},
		{"unknown type", Element{Type: "table"}},
		{"color", Element{Type: TypeTextBox, Color: "#GG0000"}},
		{"size", Element{Type: TypeTextBox, Size: -1}},
		{"align", Element{Type: TypeTextBox, Align: "justify"}},
		{"anchor", Element{Type: TypeShape, Anchor: "above"}},
		{"kind", Element{Type: TypeConnector, Kind: "zigzag"}},
		{"bullet level", Element{Type: TypeTextBox, Bullets: []Bullet{{Text: "x", Level: 9}}}},
		{"margin", Element{Type: TypeShape, Margin: &Margin{Left: -1}}},
		{"paragraph", Element{Type: TypeTextBox, Paragraphs: []Paragraph{{Text: "x", Color: "red"}}}},
	}
	for _, c := range cases {
		p := &Plan{Slides: []Slide{{Elements: []Element{c.e}}}}
		assert.Error(t, p.Validate(), c.name)
	}

	p := &Plan{Width: 10}
	assert.Error(t, p.Validate())
}

func TestApply(t *testing.T) {
	p, err := LoadFile("testdata/corridor.yaml")
	require.NoError(t, err)
	d := build(t, p)

	assert.Equal(t, "Smart Corridor", d.Title)
	require.Equal(t, 2, d.NumSlides())
	assert.NoError(t, d.Validate())

	first := d.Slides()[0]
	assert.Equal(t, deckgen.DarkBackground, first.Background)
	require.Equal(t, 2, first.NumShapes())

	box := first.Shapes()[1].(deckgen.TextShape)
	ps := box.Frame().Paragraphs()
	require.Len(t, ps, 3)
	assert.Equal(t, "Topic layout", ps[0].Text)
	assert.Equal(t, 20.0, ps[0].Size)
	assert.True(t, ps[0].Bold)
	assert.Equal(t, 1, ps[2].Level)
	assert.Equal(t, deckgen.Inches(1.8), box.Bounds().Y)

	second := d.Slides()[1]
	assert.Equal(t, deckgen.RGB(0x14, 0x1E, 0x1E), second.Background)
	require.Equal(t, 3, second.NumShapes())

	node := second.Shapes()[0].(*deckgen.AutoShape)
	assert.Equal(t, deckgen.RoundedRectangle, node.Geometry)
	assert.Equal(t, "ESP32\nNode", node.Frame().Text())
	for _, par := range node.Frame().Paragraphs() {
		assert.Equal(t, deckgen.AlignCenter, par.Align)
		assert.Equal(t, deckgen.RGB(0, 255, 136), *par.Color)
	}

	line := second.Shapes()[1].(*deckgen.Connector)
	assert.Equal(t, deckgen.Elbow, line.Kind)
	assert.Equal(t, deckgen.Pt(2), line.Width)
	assert.False(t, line.FlipV())

	code := second.Shapes()[2].(*deckgen.AutoShape)
	assert.Equal(t, 1, code.Frame().NumParagraphs())
	assert.Equal(t, d.Theme().CodeFont, code.Frame().First().Font)
}

func TestThemeOverride(t *testing.T) {
	p := &Plan{
		Width:  10,
		Height: 7.5,
		Theme:  &Theme{Font: "Helvetica", TitleSize: 32, Secondary: "#808080"},
		Slides: []Slide{{Elements: []Element{
			{Type: TypeTitle, Text: "T"},
			{Type: TypeTextBox, Text: "body"},
		}}},
	}
	d := build(t, p)

	assert.Equal(t, deckgen.StandardWidth, d.Width())
	assert.Equal(t, "Helvetica", d.Theme().Font)
	assert.Equal(t, 18.0, d.Theme().BulletSize)

	shapes := d.Slides()[0].Shapes()
	title := shapes[0].(deckgen.TextShape).Frame().First()
	assert.Equal(t, 32.0, title.Size)
	assert.Equal(t, "Helvetica", title.Font)

	body := shapes[1].(deckgen.TextShape).Frame().First()
	assert.Equal(t, deckgen.RGB(128, 128, 128), *body.Color)
}
