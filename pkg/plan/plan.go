// Package plan reads deck descriptions from YAML or JSON files.
//
// A plan lists slides and their elements with positions in inches:
//
//	title: Demo
//	slides:
//	  - elements:
//	      - type: title
//	        text: Hello
//	      - type: shape
//	        geometry: rounded-rectangle
//	        x: 1
//	        y: 2
//	        w: 4
//	        h: 2
//	        fill: "#141E1E"
//	        text: Inside
package plan

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// Element types.
const (
	TypeTitle     = "title"
	TypeTextBox   = "textbox"
	TypeShape     = "shape"
	TypeConnector = "connector"
	TypeCode      = "code"
)

// Plan describes a complete deck.
type Plan struct {
	Title string `yaml:"title" json:"title"`
	// Width and Height of the canvas in inches, zero means 16:9.
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	Background string  `yaml:"background" json:"background"`
	Theme      *Theme  `yaml:"theme" json:"theme"`
	Slides     []Slide `yaml:"slides" json:"slides"`
}

// Theme overrides parts of the default theme.
type Theme struct {
	Font       string  `yaml:"font" json:"font"`
	CodeFont   string  `yaml:"code_font" json:"code_font"`
	Text       string  `yaml:"text" json:"text"`
	Secondary  string  `yaml:"secondary" json:"secondary"`
	TitleSize  float64 `yaml:"title_size" json:"title_size"`
	BulletSize float64 `yaml:"bullet_size" json:"bullet_size"`
	CodeSize   float64 `yaml:"code_size" json:"code_size"`
}

// Slide is one slide with its elements in drawing order.
type Slide struct {
	// Background color, empty uses the deck background.
	Background string    `yaml:"background" json:"background"`
	Elements   []Element `yaml:"elements" json:"elements"`
}

// Element is one shape on a slide.
//
// Which fields apply depends on the Type.
type Element struct {
	Type string `yaml:"type" json:"type"`

	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
	W  float64 `yaml:"w" json:"w"`
	H  float64 `yaml:"h" json:"h"`
	X2 float64 `yaml:"x2" json:"x2"`
	Y2 float64 `yaml:"y2" json:"y2"`

	Text  string  `yaml:"text" json:"text"`
	Size  float64 `yaml:"size" json:"size"`
	Color string  `yaml:"color" json:"color"`
	Bold  bool    `yaml:"bold" json:"bold"`
	Align string  `yaml:"align" json:"align"`

	Geometry  string  `yaml:"geometry" json:"geometry"`
	Kind      string  `yaml:"kind" json:"kind"`
	Fill      string  `yaml:"fill" json:"fill"`
	Border    string  `yaml:"border" json:"border"`
	LineWidth float64 `yaml:"line_width" json:"line_width"`
	Anchor    string  `yaml:"anchor" json:"anchor"`
	Margin    *Margin `yaml:"margin" json:"margin"`

	Bullets    []Bullet    `yaml:"bullets" json:"bullets"`
	Paragraphs []Paragraph `yaml:"paragraphs" json:"paragraphs"`
}

// Margin holds text insets in inches.
type Margin struct {
	Left   float64 `yaml:"left" json:"left"`
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// Bullet is a bullet item. In YAML it is either a plain string or a
// mapping with text and level.
type Bullet struct {
	Text  string `yaml:"text" json:"text"`
	Level int    `yaml:"level" json:"level"`
}

// UnmarshalYAML accepts a scalar as shorthand for a level 0 bullet.
func (b *Bullet) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		b.Text = n.Value
		b.Level = 0
		return nil
	}
	type raw Bullet
	return n.Decode((*raw)(b))
}

// Paragraph is an additional styled paragraph.
type Paragraph struct {
	Text  string  `yaml:"text" json:"text"`
	Size  float64 `yaml:"size" json:"size"`
	Color string  `yaml:"color" json:"color"`
	Bold  bool    `yaml:"bold" json:"bold"`
	Align string  `yaml:"align" json:"align"`
	Level int     `yaml:"level" json:"level"`
	Font  string  `yaml:"font" json:"font"`
}

// Load reads a plan in YAML (or JSON) format.
// Unknown fields are an error.
func Load(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	err := dec.Decode(&p)
	if err == io.EOF {
		return nil, errors.NewValidationError("empty plan")
	}
	if err != nil {
		return nil, errors.NewValidationError("failed to parse plan: %v", err)
	}
	logging.Debug("Loaded plan %q with %d slides", p.Title, len(p.Slides))
	return &p, nil
}

// LoadFile reads the plan file at path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no plan file at %q", path)
		}
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, "plan %q", path)
	}
	return p, nil
}
