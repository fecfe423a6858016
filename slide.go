package deckgen

import (
	"fmt"

	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// Slide is one page of a Deck.
//
// Shapes are kept in insertion order, which is also the z-order:
// shapes added later are drawn on top.
type Slide struct {
	deck       *Deck
	index      int
	shapes     []Shape
	finalized  bool
	Background Color
}

// Deck returns the deck that owns this slide.
func (s *Slide) Deck() *Deck {
	return s.deck
}

// Index is the zero based position of the slide in its deck.
func (s *Slide) Index() int {
	return s.index
}

// Number is the one based slide number.
func (s *Slide) Number() int {
	return s.index + 1
}

// Shapes returns all shapes in z-order.
func (s *Slide) Shapes() []Shape {
	return s.shapes
}

// NumShapes returns the number of shapes on the slide.
func (s *Slide) NumShapes() int {
	return len(s.shapes)
}

// Finalized tells if a later slide was started or the deck was saved.
func (s *Slide) Finalized() bool {
	return s.finalized
}

func (s *Slide) finalize() {
	s.finalized = true
}

func (s *Slide) theme() *Theme {
	if s.deck == nil {
		t := DefaultTheme()
		return &t
	}
	return &s.deck.theme
}

// shape ids start at 2, id 1 is the slide's shape tree
func (s *Slide) nextID() int {
	return len(s.shapes) + 2
}

func (s *Slide) add(sh Shape) {
	if s.finalized {
		logging.Warning("Shape %q added to finalized slide %d", sh.Name(), s.Number())
	}
	s.shapes = append(s.shapes, sh)
}

// AddTextBox inserts a text box with a single paragraph carrying text
// in the given style. It returns the text frame of the new box.
//
// fontSize is in points.
func (s *Slide) AddTextBox(text string, x, y, w, h Length, fontSize float64, c Color, bold bool) *TextFrame {
	th := s.theme()
	id := s.nextID()
	tb := &TextBox{
		shapeBase: shapeBase{id: id, name: fmt.Sprintf("TextBox %d", id-1)},
		rect:      R(x, y, w, h),
		frame:     newTextFrame(th),
	}
	tb.frame.WordWrap = true
	p := tb.frame.First()
	p.Text = text
	p.Size = fontSize
	p.Color = c.Ptr()
	p.Bold = bold
	p.Font = th.Font

	s.add(tb)
	return tb.frame
}

// AddShape inserts a geometric shape.
//
// A nil fill leaves the shape unfilled, a nil border draws no outline.
// The text frame of the returned shape starts with one empty paragraph.
func (s *Slide) AddShape(g Geometry, x, y, w, h Length, fill, border *Color) *AutoShape {
	id := s.nextID()
	a := &AutoShape{
		shapeBase: shapeBase{id: id, name: fmt.Sprintf("%v %d", g, id-1)},
		rect:      R(x, y, w, h),
		frame:     newTextFrame(s.theme()),
		Geometry:  g,
		Fill:      fill,
		Border:    border,
	}
	a.frame.WordWrap = true
	a.frame.Anchor = AnchorMiddle

	s.add(a)
	return a
}

// AddConnector inserts a line from (x1, y1) to (x2, y2).
func (s *Slide) AddConnector(k ConnectorKind, x1, y1, x2, y2 Length) *Connector {
	id := s.nextID()
	c := &Connector{
		shapeBase: shapeBase{id: id, name: fmt.Sprintf("Connector %d", id-1)},
		Kind:      k,
		From:      Pos{X: x1, Y: y1},
		To:        Pos{X: x2, Y: y2},
	}

	s.add(c)
	return c
}

// Validate checks all shapes on the slide.
func (s *Slide) Validate() error {
	for i, sh := range s.shapes {
		err := sh.Validate()
		if err != nil {
			return errors.Wrap(err, "shape %d (%v)", i, sh.Type())
		}
	}
	return nil
}
