package deckgen

import (
	"testing"

	"github.com/akeil/deckgen/internal/errors"
)

func newTestDeck() *Deck {
	return NewDeck(WidescreenWidth, WidescreenHeight, RGB(10, 10, 15))
}

func TestSlideOrder(t *testing.T) {
	d := newTestDeck()
	colors := []Color{RGB(1, 0, 0), RGB(0, 2, 0), RGB(0, 0, 3)}
	for _, c := range colors {
		d.NewSlide(c)
	}

	if d.NumSlides() != len(colors) {
		t.Errorf("unexpected slide count: %v != %v", d.NumSlides(), len(colors))
	}

	for i, s := range d.Slides() {
		if s.Index() != i {
			t.Errorf("unexpected index: %v != %v", s.Index(), i)
		}
		if s.Background != colors[i] {
			t.Errorf("unexpected background for slide %d: %v != %v", i, s.Background, colors[i])
		}
		if s.Deck() != d {
			t.Errorf("slide %d not owned by deck", i)
		}
	}
}

func TestFinalizeOnNewSlide(t *testing.T) {
	d := newTestDeck()
	first := d.NewSlide(Black)
	if first.Finalized() {
		t.Errorf("new slide should not be finalized")
	}

	second := d.NewSlide(Black)
	if !first.Finalized() {
		t.Errorf("previous slide not finalized by NewSlide")
	}
	if second.Finalized() {
		t.Errorf("current slide should not be finalized")
	}

	d.Finalize()
	if !second.Finalized() {
		t.Errorf("last slide not finalized by Finalize")
	}
}

func TestSlideByIndex(t *testing.T) {
	d := newTestDeck()
	d.NewSlide(Black)

	_, err := d.Slide(0)
	if err != nil {
		t.Error(err)
	}

	_, err = d.Slide(1)
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
	_, err = d.Slide(-1)
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestZOrder(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)

	box := s.AddShape(RoundedRectangle, Inches(1), Inches(1), Inches(4), Inches(2), White.Ptr(), nil)
	s.AddTextBox("on top", Inches(1), Inches(1), Inches(4), Inches(1), 18, Black, false)
	line := s.AddConnector(Straight, Inches(1), Inches(3), Inches(5), Inches(3))

	shapes := s.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("unexpected shape count: %v != %v", len(shapes), 3)
	}
	if shapes[0] != Shape(box) {
		t.Errorf("shape added first is not at the bottom")
	}
	if shapes[1].Type() != TextBoxType {
		t.Errorf("unexpected type at 1: %v", shapes[1].Type())
	}
	if shapes[2] != Shape(line) {
		t.Errorf("shape added last is not on top")
	}

	for i := 1; i < len(shapes); i++ {
		if shapes[i].ID() <= shapes[i-1].ID() {
			t.Errorf("shape ids not increasing: %v <= %v", shapes[i].ID(), shapes[i-1].ID())
		}
	}
}

func TestAddToFinalizedSlide(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)
	d.NewSlide(Black)

	s.AddTextBox("late", 0, 0, Inches(1), Inches(1), 12, White, false)
	if s.NumShapes() != 1 {
		t.Errorf("shape not added to finalized slide")
	}
}

func TestValidate(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)
	s.AddTitle("Valid")
	// outside of the canvas is allowed
	s.AddShape(Oval, Inches(20), Inches(20), Inches(1), Inches(1), nil, nil)

	err := d.Validate()
	if err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	s.AddShape(Rectangle, Inches(-1), 0, Inches(1), Inches(1), nil, nil)
	err = d.Validate()
	if !errors.IsValidation(err) {
		t.Errorf("negative position not detected: %v", err)
	}

	d = newTestDeck()
	s = d.NewSlide(Black)
	f := s.AddTextBox("x", 0, 0, Inches(1), Inches(1), 12, White, false)
	f.AppendBullet("too deep", MaxLevel+1)
	if d.Validate() == nil {
		t.Errorf("invalid indent level not detected")
	}

	d = newTestDeck()
	s = d.NewSlide(Black)
	c := s.AddConnector(ConnectorKind(42), 0, 0, Inches(1), Inches(1))
	if d.Validate() == nil {
		t.Errorf("invalid connector kind not detected")
	}
	c.Kind = Curved
	if d.Validate() != nil {
		t.Errorf("unexpected validation error after fix")
	}

	d = NewDeck(0, Inches(1), Black)
	if d.Validate() == nil {
		t.Errorf("empty canvas not detected")
	}
}

func TestConnectorFlips(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)

	cases := []struct {
		x1, y1, x2, y2 float64
		flipH, flipV   bool
	}{
		{1, 1, 3, 2, false, false},
		{3, 1, 1, 2, true, false},
		{1, 2, 3, 1, false, true},
		{3, 2, 1, 1, true, true},
	}

	for _, tc := range cases {
		c := s.AddConnector(Elbow, Inches(tc.x1), Inches(tc.y1), Inches(tc.x2), Inches(tc.y2))
		if c.FlipH() != tc.flipH || c.FlipV() != tc.flipV {
			t.Errorf("unexpected flips for %v: %v, %v", tc, c.FlipH(), c.FlipV())
		}
		b := c.Bounds()
		if b.X != Inches(1) || b.Y != Inches(1) || b.W != Inches(2) || b.H != Inches(1) {
			t.Errorf("unexpected bounds for %v: %v", tc, b)
		}
	}
}
