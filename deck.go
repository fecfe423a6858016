package deckgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/logging"
)

// Common canvas sizes, 16:9 widescreen and 4:3 standard.
var (
	WidescreenWidth  = Inches(13.333)
	WidescreenHeight = Inches(7.5)
	StandardWidth    = Inches(10)
	StandardHeight   = Inches(7.5)
)

// A Deck is an ordered sequence of slides on a canvas of fixed size.
//
// The Deck exclusively owns its slides. It is mutated only by appending
// slides (and shapes to those slides).
type Deck struct {
	// ID identifies the deck, a random UUID for new decks.
	ID string
	// Title is stored in the document properties.
	Title string
	// Created is the creation timestamp stored in the document properties.
	Created time.Time

	width      Length
	height     Length
	background Color
	theme      Theme
	slides     []*Slide
}

// NewDeck creates an empty deck with the given canvas size and default
// background color. The deck uses the DefaultTheme.
func NewDeck(width, height Length, bg Color) *Deck {
	return &Deck{
		ID:         uuid.New().String(),
		Created:    time.Now().UTC(),
		width:      width,
		height:     height,
		background: bg,
		theme:      DefaultTheme(),
	}
}

// Width returns the canvas width.
func (d *Deck) Width() Length {
	return d.width
}

// Height returns the canvas height.
func (d *Deck) Height() Length {
	return d.height
}

// Background returns the default background color for new slides.
func (d *Deck) Background() Color {
	return d.background
}

// Theme returns the theme used for new text.
// Changes to the returned theme affect text created afterwards.
func (d *Deck) Theme() *Theme {
	return &d.theme
}

// SetTheme replaces the theme.
func (d *Deck) SetTheme(t Theme) {
	d.theme = t
}

// NewSlide appends a slide with the given background color.
//
// The previous slide is finalized.
func (d *Deck) NewSlide(bg Color) *Slide {
	if n := len(d.slides); n > 0 {
		d.slides[n-1].finalize()
	}
	s := &Slide{
		deck:       d,
		index:      len(d.slides),
		Background: bg,
		shapes:     make([]Shape, 0),
	}
	d.slides = append(d.slides, s)
	logging.Debug("Add slide %d to deck %q", s.Number(), d.ID)
	return s
}

// Slides returns all slides in order.
func (d *Deck) Slides() []*Slide {
	return d.slides
}

// NumSlides returns the number of slides.
func (d *Deck) NumSlides() int {
	return len(d.slides)
}

// Slide returns the slide at the given (zero based) index.
func (d *Deck) Slide(i int) (*Slide, error) {
	if i < 0 || i >= len(d.slides) {
		return nil, errors.NewNotFound("slide index %d out of range (0-%d)", i, len(d.slides)-1)
	}
	return d.slides[i], nil
}

// Finalize finalizes the last slide.
// A deck is finalized before it is saved.
func (d *Deck) Finalize() {
	if n := len(d.slides); n > 0 {
		d.slides[n-1].finalize()
	}
}

// Validate checks the canvas and all slides and shapes for valid data.
//
// Overlapping shapes and shapes outside the canvas are allowed,
// the caller is responsible for the layout.
func (d *Deck) Validate() error {
	if d.width <= 0 || d.height <= 0 {
		return errors.NewValidationError("invalid canvas size %v x %v", d.width, d.height)
	}
	for _, s := range d.slides {
		err := s.Validate()
		if err != nil {
			return errors.Wrap(err, "slide %d", s.Number())
		}
	}
	return nil
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck %q (%d slides, %v x %v)", d.Title, len(d.slides), d.width, d.height)
}
