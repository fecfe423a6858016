package deckgen

import (
	"io"

	"github.com/akeil/deckgen/internal/errors"
	"github.com/akeil/deckgen/internal/fs"
	"github.com/akeil/deckgen/internal/logging"
)

// Encoder serializes a finished deck into a document format.
type Encoder interface {
	Encode(w io.Writer, d *Deck) error
}

// Builder composes a Deck slide by slide and writes it through an Encoder.
type Builder struct {
	deck *Deck
	enc  Encoder
}

// NewBuilder creates a builder for d which saves with enc.
func NewBuilder(d *Deck, enc Encoder) *Builder {
	return &Builder{
		deck: d,
		enc:  enc,
	}
}

// Deck returns the deck under construction.
func (b *Builder) Deck() *Deck {
	return b.deck
}

// NewSlide appends a slide with the given background color.
func (b *Builder) NewSlide(bg Color) *Slide {
	return b.deck.NewSlide(bg)
}

// NewDefaultSlide appends a slide with the deck's background color.
func (b *Builder) NewDefaultSlide() *Slide {
	return b.deck.NewSlide(b.deck.Background())
}

// Save finalizes the deck and writes it to path.
//
// An existing file is overwritten. On failure the returned error is a
// persistence error and an existing file at path is left untouched.
func (b *Builder) Save(path string) error {
	b.deck.Finalize()

	err := fs.WriteFile(path, func(w io.Writer) error {
		return b.enc.Encode(w, b.deck)
	})
	if err != nil {
		logging.Error("Failed to save deck to %q: %v", path, err)
		return errors.NewPersistenceError(path, err)
	}

	logging.Info("Saved %d slides to %q", b.deck.NumSlides(), path)
	return nil
}
