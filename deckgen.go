// Package deckgen composes presentation decks from slides, shapes and
// styled text, and saves them through a pluggable Encoder.
//
// A minimal deck:
//
//	d := deckgen.NewDeck(deckgen.WidescreenWidth, deckgen.WidescreenHeight, deckgen.Black)
//	b := deckgen.NewBuilder(d, pptx.NewEncoder())
//	s := b.NewDefaultSlide()
//	s.AddTitle("Hello")
//	err := b.Save("hello.pptx")
package deckgen

import (
	"github.com/akeil/deckgen/internal/logging"
)

// SetLogLevel sets the log level by name.
// Unknown names switch logging off.
func SetLogLevel(level string) {
	lvl, _ := logging.ParseLevel(level)
	logging.SetLevel(lvl)
}
