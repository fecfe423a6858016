package deckgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/akeil/deckgen/internal/errors"
)

// lineEncoder writes one line per slide and shape.
type lineEncoder struct{}

func (l lineEncoder) Encode(w io.Writer, d *Deck) error {
	for _, s := range d.Slides() {
		_, err := fmt.Fprintf(w, "slide %d %v\n", s.Number(), s.Background)
		if err != nil {
			return err
		}
		for _, sh := range s.Shapes() {
			_, err = fmt.Fprintf(w, "  %v %q\n", sh.Type(), sh.Name())
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type failingEncoder struct{}

func (f failingEncoder) Encode(w io.Writer, d *Deck) error {
	return fmt.Errorf("encoder failed")
}

func TestSaveHello(t *testing.T) {
	d := newTestDeck()
	b := NewBuilder(d, lineEncoder{})
	s := b.NewDefaultSlide()
	s.AddTextBox("Hello", Inches(1), Inches(1), Inches(3), Inches(1), 18, White, false)

	path := filepath.Join(t.TempDir(), "hello.txt")
	err := b.Save(path)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "slide 1 #0A0A0F\n  textbox \"TextBox 1\"\n"
	if string(data) != expected {
		t.Errorf("unexpected output: %q != %q", string(data), expected)
	}
	if !s.Finalized() {
		t.Errorf("last slide not finalized on save")
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	err := os.WriteFile(path, []byte("old content that is longer than the new one\n\n\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	d := newTestDeck()
	b := NewBuilder(d, lineEncoder{})
	b.NewSlide(Black)
	err = b.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	err = b.Save(path)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "slide 1 #000000\n" {
		t.Errorf("file not overwritten: %q", string(data))
	}
}

func TestSaveFailure(t *testing.T) {
	d := newTestDeck()
	b := NewBuilder(d, lineEncoder{})
	b.NewDefaultSlide()

	path := filepath.Join(t.TempDir(), "no-such-dir", "deck.txt")
	err := b.Save(path)
	if !errors.IsPersistence(err) {
		t.Errorf("expected persistence error, got %v", err)
	}

	dir := t.TempDir()
	path = filepath.Join(dir, "deck.txt")
	err = os.WriteFile(path, []byte("keep"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	b = NewBuilder(d, failingEncoder{})
	err = b.Save(path)
	if !errors.IsPersistence(err) {
		t.Errorf("expected persistence error, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep" {
		t.Errorf("existing file modified by failed save: %q", string(data))
	}
}
