package render

import (
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/imaging"
	"github.com/akeil/deckgen/internal/logging"
)

// DefaultWidth is the width of rendered PNG slides in pixels.
const DefaultWidth = 1280

// Palette maps deck colors to output colors.
//
// The zero value keeps all colors as they are.
type Palette struct {
	colors map[deckgen.Color]deckgen.Color
	light  bool
}

// Set returns a copy of the palette which replaces from with to.
func (p Palette) Set(from, to deckgen.Color) Palette {
	m := make(map[deckgen.Color]deckgen.Color, len(p.colors)+1)
	for k, v := range p.colors {
		m[k] = v
	}
	m[from] = to
	return Palette{colors: m, light: p.light}
}

// Light returns a copy of the palette for printing on paper.
// Dark colors become white and near white colors become black.
func (p Palette) Light() Palette {
	return Palette{colors: p.colors, light: true}
}

// Map returns the output color for c.
func (p Palette) Map(c deckgen.Color) deckgen.Color {
	if r, ok := p.colors[c]; ok {
		return r
	}
	if !p.light {
		return c
	}
	l := imaging.Luma(c)
	switch {
	case l < 0.2:
		return deckgen.White
	case l > 0.85:
		return deckgen.Black
	}
	return c
}

// Context holds parameters and cached data for rendering operations.
//
// A Context can be shared by goroutines that render slides of the
// same deck.
type Context struct {
	Palette Palette
	// Width of PNG output in pixels.
	Width int

	fontOnce sync.Once
	fonts    map[fontStyle]*truetype.Font
	fontErr  error
}

// NewContext sets up a new rendering context.
func NewContext(p Palette) *Context {
	return &Context{
		Palette: p,
		Width:   DefaultWidth,
	}
}

// DefaultContext renders with the deck's own colors.
func DefaultContext() *Context {
	return NewContext(Palette{})
}

// PDF renders all slides of a deck to a PDF document.
//
// The resulting PDF document is written to the given writer.
func (c *Context) PDF(d *deckgen.Deck, w io.Writer) error {
	return renderPDF(c, d, w)
}

// PNG draws the slide with the given index and writes it as PNG
// to the given writer.
func (c *Context) PNG(d *deckgen.Deck, index int, w io.Writer) error {
	img, err := c.Slide(d, index)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Slide draws the slide with the given index to an image.
func (c *Context) Slide(d *deckgen.Deck, index int) (*image.RGBA, error) {
	s, err := d.Slide(index)
	if err != nil {
		return nil, err
	}
	return renderBitmap(c, s)
}

// Thumbnail scales a rendered slide to the given width.
func (c *Context) Thumbnail(img image.Image, width int) image.Image {
	return resize(img, width)
}

func (c *Context) color(col deckgen.Color) deckgen.Color {
	return c.Palette.Map(col)
}

type fontStyle int

const (
	regular fontStyle = iota
	bold
	mono
)

func (c *Context) loadFonts() error {
	c.fontOnce.Do(func() {
		logging.Debug("Load fonts for bitmap rendering")
		c.fonts = make(map[fontStyle]*truetype.Font)
		for fs, data := range map[fontStyle][]byte{
			regular: goregular.TTF,
			bold:    gobold.TTF,
			mono:    gomono.TTF,
		} {
			f, err := truetype.Parse(data)
			if err != nil {
				c.fontErr = err
				return
			}
			c.fonts[fs] = f
		}
	})
	return c.fontErr
}
