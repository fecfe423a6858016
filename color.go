package deckgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akeil/deckgen/internal/errors"
)

// Color is an opaque 24-bit RGB color.
//
// Color implements image/color.Color so it can be handed to
// renderers directly.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Some common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	// DarkBackground is the default slide background.
	DarkBackground = RGB(10, 10, 15)
)

// ParseColor reads a hex color in the form "RRGGBB" or "#RRGGBB".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, errors.NewValidationError("invalid color %q, expected RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.NewValidationError("invalid color %q, expected RRGGBB", s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex returns the color as six uppercase hex digits ("RRGGBB").
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Ptr returns a pointer to a copy of c.
// Optional colors (fill, border) are expressed as *Color.
func (c Color) Ptr() *Color {
	return &c
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return "#" + c.Hex()
}
