package imaging

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to the given width.
// The aspect ratio is kept.
func Resize(i image.Image, width int) image.Image {
	b := i.Bounds()
	if b.Dx() == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, 0))
	}
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	size := image.Rect(0, 0, width, height)

	dst := image.NewRGBA(size)
	s := draw.BiLinear
	s.Scale(dst, size, i, b, draw.Over, nil)
	return dst
}

// Fill paints the complete destination image with the given color.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Luma returns the perceived brightness of c between 0 (black)
// and 1 (white).
func Luma(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}
