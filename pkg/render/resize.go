package render

import (
	"image"

	"github.com/akeil/deckgen/internal/imaging"
)

func resize(i image.Image, width int) image.Image {
	if width <= 0 {
		return i
	}
	return imaging.Resize(i, width)
}
