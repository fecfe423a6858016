package deckgen

import (
	"fmt"
	"math"
)

// Length is a linear measurement in English Metric Units (EMU),
// the native unit of PresentationML.
type Length int64

const (
	EMU        Length = 1
	Point      Length = 12700
	Inch       Length = 914400
	Centimeter Length = 360000
)

// Inches converts a value given in inches to a Length.
func Inches(v float64) Length {
	return Length(math.Round(v * float64(Inch)))
}

// Pt converts a value given in points to a Length.
func Pt(v float64) Length {
	return Length(math.Round(v * float64(Point)))
}

// Cm converts a value given in centimeters to a Length.
func Cm(v float64) Length {
	return Length(math.Round(v * float64(Centimeter)))
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(Inch)
}

// Points returns the length in points (1/72 inch).
func (l Length) Points() float64 {
	return float64(l) / float64(Point)
}

// EMU returns the raw length.
func (l Length) EMU() int64 {
	return int64(l)
}

func (l Length) String() string {
	return fmt.Sprintf("%.3fin", l.Inches())
}

// Pos is a position on the slide canvas.
type Pos struct {
	X, Y Length
}

// Rect is the bounding box of a shape.
type Rect struct {
	X, Y, W, H Length
}

// R is shorthand for a Rect.
func R(x, y, w, h Length) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() Length {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() Length {
	return r.Y + r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v, %v) %v x %v", r.X, r.Y, r.W, r.H)
}
