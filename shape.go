package deckgen

import (
	"fmt"
	"strings"

	"github.com/akeil/deckgen/internal/errors"
)

// ShapeType tells the three kinds of shapes apart.
type ShapeType int

const (
	TextBoxType ShapeType = iota
	AutoShapeType
	ConnectorType
)

func (t ShapeType) String() string {
	switch t {
	case TextBoxType:
		return "textbox"
	case AutoShapeType:
		return "shape"
	case ConnectorType:
		return "connector"
	}
	return fmt.Sprintf("ShapeType(%d)", int(t))
}

// Shape is any visual primitive placed on a slide.
type Shape interface {
	Type() ShapeType
	// ID is unique within the slide and increases in insertion order.
	ID() int
	Name() string
	Bounds() Rect
	Validate() error
}

// TextShape is a shape that owns a text frame.
type TextShape interface {
	Shape
	Frame() *TextFrame
}

// Geometry is the outline of a geometric shape.
type Geometry int

const (
	Rectangle Geometry = iota
	RoundedRectangle
	Oval
	Cloud
)

var geometryNames = map[Geometry]string{
	Rectangle:        "rectangle",
	RoundedRectangle: "rounded-rectangle",
	Oval:             "oval",
	Cloud:            "cloud",
}

func (g Geometry) String() string {
	n, ok := geometryNames[g]
	if !ok {
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
	return n
}

// ParseGeometry maps a geometry name to a Geometry.
func ParseGeometry(s string) (Geometry, error) {
	switch strings.ToLower(s) {
	case "rectangle", "rect":
		return Rectangle, nil
	case "rounded-rectangle", "rounded", "roundrect":
		return RoundedRectangle, nil
	case "oval", "ellipse", "circle":
		return Oval, nil
	case "cloud":
		return Cloud, nil
	}
	return Rectangle, errors.NewValidationError("unknown geometry %q", s)
}

// ConnectorKind is the routing of a connector line.
type ConnectorKind int

const (
	Straight ConnectorKind = iota
	Elbow
	Curved
)

var connectorNames = map[ConnectorKind]string{
	Straight: "straight",
	Elbow:    "elbow",
	Curved:   "curved",
}

func (k ConnectorKind) String() string {
	n, ok := connectorNames[k]
	if !ok {
		return fmt.Sprintf("ConnectorKind(%d)", int(k))
	}
	return n
}

// ParseConnectorKind maps a connector name to a ConnectorKind.
// The empty string is Straight.
func ParseConnectorKind(s string) (ConnectorKind, error) {
	switch strings.ToLower(s) {
	case "", "straight":
		return Straight, nil
	case "elbow", "bent":
		return Elbow, nil
	case "curved":
		return Curved, nil
	}
	return Straight, errors.NewValidationError("unknown connector kind %q", s)
}

type shapeBase struct {
	id   int
	name string
}

func (b *shapeBase) ID() int {
	return b.id
}

func (b *shapeBase) Name() string {
	return b.name
}

// SetName overrides the generated shape name.
func (b *shapeBase) SetName(n string) {
	b.name = n
}

func validateRect(r Rect) error {
	if r.X < 0 || r.Y < 0 {
		return errors.NewValidationError("negative position %v, %v", r.X, r.Y)
	}
	if r.W < 0 || r.H < 0 {
		return errors.NewValidationError("negative size %v x %v", r.W, r.H)
	}
	return nil
}

// TextBox is a borderless (by default) shape that only carries text.
type TextBox struct {
	shapeBase
	rect  Rect
	frame *TextFrame
	// Fill and Border are optional.
	Fill   *Color
	Border *Color
}

func (t *TextBox) Type() ShapeType {
	return TextBoxType
}

func (t *TextBox) Bounds() Rect {
	return t.rect
}

// Frame returns the text frame.
func (t *TextBox) Frame() *TextFrame {
	return t.frame
}

func (t *TextBox) Validate() error {
	err := validateRect(t.rect)
	if err != nil {
		return err
	}
	return t.frame.Validate()
}

// AutoShape is a geometric shape with optional fill, outline and text.
type AutoShape struct {
	shapeBase
	rect     Rect
	frame    *TextFrame
	Geometry Geometry
	// Fill is the solid fill color, nil means no fill.
	Fill *Color
	// Border is the outline color, nil means no outline.
	Border *Color
}

func (a *AutoShape) Type() ShapeType {
	return AutoShapeType
}

func (a *AutoShape) Bounds() Rect {
	return a.rect
}

// Frame returns the text frame.
func (a *AutoShape) Frame() *TextFrame {
	return a.frame
}

func (a *AutoShape) Validate() error {
	if _, ok := geometryNames[a.Geometry]; !ok {
		return errors.NewValidationError("invalid geometry %v", a.Geometry)
	}
	err := validateRect(a.rect)
	if err != nil {
		return err
	}
	return a.frame.Validate()
}

// Connector is a line between two points. It is purely decorative.
type Connector struct {
	shapeBase
	Kind ConnectorKind
	From Pos
	To   Pos
	// Color is the line color, nil uses the theme's secondary text color.
	Color *Color
	// Width is the line width, zero means 1pt.
	Width Length
}

func (c *Connector) Type() ShapeType {
	return ConnectorType
}

// Bounds returns the box spanned by both end points.
func (c *Connector) Bounds() Rect {
	x0, x1 := order(c.From.X, c.To.X)
	y0, y1 := order(c.From.Y, c.To.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// FlipH tells if the line runs from right to left.
func (c *Connector) FlipH() bool {
	return c.To.X < c.From.X
}

// FlipV tells if the line runs from bottom to top.
func (c *Connector) FlipV() bool {
	return c.To.Y < c.From.Y
}

func (c *Connector) Validate() error {
	if _, ok := connectorNames[c.Kind]; !ok {
		return errors.NewValidationError("invalid connector kind %v", c.Kind)
	}
	if c.Width < 0 {
		return errors.NewValidationError("negative line width %v", c.Width)
	}
	return validateRect(c.Bounds())
}

func order(a, b Length) (Length, Length) {
	if a > b {
		return b, a
	}
	return a, b
}
