package plan

import (
	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/errors"
)

// Validate checks the plan without building anything.
//
// Errors name the slide and element (both one based).
func (p *Plan) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return errors.NewValidationError("invalid canvas size %v x %v", p.Width, p.Height)
	}
	if (p.Width == 0) != (p.Height == 0) {
		return errors.NewValidationError("canvas needs both width and height")
	}
	err := checkColor(p.Background)
	if err != nil {
		return errors.Wrap(err, "background")
	}
	if p.Theme != nil {
		err = p.Theme.validate()
		if err != nil {
			return errors.Wrap(err, "theme")
		}
	}

	for i, s := range p.Slides {
		err = checkColor(s.Background)
		if err != nil {
			return errors.Wrap(err, "slide %d: background", i+1)
		}
		for j, e := range s.Elements {
			err = e.validate()
			if err != nil {
				return errors.Wrap(err, "slide %d: element %d (%v)", i+1, j+1, e.Type)
			}
		}
	}
	return nil
}

func (t *Theme) validate() error {
	for _, c := range []string{t.Text, t.Secondary} {
		err := checkColor(c)
		if err != nil {
			return err
		}
	}
	if t.TitleSize < 0 || t.BulletSize < 0 || t.CodeSize < 0 {
		return errors.NewValidationError("negative font size")
	}
	return nil
}

func (e Element) validate() error {
	switch e.Type {
	case TypeTitle, TypeTextBox, TypeShape, TypeCode:
		if e.W < 0 || e.H < 0 {
			return errors.NewValidationError("negative size %v x %v", e.W, e.H)
		}
		if e.X < 0 || e.Y < 0 {
			return errors.NewValidationError("negative position %v, %v", e.X, e.Y)
		}
	case TypeConnector:
		if e.X < 0 || e.Y < 0 || e.X2 < 0 || e.Y2 < 0 {
			return errors.NewValidationError("negative end point")
		}
		if e.LineWidth < 0 {
			return errors.NewValidationError("negative line width %v", e.LineWidth)
		}
		_, err := deckgen.ParseConnectorKind(e.Kind)
		if err != nil {
			return err
		}
	case "":
		return errors.NewValidationError("missing element type")
	default:
		return errors.NewValidationError("unknown element type %q", e.Type)
	}

	if e.Type == TypeShape {
		_, err := geometry(e.Geometry)
		if err != nil {
			return err
		}
	}
	if e.Size < 0 {
		return errors.NewValidationError("negative font size %v", e.Size)
	}
	for _, c := range []string{e.Color, e.Fill, e.Border} {
		err := checkColor(c)
		if err != nil {
			return err
		}
	}
	_, err := deckgen.ParseAlignment(e.Align)
	if err != nil {
		return err
	}
	_, err = deckgen.ParseAnchor(e.Anchor)
	if err != nil {
		return err
	}
	if m := e.Margin; m != nil {
		if m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
			return errors.NewValidationError("negative text margins")
		}
	}

	for i, b := range e.Bullets {
		if b.Level < 0 || b.Level > deckgen.MaxLevel {
			return errors.NewValidationError("bullet %d: level %d out of range 0..%d", i+1, b.Level, deckgen.MaxLevel)
		}
	}
	for i, par := range e.Paragraphs {
		err = par.validate()
		if err != nil {
			return errors.Wrap(err, "paragraph %d", i+1)
		}
	}
	return nil
}

func (p Paragraph) validate() error {
	if p.Size < 0 {
		return errors.NewValidationError("negative font size %v", p.Size)
	}
	if p.Level < 0 || p.Level > deckgen.MaxLevel {
		return errors.NewValidationError("level %d out of range 0..%d", p.Level, deckgen.MaxLevel)
	}
	err := checkColor(p.Color)
	if err != nil {
		return err
	}
	_, err = deckgen.ParseAlignment(p.Align)
	return err
}

// empty colors are allowed and mean "default"
func checkColor(s string) error {
	if s == "" {
		return nil
	}
	_, err := deckgen.ParseColor(s)
	return err
}

// shapes without a geometry are rectangles
func geometry(s string) (deckgen.Geometry, error) {
	if s == "" {
		return deckgen.Rectangle, nil
	}
	return deckgen.ParseGeometry(s)
}
