package plan

import (
	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/logging"
)

// NewDeck creates an empty deck with the plan's canvas, background and
// theme.
func (p *Plan) NewDeck() (*deckgen.Deck, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	w, h := deckgen.WidescreenWidth, deckgen.WidescreenHeight
	if p.Width > 0 {
		w, h = deckgen.Inches(p.Width), deckgen.Inches(p.Height)
	}
	bg := color(p.Background, deckgen.DarkBackground)

	d := deckgen.NewDeck(w, h, bg)
	d.Title = p.Title
	if p.Theme != nil {
		d.SetTheme(p.Theme.merge(deckgen.DefaultTheme()))
	}
	return d, nil
}

// Apply adds all slides of the plan to the builder's deck.
//
// The plan is validated first. Nothing is added if it is invalid.
func (p *Plan) Apply(b *deckgen.Builder) error {
	err := p.Validate()
	if err != nil {
		return err
	}

	for _, sp := range p.Slides {
		s := b.NewSlide(color(sp.Background, b.Deck().Background()))
		for _, e := range sp.Elements {
			e.addTo(s)
		}
		logging.Debug("Slide %d from plan with %d shapes", s.Number(), s.NumShapes())
	}
	return nil
}

func (t *Theme) merge(base deckgen.Theme) deckgen.Theme {
	if t.Font != "" {
		base.Font = t.Font
	}
	if t.CodeFont != "" {
		base.CodeFont = t.CodeFont
	}
	base.TextPrimary = color(t.Text, base.TextPrimary)
	base.TextSecondary = color(t.Secondary, base.TextSecondary)
	if t.TitleSize > 0 {
		base.TitleSize = t.TitleSize
	}
	if t.BulletSize > 0 {
		base.BulletSize = t.BulletSize
	}
	if t.CodeSize > 0 {
		base.CodeSize = t.CodeSize
	}
	return base
}

// addTo expects a validated element.
func (e Element) addTo(s *deckgen.Slide) {
	th := s.Deck().Theme()
	x, y := deckgen.Inches(e.X), deckgen.Inches(e.Y)
	w, h := deckgen.Inches(e.W), deckgen.Inches(e.H)

	var f *deckgen.TextFrame
	switch e.Type {
	case TypeTitle:
		f = s.AddTitle(e.Text)
		e.style(f.First())

	case TypeTextBox:
		size := e.Size
		if size == 0 {
			size = th.BulletSize
		}
		f = s.AddTextBox(e.Text, x, y, w, h, size, color(e.Color, th.TextSecondary), e.Bold)
		f.First().SetAlign(alignment(e.Align))

	case TypeShape:
		g, _ := geometry(e.Geometry)
		a := s.AddShape(g, x, y, w, h, colorPtr(e.Fill), colorPtr(e.Border))
		f = a.Frame()
		if e.Text != "" {
			f.SetText(e.Text)
			for _, p := range f.Paragraphs() {
				e.style(p)
			}
		}

	case TypeCode:
		f = s.AddCodeBlock(e.Text, x, y, w, h).Frame()

	case TypeConnector:
		k, _ := deckgen.ParseConnectorKind(e.Kind)
		c := s.AddConnector(k, x, y, deckgen.Inches(e.X2), deckgen.Inches(e.Y2))
		c.Color = colorPtr(e.Color)
		c.Width = deckgen.Pt(e.LineWidth)
		return
	}

	if e.Anchor != "" {
		a, _ := deckgen.ParseAnchor(e.Anchor)
		f.SetAnchor(a)
	}
	if m := e.Margin; m != nil {
		f.SetMargins(deckgen.Insets{
			Left:   deckgen.Inches(m.Left),
			Top:    deckgen.Inches(m.Top),
			Right:  deckgen.Inches(m.Right),
			Bottom: deckgen.Inches(m.Bottom),
		})
	}
	for _, b := range e.Bullets {
		f.AppendBullet(b.Text, b.Level)
	}
	for _, p := range e.Paragraphs {
		f.Append(p.paragraph())
	}
}

// style applies the element's explicit text settings to p.
func (e Element) style(p *deckgen.Paragraph) {
	if e.Size > 0 {
		p.SetSize(e.Size)
	}
	if e.Color != "" {
		p.Color = colorPtr(e.Color)
	}
	if e.Bold {
		p.SetBold(true)
	}
	if e.Align != "" {
		p.SetAlign(alignment(e.Align))
	}
}

func (p Paragraph) paragraph() *deckgen.Paragraph {
	return &deckgen.Paragraph{
		Text:  p.Text,
		Size:  p.Size,
		Color: colorPtr(p.Color),
		Bold:  p.Bold,
		Align: alignment(p.Align),
		Level: p.Level,
		Font:  p.Font,
	}
}

func color(s string, def deckgen.Color) deckgen.Color {
	if s == "" {
		return def
	}
	c, err := deckgen.ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

func colorPtr(s string) *deckgen.Color {
	if s == "" {
		return nil
	}
	c, err := deckgen.ParseColor(s)
	if err != nil {
		return nil
	}
	return &c
}

func alignment(s string) deckgen.Alignment {
	a, _ := deckgen.ParseAlignment(s)
	return a
}
