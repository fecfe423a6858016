package deckgen

// Title placement used by AddTitle.
var (
	TitleLeft   = Inches(0.5)
	TitleTop    = Inches(0.5)
	TitleWidth  = Inches(12.333)
	TitleHeight = Inches(1)
)

// AddTitle adds the slide heading in the theme's title style.
func (s *Slide) AddTitle(text string) *TextFrame {
	th := s.theme()
	return s.AddTextBox(text, TitleLeft, TitleTop, TitleWidth, TitleHeight, th.TitleSize, th.TextPrimary, true)
}

// AddBullets appends one bullet per item to frame, all at level 0.
func AddBullets(frame *TextFrame, items ...string) {
	for _, item := range items {
		frame.AppendBullet(item, 0)
	}
}

// AddCodeBlock adds a rounded box holding code in the theme's monospace
// style. The code is kept in a single paragraph, lines are separated by
// line breaks.
func (s *Slide) AddCodeBlock(code string, x, y, w, h Length) *AutoShape {
	th := s.theme()
	box := s.AddShape(RoundedRectangle, x, y, w, h, th.CodeFill.Ptr(), th.CodeBorder.Ptr())

	f := box.Frame()
	f.SetMargins(Insets{
		Left:   Inches(0.2),
		Top:    Inches(0.2),
		Right:  DefaultInsets.Right,
		Bottom: DefaultInsets.Bottom,
	})
	f.First().
		SetText(code).
		SetFont(th.CodeFont).
		SetSize(th.CodeSize).
		SetColor(th.CodeText).
		SetAlign(AlignLeft)

	return box
}
