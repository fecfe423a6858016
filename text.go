package deckgen

import (
	"strings"

	"github.com/akeil/deckgen/internal/errors"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a Alignment) String() string {
	return alignNames[a]
}

// ParseAlignment maps "left", "center" or "right" to an Alignment.
// The empty string is "left".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "", "left", "l":
		return AlignLeft, nil
	case "center", "centre", "ctr":
		return AlignCenter, nil
	case "right", "r":
		return AlignRight, nil
	}
	return AlignLeft, errors.NewValidationError("invalid alignment %q", s)
}

// Anchor is the vertical position of text inside its shape.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

// ParseAnchor maps "top", "middle" or "bottom" to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(s) {
	case "", "top", "t":
		return AnchorTop, nil
	case "middle", "center", "ctr":
		return AnchorMiddle, nil
	case "bottom", "b":
		return AnchorBottom, nil
	}
	return AnchorTop, errors.NewValidationError("invalid anchor %q", s)
}

// MaxLevel is the deepest indent level a paragraph can have.
const MaxLevel = 8

// Paragraph is one styled line of text inside a TextFrame.
//
// The text is kept exactly as given. A "\n" inside Text is a line break
// within the paragraph, not a new paragraph.
type Paragraph struct {
	Text string
	// Size is the font size in points. Zero inherits the default size.
	Size float64
	// Color is the font color. Nil inherits the default color.
	Color *Color
	Bold  bool
	Align Alignment
	// Level is the indent level, 0 through MaxLevel.
	Level int
	// Font is the font family. Empty inherits the theme font.
	Font string
}

// SetText replaces the paragraph text.
func (p *Paragraph) SetText(s string) *Paragraph {
	p.Text = s
	return p
}

// SetSize sets the font size in points.
func (p *Paragraph) SetSize(pt float64) *Paragraph {
	p.Size = pt
	return p
}

// SetColor sets the font color.
func (p *Paragraph) SetColor(c Color) *Paragraph {
	p.Color = c.Ptr()
	return p
}

// SetBold sets the bold flag.
func (p *Paragraph) SetBold(b bool) *Paragraph {
	p.Bold = b
	return p
}

// SetAlign sets the horizontal alignment.
func (p *Paragraph) SetAlign(a Alignment) *Paragraph {
	p.Align = a
	return p
}

// SetLevel sets the indent level.
func (p *Paragraph) SetLevel(l int) *Paragraph {
	p.Level = l
	return p
}

// SetFont sets the font family.
func (p *Paragraph) SetFont(name string) *Paragraph {
	p.Font = name
	return p
}

// Validate checks the paragraph for valid data.
func (p *Paragraph) Validate() error {
	if p.Size < 0 {
		return errors.NewValidationError("negative font size %v", p.Size)
	}
	if p.Level < 0 || p.Level > MaxLevel {
		return errors.NewValidationError("indent level %d out of range 0..%d", p.Level, MaxLevel)
	}
	if _, ok := alignNames[p.Align]; !ok {
		return errors.NewValidationError("invalid alignment %d", p.Align)
	}
	return nil
}

// Insets are the margins between a shape's edge and its text.
type Insets struct {
	Left, Top, Right, Bottom Length
}

// DefaultInsets are the PresentationML defaults (0.1in left/right,
// 0.05in top/bottom).
var DefaultInsets = Insets{
	Left:   Inches(0.1),
	Top:    Inches(0.05),
	Right:  Inches(0.1),
	Bottom: Inches(0.05),
}

// TextFrame holds the paragraphs of a text box or geometric shape.
//
// A new TextFrame always has one (possibly empty) first paragraph.
type TextFrame struct {
	theme      *Theme
	paragraphs []*Paragraph
	insets     *Insets
	// WordWrap breaks lines at the frame width.
	WordWrap bool
	// Anchor is the vertical placement of the text.
	Anchor Anchor
}

func newTextFrame(theme *Theme) *TextFrame {
	return &TextFrame{
		theme:      theme,
		paragraphs: []*Paragraph{&Paragraph{}},
	}
}

// Paragraphs returns all paragraphs in order.
func (f *TextFrame) Paragraphs() []*Paragraph {
	return f.paragraphs
}

// NumParagraphs returns the number of paragraphs.
func (f *TextFrame) NumParagraphs() int {
	return len(f.paragraphs)
}

// First returns the first paragraph.
func (f *TextFrame) First() *Paragraph {
	if len(f.paragraphs) == 0 {
		f.paragraphs = append(f.paragraphs, &Paragraph{})
	}
	return f.paragraphs[0]
}

// Append adds p as the last paragraph and returns it.
func (f *TextFrame) Append(p *Paragraph) *Paragraph {
	f.paragraphs = append(f.paragraphs, p)
	return p
}

// AddParagraph appends an unstyled paragraph with the given text.
func (f *TextFrame) AddParagraph(text string) *Paragraph {
	return f.Append(&Paragraph{Text: text})
}

// AppendBullet appends a bullet paragraph with the fixed bullet style
// (secondary text color, bullet size, theme font) at the given level.
func (f *TextFrame) AppendBullet(text string, level int) *Paragraph {
	p := &Paragraph{Text: text, Level: level}
	if f.theme != nil {
		p.Size = f.theme.BulletSize
		p.Color = f.theme.TextSecondary.Ptr()
		p.Font = f.theme.Font
	}
	return f.Append(p)
}

// SetText replaces all paragraphs with one unstyled paragraph per line.
func (f *TextFrame) SetText(text string) {
	lines := strings.Split(text, "\n")
	f.paragraphs = make([]*Paragraph, 0, len(lines))
	for _, l := range lines {
		f.paragraphs = append(f.paragraphs, &Paragraph{Text: l})
	}
}

// Text returns the text of all paragraphs joined by newlines.
func (f *TextFrame) Text() string {
	parts := make([]string, len(f.paragraphs))
	for i, p := range f.paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// SetMargins sets explicit text insets.
func (f *TextFrame) SetMargins(in Insets) {
	f.insets = &in
}

// Margins returns the text insets and whether they were set explicitly.
// If not, DefaultInsets apply.
func (f *TextFrame) Margins() (Insets, bool) {
	if f.insets == nil {
		return DefaultInsets, false
	}
	return *f.insets, true
}

// SetAnchor sets the vertical placement of the text.
func (f *TextFrame) SetAnchor(a Anchor) {
	f.Anchor = a
}

// Validate checks all paragraphs.
func (f *TextFrame) Validate() error {
	for i, p := range f.paragraphs {
		err := p.Validate()
		if err != nil {
			return errors.Wrap(err, "paragraph %d", i)
		}
	}
	if f.insets != nil {
		in := f.insets
		if in.Left < 0 || in.Top < 0 || in.Right < 0 || in.Bottom < 0 {
			return errors.NewValidationError("negative text margins")
		}
	}
	return nil
}
