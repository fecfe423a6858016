// Package render exports decks to PDF documents and PNG images.
package render

import (
	"strings"

	"github.com/akeil/deckgen"
)

// indent per paragraph level
var levelIndent = deckgen.Inches(0.25)

// line height relative to the font size
const lineSpacing = 1.2

// style is the resolved look of a paragraph.
type style struct {
	size  float64
	color deckgen.Color
	bold  bool
	mono  bool
}

// resolveStyle fills unset paragraph attributes from the theme.
func resolveStyle(th *deckgen.Theme, p *deckgen.Paragraph) style {
	s := style{
		size:  p.Size,
		color: th.TextPrimary,
		bold:  p.Bold,
		mono:  isMono(p.Font),
	}
	if s.size == 0 {
		s.size = th.BulletSize
	}
	if p.Color != nil {
		s.color = *p.Color
	}
	return s
}

func isMono(font string) bool {
	f := strings.ToLower(font)
	for _, name := range []string{"courier", "mono", "consolas", "menlo"} {
		if strings.Contains(f, name) {
			return true
		}
	}
	return false
}

// textArea returns the part of a shape's bounds that holds text.
func textArea(r deckgen.Rect, f *deckgen.TextFrame) deckgen.Rect {
	in, _ := f.Margins()
	return deckgen.Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// anchorOffset is the vertical offset of a text block with the given
// height inside a box of height avail.
func anchorOffset(a deckgen.Anchor, avail, height float64) float64 {
	switch a {
	case deckgen.AnchorMiddle:
		return (avail - height) / 2
	case deckgen.AnchorBottom:
		return avail - height
	}
	return 0
}

// ellipse in coordinates relative to a shape's bounding box.
type ellipse struct {
	cx, cy, rx, ry float64
}

// cloudLobes approximate the cloud outline with overlapping ellipses.
var cloudLobes = []ellipse{
	{0.50, 0.50, 0.36, 0.30},
	{0.30, 0.36, 0.22, 0.22},
	{0.55, 0.28, 0.25, 0.24},
	{0.78, 0.42, 0.20, 0.20},
	{0.72, 0.68, 0.22, 0.20},
	{0.45, 0.72, 0.25, 0.22},
	{0.22, 0.60, 0.19, 0.18},
}

type point struct {
	x, y float64
}

// connectorPath returns the points of a straight or an elbow connector
// in EMU. Curved connectors use the elbow points as control points.
func connectorPath(c *deckgen.Connector) []point {
	x1, y1 := float64(c.From.X), float64(c.From.Y)
	x2, y2 := float64(c.To.X), float64(c.To.Y)
	if c.Kind == deckgen.Straight {
		return []point{{x1, y1}, {x2, y2}}
	}
	mx := (x1 + x2) / 2
	return []point{{x1, y1}, {mx, y1}, {mx, y2}, {x2, y2}}
}

// connectorStyle resolves the line color and width of a connector.
func connectorStyle(th *deckgen.Theme, c *deckgen.Connector) (deckgen.Color, deckgen.Length) {
	col := th.TextSecondary
	if c.Color != nil {
		col = *c.Color
	}
	w := c.Width
	if w == 0 {
		w = deckgen.Pt(1)
	}
	return col, w
}
