package render

import (
	"image"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/imaging"
	"github.com/akeil/deckgen/internal/logging"
)

// bitmap paints one slide. It is used by a single goroutine.
type bitmap struct {
	ctx   *Context
	dst   *image.RGBA
	gc    *draw2dimg.GraphicContext
	m     imaging.Matrix
	theme *deckgen.Theme
	faces map[faceKey]font.Face
}

type faceKey struct {
	style fontStyle
	size  float64
}

func renderBitmap(c *Context, s *deckgen.Slide) (*image.RGBA, error) {
	d := s.Deck()
	width := c.Width
	if width <= 0 {
		width = DefaultWidth
	}
	scale := float64(width) / float64(d.Width())
	height := int(math.Round(float64(d.Height()) * scale))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	imaging.Fill(dst, c.color(s.Background))

	err := c.loadFonts()
	if err != nil {
		logging.Warning("Fall back on basic font: %v", err)
	}

	b := &bitmap{
		ctx:   c,
		dst:   dst,
		gc:    draw2dimg.NewGraphicContext(dst),
		m:     imaging.Scaling(scale, scale),
		theme: d.Theme(),
		faces: make(map[faceKey]font.Face),
	}
	defer b.close()

	logging.Debug("Render slide %d at %dx%d", s.Number(), width, height)
	for _, sh := range s.Shapes() {
		switch v := sh.(type) {
		case *deckgen.TextBox:
			b.box(v.Bounds(), deckgen.Rectangle, v.Fill, v.Border)
			b.text(v.Bounds(), v.Frame())
		case *deckgen.AutoShape:
			b.box(v.Bounds(), v.Geometry, v.Fill, v.Border)
			b.text(v.Bounds(), v.Frame())
		case *deckgen.Connector:
			b.connector(v)
		}
	}

	return dst, nil
}

func (b *bitmap) close() {
	for _, f := range b.faces {
		f.Close()
	}
}

// px converts a bounding box to pixel coordinates.
func (b *bitmap) px(r deckgen.Rect) fRect {
	x, y := b.m.Apply(float64(r.X), float64(r.Y))
	return fRect{x, y, b.m.ScaleLength(float64(r.W)), b.m.ScaleLength(float64(r.H))}
}

func (b *bitmap) box(r deckgen.Rect, g deckgen.Geometry, fill, border *deckgen.Color) {
	if fill == nil && border == nil {
		return
	}
	gc := b.gc
	p := b.px(r)
	gc.SetLineWidth(math.Max(1, b.m.ScaleLength(float64(deckgen.Pt(1)))))
	if fill != nil {
		gc.SetFillColor(b.ctx.color(*fill))
	}
	if border != nil {
		gc.SetStrokeColor(b.ctx.color(*border))
	}

	if g == deckgen.Cloud {
		b.cloud(p, fill != nil, border != nil)
		return
	}

	gc.BeginPath()
	switch g {
	case deckgen.RoundedRectangle:
		arc := 2 * cornerRatio * minf(p.w, p.h)
		draw2dkit.RoundedRectangle(gc, p.x, p.y, p.x+p.w, p.y+p.h, arc, arc)
	case deckgen.Oval:
		draw2dkit.Ellipse(gc, p.x+p.w/2, p.y+p.h/2, p.w/2, p.h/2)
	default:
		draw2dkit.Rectangle(gc, p.x, p.y, p.x+p.w, p.y+p.h)
	}

	switch {
	case fill != nil && border != nil:
		gc.FillStroke()
	case fill != nil:
		gc.Fill()
	default:
		gc.Stroke()
	}
}

// cloud strokes all lobes, then fills over the inner strokes.
func (b *bitmap) cloud(p fRect, fill, stroke bool) {
	gc := b.gc
	lobe := func(e ellipse) {
		gc.BeginPath()
		draw2dkit.Ellipse(gc, p.x+e.cx*p.w, p.y+e.cy*p.h, e.rx*p.w, e.ry*p.h)
	}
	if stroke {
		for _, e := range cloudLobes {
			lobe(e)
			gc.Stroke()
		}
	}
	if fill {
		for _, e := range cloudLobes {
			lobe(e)
			gc.Fill()
		}
	}
}

func (b *bitmap) connector(c *deckgen.Connector) {
	col, width := connectorStyle(b.theme, c)
	gc := b.gc
	gc.SetStrokeColor(b.ctx.color(col))
	gc.SetLineWidth(math.Max(1, b.m.ScaleLength(float64(width))))

	pts := connectorPath(c)
	for i, p := range pts {
		x, y := b.m.Apply(p.x, p.y)
		pts[i] = point{x, y}
	}

	gc.BeginPath()
	gc.MoveTo(pts[0].x, pts[0].y)
	if c.Kind == deckgen.Curved {
		gc.CubicCurveTo(pts[1].x, pts[1].y, pts[2].x, pts[2].y, pts[3].x, pts[3].y)
	} else {
		for _, p := range pts[1:] {
			gc.LineTo(p.x, p.y)
		}
	}
	gc.Stroke()
}

// face returns a font face for the style with the size in pixels.
func (b *bitmap) face(s style, px float64) font.Face {
	fs := regular
	if s.mono {
		fs = mono
	} else if s.bold {
		fs = bold
	}
	key := faceKey{fs, math.Round(px*4) / 4}
	if f, ok := b.faces[key]; ok {
		return f
	}

	var f font.Face
	ttf := b.ctx.fonts[fs]
	if ttf == nil {
		f = basicfont.Face7x13
	} else {
		f = truetype.NewFace(ttf, &truetype.Options{
			Size:    key.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	b.faces[key] = f
	return f
}

type bitmapLine struct {
	text   string
	face   font.Face
	color  deckgen.Color
	indent float64
	align  deckgen.Alignment
	height float64
}

func (b *bitmap) text(bounds deckgen.Rect, f *deckgen.TextFrame) {
	if strings.TrimSpace(f.Text()) == "" {
		return
	}
	area := b.px(textArea(bounds, f))
	// pixels per point
	ppt := b.m.ScaleLength(float64(deckgen.Point))

	var lines []bitmapLine
	total := 0.0
	for _, p := range f.Paragraphs() {
		st := resolveStyle(b.theme, p)
		px := st.size * ppt
		face := b.face(st, px)
		indent := b.m.ScaleLength(float64(levelIndent)) * float64(p.Level)
		for _, segment := range strings.Split(p.Text, "\n") {
			wrapped := []string{segment}
			if f.WordWrap {
				wrapped = wrap(face, segment, area.w-indent)
			}
			for _, l := range wrapped {
				lines = append(lines, bitmapLine{
					text:   l,
					face:   face,
					color:  b.ctx.color(st.color),
					indent: indent,
					align:  p.Align,
					height: px * lineSpacing,
				})
				total += px * lineSpacing
			}
		}
	}

	y := area.y + anchorOffset(f.Anchor, area.h, total)
	for _, l := range lines {
		dr := &font.Drawer{
			Dst:  b.dst,
			Src:  image.NewUniform(l.color),
			Face: l.face,
		}
		x := area.x + l.indent
		avail := area.w - l.indent
		w := float64(dr.MeasureString(l.text)) / 64
		switch l.align {
		case deckgen.AlignCenter:
			x += (avail - w) / 2
		case deckgen.AlignRight:
			x += avail - w
		}
		ascent := float64(l.face.Metrics().Ascent) / 64
		dr.Dot = fixed.P(int(math.Round(x)), int(math.Round(y+ascent)))
		dr.DrawString(l.text)
		y += l.height
	}
}

// wrap breaks s into lines not wider than width.
// Words wider than width get a line of their own.
func wrap(face font.Face, s string, width float64) []string {
	if s == "" {
		return []string{""}
	}
	limit := fixed.Int26_6(width * 64)
	if font.MeasureString(face, s) <= limit {
		return []string{s}
	}

	// keep leading indentation, it matters for code
	trimmed := strings.TrimLeft(s, " ")
	lead := s[:len(s)-len(trimmed)]

	words := strings.Fields(trimmed)
	if len(words) == 0 {
		return []string{s}
	}

	var lines []string
	line := lead + words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if font.MeasureString(face, candidate) > limit {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}
