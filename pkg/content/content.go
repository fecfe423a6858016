// Package content holds the built-in Smart Corridor deck.
package content

import (
	"github.com/akeil/deckgen"
)

// OutputFile is where the CLI saves the built-in deck.
const OutputFile = "Smart_Corridor_Presentation.pptx"

// Title of the built-in deck.
const Title = "Smart Corridor Ventilation & Air Quality Monitoring System"

// Accent colors.
var (
	Green  = deckgen.RGB(0, 255, 136)
	Blue   = deckgen.RGB(68, 136, 255)
	Red    = deckgen.RGB(255, 68, 102)
	Purple = deckgen.RGB(153, 102, 255)
	Yellow = deckgen.RGB(255, 204, 0)
)

var (
	textMain = deckgen.DefaultTheme().TextPrimary
	textSec  = deckgen.DefaultTheme().TextSecondary
	cardFill = deckgen.RGB(20, 20, 30)
)

// NewDeck creates the empty 16:9 deck the built-in slides are made for.
func NewDeck() *deckgen.Deck {
	d := deckgen.NewDeck(deckgen.WidescreenWidth, deckgen.WidescreenHeight, deckgen.DarkBackground)
	d.Title = Title
	return d
}

// SmartCorridor adds all 18 slides to the builder's deck.
func SmartCorridor(b *deckgen.Builder) {
	for _, add := range slides {
		add(b.NewDefaultSlide())
	}
}

// slides in presentation order
var slides = []func(*deckgen.Slide){
	titleSlide,
	teamSlide,
	problemSlide,
	objectivesSlide,
	architectureSlide,
	blockDiagramSlide,
	ripesSlide,
	mmioSlide,
	assemblySlide,
	wokwiSlide,
	decisionLogicSlide,
	digitalTwinSlide,
	capabilitiesSlide,
	mqttSlide,
	flowSlide,
	testingSlide,
	demoSlide,
	conclusionSlide,
}

func in(v float64) deckgen.Length {
	return deckgen.Inches(v)
}

// textBox takes its geometry in inches.
func textBox(s *deckgen.Slide, text string, x, y, w, h, size float64, c deckgen.Color, bold bool) *deckgen.TextFrame {
	return s.AddTextBox(text, in(x), in(y), in(w), in(h), size, c, bold)
}

// note is a text box in the default body style.
func note(s *deckgen.Slide, text string, x, y, w, h float64) *deckgen.TextFrame {
	return textBox(s, text, x, y, w, h, 18, textSec, false)
}

func panel(s *deckgen.Slide, g deckgen.Geometry, x, y, w, h float64, fill, border deckgen.Color) *deckgen.AutoShape {
	return s.AddShape(g, in(x), in(y), in(w), in(h), fill.Ptr(), border.Ptr())
}

// labeled is a panel whose text is split into one paragraph per line.
func labeled(s *deckgen.Slide, g deckgen.Geometry, text string, x, y, w, h float64, fill, border deckgen.Color) *deckgen.AutoShape {
	a := panel(s, g, x, y, w, h, fill, border)
	a.Frame().SetText(text)
	return a
}

// column is a heading followed by bullets, used for two column layouts.
func column(s *deckgen.Slide, heading string, x, h, size float64, c deckgen.Color, items ...string) *deckgen.TextFrame {
	f := note(s, heading, x, 2, 5, h)
	f.First().SetSize(size).SetColor(c)
	deckgen.AddBullets(f, items...)
	return f
}
