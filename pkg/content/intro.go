package content

import (
	"strings"

	"github.com/akeil/deckgen"
)

func titleSlide(s *deckgen.Slide) {
	textBox(s, "CS-221 PROJECT PRESENTATION", 1, 2, 5, 0.5, 14, Green, true)
	textBox(s, "Smart Corridor Ventilation &\nAir Quality Monitoring System", 1, 2.5, 11, 2, 44, textMain, true)
	note(s, "A RISC-V based embedded system integrating IoT sensors, low-level architecture,\n"+
		"and 3D visualization for autonomous indoor air quality control.", 1, 4.5, 10, 1)

	info := panel(s, deckgen.RoundedRectangle, 1, 5.8, 11.3, 0.8, deckgen.RGB(25, 25, 35), deckgen.RGB(60, 60, 70))
	info.Frame().First().
		SetText("CS-221  |  Computer Organization & Assembly Language  |  BSCS-3B  |  Group 05").
		SetColor(textMain).
		SetSize(16).
		SetAlign(deckgen.AlignCenter)
	info.Frame().SetAnchor(deckgen.AnchorMiddle)
}

type member struct {
	name  string
	cms   string
	role  string
	color deckgen.Color
}

var team = []member{
	{"Faizan Anwar", "455259", "Team Rep • System Architect & Lead Developer", Blue},
	{"Abdul Moiz", "465932", "Hardware Simulation Specialist", Red},
	{"Muhammad Taha", "467244", "Software Engineer (Assembly)", Green},
	{"Sham", "457919", "Testing & Validation Engineer", Purple},
}

// initials of the first two words of name
func initials(name string) string {
	var b strings.Builder
	for i, w := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return b.String()
}

func teamSlide(s *deckgen.Slide) {
	s.AddTitle("Meets the Team")

	for i, m := range team {
		left := 1 + float64(i)*3
		panel(s, deckgen.RoundedRectangle, left, 2.5, 2.8, 3.5, cardFill, m.color)

		circle := s.AddShape(deckgen.Oval, in(left+0.9), in(3), in(1), in(1), m.color.Ptr(), nil)
		circle.Frame().First().
			SetText(initials(m.name)).
			SetBold(true).
			SetSize(20).
			SetAlign(deckgen.AlignCenter)

		textBox(s, m.name, left, 4.2, 2.8, 0.5, 16, textMain, true).First().SetAlign(deckgen.AlignCenter)
		textBox(s, m.cms, left, 4.6, 2.8, 0.4, 14, m.color, false).First().SetAlign(deckgen.AlignCenter)
		textBox(s, m.role, left+0.2, 5, 2.4, 1, 12, textSec, false).First().SetAlign(deckgen.AlignCenter)
	}
}

func problemSlide(s *deckgen.Slide) {
	s.AddTitle("Problem Statement")

	box := panel(s, deckgen.RoundedRectangle, 1, 2, 11, 4, cardFill, Red)
	f := box.Frame()
	f.SetMargins(deckgen.Insets{
		Left:   in(0.5),
		Top:    in(0.5),
		Right:  deckgen.DefaultInsets.Right,
		Bottom: deckgen.DefaultInsets.Bottom,
	})
	f.First().SetText("The Challenge").SetSize(24).SetColor(Red).SetBold(true)
	f.AddParagraph("\nConventional ventilation systems are manual or timer-based, failing to respond " +
		"dynamically to real-time hazards choices.").SetSize(18).SetColor(textMain)

	deckgen.AddBullets(f,
		"Hypercapnia Risk: Elevated CO2 levels (>1000 ppm) cause fatigue",
		"Particulate Accumulation: PM2.5 particles (>100 µg/m³) damage health",
		"Fire Hazards: Smoke infiltration requires immediate mitigation",
		"Delayed Response: Manual systems have dangerous reaction latency",
	)
}

type tile struct {
	title string
	desc  string
	icon  string
}

// grid positions for four tiles in two rows
func gridPos(i int) (float64, float64) {
	return 1 + float64(i%2)*6, 2 + float64(i/2)*2.5
}

func objectivesSlide(s *deckgen.Slide) {
	s.AddTitle("Project Objectives")

	objectives := []tile{
		{"Real-Time Response", "Detect hazards within milliseconds using RISC-V", "⚡"},
		{"Autonomous Control", "Activate ventilation without human intervention", "🤖"},
		{"Multi-Sensor Fusion", "Combine Smoke, PM2.5, CO2, and Temperature", "📊"},
		{"Digital Twin", "Immersive 3D simulation for monitoring", "🏠"},
	}
	for i, o := range objectives {
		x, y := gridPos(i)
		panel(s, deckgen.RoundedRectangle, x, y, 5.5, 2, cardFill, Blue)
		textBox(s, o.icon, x+0.2, y+0.2, 1, 1, 30, textSec, false)
		textBox(s, o.title, x+1.2, y+0.3, 4, 0.5, 18, textMain, true)
		textBox(s, o.desc, x+1.2, y+0.8, 4, 1, 14, textSec, false)
	}
}

func architectureSlide(s *deckgen.Slide) {
	s.AddTitle("System Architecture: Three-Layer Design")

	layers := []struct {
		name  string
		sub   string
		desc  string
		color deckgen.Color
	}{
		{"Layer 1: Ripes", "RISC-V Architecture", "Low-level processor simulation with Memory-Mapped I/O and register manipulation.", Red},
		{"Layer 2: Wokwi", "IoT Hardware Layer", "ESP32-based sensor node with real sensors, WiFi, and MQTT communication.", Blue},
		{"Layer 3: Simulation", "3D Digital Twin", "React + Three.js immersive environment with particles and physics.", Green},
	}
	for i, l := range layers {
		box := panel(s, deckgen.RoundedRectangle, 0.5+float64(i)*4.2, 2.5, 4, 3.5, cardFill, l.color)
		f := box.Frame()
		f.First().SetText(l.name).SetSize(20).SetBold(true).SetAlign(deckgen.AlignCenter)
		f.AddParagraph(l.sub).SetSize(16).SetColor(l.color).SetAlign(deckgen.AlignCenter)
		f.AddParagraph("\n" + l.desc).SetSize(14).SetAlign(deckgen.AlignCenter)
	}
}

func blockDiagramSlide(s *deckgen.Slide) {
	s.AddTitle("Architecture Block Diagram")

	labeled(s, deckgen.Rectangle, "RISC-V Core\nRegisters x0-x31 | ALU", 5, 1.5, 3.33, 1, deckgen.RGB(40, 20, 20), Red)
	labeled(s, deckgen.Rectangle, "System Bus (Data / Address / Control)", 1, 3, 11.33, 0.5, deckgen.RGB(20, 30, 50), Blue)
	s.AddConnector(deckgen.Straight, in(6.66), in(2.5), in(6.66), in(3))

	banks := []struct {
		text string
		x    float64
	}{
		{"0xF0000000\nSmoke + PM2.5", 1.5},
		{"0xF0000004\nCO2 Level", 5},
		{"0xF0000008\nLED Matrix", 8.5},
	}
	for _, b := range banks {
		labeled(s, deckgen.Rectangle, b.text, b.x, 4, 2.5, 1, deckgen.RGB(20, 40, 30), Green)
	}

	peripherals := []struct {
		text string
		x    float64
	}{
		{"Smoke Detector", 1.5},
		{"PM2.5 Sensor", 3.5},
		{"CO2 Sensor", 5.5},
		{"Fan + LEDs", 8.5},
	}
	for _, p := range peripherals {
		labeled(s, deckgen.RoundedRectangle, p.text, p.x, 5.5, 2, 0.8, deckgen.RGB(30, 20, 50), Purple)
	}
}
