package content

import (
	"fmt"

	"github.com/akeil/deckgen"
)

func ripesSlide(s *deckgen.Slide) {
	s.AddTitle("Layer 1: Ripes (RISC-V Simulation)")

	column(s, "What is Ripes?", 1, 4, 24, Red,
		"Visual RISC-V Processor Simulator",
		"Pipeline visualization (IF, ID, EX, MEM, WB)",
		"Register file inspection",
		"Memory-Mapped I/O support",
	)
	column(s, "Why RISC-V?", 7, 4, 24, Red,
		"Open-source ISA (no licensing)",
		"Reduced instruction set = efficiency",
		"Deterministic timing for safety",
		"Educational transparency",
	)
}

func mmioSlide(s *deckgen.Slide) {
	s.AddTitle("Memory-Mapped I/O Configuration")

	textBox(s, "Address              Name                 Bit Layout                         Purpose",
		1, 2, 11, 0.5, 16, Blue, true)

	rows := []string{
		"0xF0000000        Switch Bank 0      Bit 0: Smoke | 1-7: PM2.5     Read Sensor States",
		"0xF0000004        Switch Bank 1      Bits 0-7: CO2 Level              Read CO2 Sensor",
		"0xF0000008        LED Matrix         35x25 Pixel Grid (875 px)      Visual Feedback",
	}
	for i, r := range rows {
		textBox(s, r, 1, 2.8+float64(i)*0.8, 11, 0.5, 16, textMain, false)
	}

	const legendY = 5.5
	textBox(s, "LED Status Codes:", 1, legendY, 4, 0.5, 18, textSec, false)

	legend := []struct {
		text  string
		color deckgen.Color
	}{
		{"GREEN = Safe", Green},
		{"RED = Danger", Red},
		{"BLUE = Fan Active", Blue},
	}
	for i, l := range legend {
		x := 1 + float64(i)*3.5
		s.AddShape(deckgen.Oval, in(x), in(legendY+0.5), in(0.3), in(0.3), l.color.Ptr(), nil)
		textBox(s, l.text, x+0.4, legendY+0.4, 2, 0.5, 16, textMain, false)
	}
}

const assemblyCode = `# Sensor Polling & Smoke Check (Critical Priority)
main_loop:
    li t0, 0xF0000000      # Load Switch Bank 0 Address
    lw s0, 0(t0)           # Read Raw Input (Smoke + PM2.5)
    
    li t1, 1               # Mask for Bit 0
    and a0, s0, t1         # Isolate Smoke Bit
    bnez a0, unsafe_mode   # BRANCH IMMEDIATE if Smoke!

# PM2.5 Parsing
    srli a1, s0, 1         # Shift right (remove Smoke bit)
    li t1, 0x7F            # Mask 0111 1111 (7-bit PM2.5)
    and a1, a1, t1         # Clean PM2.5 value
    
    li t2, 100             # Threshold constant
    bgt a1, t2, unsafe_mode`

func assemblySlide(s *deckgen.Slide) {
	s.AddTitle("RISC-V Assembly: Core Logic")
	s.AddCodeBlock(assemblyCode, in(1), in(2), in(11), in(4.5))
}

func wokwiSlide(s *deckgen.Slide) {
	s.AddTitle("Layer 2: Wokwi (IoT Hardware Simulation)")

	column(s, "Hardware Components", 1, 4, 22, Blue,
		"ESP32 Microcontroller (WiFi)",
		"Potentiometers (Analog Sensors)",
		"Slide Switch (Digital Smoke)",
		"RGB LEDs (Status)",
	)
	column(s, "Connectivity", 7, 4, 22, Blue,
		"WiFi: Wokwi-GUEST",
		"MQTT: broker.hivemq.com",
		"Topic: smart-corridor/sensors",
		"Topic: smart-corridor/commands",
	)
}

const decisionCode = `// Priority-based hazard detection
if (effective_smoke > 30) {
    status_msg = "CRITICAL: SMOKE DETECTED";
    alert_level = "critical";      // Priority 1
}
else if (effective_temp > 35) {
    status_msg = "DANGER: HIGH TEMPERATURE";
    alert_level = "danger";        // Priority 2
}
else if (effective_pm25 > 80) {
    status_msg = "WARNING: HIGH PM2.5";
    alert_level = "warning";       // Priority 3
}`

func decisionLogicSlide(s *deckgen.Slide) {
	s.AddTitle("RISC-V Style Decision Logic (C++)")
	s.AddCodeBlock(decisionCode, in(1), in(2), in(11), in(4.5))
}

func digitalTwinSlide(s *deckgen.Slide) {
	s.AddTitle("Layer 3: 3D Digital Twin Simulation")

	column(s, "Technology Stack", 1, 4, 22, Green,
		"React (Component UI)",
		"Three.js / Fiber (3D Rendering)",
		"Rapier (Physics Engine)",
		"Vite (Build Tool)",
	)
	column(s, "Environment Features", 7, 4, 22, Green,
		"First-Person Controller",
		"Dynamic Smoke Particles",
		"Interactive Appliances",
		"Real-time Alert Lighting",
	)
}

func capabilitiesSlide(s *deckgen.Slide) {
	s.AddTitle("Simulation Capabilities")

	caps := []tile{
		{title: "🌫️ Fog System", desc: "Thousands of particles visualizing smoke spread"},
		{title: "📊 Dashboard", desc: "Live overlay showing CO2, PM2.5, AQI"},
		{title: "💨 Ventilation", desc: "Fans spin and clear smoke on command"},
		{title: "🚨 Alert Lights", desc: "House lights change color (Green -> Red)"},
	}
	for i, c := range caps {
		x, y := gridPos(i)
		box := panel(s, deckgen.RoundedRectangle, x, y, 5.5, 2, deckgen.RGB(20, 30, 25), Green)
		f := box.Frame()
		f.First().SetText(c.title).SetBold(true).SetSize(20).SetColor(textMain)
		f.AddParagraph(c.desc).SetSize(16).SetColor(textSec)
	}
}

func mqttSlide(s *deckgen.Slide) {
	s.AddTitle("System Integration via MQTT")

	labeled(s, deckgen.RoundedRectangle, "3D Simulation\n(React)\n[Publishes Sensors]",
		1, 3, 3, 2, deckgen.RGB(20, 40, 30), Green)
	labeled(s, deckgen.Cloud, "MQTT Broker\nhivemq.com\n\n<Topics>\n/sensors\n/commands",
		5, 2, 3, 4, deckgen.RGB(40, 30, 60), Purple)
	labeled(s, deckgen.RoundedRectangle, "Wokwi (ESP32)\n(RISC-V Logic)\n[Publishes Commands]",
		9, 3, 3, 2, deckgen.RGB(20, 30, 50), Blue)

	s.AddConnector(deckgen.Straight, in(4), in(3.5), in(5), in(3.5))
	s.AddConnector(deckgen.Straight, in(8), in(3.5), in(9), in(3.5))
}

func flowSlide(s *deckgen.Slide) {
	s.AddTitle("Implementation Flow")

	steps := []string{
		"Requirement Analysis: Define thresholds & safety standards",
		"RISC-V Logic Design: Assembly code in Ripes",
		"IoT Layer Development: ESP32 firmware in Wokwi",
		"3D Environment: React Three Fiber house model",
		"Integration: MQTT bridge connection",
		"Testing: Validation of all fail-safes",
	}
	for i, step := range steps {
		box := panel(s, deckgen.Rectangle, 2, 2+float64(i)*0.8, 9, 0.6, deckgen.RGB(25, 25, 35), Blue)
		box.Frame().First().
			SetText(fmt.Sprintf("%d. %s", i+1, step)).
			SetSize(16).
			SetColor(textMain)
	}
}
