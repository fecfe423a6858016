package content

import (
	"github.com/akeil/deckgen"
)

func testingSlide(s *deckgen.Slide) {
	s.AddTitle("Testing & Validation Strategy")

	column(s, "Unit Testing", 1, 4, 22, Purple,
		"Masking Logic (AND ops)",
		"Branch Logic (Thresholds)",
		"LED Drawing (Mem Addresses)",
	)
	column(s, "Integration Testing", 7, 4, 22, Purple,
		"Smoke Switch Latency (<1 cycle)",
		"Noisy Data Rejection",
		"MQTT Round-Trip (<500ms)",
	)
}

func demoSlide(s *deckgen.Slide) {
	s.AddTitle("Live Demo Phase")

	box := panel(s, deckgen.RoundedRectangle, 2, 2.5, 9.33, 3, deckgen.RGB(30, 40, 30), Green)
	f := box.Frame()
	f.First().SetText("Demonstrating the full loop:").SetSize(24).SetAlign(deckgen.AlignCenter)
	f.AddParagraph("\n1. Ripes: Real-time Register Switching\n" +
		"2. Wokwi: Sensor & Actuator Hardware\n" +
		"3. 3D Sim: Visual Environmental Response").
		SetSize(20).
		SetAlign(deckgen.AlignCenter)
}

func conclusionSlide(s *deckgen.Slide) {
	s.AddTitle("Conclusion & Future Work")

	column(s, "Key Achievements", 1, 3, 22, Green,
		"Full RISC-V implementation",
		"IoT + Digital Twin integration",
		"<100ms Safety Response",
	)
	column(s, "Future Enhancements", 7, 3, 22, Yellow,
		"FPGA Hardware Implementation",
		"Machine Learning Prediction",
		"Mobile App Monitoring",
	)

	thanks := panel(s, deckgen.RoundedRectangle, 4, 5.5, 5.33, 1.5, cardFill, Blue)
	thanks.Frame().First().
		SetText("Thank You!\nQuestions?").
		SetBold(true).
		SetSize(28).
		SetAlign(deckgen.AlignCenter).
		SetColor(textMain)
}
