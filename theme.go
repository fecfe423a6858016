package deckgen

// Theme supplies the default styles for all text created through the
// builder helpers.
type Theme struct {
	Font     string
	CodeFont string

	TextPrimary   Color
	TextSecondary Color

	TitleSize  float64
	BulletSize float64
	CodeSize   float64

	CodeFill   Color
	CodeBorder Color
	CodeText   Color
}

// DefaultTheme is light text on a dark background.
func DefaultTheme() Theme {
	return Theme{
		Font:          "Arial",
		CodeFont:      "Courier New",
		TextPrimary:   RGB(255, 255, 255),
		TextSecondary: RGB(160, 160, 176),
		TitleSize:     40,
		BulletSize:    18,
		CodeSize:      12,
		CodeFill:      RGB(26, 26, 46),
		CodeBorder:    RGB(50, 50, 60),
		CodeText:      RGB(200, 200, 200),
	}
}
