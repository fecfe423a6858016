package deckgen

import (
	"testing"
)

func TestBulletParagraphs(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)
	f := s.AddTextBox("Heading", Inches(1), Inches(2), Inches(5), Inches(4), 24, White, true)

	items := []string{"one", "two", "three", "four"}
	AddBullets(f, items...)

	expected := len(items) + 1
	if f.NumParagraphs() != expected {
		t.Errorf("unexpected paragraph count: %v != %v", f.NumParagraphs(), expected)
	}

	th := d.Theme()
	for i, p := range f.Paragraphs()[1:] {
		if p.Text != items[i] {
			t.Errorf("unexpected bullet text: %q != %q", p.Text, items[i])
		}
		if p.Size != th.BulletSize {
			t.Errorf("unexpected bullet size: %v != %v", p.Size, th.BulletSize)
		}
		if p.Color == nil || *p.Color != th.TextSecondary {
			t.Errorf("unexpected bullet color: %v", p.Color)
		}
		if p.Font != th.Font {
			t.Errorf("unexpected bullet font: %q", p.Font)
		}
	}
}

func TestTextPreserved(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)
	text := "Smart Corridor Ventilation &\nAir Quality <Monitoring> µg/m³"
	f := s.AddTextBox(text, 0, 0, Inches(11), Inches(2), 44, White, true)

	if f.NumParagraphs() != 1 {
		t.Errorf("line break must not start a paragraph")
	}
	if f.First().Text != text {
		t.Errorf("unexpected text: %q != %q", f.First().Text, text)
	}
	if !f.WordWrap {
		t.Errorf("word wrap should be on")
	}
}

func TestSetText(t *testing.T) {
	f := newTextFrame(nil)
	f.SetText("RISC-V Core\nRegisters x0-x31 | ALU")
	if f.NumParagraphs() != 2 {
		t.Errorf("unexpected paragraph count: %v != %v", f.NumParagraphs(), 2)
	}
	if f.Text() != "RISC-V Core\nRegisters x0-x31 | ALU" {
		t.Errorf("unexpected text %q", f.Text())
	}

	// without theme, bullets carry no style
	p := f.AppendBullet("plain", 1)
	if p.Size != 0 || p.Color != nil || p.Level != 1 {
		t.Errorf("unexpected bullet %+v", p)
	}
}

func TestMargins(t *testing.T) {
	f := newTextFrame(nil)
	in, ok := f.Margins()
	if ok || in != DefaultInsets {
		t.Errorf("expected default insets")
	}

	f.SetMargins(Insets{Left: Inches(0.5), Top: Inches(0.5)})
	in, ok = f.Margins()
	if !ok || in.Left != Inches(0.5) {
		t.Errorf("explicit margins not kept: %v", in)
	}

	f.SetMargins(Insets{Left: -1})
	if f.Validate() == nil {
		t.Errorf("negative margin not detected")
	}
}

func TestParseAlignment(t *testing.T) {
	cases := map[string]Alignment{
		"":       AlignLeft,
		"left":   AlignLeft,
		"Center": AlignCenter,
		"right":  AlignRight,
	}
	for s, expected := range cases {
		a, err := ParseAlignment(s)
		if err != nil {
			t.Error(err)
		}
		if a != expected {
			t.Errorf("unexpected alignment for %q: %v != %v", s, a, expected)
		}
	}

	_, err := ParseAlignment("justify")
	if err == nil {
		t.Errorf("invalid alignment not detected")
	}
}

func TestCodeBlock(t *testing.T) {
	d := newTestDeck()
	s := d.NewSlide(Black)
	code := "main_loop:\n    li t0, 0xF0000000"
	box := s.AddCodeBlock(code, Inches(1), Inches(2), Inches(11), Inches(4.5))

	th := d.Theme()
	if box.Geometry != RoundedRectangle {
		t.Errorf("unexpected geometry %v", box.Geometry)
	}
	if box.Fill == nil || *box.Fill != th.CodeFill {
		t.Errorf("unexpected fill %v", box.Fill)
	}
	p := box.Frame().First()
	if p.Text != code || p.Font != th.CodeFont || p.Size != th.CodeSize {
		t.Errorf("unexpected code paragraph %+v", p)
	}
	in, ok := box.Frame().Margins()
	if !ok || in.Left != Inches(0.2) || in.Top != Inches(0.2) {
		t.Errorf("unexpected margins %v", in)
	}
}
