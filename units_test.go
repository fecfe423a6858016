package deckgen

import (
	"testing"

	"github.com/akeil/deckgen/internal/errors"
)

func TestLength(t *testing.T) {
	if Inches(1) != 914400 {
		t.Errorf("unexpected EMU per inch: %v", Inches(1).EMU())
	}
	if Pt(1) != 12700 {
		t.Errorf("unexpected EMU per point: %v", Pt(1).EMU())
	}
	if Inches(1).Points() != 72 {
		t.Errorf("unexpected points per inch: %v", Inches(1).Points())
	}
	if Cm(2.54) != Inches(1) {
		t.Errorf("unexpected cm to inch: %v != %v", Cm(2.54), Inches(1))
	}
	if Inches(13.333).EMU() != 12191695 {
		t.Errorf("unexpected widescreen width: %v", Inches(13.333).EMU())
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#00FF88")
	if err != nil {
		t.Error(err)
	}
	if c != RGB(0, 255, 136) {
		t.Errorf("unexpected color: %v", c)
	}

	c, err = ParseColor("4488ff")
	if err != nil {
		t.Error(err)
	}
	if c.Hex() != "4488FF" {
		t.Errorf("unexpected hex: %v", c.Hex())
	}

	for _, s := range []string{"", "#12345", "#GGGGGG", "1234567"} {
		_, err = ParseColor(s)
		if !errors.IsValidation(err) {
			t.Errorf("invalid color %q not detected", s)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("unexpected RGBA: %x %x %x %x", r, g, b, a)
	}
}
