package main

import (
	"path/filepath"
	"testing"

	"github.com/akeil/deckgen/internal/errors"
)

func TestOutputStem(t *testing.T) {
	cases := map[string]string{
		"":                         "Smart_Corridor_Presentation",
		"plans/corridor-mqtt.yaml": "corridor-mqtt",
		"deck.json":                "deck",
	}
	for plan, expected := range cases {
		stem := outputStem(settings{plan: plan})
		if stem != expected {
			t.Errorf("unexpected stem: %q != %q", stem, expected)
		}
	}
}

func TestSetupBuilder(t *testing.T) {
	b, err := setupBuilder(settings{})
	if err != nil {
		t.Fatal(err)
	}
	if n := b.Deck().NumSlides(); n != 18 {
		t.Errorf("unexpected slide count: %v != %v", n, 18)
	}

	_, err = setupBuilder(settings{plan: "does-not-exist.yaml"})
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestBuildPlan(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pptx")
	err := doBuild(settings{plan: "../../pkg/plan/testdata/corridor.yaml"}, out)
	if err != nil {
		t.Fatal(err)
	}
	err = doInspect(out)
	if err != nil {
		t.Error(err)
	}
}
