package main

import (
	"fmt"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/pkg/content"
	"github.com/akeil/deckgen/pkg/plan"
	"github.com/akeil/deckgen/pkg/pptx"
)

func doBuild(s settings, output string) error {
	b, err := setupBuilder(s)
	if err != nil {
		return err
	}

	err = b.Save(output)
	if err != nil {
		return err
	}

	fmt.Printf("Presentation saved to %v\n", output)
	return nil
}

// setupBuilder returns a builder with all slides added, either from the
// plan file in the settings or the built-in deck.
func setupBuilder(s settings) (*deckgen.Builder, error) {
	enc := pptx.NewEncoder()
	if s.plan == "" {
		b := deckgen.NewBuilder(content.NewDeck(), enc)
		content.SmartCorridor(b)
		return b, nil
	}

	p, err := plan.LoadFile(s.plan)
	if err != nil {
		return nil, err
	}
	d, err := p.NewDeck()
	if err != nil {
		return nil, err
	}
	b := deckgen.NewBuilder(d, enc)
	err = p.Apply(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}
