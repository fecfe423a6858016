package main

import (
	"os"

	"github.com/akeil/deckgen/pkg/pptx"
)

func doInspect(path string) error {
	sum, err := pptx.Summarize(path)
	if err != nil {
		return err
	}
	return sum.Print(os.Stdout)
}
