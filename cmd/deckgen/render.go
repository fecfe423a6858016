package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/internal/fs"
	"github.com/akeil/deckgen/pkg/content"
	"github.com/akeil/deckgen/pkg/render"
)

type renderOptions struct {
	format string
	outDir string
	light  bool
	width  int
	verify bool
}

func doRender(s settings, o renderOptions) error {
	b, err := setupBuilder(s)
	if err != nil {
		return err
	}
	d := b.Deck()
	d.Finalize()

	p := render.Palette{}
	if o.light {
		p = p.Light()
	}
	rc := render.NewContext(p)
	if o.width > 0 {
		rc.Width = o.width
	}

	err = os.MkdirAll(o.outDir, 0755)
	if err != nil {
		return err
	}
	stem := outputStem(s)

	switch o.format {
	case "pdf":
		return renderPDF(rc, d, filepath.Join(o.outDir, stem+".pdf"), o.verify)
	case "png":
		return renderPNGs(rc, d, o.outDir, stem)
	}
	return fmt.Errorf("unsupported format %q, choose one of 'pdf', 'png'", o.format)
}

func renderPDF(rc *render.Context, d *deckgen.Deck, path string, verify bool) error {
	fmt.Printf("%v render %d slides\n", ellipsis, d.NumSlides())
	err := fs.WriteFile(path, func(w io.Writer) error {
		return rc.PDF(d, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, path, err)
		return err
	}

	if verify {
		err = render.VerifyPDF(path, d.NumSlides())
		if err != nil {
			fmt.Printf("%v Invalid PDF %q: %v\n", crossmark, path, err)
			return err
		}
	}

	fmt.Printf("%v deck saved as %q.\n", checkmark, path)
	return nil
}

// renderPNGs writes one image per slide. The deck is not modified while
// the slides are drawn in parallel.
func renderPNGs(rc *render.Context, d *deckgen.Deck, outDir, stem string) error {
	var group errgroup.Group
	for _, s := range d.Slides() {
		group.Go(func() error {
			path := filepath.Join(outDir, fmt.Sprintf("%s-%02d.png", stem, s.Number()))
			err := fs.WriteFile(path, func(w io.Writer) error {
				return rc.PNG(d, s.Index(), w)
			})
			if err != nil {
				fmt.Printf("%v Failed to render slide %d: %v\n", crossmark, s.Number(), err)
				return err
			}
			fmt.Printf("%v slide %d saved as %q.\n", checkmark, s.Number(), path)
			return nil
		})
	}
	return group.Wait()
}

// outputStem names output files after the plan file or the built-in deck.
func outputStem(s settings) string {
	name := content.OutputFile
	if s.plan != "" {
		name = filepath.Base(s.plan)
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
