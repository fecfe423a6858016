package pptx

import (
	"fmt"
	"io"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/akeil/deckgen/internal/errors"
)

// SlideSummary lists what was found on one slide.
type SlideSummary struct {
	Number int
	Shapes int
	Lines  []string
}

// Summary is an overview of a presentation file.
type Summary struct {
	Path   string
	Slides []SlideSummary
}

// Summarize reads the presentation at path with an independent PPTX
// reader and collects the text of each slide.
//
// Files not written by this package can be summarized as well.
func Summarize(path string) (*Summary, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no presentation at %q", path)
		}
		return nil, err
	}

	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read %q", path)
	}

	sum := &Summary{Path: path}
	for i, slide := range pres.GetAllSlides() {
		ss := SlideSummary{Number: i + 1}
		for _, shape := range slide.GetShapes() {
			ss.Shapes++
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text != "" {
					ss.Lines = append(ss.Lines, text)
				}
			}
		}
		sum.Slides = append(sum.Slides, ss)
	}
	return sum, nil
}

// NumSlides returns the number of slides found.
func (s *Summary) NumSlides() int {
	return len(s.Slides)
}

// Print writes a human readable listing to w.
func (s *Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%v: %d slides\n", s.Path, len(s.Slides))
	if err != nil {
		return err
	}
	for _, ss := range s.Slides {
		_, err = fmt.Fprintf(w, "%3d  %2d shapes\n", ss.Number, ss.Shapes)
		if err != nil {
			return err
		}
		for _, l := range ss.Lines {
			_, err = fmt.Fprintf(w, "     | %v\n", l)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
