package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/deckgen"
	"github.com/akeil/deckgen/pkg/content"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	logLevel string
	plan     string
}

func main() {
	app := kingpin.New("deckgen", "Slide deck generator")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error)").
		Envar("DECKGEN_LOG_LEVEL").
		Default("warning").
		StringVar(&s.logLevel)

	build := app.Command("build", "Build a deck and save it as PPTX").Default()
	var (
		buildPlan = build.Flag("plan", "Deck description (YAML or JSON)").Short('p').String()
		output    = build.Flag("output", "Output file").Short('o').Default(content.OutputFile).String()
	)

	inspect := app.Command("inspect", "Show the slides of a PPTX file")
	var (
		inspectPath = inspect.Arg("file", "PPTX file").Required().String()
	)

	render := app.Command("render", "Export a deck to PDF or PNG")
	var (
		renderPlan = render.Flag("plan", "Deck description (YAML or JSON)").Short('p').String()
		format     = render.Flag("format", "Output format").Short('f').Default("pdf").Enum("pdf", "png")
		outDir     = render.Flag("output-dir", "Output directory").Short('o').Default(".").String()
		light      = render.Flag("light", "Dark text on white background").Bool()
		width      = render.Flag("width", "Image width in pixels (PNG)").Default("1280").Int()
		verify     = render.Flag("verify", "Validate the generated PDF").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	deckgen.SetLogLevel(s.logLevel)

	var err error
	switch command {
	case build.FullCommand():
		s.plan = *buildPlan
		err = doBuild(s, *output)
	case inspect.FullCommand():
		err = doInspect(*inspectPath)
	case render.FullCommand():
		s.plan = *renderPlan
		err = doRender(s, renderOptions{
			format: *format,
			outDir: *outDir,
			light:  *light,
			width:  *width,
			verify: *verify,
		})
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
