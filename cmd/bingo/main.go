// bingo: generates bingo cards from a text file with one value per line.
//
//	bingo -i values.txt -o card.png
//	bingo -i values.txt -o cards/ -n 20 --seed "friday night"

package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/maxhully/bingo"
	"github.com/maxhully/bingo/boardimg"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bingo"
	app.Usage = "Generate bingo cards from a list of values, one per line"
	app.HideHelpCommand = true
	app.HideVersion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "file with one value per line",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "image to write (.png, .jpg), or a directory when --count is more than 1",
			Required: true,
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   1,
			Usage:   "number of cards to generate",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "INI file with board settings (flags win over it)",
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"l"},
			Value:   bingo.DefaultSize,
			Usage:   "rows and columns of a square board",
		},
		&cli.IntFlag{Name: "rows", Usage: "rows on the board"},
		&cli.IntFlag{Name: "columns", Usage: "columns on the board"},
		&cli.BoolFlag{
			Name:    "free",
			Aliases: []string{"fr"},
			Value:   true,
			Usage:   "put a free space in the center (--free=false to leave it out)",
		},
		&cli.StringFlag{Name: "free-text", Value: bingo.DefaultFreeText, Usage: "text of the free space"},
		&cli.IntFlag{
			Name:    "resolution",
			Aliases: []string{"r"},
			Value:   bingo.DefaultResolution,
			Usage:   "width and height of the image in pixels",
		},
		&cli.Float64Flag{Name: "cell-size", Usage: "cell size in pixels (overrides --resolution)"},
		&cli.Float64Flag{Name: "margin", Value: bingo.DefaultMargin, Usage: "border around the grid in pixels"},
		&cli.Float64Flag{Name: "line-width", Value: bingo.DefaultLineWidth, Usage: "grid line width in pixels"},
		&cli.StringFlag{Name: "font", Usage: "font file, or the name of an installed font"},
		&cli.Float64Flag{
			Name:    "font-size",
			Aliases: []string{"fo"},
			Value:   bingo.DefaultFontSize,
			Usage:   "font size in pixels",
		},
		&cli.IntFlag{
			Name:    "wrap",
			Aliases: []string{"w", "tw"},
			Value:   bingo.DefaultWrapWidth,
			Usage:   "characters per line of text in a cell",
		},
		&cli.StringFlag{Name: "background", Value: "#ffffff", Usage: "background color"},
		&cli.StringFlag{Name: "text-color", Value: "#000000", Usage: "text color"},
		&cli.StringFlag{Name: "line-color", Value: "#000000", Usage: "grid line color"},
		&cli.StringFlag{Name: "format", Value: "jpeg", Usage: "image format when writing several cards (png or jpeg)"},
		&cli.StringFlag{Name: "seed", Usage: "any text; the same seed and input give the same cards"},
	}
	app.Action = generate
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bingo: %v\n", err)
		os.Exit(1)
	}
}

func generate(cCtx *cli.Context) error {
	spec, err := specFromFlags(cCtx)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	count := cCtx.Int("count")
	output := cCtx.String("output")
	paths, format, err := outputPaths(output, count, cCtx.String("format"))
	if err != nil {
		return err
	}

	input := cCtx.String("input")
	pool, err := bingo.LoadValuePool(input)
	if err != nil {
		return err
	}
	log.Printf("read %d values from %s", len(pool), input)

	gen := bingo.NewGenerator(bingo.NewRand(cCtx.String("seed")))
	boards, err := gen.GenerateN(pool, &spec, count)
	if err != nil {
		return err
	}

	painter, err := boardimg.NewPainter(&spec)
	if err != nil {
		return err
	}
	if count > 1 {
		if err := bingo.PrepareDir(output); err != nil {
			return err
		}
	}
	writer := bingo.NewImageWriter()
	for i, board := range boards {
		surface, err := painter.Draw(board)
		if err != nil {
			return err
		}
		if err := writer.WriteFile(paths[i], surface.Encoder(format)); err != nil {
			return err
		}
		log.Printf("wrote %s", paths[i])
	}
	return nil
}

// outputPaths works out every file name up front, so a bad name fails before
// anything is generated.
func outputPaths(output string, count int, formatName string) ([]string, bingo.Format, error) {
	if count < 1 {
		return nil, "", fmt.Errorf("%w: number of cards must be 1 or more, got %d", bingo.ErrInvalidSpec, count)
	}
	if count == 1 {
		format, err := bingo.FormatForPath(output)
		if err != nil {
			return nil, "", err
		}
		return []string{output}, format, nil
	}
	format, err := bingo.ParseFormat(formatName)
	if err != nil {
		return nil, "", err
	}
	paths := make([]string, count)
	for i := range paths {
		paths[i] = bingo.CardPath(output, i, format)
	}
	return paths, format, nil
}

// Defaults first, then the config file, then any flags given on the command line.
func specFromFlags(cCtx *cli.Context) (bingo.BoardSpec, error) {
	spec := bingo.DefaultSpec()
	if path := cCtx.String("config"); path != "" {
		if err := bingo.LoadSpecFile(path, &spec); err != nil {
			return spec, err
		}
	}
	w, h := spec.ImageSize()
	side := int(math.Round(max(w, h)))

	if cCtx.IsSet("size") {
		spec.Rows = cCtx.Int("size")
		spec.Columns = spec.Rows
	}
	if cCtx.IsSet("rows") {
		spec.Rows = cCtx.Int("rows")
	}
	if cCtx.IsSet("columns") {
		spec.Columns = cCtx.Int("columns")
	}
	if cCtx.IsSet("margin") {
		spec.Margin = cCtx.Float64("margin")
	}
	switch {
	case cCtx.IsSet("cell-size"):
		spec.CellSize = cCtx.Float64("cell-size")
	case cCtx.IsSet("resolution"):
		spec.FitResolution(cCtx.Int("resolution"))
	case cCtx.IsSet("size"), cCtx.IsSet("rows"), cCtx.IsSet("columns"), cCtx.IsSet("margin"):
		// Keep the image the same size and resize the cells to fit.
		spec.FitResolution(side)
	}

	if cCtx.IsSet("free") {
		spec.FreeCell = cCtx.Bool("free")
	}
	if cCtx.IsSet("free-text") {
		spec.FreeText = cCtx.String("free-text")
	}
	if cCtx.IsSet("line-width") {
		spec.LineWidth = cCtx.Float64("line-width")
	}
	if cCtx.IsSet("font") {
		spec.FontFile = cCtx.String("font")
	}
	if cCtx.IsSet("font-size") {
		spec.FontSize = cCtx.Float64("font-size")
	}
	if cCtx.IsSet("wrap") {
		spec.WrapWidth = cCtx.Int("wrap")
	}

	colors := []struct {
		flag string
		dst  *color.Color
	}{
		{"background", &spec.Background},
		{"text-color", &spec.Text},
		{"line-color", &spec.Line},
	}
	for _, c := range colors {
		if !cCtx.IsSet(c.flag) {
			continue
		}
		parsed, err := bingo.ParseHexColor(cCtx.String(c.flag))
		if err != nil {
			return spec, fmt.Errorf("--%s: %w", c.flag, err)
		}
		*c.dst = parsed
	}
	return spec, nil
}
