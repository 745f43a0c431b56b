package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bkrabach/ansiterm/internal/builder"
	"github.com/bkrabach/ansiterm/internal/sauce"
)

func runMake(args []string) int {
	fs := flag.NewFlagSet("make", flag.ExitOnError)
	text := fs.String("text", "", "Text to render (required)")
	fg := fs.Int("fg", 7, "Foreground color (0-15)")
	bg := fs.Int("bg", -1, "Background color (0-15, default none)")
	brightFg := fs.Bool("bright-fg", false, "Use bright foreground")
	brightBg := fs.Bool("bright-bg", false, "Use bright background")
	width := fs.Int("width", builder.DefaultWidth, "Width in columns")
	height := fs.Int("height", builder.DefaultHeight, "Height in rows")
	center := fs.Bool("center", false, "Center text horizontally")
	title := fs.String("sauce-title", "", "SAUCE title metadata")
	author := fs.String("sauce-author", "", "SAUCE author metadata")
	group := fs.String("sauce-group", "", "SAUCE group metadata")
	output := fs.String("o", "", "Output .ANS file (required)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ansiterm make -text <text> -o <file> [options]\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if *text == "" || *output == "" {
		fs.Usage()
		return 2
	}

	data, err := banner(*text, bannerOptions{
		fg:       *fg,
		bg:       *bg,
		brightFg: *brightFg,
		brightBg: *brightBg,
		width:    *width,
		height:   *height,
		center:   *center,
		title:    *title,
		author:   *author,
		group:    *group,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Generated: %s\n", *output)
	fmt.Printf("Size: %d bytes\n", len(data))
	if *title != "" || *author != "" || *group != "" {
		fmt.Println("SAUCE metadata: Yes")
	}
	return 0
}

type bannerOptions struct {
	fg, bg             int
	brightFg, brightBg bool
	width, height      int
	center             bool
	title              string
	author             string
	group              string
}

// banner draws a boxed line of text on an otherwise empty canvas.
func banner(text string, opts bannerOptions) ([]byte, error) {
	b := builder.New(builder.WithSize(opts.width, opts.height))
	b.Clear().Home().Reset()

	fg := opts.fg % 8
	if opts.brightFg || opts.fg >= 8 {
		b.FgBright(fg)
	} else {
		b.Fg(fg)
	}
	if opts.bg >= 0 {
		bg := opts.bg % 8
		if opts.brightBg || opts.bg >= 8 {
			b.BgBright(bg)
		} else {
			b.Bg(bg)
		}
	}

	boxWidth := len([]rune(text)) + 4
	const boxHeight = 5

	startCol := 2
	if opts.center {
		startCol = (opts.width - boxWidth) / 2
	}
	startRow := (opts.height - boxHeight) / 2

	inner := boxWidth - 2
	b.Move(startRow, startCol).Text("╔" + strings.Repeat("═", inner) + "╗")
	b.Move(startRow+1, startCol).Text("║" + strings.Repeat(" ", inner) + "║")
	b.Move(startRow+2, startCol).Text("║ " + text + " ║")
	b.Move(startRow+3, startCol).Text("║" + strings.Repeat(" ", inner) + "║")
	b.Move(startRow+4, startCol).Text("╚" + strings.Repeat("═", inner) + "╝")
	b.Reset()

	var rec *sauce.Record
	if opts.title != "" || opts.author != "" || opts.group != "" {
		rec = &sauce.Record{Title: opts.title, Author: opts.author, Group: opts.group}
	}
	return b.Bytes(rec)
}
