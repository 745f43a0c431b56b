package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bkrabach/ansiterm/internal/analyze"
	"github.com/bkrabach/ansiterm/internal/sauce"
)

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ansiterm info <files...>\n")
	}
	fs.Parse(args) //nolint:errcheck // ExitOnError

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 2
	}

	status := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
			continue
		}

		result := analyze.Bytes(data)
		fmt.Printf("\nFile: %s\n", path)
		fmt.Printf("  SAUCE: %s\n", yesNo(result.HasSAUCE))
		fmt.Printf("  iCE colors: %s\n", yesNo(result.UsesICE))
		fmt.Printf("  Cursor positioning: %s\n", yesNo(result.HasCursorPositioning))
		fmt.Printf("  Estimated size: %dx%d\n", result.EstCols, result.EstRows)
		fmt.Printf("  Suggested size: %dx%d\n", result.SuggestedWidth, result.SuggestedHeight)
	}
	return status
}

func runStrip(args []string) int {
	fs := flag.NewFlagSet("strip", flag.ExitOnError)
	output := fs.String("o", "", "Output file (default: overwrite input)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ansiterm strip [-o output] <file>\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	clean := sauce.Strip(data)
	if len(clean) == len(data) {
		fmt.Fprintf(os.Stderr, "No SAUCE record in %s\n", path)
		return 0
	}

	dst := *output
	if dst == "" {
		dst = path
	}
	if err := os.WriteFile(dst, clean, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Stripped %d bytes of metadata: %s\n", len(data)-len(clean), dst)
	return 0
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
