// Package main is the entry point for the ansiterm art tool.
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "view":
		return runView(args[1:])
	case "info":
		return runInfo(args[1:])
	case "make":
		return runMake(args[1:])
	case "strip":
		return runStrip(args[1:])
	case "version", "-version", "--version":
		fmt.Printf("ansiterm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "ansiterm - BBS-style ANSI art viewer and generator\n\n")
	fmt.Fprintf(os.Stderr, "Usage: ansiterm <command> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  view    Render .ANS files in the terminal\n")
	fmt.Fprintf(os.Stderr, "  info    Show file analysis (size, iCE colors, SAUCE)\n")
	fmt.Fprintf(os.Stderr, "  make    Generate a simple ANSI art banner\n")
	fmt.Fprintf(os.Stderr, "  strip   Remove SAUCE metadata from a file\n")
	fmt.Fprintf(os.Stderr, "  version Show version information\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  ansiterm view banner.ans\n")
	fmt.Fprintf(os.Stderr, "  ansiterm view -no-ice artpack/*.ans\n")
	fmt.Fprintf(os.Stderr, "  ansiterm info banner.ans\n")
	fmt.Fprintf(os.Stderr, "  ansiterm make -text \"MY BBS\" -fg 15 -bg 4 -o banner.ans\n")
}
