package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bkrabach/ansiterm/internal/analyze"
	"github.com/bkrabach/ansiterm/internal/config"
	"github.com/bkrabach/ansiterm/internal/render"
)

// viewOptions collects the effective settings for the view command after
// merging config file defaults and flags.
type viewOptions struct {
	ice       render.IceMode
	unsafe    bool
	altScreen bool
	watch     bool
}

func runView(args []string) int {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	noIce := fs.Bool("no-ice", false, "Disable iCE color mapping")
	noSafe := fs.Bool("no-safe", false, "Disable safety filtering (allow all sequences)")
	noAlt := fs.Bool("no-alt-screen", false, "Render to the main screen (art scrolls)")
	watch := fs.Bool("watch", false, "Re-render when the file changes (single file, main screen)")
	configPath := fs.String("config", config.DefaultPath(), "Path to configuration file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ansiterm view [options] <files...>\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args) //nolint:errcheck // ExitOnError

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	opts, err := mergeViewOptions(cfg, *noIce, *noSafe, *noAlt, *watch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if opts.watch {
		if len(files) > 1 {
			fmt.Fprintln(os.Stderr, "Error: -watch takes exactly one file")
			return 2
		}
		return runViewWatch(files[0], opts)
	}

	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		last := i == len(files)-1
		if err := viewOne(data, opts, last); err != nil {
			if errors.Is(err, render.ErrInterrupted) {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", path, err)
		}
	}
	return 0
}

// mergeViewOptions applies config file defaults, then the negative flags.
func mergeViewOptions(cfg config.Config, noIce, noSafe, noAlt, watch bool) (viewOptions, error) {
	ice, err := render.ParseIceMode(cfg.Ice)
	if err != nil {
		return viewOptions{}, err
	}
	if noIce {
		ice = render.IceOff
	}

	opts := viewOptions{
		ice:       ice,
		unsafe:    noSafe || !cfg.Safe,
		altScreen: cfg.AltScreen && !noAlt,
		watch:     watch,
	}
	// Watch mode owns the main screen; an alt-screen flip per change would
	// flicker the art away.
	if opts.watch {
		opts.altScreen = false
	}
	return opts, nil
}

// viewOne renders one file's bytes with full terminal state management.
func viewOne(data []byte, opts viewOptions, last bool) error {
	text := render.Prepare(data, render.Options{Ice: opts.ice, Unsafe: opts.unsafe})
	warnIfTooWide(data)

	interactive := render.IsTerminal(os.Stdout)
	if !interactive || !opts.altScreen {
		session := render.NewSession(os.Stdout, render.SessionOptions{})
		if err := session.Write(text + "\n"); err != nil {
			return err
		}
		if interactive && !last {
			fmt.Println("\nPress Enter for next file (Ctrl+C to quit)...")
			return render.WaitKey(os.Stdin)
		}
		return nil
	}

	session := render.NewSession(os.Stdout, render.DefaultSessionOptions())
	if err := session.Enter(); err != nil {
		return err
	}
	defer session.Close() //nolint:errcheck // restore is best effort

	if err := session.Write(text); err != nil {
		return err
	}
	prompt := "\n\nPress Enter for next file (Ctrl+C to quit)..."
	if last {
		prompt = "\n\nPress Enter to exit..."
	}
	if err := session.Write(prompt); err != nil {
		return err
	}
	return render.WaitKey(os.Stdin)
}

// runViewWatch re-renders the file on every change until interrupted.
func runViewWatch(path string, opts viewOptions) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := render.Watch(ctx, path, func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		text := render.Prepare(data, render.Options{Ice: opts.ice, Unsafe: opts.unsafe})
		session := render.NewSession(os.Stdout, render.SessionOptions{ClearFirst: true})
		if err := session.Enter(); err != nil {
			return err
		}
		if err := session.Write(text + "\n"); err != nil {
			return err
		}
		return session.Close()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// warnIfTooWide nudges the user when the art wants a wider terminal.
func warnIfTooWide(data []byte) {
	if !render.IsTerminal(os.Stdout) {
		return
	}
	result := analyze.Bytes(data)
	if w, _ := render.Size(os.Stdout); w > 0 && w < result.SuggestedWidth {
		fmt.Fprintf(os.Stderr, "Warning: art suggests %d columns, terminal has %d\n",
			result.SuggestedWidth, w)
	}
}
