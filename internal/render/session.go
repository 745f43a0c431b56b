package render

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal state sequences. These go out verbatim; the display path never
// routes its own control sequences through the safety filter.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	disableWrap    = "\x1b[?7l"
	enableWrap     = "\x1b[?7h"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearHome      = "\x1b[2J\x1b[H"
	resetAttrs     = "\x1b[0m"
)

// SessionOptions controls which terminal state a Session takes over.
type SessionOptions struct {
	// AltScreen renders into the alternate screen buffer so the art never
	// scrolls the user's shell history.
	AltScreen bool
	// DisableWrap turns off line wrapping for the session.
	DisableWrap bool
	// HideCursor hides the cursor for the session.
	HideCursor bool
	// ClearFirst clears the screen and homes the cursor before rendering.
	ClearFirst bool
}

// DefaultSessionOptions is the full BBS-art setup: alternate screen, no
// wrap, hidden cursor, cleared display.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		AltScreen:   true,
		DisableWrap: true,
		HideCursor:  true,
		ClearFirst:  true,
	}
}

// Session owns terminal state while art is on screen. Every state change
// made by Enter is undone by Close, on every exit path.
type Session struct {
	out    io.Writer
	opts   SessionOptions
	active bool
}

// NewSession creates a session writing to out.
func NewSession(out io.Writer, opts SessionOptions) *Session {
	return &Session{out: out, opts: opts}
}

// Enter applies the configured terminal state.
func (s *Session) Enter() error {
	if s.active {
		return ErrSessionActive
	}

	var setup string
	if s.opts.AltScreen {
		setup = enterAltScreen
	}
	if s.opts.DisableWrap {
		setup += disableWrap
	}
	if s.opts.HideCursor {
		setup += hideCursor
	}
	if s.opts.ClearFirst || s.opts.AltScreen {
		setup += clearHome
	}

	if _, err := io.WriteString(s.out, setup); err != nil {
		return fmt.Errorf("entering session: %w", err)
	}
	s.active = true
	return nil
}

// Write sends prepared text to the terminal.
func (s *Session) Write(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("writing art: %w", err)
	}
	return nil
}

// Close restores every piece of terminal state Enter changed. It is safe to
// call on an inactive session.
func (s *Session) Close() error {
	if !s.active {
		return nil
	}
	s.active = false

	restore := resetAttrs
	if s.opts.HideCursor {
		restore += showCursor
	}
	if s.opts.DisableWrap {
		restore += enableWrap
	}
	if s.opts.AltScreen {
		restore += leaveAltScreen
	}

	if _, err := io.WriteString(s.out, restore); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the terminal dimensions for f, or zeros when f is not a
// terminal.
func Size(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// WaitKey switches f to raw mode and blocks until Enter is pressed. Ctrl+C
// reports ErrInterrupted so callers can stop a multi-file loop. On a
// non-terminal it returns immediately.
func WaitKey(f *os.File) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, old) //nolint:errcheck // best effort on the way out

	buf := make([]byte, 1)
	for {
		if _, err := f.Read(buf); err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		switch buf[0] {
		case '\r', '\n':
			return nil
		case 0x03: // Ctrl+C
			return ErrInterrupted
		}
	}
}
