package render

import (
	"fmt"

	"github.com/bkrabach/ansiterm/internal/ansi"
	"github.com/bkrabach/ansiterm/internal/cp437"
	"github.com/bkrabach/ansiterm/internal/sauce"
)

// IceMode selects how iCE colors are handled during Prepare.
type IceMode int

const (
	// IceAuto maps blink-encoded backgrounds when present.
	IceAuto IceMode = iota
	// IceOn always applies the mapping.
	IceOn
	// IceOff passes sequences through unchanged.
	IceOff
)

// String returns the mode name.
func (m IceMode) String() string {
	switch m {
	case IceAuto:
		return "auto"
	case IceOn:
		return "on"
	case IceOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseIceMode parses a mode name as it appears in config files and flags.
func ParseIceMode(s string) (IceMode, error) {
	switch s {
	case "auto", "":
		return IceAuto, nil
	case "on":
		return IceOn, nil
	case "off":
		return IceOff, nil
	default:
		return IceAuto, fmt.Errorf("%w: %q", ErrBadIceMode, s)
	}
}

// Options controls the Prepare pipeline.
type Options struct {
	// Ice selects iCE color handling.
	Ice IceMode
	// Unsafe disables the safety filter, letting every sequence through.
	Unsafe bool
}

// Prepare converts raw art bytes into text ready for a terminal: the SAUCE
// record is stripped, the bytes decoded as CP437, iCE colors mapped and the
// safety filter applied. The iCE transform runs before the filter; it only
// recognizes SGR sequences and must see them before anything is removed.
func Prepare(data []byte, opts Options) string {
	text := cp437.Decode(sauce.Strip(data))

	// IceFix is already a per-sequence no-op without blink, so auto and on
	// take the same path.
	if opts.Ice != IceOff {
		text = ansi.IceFix(text)
	}

	if !opts.Unsafe {
		text = ansi.FilterSafe(text)
	}
	return text
}
