// Package builder provides a fluent API for authoring ANSI art without
// writing escape sequences by hand.
//
// A Builder is an ordered buffer of text and sequence fragments plus a
// target size. Every method returns the builder for chaining; the buffer is
// only read, never mutated, when exported through String or Bytes.
package builder

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bkrabach/ansiterm/internal/cp437"
	"github.com/bkrabach/ansiterm/internal/sauce"
)

// Default canvas size for BBS art.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Builder accumulates ANSI art fragments.
type Builder struct {
	width  int
	height int
	buf    []string
	err    error
}

// Option configures a Builder.
type Option func(*Builder)

// WithSize sets the target canvas size. Non-positive values keep the
// defaults.
func WithSize(width, height int) Option {
	return func(b *Builder) {
		if width > 0 {
			b.width = width
		}
		if height > 0 {
			b.height = height
		}
	}
}

// New creates a Builder with an 80x25 canvas unless options say otherwise.
func New(opts ...Option) *Builder {
	b := &Builder{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Width returns the target width in columns.
func (b *Builder) Width() int { return b.width }

// Height returns the target height in rows.
func (b *Builder) Height() int { return b.height }

// Err returns the first caller error recorded by a chained call, or nil.
func (b *Builder) Err() error { return b.err }

// SGR appends a Select Graphic Rendition sequence with the given
// parameters (0=reset, 1=bold, 31=red foreground, ...).
func (b *Builder) SGR(params ...int) *Builder {
	strs := make([]string, len(params))
	for i, p := range params {
		strs[i] = strconv.Itoa(p)
	}
	b.buf = append(b.buf, "\x1b["+strings.Join(strs, ";")+"m")
	return b
}

// Move appends an absolute cursor position sequence (1-based row and
// column).
func (b *Builder) Move(row, col int) *Builder {
	b.buf = append(b.buf, fmt.Sprintf("\x1b[%d;%dH", row, col))
	return b
}

// Clear appends an erase-display sequence for the whole screen.
func (b *Builder) Clear() *Builder {
	b.buf = append(b.buf, "\x1b[2J")
	return b
}

// Home appends a cursor-home sequence (position 1,1).
func (b *Builder) Home() *Builder {
	b.buf = append(b.buf, "\x1b[H")
	return b
}

// Fg sets a classic foreground color (0-7).
func (b *Builder) Fg(n int) *Builder { return b.SGR(30 + n) }

// FgBright sets a bright foreground color (0-7).
func (b *Builder) FgBright(n int) *Builder { return b.SGR(90 + n) }

// Bg sets a classic background color (0-7).
func (b *Builder) Bg(n int) *Builder { return b.SGR(40 + n) }

// BgBright sets a bright background color (0-7).
func (b *Builder) BgBright(n int) *Builder { return b.SGR(100 + n) }

// Reset clears all attributes.
func (b *Builder) Reset() *Builder { return b.SGR(0) }

// Bold enables bold.
func (b *Builder) Bold() *Builder { return b.SGR(1) }

// Dim enables dim.
func (b *Builder) Dim() *Builder { return b.SGR(2) }

// Text appends literal text. The string must be valid UTF-8; anything else
// is a caller error recorded on the builder and surfaced by Err and Bytes,
// and the fragment is not appended.
func (b *Builder) Text(s string) *Builder {
	if !utf8.ValidString(s) {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q", ErrInvalidText, s)
		}
		return b
	}
	b.buf = append(b.buf, s)
	return b
}

// CP437 appends raw CP437 bytes, decoded with the usual replacement policy.
func (b *Builder) CP437(data []byte) *Builder {
	b.buf = append(b.buf, cp437.Decode(data))
	return b
}

// Newline appends a line break.
func (b *Builder) Newline() *Builder {
	b.buf = append(b.buf, "\n")
	return b
}

// String exports the buffer as one text string.
func (b *Builder) String() string {
	return strings.Join(b.buf, "")
}

// Bytes exports the buffer as CP437 bytes. A non-nil rec appends a SAUCE
// record; its type bytes default to character/ANSI and its TInfo fields to
// the builder's canvas size when left zero. Any caller error recorded
// during building is returned instead of partial output.
func (b *Builder) Bytes(rec *sauce.Record) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	data := cp437.Encode(b.String())
	if rec == nil {
		return data, nil
	}

	r := *rec
	if r.DataType == 0 {
		r.DataType = sauce.DataTypeCharacter
	}
	if r.FileType == 0 {
		r.FileType = sauce.FileTypeANSI
	}
	if r.TInfo1 == 0 {
		r.TInfo1 = uint16(b.width)
	}
	if r.TInfo2 == 0 {
		r.TInfo2 = uint16(b.height)
	}
	return sauce.Append(data, r), nil
}
