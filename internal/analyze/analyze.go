// Package analyze estimates display properties of ANSI art: dimensions,
// iCE color usage, cursor addressing and metadata presence. Everything here
// is heuristic; the results are hints for choosing a terminal size, not
// guarantees.
package analyze

import (
	"regexp"
	"unicode/utf8"

	"github.com/bkrabach/ansiterm/internal/cp437"
	"github.com/bkrabach/ansiterm/internal/sauce"
)

var (
	// icePattern matches an SGR sequence carrying blink together with a
	// classic background color, the iCE encoding for bright backgrounds.
	icePattern = regexp.MustCompile(`\x1b\[[^m]*5[^m]*4[0-7]m`)

	// cupPattern matches an absolute cursor position sequence.
	cupPattern = regexp.MustCompile(`\x1b\[[0-9]+;[0-9]+[Hf]`)
)

// Result is a read-only snapshot of one analysis pass.
type Result struct {
	// HasSAUCE reports a trailing SAUCE record on the raw bytes.
	HasSAUCE bool
	// UsesICE reports blink-encoded bright backgrounds.
	UsesICE bool
	// EstCols and EstRows estimate the art's visible dimensions.
	EstCols int
	EstRows int
	// HasCursorPositioning reports absolute cursor addressing.
	HasCursorPositioning bool
	// SuggestedWidth is 80 or 132 depending on the estimated columns.
	SuggestedWidth int
	// SuggestedHeight is 25, 50, or the exact row count for tall art.
	SuggestedHeight int
}

// Bytes analyzes raw art bytes: the SAUCE record is detected and stripped,
// the remainder decoded as CP437, and the text heuristics applied.
func Bytes(data []byte) Result {
	r := Text(cp437.Decode(sauce.Strip(data)))
	r.HasSAUCE = sauce.Has(data)
	return r
}

// Text analyzes decoded, metadata-free text. Columns are counted one cell
// per character (CP437 is single width); escape sequences are skipped with
// the same scan the tokenizer uses, a carriage return resets the column and
// a newline ends the line.
func Text(text string) Result {
	var (
		cols, rows   int
		col, lineMax int
	)

	rows = 1
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			if col > lineMax {
				lineMax = col
			}
			if lineMax > cols {
				cols = lineMax
			}
			col, lineMax = 0, 0
			rows++
			i++
		case '\r':
			if col > lineMax {
				lineMax = col
			}
			col = 0
			i++
		case esc:
			i = skipEscape(text, i)
		default:
			// One cell per rune: box-drawing characters decode to
			// multi-byte UTF-8 but occupy a single column.
			_, size := utf8.DecodeRuneInString(text[i:])
			col++
			i += size
		}
	}
	if col > lineMax {
		lineMax = col
	}
	if lineMax > cols {
		cols = lineMax
	}

	r := Result{
		UsesICE:              icePattern.MatchString(text),
		HasCursorPositioning: cupPattern.MatchString(text),
		EstCols:              cols,
		EstRows:              rows,
	}
	r.SuggestedWidth, r.SuggestedHeight = suggest(cols, rows)
	return r
}

const esc = 0x1b

// skipEscape advances past the escape sequence starting at i without
// classifying it. A lone escape advances one position.
func skipEscape(text string, i int) int {
	j := i + 1
	if j < len(text) && text[j] == '[' {
		j++
		for j < len(text) && isParamByte(text[j]) {
			j++
		}
		if j < len(text) {
			j++ // final byte
		}
	}
	return j
}

func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';' || b == '?'
}

// suggest maps estimated dimensions to classic terminal sizes: 132 columns
// for wide art, 50 rows for art that outgrows a 25-row screen, and the
// exact row count for anything taller than 50.
func suggest(cols, rows int) (width, height int) {
	width = 80
	if cols > 100 {
		width = 132
	}

	height = 25
	switch {
	case rows > 50:
		height = rows
	case rows > 25:
		height = 50
	}
	return width, height
}
