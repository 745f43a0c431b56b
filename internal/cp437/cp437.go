// Package cp437 converts between code page 437 bytes and UTF-8 strings.
//
// CP437 is the original IBM PC character set every BBS art file uses: one
// byte per cell, with the box-drawing and shading characters at 0xB0-0xDF.
// Conversion never fails; unmappable input is substituted instead.
package cp437

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is the byte written by Encode for runes with no CP437 mapping.
const Replacement = '?'

// Decode converts CP437 bytes to a UTF-8 string. Every byte maps to exactly
// one rune; a byte the table cannot map decodes to U+FFFD rather than
// aborting the decode.
func Decode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(charmap.CodePage437.DecodeByte(c))
	}
	return b.String()
}

// Encode converts a string to CP437 bytes. Runes outside the character set
// become Replacement, matching the fail-soft policy of Decode.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			b = Replacement
		}
		out = append(out, b)
	}
	return out
}
