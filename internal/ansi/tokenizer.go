package ansi

import "strings"

const (
	esc = 0x1b
	bel = 0x07
)

// isParamByte reports whether b may appear in a CSI parameter string.
func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';' || b == '?'
}

// isSequenceStart reports whether position i begins a recognized escape
// sequence. Only the CSI and (in safe mode) OSC introducers count; any
// other escape is ordinary text.
func isSequenceStart(text string, i int, safe bool) bool {
	if text[i] != esc || i+1 >= len(text) {
		return false
	}
	return text[i+1] == '[' || (safe && text[i+1] == ']')
}

// Tokenize scans text left to right and splits it into classified tokens.
// The scan is single-pass and total: every input character lands in exactly
// one token, so reassembling the contents reproduces the input byte for
// byte.
//
// With safe enabled, sequences that could affect the terminal outside the
// display area (OSC, unrecognized CSI) are classified KindDropped instead
// of KindOther; nothing is removed at this stage. Truncated sequences at
// end of input become a single trailing token rather than an error.
func Tokenize(text string, safe bool) []Token {
	var tokens []Token

	i := 0
	for i < len(text) {
		if isSequenceStart(text, i, safe) {
			if text[i+1] == '[' {
				j := i + 2
				for j < len(text) && isParamByte(text[j]) {
					j++
				}
				if j >= len(text) {
					// Input ends mid-sequence: the tail is one token.
					kind := KindOther
					if safe {
						kind = KindDropped
					}
					return append(tokens, Token{kind, text[i:]})
				}
				seq := text[i : j+1]
				tokens = append(tokens, Token{classifyCSI(text[j], seq, safe), seq})
				i = j + 1
				continue
			}

			// OSC can retitle the terminal, write the clipboard and worse.
			// Consume through the terminator (BEL or ESC \) and mark the
			// whole sequence for removal.
			tok, next := scanOSC(text, i)
			tokens = append(tokens, tok)
			i = next
			continue
		}

		// Ordinary text run up to the next sequence start. Escapes that do
		// not introduce a recognized sequence ride along as text.
		j := i + 1
		for j < len(text) && !isSequenceStart(text, j, safe) {
			j++
		}
		tokens = append(tokens, Token{KindText, text[i:j]})
		i = j
	}

	return tokens
}

// classifyCSI maps a CSI final byte to a token kind.
func classifyCSI(final byte, seq string, safe bool) Kind {
	switch final {
	case 'm':
		return KindSGR
	case 'H', 'f':
		return KindCursorPosition
	case 'A', 'B', 'C', 'D':
		return KindCursorMove
	case 'J':
		return KindEraseDisplay
	case 'K':
		return KindEraseLine
	case 's', 'u':
		return KindCursorSave
	case 'h', 'l':
		if strings.IndexByte(seq, '?') != -1 {
			return KindDECPrivate
		}
	}
	if safe {
		return KindDropped
	}
	return KindOther
}

// scanOSC consumes an OSC sequence starting at the ESC at position i and
// returns the dropped token plus the index just past its terminator. When
// no terminator exists before end of input the remainder is the token.
func scanOSC(text string, i int) (Token, int) {
	j := i + 2
	for j < len(text) {
		if text[j] == bel {
			return Token{KindDropped, text[i : j+1]}, j + 1
		}
		if text[j] == esc && j+1 < len(text) && text[j+1] == '\\' {
			return Token{KindDropped, text[i : j+2]}, j + 2
		}
		j++
	}
	return Token{KindDropped, text[i:]}, len(text)
}
