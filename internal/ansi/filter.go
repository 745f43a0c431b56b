package ansi

import "strings"

// FilterSafe returns text with every dangerous escape sequence removed.
// Accepted sequences pass through verbatim and in order, so the result is
// the original text minus the dropped spans. The transform is pure and
// idempotent; it is the sanctioned way to sanitize untrusted art before it
// reaches a real terminal.
func FilterSafe(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range Tokenize(text, true) {
		if tok.Kind != KindDropped {
			b.WriteString(tok.Content)
		}
	}
	return b.String()
}
