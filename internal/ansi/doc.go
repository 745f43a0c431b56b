// Package ansi implements the escape-sequence core for BBS-style ANSI art:
// a tokenizer that classifies control sequences, a safety filter that strips
// sequences capable of escaping the display area, and the iCE color
// transform that rewrites blink-encoded bright backgrounds.
//
// This is deliberately not a VT/DEC terminal emulator. Only the sequence
// classes that appear in BBS art are recognized; everything else is either
// passed through (unsafe mode) or dropped (safe mode).
package ansi
