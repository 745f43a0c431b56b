// Package render composes the decode pipeline and owns terminal session
// state for interactive display.
//
// Prepare turns raw art bytes into sanitized text: SAUCE strip, CP437
// decode, iCE color mapping, safety filter, in that order. Session wraps
// the terminal state an art viewer needs (alternate screen, wrap, cursor
// visibility) and always restores it on Close, so a rendering failure never
// leaves the terminal trashed.
package render
