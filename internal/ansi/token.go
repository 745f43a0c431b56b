package ansi

// Kind classifies a token produced by Tokenize.
type Kind int

const (
	// KindText is a run of ordinary characters with no escape sequence.
	KindText Kind = iota
	// KindSGR is a Select Graphic Rendition sequence (colors, attributes).
	KindSGR
	// KindCursorPosition is an absolute cursor position sequence (CUP/HVP).
	KindCursorPosition
	// KindCursorMove is a relative cursor movement sequence (up/down/forward/back).
	KindCursorMove
	// KindCursorSave is a cursor save or restore sequence.
	KindCursorSave
	// KindEraseDisplay is an erase-in-display sequence.
	KindEraseDisplay
	// KindEraseLine is an erase-in-line sequence.
	KindEraseLine
	// KindDECPrivate is a DEC private mode set/reset sequence.
	KindDECPrivate
	// KindOther is an unrecognized CSI sequence kept in unsafe mode.
	KindOther
	// KindDropped is a sequence the safety filter must remove.
	KindDropped
)

// String returns the token kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSGR:
		return "sgr"
	case KindCursorPosition:
		return "cup"
	case KindCursorMove:
		return "cursor_move"
	case KindCursorSave:
		return "cursor_save"
	case KindEraseDisplay:
		return "ed"
	case KindEraseLine:
		return "el"
	case KindDECPrivate:
		return "dec"
	case KindOther:
		return "other"
	case KindDropped:
		return "drop"
	default:
		return "unknown"
	}
}

// Token is one classified span of input. Content always holds the exact
// input characters for the span, so concatenating the contents of every
// token in order reconstructs the original text.
type Token struct {
	Kind    Kind
	Content string
}
