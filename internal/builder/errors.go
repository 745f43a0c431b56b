package builder

import "errors"

// Errors returned by builder operations.
var (
	// ErrInvalidText indicates Text was called with invalid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")
)
