package render

import "errors"

// Errors returned by render operations.
var (
	// ErrBadIceMode indicates an unknown iCE mode name.
	ErrBadIceMode = errors.New("invalid ice mode")

	// ErrInterrupted indicates the user pressed Ctrl+C during a key wait.
	ErrInterrupted = errors.New("interrupted")

	// ErrSessionActive indicates Enter was called on an active session.
	ErrSessionActive = errors.New("session already active")
)
