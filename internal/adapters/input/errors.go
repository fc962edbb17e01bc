package input

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidInput means a document is not valid JSON or does not match
	// its schema.
	ErrInvalidInput = errors.New("invalid input")
)
