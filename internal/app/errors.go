package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotStarted       = errors.New("service not started")
	ErrDuplicateAttempt = errors.New("attempt already submitted")
	ErrInvalidAttempt   = errors.New("invalid attempt")
)
