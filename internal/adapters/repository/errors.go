package repository

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotFound      = errors.New("report not found")
	ErrAlreadyExists = errors.New("report already exists")
	ErrFull          = errors.New("report store full")
	ErrInvalidID     = errors.New("empty attempt id")
)
