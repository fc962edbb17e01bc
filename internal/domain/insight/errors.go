package insight

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownCategory means a score references a category the premium
	// catalog does not define.
	ErrUnknownCategory = errors.New("unknown category")
)
