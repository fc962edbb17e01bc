package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrIncompleteAssessment means a simple answer set does not cover the
	// catalog exactly once per question.
	ErrIncompleteAssessment = errors.New("incomplete assessment")
	// ErrInvalidAnswer means a premium answer is not an integer in [1,5] or
	// references a question outside the catalog.
	ErrInvalidAnswer = errors.New("invalid answer")
)
