// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/okian/spikefactor/internal/domain/types"
)

// Answer is one response to one catalog question.
type Answer struct {
	QuestionID  int       `json:"question_id"`
	Raw         string    `json:"answer"`       // free text ("strongly agree") or "1".."5"
	SubmittedAt time.Time `json:"submitted_at"` // resolves resubmissions, last write wins
}

// Attempt is a completed assessment attempt handed to the engine for
// report generation.
type Attempt struct {
	ID      string        `json:"id"`
	Product types.Product `json:"product"`
	Answers []Answer      `json:"answers"`
}

// CategoryScore is the aggregate of resolved answers in one category.
type CategoryScore struct {
	Category      string  `json:"category"`
	RawScore      int     `json:"raw_score"`
	MaxPossible   int     `json:"max_possible"`
	Percentage    float64 `json:"percentage"`
	AnsweredCount int     `json:"answered_count"`
}
