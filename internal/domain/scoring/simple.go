package scoring

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/types"
)

// Tier is the simple product's category for a spike factor.
type Tier string

// Tiers, highest first.
const (
	TierHigh       Tier = "High Spike Factor"
	TierModerate   Tier = "Moderate Spike Factor"
	TierDeveloping Tier = "Developing Spike Factor"
)

// Tier lower bounds (inclusive).
const (
	highTierFloor     = 80.0
	moderateTierFloor = 60.0
)

// TierFor buckets a spike factor. Bounds are inclusive at the bottom:
// 80.0 is High, 60.0 is Moderate.
func TierFor(spike float64) Tier {
	switch {
	case spike >= highTierFloor:
		return TierHigh
	case spike >= moderateTierFloor:
		return TierModerate
	default:
		return TierDeveloping
	}
}

// SimpleResult is the outcome of scoring a simple assessment.
type SimpleResult struct {
	SpikeFactor float64 `json:"spike_factor"`
	Tier        Tier    `json:"tier"`
	Total       int     `json:"total"`
	MaxPossible int     `json:"max_possible"`
}

// SpikeFactor scores a complete simple answer set. Exactly one answer per
// catalog question is required; the simple product never accepts revisions.
func SpikeFactor(answers []model.Answer) (SimpleResult, error) {
	want, err := catalog.Len(types.ProductSimple)
	if err != nil {
		return SimpleResult{}, err
	}
	if len(answers) != want {
		return SimpleResult{}, fmt.Errorf("%w: got %d answers, want %d", ErrIncompleteAssessment, len(answers), want)
	}

	seen := make(map[int]struct{}, want)
	for _, a := range answers {
		if _, ok, _ := catalog.Lookup(types.ProductSimple, a.QuestionID); !ok {
			return SimpleResult{}, fmt.Errorf("%w: question %d is not in the catalog", ErrIncompleteAssessment, a.QuestionID)
		}
		if _, dup := seen[a.QuestionID]; dup {
			return SimpleResult{}, fmt.Errorf("%w: question %d answered twice", ErrIncompleteAssessment, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}

	total := lo.Sum(lo.Map(answers, func(a model.Answer, _ int) int { return Normalize(a.Raw) }))
	spike := percentage(total, len(answers))

	return SimpleResult{
		SpikeFactor: spike,
		Tier:        TierFor(spike),
		Total:       total,
		MaxPossible: len(answers) * catalog.ScaleMax,
	}, nil
}
