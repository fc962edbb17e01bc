package insight

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
)

// Selection parameters of the premium insight algorithm.
const (
	CandidatePool     = 3
	StrengthThreshold = 65.0
	GrowthThreshold   = 50.0
	MaxStrengths      = 5
	MaxGrowthAreas    = 3
)

// Highlight is one strength or growth area. Category is empty for the simple
// product.
type Highlight struct {
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

// Bundle is the premium insight result.
type Bundle struct {
	OverallScore float64     `json:"overall_score"`
	Strengths    []Highlight `json:"strengths"`
	GrowthAreas  []Highlight `json:"growth_areas"`
}

// Rank orders scores by percentage, highest first. Ties keep catalog order.
func Rank(scores []model.CategoryScore) ([]model.CategoryScore, error) {
	order, err := catalog.CategoryOrder(types.ProductPremium)
	if err != nil {
		return nil, err
	}
	for _, s := range scores {
		if _, ok := order[s.Category]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, s.Category)
		}
	}

	ranked := append([]model.CategoryScore(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Percentage != ranked[j].Percentage {
			return ranked[i].Percentage > ranked[j].Percentage
		}
		return order[ranked[i].Category] < order[ranked[j].Category]
	})
	return ranked, nil
}

// Premium derives insights from present category scores.
//
// The top CandidatePool ranked categories are strength candidates and the
// bottom CandidatePool are growth candidates. With fewer than twice the pool
// size present the two sets overlap; the descending scan assigns a category
// to the first list it qualifies for, so no category lands in both.
// An empty input yields a zero overall score and empty lists.
func Premium(scores []model.CategoryScore) (Bundle, error) {
	ranked, err := Rank(scores)
	if err != nil {
		return Bundle{}, err
	}
	meta, err := catalog.CategoryMetadata(types.ProductPremium)
	if err != nil {
		return Bundle{}, err
	}

	b := Bundle{Strengths: []Highlight{}, GrowthAreas: []Highlight{}}
	if len(ranked) == 0 {
		return b, nil
	}

	pool := min(CandidatePool, len(ranked))
	bottomStart := len(ranked) - pool
	for i, s := range ranked {
		c := meta[s.Category]
		switch {
		case i < pool && s.Percentage >= StrengthThreshold:
			if len(b.Strengths) < MaxStrengths {
				b.Strengths = append(b.Strengths, Highlight{
					Category: s.Category,
					Text:     fmt.Sprintf("Strong %s - %s", c.Name, c.Description),
				})
			}
		case i >= bottomStart && s.Percentage < GrowthThreshold:
			if len(b.GrowthAreas) < MaxGrowthAreas {
				b.GrowthAreas = append(b.GrowthAreas, Highlight{
					Category: s.Category,
					Text:     fmt.Sprintf("%s development - %s", c.Name, c.Description),
				})
			}
		}
	}

	// Summation order changes the last bit of the mean, so sum in catalog order.
	order, err := catalog.CategoryOrder(types.ProductPremium)
	if err != nil {
		return Bundle{}, err
	}
	byCatalog := append([]model.CategoryScore(nil), scores...)
	sort.SliceStable(byCatalog, func(i, j int) bool {
		return order[byCatalog[i].Category] < order[byCatalog[j].Category]
	})
	total := lo.Sum(lo.Map(byCatalog, func(s model.CategoryScore, _ int) float64 { return s.Percentage }))
	b.OverallScore = scoring.Round1(total / float64(len(byCatalog)))
	return b, nil
}
