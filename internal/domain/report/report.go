// Package report assembles scores, insights and recommendations into the
// immutable payload handed to renderers and stores.
package report

import (
	"time"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/insight"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
)

// CategoryResult is one scored category with everything a renderer needs.
type CategoryResult struct {
	Category      string  `json:"category"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	RawScore      int     `json:"raw_score"`
	MaxPossible   int     `json:"max_possible"`
	AnsweredCount int     `json:"answered_count"`
	Percentage    float64 `json:"percentage"`
	Interpretation
}

// Report is the structured result of one completed attempt. Score is the
// spike factor for the simple product and the overall score for premium.
type Report struct {
	ID              string              `json:"id"`
	Product         types.Product       `json:"product"`
	Score           float64             `json:"score"`
	Tier            scoring.Tier        `json:"tier,omitempty"`
	Total           int                 `json:"total,omitempty"`
	MaxPossible     int                 `json:"max_possible,omitempty"`
	Categories      []CategoryResult    `json:"categories,omitempty"`
	Strengths       []insight.Highlight `json:"strengths"`
	GrowthAreas     []insight.Highlight `json:"growth_areas"`
	Recommendations []string            `json:"recommendations"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// ComposeSimple builds the report of a scored simple attempt.
func ComposeSimple(res scoring.SimpleResult, answers []model.Answer, at time.Time) Report {
	profile := insight.ForTier(res.Tier)
	toHighlight := func(s string, _ int) insight.Highlight { return insight.Highlight{Text: s} }

	return Report{
		ID:              Fingerprint(types.ProductSimple, answers),
		Product:         types.ProductSimple,
		Score:           res.SpikeFactor,
		Tier:            res.Tier,
		Total:           res.Total,
		MaxPossible:     res.MaxPossible,
		Strengths:       lo.Map(profile.Strengths, toHighlight),
		GrowthAreas:     lo.Map(profile.GrowthAreas, toHighlight),
		Recommendations: profile.Recommendations,
		GeneratedAt:     at.UTC(),
	}
}

// ComposePremium builds the report of a scored premium attempt. resolved is
// the answer set after resubmissions were collapsed; categories appear in
// catalog order.
func ComposePremium(scores []model.CategoryScore, bundle insight.Bundle, recs []string, resolved []model.Answer, at time.Time) (Report, error) {
	meta, err := catalog.CategoryMetadata(types.ProductPremium)
	if err != nil {
		return Report{}, err
	}

	categories := lo.Map(scores, func(s model.CategoryScore, _ int) CategoryResult {
		c := meta[s.Category]
		return CategoryResult{
			Category:       s.Category,
			Name:           c.Name,
			Description:    c.Description,
			RawScore:       s.RawScore,
			MaxPossible:    s.MaxPossible,
			AnsweredCount:  s.AnsweredCount,
			Percentage:     s.Percentage,
			Interpretation: Interpret(s.Percentage),
		}
	})

	return Report{
		ID:              Fingerprint(types.ProductPremium, resolved),
		Product:         types.ProductPremium,
		Score:           bundle.OverallScore,
		Categories:      categories,
		Strengths:       nonNil(bundle.Strengths),
		GrowthAreas:     nonNil(bundle.GrowthAreas),
		Recommendations: nonNil(recs),
		GeneratedAt:     at.UTC(),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
