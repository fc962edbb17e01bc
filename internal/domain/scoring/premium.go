package scoring

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/types"
)

type scoredItem struct {
	category string
	value    int
}

// CategoryScores scores a premium answer set per category, in catalog order.
// Resubmissions are resolved first (see Resolve). Categories without a single
// resolved answer are omitted: absent means "not assessed", never zero.
func CategoryScores(answers []model.Answer) ([]model.CategoryScore, error) {
	resolved, _ := Resolve(answers)
	return ScoreResolved(resolved)
}

// ScoreResolved scores answers that are already resolved to one per question.
func ScoreResolved(resolved []model.Answer) ([]model.CategoryScore, error) {
	items := make([]scoredItem, 0, len(resolved))
	for _, a := range resolved {
		q, ok, err := catalog.Lookup(types.ProductPremium, a.QuestionID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: question %d is not in the premium catalog", ErrInvalidAnswer, a.QuestionID)
		}
		v, err := ParseLikert(a.Raw)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", a.QuestionID, err)
		}
		if q.Reverse {
			v = Reverse(v)
		}
		items = append(items, scoredItem{category: q.Category, value: v})
	}

	byCategory := lo.GroupBy(items, func(it scoredItem) string { return it.category })

	cats, err := catalog.Categories(types.ProductPremium)
	if err != nil {
		return nil, err
	}
	scores := make([]model.CategoryScore, 0, len(byCategory))
	for _, c := range cats {
		group, ok := byCategory[c.ID]
		if !ok || len(group) == 0 {
			continue
		}
		raw := lo.Sum(lo.Map(group, func(it scoredItem, _ int) int { return it.value }))
		scores = append(scores, model.CategoryScore{
			Category:      c.ID,
			RawScore:      raw,
			MaxPossible:   len(group) * catalog.ScaleMax,
			Percentage:    percentage(raw, len(group)),
			AnsweredCount: len(group),
		})
	}
	return scores, nil
}

// Find returns the score of category, if present.
func Find(scores []model.CategoryScore, category string) (model.CategoryScore, bool) {
	return lo.Find(scores, func(s model.CategoryScore) bool { return s.Category == category })
}
