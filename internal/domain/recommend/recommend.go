// Package recommend evaluates the premium advice rule table.
package recommend

import (
	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/scoring"
)

// MaxRecommendations caps the advice list.
const MaxRecommendations = 6

// Comparator decides how a rule compares a percentage to its threshold.
type Comparator string

// Supported comparators.
const (
	Below Comparator = "<"
	Above Comparator = ">"
)

// Rule fires its advice when the category's percentage satisfies
// Comparator against Threshold.
type Rule struct {
	Category   string     `json:"category"`
	Comparator Comparator `json:"comparator"`
	Threshold  float64    `json:"threshold"`
	Advice     string     `json:"advice"`
}

// Matches reports whether pct triggers the rule.
func (r Rule) Matches(pct float64) bool {
	switch r.Comparator {
	case Below:
		return pct < r.Threshold
	case Above:
		return pct > r.Threshold
	default:
		return false
	}
}

// rule order is output order
var rules = []Rule{
	{catalog.CategoryOpenness, Below, 50, "Seek out new experiences and learning opportunities to develop intellectual curiosity"},
	{catalog.CategoryConscientiousness, Below, 50, "Develop better planning and organizational systems to improve task completion"},
	{catalog.CategoryExtraversion, Below, 50, "Practice engaging in social situations to build confidence in group settings"},
	{catalog.CategoryAgreeableness, Below, 50, "Work on active listening and empathy skills to improve relationships"},
	// a high neuroticism score means low emotional stability
	{catalog.CategoryNeuroticism, Above, 65, "Develop stress management and emotional regulation techniques"},
	{catalog.CategoryEmotionalIntelligence, Below, 60, "Practice mindfulness and emotional awareness to enhance EQ"},
	{catalog.CategoryLeadership, Below, 60, "Seek leadership opportunities and mentorship to develop influence skills"},
	{catalog.CategoryResilience, Below, 60, "Build resilience through challenging experiences and reflection"},
	{catalog.CategoryDecisionMaking, Below, 60, "Practice structured decision-making frameworks and seek diverse perspectives"},
	{catalog.CategoryInnovation, Below, 60, "Engage in creative activities and cross-functional collaboration"},
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// For returns the advice of every rule triggered by a present category, in
// rule order, deduplicated and capped at MaxRecommendations. Categories
// missing from scores never trigger.
func For(scores []model.CategoryScore) []string {
	triggered := lo.FilterMap(rules, func(r Rule, _ int) (string, bool) {
		s, ok := scoring.Find(scores, r.Category)
		if !ok {
			return "", false
		}
		return r.Advice, r.Matches(s.Percentage)
	})
	out := lo.Uniq(triggered)
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
