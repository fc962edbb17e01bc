// Package insight derives strengths, growth areas and the overall score from
// scored answers.
package insight

import "github.com/okian/spikefactor/internal/domain/scoring"

// TierProfile is the fixed narrative attached to a simple tier.
type TierProfile struct {
	Strengths       []string `json:"strengths"`
	GrowthAreas     []string `json:"growth_areas"`
	Recommendations []string `json:"recommendations"`
}

var tierProfiles = map[scoring.Tier]TierProfile{
	scoring.TierHigh: {
		Strengths: []string{
			"Strong leadership potential",
			"High energy and motivation",
			"Excellent at handling challenges",
		},
		GrowthAreas: []string{
			"May benefit from patience in team settings",
			"Consider work-life balance",
		},
		Recommendations: []string{
			"Seek leadership roles",
			"Practice mindfulness techniques",
			"Mentor others in your field",
		},
	},
	scoring.TierModerate: {
		Strengths: []string{
			"Balanced approach to challenges",
			"Good team collaboration skills",
			"Steady performance under pressure",
		},
		GrowthAreas: []string{
			"Could push boundaries more",
			"Develop confidence in decision-making",
		},
		Recommendations: []string{
			"Take on stretch assignments",
			"Seek feedback regularly",
			"Build network of mentors",
		},
	},
	scoring.TierDeveloping: {
		Strengths: []string{
			"Thoughtful and deliberate approach",
			"Strong attention to detail",
			"Collaborative team member",
		},
		GrowthAreas: []string{
			"Build confidence in abilities",
			"Practice assertiveness",
			"Embrace calculated risks",
		},
		Recommendations: []string{
			"Start with small challenges",
			"Celebrate small wins",
			"Seek supportive environments",
		},
	},
}

// ForTier returns the narrative of tier. Unknown tiers fall back to the
// developing profile, matching TierFor's catch-all branch.
func ForTier(tier scoring.Tier) TierProfile {
	p, ok := tierProfiles[tier]
	if !ok {
		p = tierProfiles[scoring.TierDeveloping]
	}
	return TierProfile{
		Strengths:       append([]string(nil), p.Strengths...),
		GrowthAreas:     append([]string(nil), p.GrowthAreas...),
		Recommendations: append([]string(nil), p.Recommendations...),
	}
}
