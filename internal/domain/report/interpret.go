package report

import "github.com/okian/spikefactor/internal/domain/types"

// Interpretation is the display band of a category percentage.
type Interpretation struct {
	Level       types.Level `json:"level"`
	Description string      `json:"level_description"`
	Color       types.Color `json:"color"`
}

var bands = []struct {
	floor       float64
	level       types.Level
	description string
}{
	{80, types.LevelVeryHigh, "Exceptionally strong in this area"},
	{65, types.LevelHigh, "Strong capability in this area"},
	{50, types.LevelModerate, "Balanced approach in this area"},
	{35, types.LevelLow, "Area for potential development"},
}

// Interpret maps a percentage to its band. Floors are inclusive.
func Interpret(pct float64) Interpretation {
	in := Interpretation{
		Level:       types.LevelVeryLow,
		Description: "Significant opportunity for growth",
		Color:       ColorFor(pct),
	}
	for _, b := range bands {
		if pct >= b.floor {
			in.Level, in.Description = b.level, b.description
			break
		}
	}
	return in
}

// ColorFor returns the display colour of a percentage.
func ColorFor(pct float64) types.Color {
	switch {
	case pct >= 70:
		return types.ColorSuccess
	case pct >= 50:
		return types.ColorWarning
	default:
		return types.ColorDanger
	}
}
