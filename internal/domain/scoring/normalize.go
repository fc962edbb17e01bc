// Package scoring turns answered questions into scores for both products.
package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/spikefactor/internal/domain/catalog"
)

// NeutralValue is what free text without a recognised phrase normalizes to.
const NeutralValue = 3

// phrase order matters: each strongly-variant precedes its base form, and
// "disagree" precedes "agree" because the latter is a substring of it.
var phrases = []struct {
	text  string
	value int
}{
	{"strongly disagree", 1},
	{"strongly agree", 5},
	{"disagree", 2},
	{"agree", 4},
	{"neutral", 3},
}

// Normalize maps a simple-product answer to a Likert value. Bare digits
// "1".."5" are taken verbatim, otherwise the first contained phrase wins.
// Anything else yields NeutralValue.
func Normalize(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := likertDigit(s); ok {
		return v
	}
	for _, p := range phrases {
		if strings.Contains(s, p.text) {
			return p.value
		}
	}
	return NeutralValue
}

func likertDigit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0'+catalog.ScaleMin || s[0] > '0'+catalog.ScaleMax {
		return 0, false
	}
	return int(s[0] - '0'), true
}

// ParseLikert interprets a stored premium answer as an integer in [1,5].
func ParseLikert(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAnswer, raw)
	}
	if v < catalog.ScaleMin || v > catalog.ScaleMax {
		return 0, fmt.Errorf("%w: %d outside [%d,%d]", ErrInvalidAnswer, v, catalog.ScaleMin, catalog.ScaleMax)
	}
	return v, nil
}

// Reverse inverts a Likert value on the 1-5 scale.
func Reverse(v int) int {
	return catalog.ScaleMin + catalog.ScaleMax - v
}

// Round1 rounds x to one decimal place. The exact binary value of x is
// rounded, so 26.65 (stored just below) yields 26.6 and exact halves go to
// the even digit.
func Round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}

// percentage is round(raw / (count*5) * 100, 1).
func percentage(raw, count int) float64 {
	return Round1(float64(raw) / float64(count*catalog.ScaleMax) * 100)
}
