// Package aggregate sums per-line nutrition into recipe totals, per-serving
// values, macro percentages and dietary labels.
package aggregate

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cognicore/nutri/pkg/nutri/labels"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
)

// Line is anything that may carry scaled nutrition. ok is false for lines
// that did not resolve to a food.
type Line interface {
	Scaled() (facts nutrition.Facts, ok bool)
}

// Percentages are whole-number shares of calories. They are rounded
// independently and need not sum to 100.
type Percentages struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Result is the recipe-level summary.
type Result struct {
	Totals         nutrition.Facts `json:"totals"`
	PerServing     nutrition.Facts `json:"per_serving"`
	Servings       int             `json:"servings"`
	MatchedCount   int             `json:"matched_count"`
	UnmatchedCount int             `json:"unmatched_count"`
	Macros         Percentages     `json:"macros"`
	Labels         []labels.Label  `json:"labels"`
}

// Aggregate builds the summary for lines at the given serving count.
// servings below 1 is treated as 1. A nil classifier uses the default
// thresholds.
func Aggregate[L Line](lines []L, servings int, classifier *labels.Classifier) Result {
	if classifier == nil {
		classifier = labels.NewClassifier(labels.DefaultThresholds())
	}

	res := Result{Servings: CoerceServings(servings)}
	for _, line := range lines {
		facts, ok := line.Scaled()
		if !ok {
			res.UnmatchedCount++
			continue
		}
		res.MatchedCount++
		res.Totals = res.Totals.Add(facts)
	}

	res.Totals = res.Totals.Tidy()
	res.PerServing = res.Totals.Divide(res.Servings)
	res.Macros = percentages(res.PerServing.MacroFractions())
	res.Labels = classifier.Classify(res.PerServing)
	return res
}

func percentages(m nutrition.Macros) Percentages {
	return Percentages{
		Protein: percent(m.Protein),
		Carbs:   percent(m.Carbs),
		Fat:     percent(m.Fat),
	}
}

// percent converts a share to whole percent; non-finite shares are 0.
func percent(share float64) int {
	if math.IsInf(share, 0) || math.IsNaN(share) {
		return 0
	}
	return int(math.Round(share * 100))
}

// CoerceServings maps any value below 1 to 1.
func CoerceServings(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ParseServings reads a serving count from user input. Like a form field,
// it takes the leading integer ("4 people" is 4, "2.5" is 2); anything
// without one, or below 1, is 1.
func ParseServings(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || (end == 0 && (s[0] == '-' || s[0] == '+'))) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 1
	}
	return CoerceServings(n)
}
