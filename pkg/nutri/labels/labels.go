// Package labels derives dietary labels from per-serving nutrition.
package labels

import (
	"fmt"

	"github.com/cognicore/nutri/pkg/nutri/internalerr"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
)

// Label is a dietary label.
type Label string

const (
	HighProtein Label = "High-Protein"
	LowCarb     Label = "Low-Carb"
	LowFat      Label = "Low-Fat"
	HighFiber   Label = "High-Fiber"
	LowSodium   Label = "Low-Sodium"
)

// All lists every label in output order.
var All = []Label{HighProtein, LowCarb, LowFat, HighFiber, LowSodium}

// Thresholds are the per-serving limits for each label. Fractions are
// shares of calories in [0, 1].
type Thresholds struct {
	MinProteinFraction float64 `mapstructure:"min_protein_fraction" yaml:"min_protein_fraction"` // exclusive
	MaxCarbFraction    float64 `mapstructure:"max_carb_fraction" yaml:"max_carb_fraction"`       // exclusive
	MaxFatFraction     float64 `mapstructure:"max_fat_fraction" yaml:"max_fat_fraction"`         // exclusive
	MinFiberGrams      float64 `mapstructure:"min_fiber_grams" yaml:"min_fiber_grams"`           // inclusive
	MaxSodiumMg        float64 `mapstructure:"max_sodium_mg" yaml:"max_sodium_mg"`               // exclusive
}

// DefaultThresholds returns the standard limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinProteinFraction: 0.25,
		MaxCarbFraction:    0.20,
		MaxFatFraction:     0.30,
		MinFiberGrams:      5,
		MaxSodiumMg:        140,
	}
}

// Validate checks that fractions lie in [0, 1] and absolute limits are not negative.
func (t Thresholds) Validate() error {
	for name, v := range map[string]float64{
		"min_protein_fraction": t.MinProteinFraction,
		"max_carb_fraction":    t.MaxCarbFraction,
		"max_fat_fraction":     t.MaxFatFraction,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %s=%v outside [0,1]: %w", name, v, internalerr.ErrInvalidConfig)
		}
	}
	if t.MinFiberGrams < 0 {
		return fmt.Errorf("threshold min_fiber_grams=%v is negative: %w", t.MinFiberGrams, internalerr.ErrInvalidConfig)
	}
	if t.MaxSodiumMg < 0 {
		return fmt.Errorf("threshold max_sodium_mg=%v is negative: %w", t.MaxSodiumMg, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Classifier applies a fixed set of thresholds.
type Classifier struct {
	th Thresholds
}

// NewClassifier returns a classifier for th.
func NewClassifier(th Thresholds) *Classifier {
	return &Classifier{th: th}
}

// Thresholds returns the limits in use.
func (c *Classifier) Thresholds() Thresholds {
	return c.th
}

// Classify returns the labels satisfied by perServing, in All order.
// Nothing is labelled when calories are zero; the result is then an empty,
// non-nil slice.
func (c *Classifier) Classify(perServing nutrition.Facts) []Label {
	out := []Label{}
	if perServing.Calories <= 0 {
		return out
	}

	m := perServing.MacroFractions()
	if m.Protein > c.th.MinProteinFraction {
		out = append(out, HighProtein)
	}
	if m.Carbs < c.th.MaxCarbFraction {
		out = append(out, LowCarb)
	}
	if m.Fat < c.th.MaxFatFraction {
		out = append(out, LowFat)
	}
	if perServing.Fiber >= c.th.MinFiberGrams {
		out = append(out, HighFiber)
	}
	if perServing.Sodium < c.th.MaxSodiumMg {
		out = append(out, LowSodium)
	}
	return out
}
