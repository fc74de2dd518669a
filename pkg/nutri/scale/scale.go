// Package scale converts a parsed quantity of a catalog food into grams and
// nutrition facts.
package scale

import (
	"github.com/cognicore/nutri/pkg/nutri/catalog"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
	"github.com/cognicore/nutri/pkg/nutri/units"
)

// Portion is a resolved quantity of one food.
type Portion struct {
	Grams  float64         `json:"grams"`
	Factor float64         `json:"factor"`
	Facts  nutrition.Facts `json:"nutrition"`
}

// Scaler resolves portions against a unit table.
type Scaler struct {
	units *units.Table
}

// New returns a Scaler using t, or the default table when t is nil.
func New(t *units.Table) *Scaler {
	if t == nil {
		t = units.DefaultTable()
	}
	return &Scaler{units: t}
}

// Scale resolves amount of u of food. Units without a generic gram value
// (including units.Count) count reference servings of the food, so
// "2 eggs" is twice the egg reference mass. The returned facts are rounded
// for display; Grams and Factor are not.
func (s *Scaler) Scale(amount float64, u units.Unit, food *catalog.FoodItem) Portion {
	grams, ok := s.units.Grams(amount, u)
	if !ok {
		grams = food.ReferenceGrams * amount
	}
	factor := grams / food.ReferenceGrams
	return Portion{
		Grams:  grams,
		Factor: factor,
		Facts:  food.Nutrition.Scale(factor),
	}
}
