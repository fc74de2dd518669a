// Package units recognizes the measurement words used in ingredient lines and
// converts explicit mass and volume units to grams.
//
// Volume units are converted with fixed culinary approximations that ignore
// the density of the food being measured: a cup is 128 g whether it holds
// flour or honey. Count-like units (clove, slice, medium, ...) have no
// generic mass and are resolved against the matched food's reference serving.
package units

import (
	"fmt"
	"strings"

	"github.com/cognicore/nutri/pkg/nutri/internalerr"
)

// Unit is a canonical unit name.
type Unit string

// Count means no unit was given ("2 eggs").
const Count Unit = "count"

const (
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Cup        Unit = "cup"
	Tablespoon Unit = "tbsp"
	Teaspoon   Unit = "tsp"
	Milliliter Unit = "ml"
	Liter      Unit = "l"

	Clove  Unit = "clove"
	Slice  Unit = "slice"
	Piece  Unit = "piece"
	Medium Unit = "medium"
	Large  Unit = "large"
	Small  Unit = "small"
)

// vocabulary maps every accepted spelling to its canonical unit.
var vocabulary = map[string]Unit{
	"g": Gram, "gram": Gram, "grams": Gram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"cup": Cup, "cups": Cup,
	"tbsp": Tablespoon, "tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"tsp": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"l": Liter, "liter": Liter, "liters": Liter,
	"clove": Clove, "cloves": Clove,
	"slice": Slice, "slices": Slice,
	"piece": Piece, "pieces": Piece,
	"medium": Medium,
	"large":  Large,
	"small":  Small,
}

// Parse resolves a unit word, case-insensitively. A single trailing period
// is ignored so "Tbsp." and "oz." are accepted.
func Parse(word string) (Unit, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	w = strings.TrimSuffix(w, ".")
	u, ok := vocabulary[w]
	return u, ok
}

// IsCountBased reports whether u has no generic gram conversion and must be
// resolved against a food's own reference mass.
func (u Unit) IsCountBased() bool {
	switch u {
	case Count, Clove, Slice, Piece, Medium, Large, Small:
		return true
	}
	return false
}

// defaultGrams is the generic unit→grams table.
var defaultGrams = map[Unit]float64{
	Gram:       1,
	Kilogram:   1000,
	Ounce:      28.3495,
	Pound:      453.592,
	Cup:        128,
	Tablespoon: 15,
	Teaspoon:   5,
	Milliliter: 1,
	Liter:      1000,
}

// Table converts explicit units to grams. A Table is read-only once built
// and safe to share between goroutines.
type Table struct {
	grams map[Unit]float64
}

// DefaultTable returns the built-in conversion table.
func DefaultTable() *Table {
	grams := make(map[Unit]float64, len(defaultGrams))
	for u, g := range defaultGrams {
		grams[u] = g
	}
	return &Table{grams: grams}
}

// WithOverrides returns a copy of t with the given per-unit gram values
// replaced or added. Keys may use any accepted spelling ("cups", "Tbsp").
// Count-like units cannot be given a generic mass.
func (t *Table) WithOverrides(overrides map[string]float64) (*Table, error) {
	grams := make(map[Unit]float64, len(t.grams))
	for u, g := range t.grams {
		grams[u] = g
	}
	for word, g := range overrides {
		u, ok := Parse(word)
		if !ok {
			return nil, fmt.Errorf("unit %q: %w", word, internalerr.ErrInvalidConfig)
		}
		if u.IsCountBased() {
			return nil, fmt.Errorf("unit %q is count-based: %w", word, internalerr.ErrInvalidConfig)
		}
		if g <= 0 {
			return nil, fmt.Errorf("unit %q: grams must be positive: %w", word, internalerr.ErrInvalidConfig)
		}
		grams[u] = g
	}
	return &Table{grams: grams}, nil
}

// Grams converts amount of u to grams. ok is false for count-based units.
func (t *Table) Grams(amount float64, u Unit) (grams float64, ok bool) {
	per, ok := t.grams[u]
	if !ok {
		return 0, false
	}
	return amount * per, true
}

// PerUnit returns the grams of a single u, or false for count-based units.
func (t *Table) PerUnit(u Unit) (float64, bool) {
	g, ok := t.grams[u]
	return g, ok
}
