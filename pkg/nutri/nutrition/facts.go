package nutrition

import "math"

// Calories per gram of each macronutrient.
const (
	ProteinKcalPerGram = 4
	CarbKcalPerGram    = 4
	FatKcalPerGram     = 9
)

// Facts holds the nutrition values of a quantity of food.
// Energy is in kcal, sodium and cholesterol in mg, everything else in grams.
type Facts struct {
	Calories      float64 `json:"calories" yaml:"calories"`
	Fat           float64 `json:"fat" yaml:"fat"`
	SaturatedFat  float64 `json:"saturated_fat" yaml:"saturated_fat"`
	Carbohydrates float64 `json:"carbohydrates" yaml:"carbohydrates"`
	Fiber         float64 `json:"fiber" yaml:"fiber"`
	Sugar         float64 `json:"sugar" yaml:"sugar"`
	Protein       float64 `json:"protein" yaml:"protein"`
	Sodium        float64 `json:"sodium" yaml:"sodium"`
	Cholesterol   float64 `json:"cholesterol" yaml:"cholesterol"`
}

// Macros holds the share of calories attributable to each macronutrient.
type Macros struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// Scale multiplies every field by factor and applies the display rounding:
// calories, sodium and cholesterol to whole numbers, the rest to one decimal.
func (f Facts) Scale(factor float64) Facts {
	return Facts{
		Calories:      math.Round(f.Calories * factor),
		Fat:           round1(f.Fat * factor),
		SaturatedFat:  round1(f.SaturatedFat * factor),
		Carbohydrates: round1(f.Carbohydrates * factor),
		Fiber:         round1(f.Fiber * factor),
		Sugar:         round1(f.Sugar * factor),
		Protein:       round1(f.Protein * factor),
		Sodium:        math.Round(f.Sodium * factor),
		Cholesterol:   math.Round(f.Cholesterol * factor),
	}
}

// Add returns the field-wise sum of f and g.
func (f Facts) Add(g Facts) Facts {
	return Facts{
		Calories:      f.Calories + g.Calories,
		Fat:           f.Fat + g.Fat,
		SaturatedFat:  f.SaturatedFat + g.SaturatedFat,
		Carbohydrates: f.Carbohydrates + g.Carbohydrates,
		Fiber:         f.Fiber + g.Fiber,
		Sugar:         f.Sugar + g.Sugar,
		Protein:       f.Protein + g.Protein,
		Sodium:        f.Sodium + g.Sodium,
		Cholesterol:   f.Cholesterol + g.Cholesterol,
	}
}

// Divide splits f into n equal portions using the same rounding as Scale.
// n below 1 is treated as 1.
func (f Facts) Divide(n int) Facts {
	if n < 1 {
		n = 1
	}
	d := float64(n)
	return Facts{
		Calories:      math.Round(f.Calories / d),
		Fat:           round1(f.Fat / d),
		SaturatedFat:  round1(f.SaturatedFat / d),
		Carbohydrates: round1(f.Carbohydrates / d),
		Fiber:         round1(f.Fiber / d),
		Sugar:         round1(f.Sugar / d),
		Protein:       round1(f.Protein / d),
		Sodium:        math.Round(f.Sodium / d),
		Cholesterol:   math.Round(f.Cholesterol / d),
	}
}

// Tidy removes floating point drift left by summing already rounded values.
// Whole-number fields stay whole and one-decimal fields stay one-decimal,
// so the values themselves do not change.
func (f Facts) Tidy() Facts {
	return f.Scale(1)
}

// MacroFractions returns the calorie share of protein, carbohydrate and fat
// (4/4/9 kcal per gram). All shares are zero when Calories is zero or not
// finite, and a share that is not finite is zero.
func (f Facts) MacroFractions() Macros {
	if f.Calories <= 0 || math.IsInf(f.Calories, 0) || math.IsNaN(f.Calories) {
		return Macros{}
	}
	return Macros{
		Protein: finite(f.Protein * ProteinKcalPerGram / f.Calories),
		Carbs:   finite(f.Carbohydrates * CarbKcalPerGram / f.Calories),
		Fat:     finite(f.Fat * FatKcalPerGram / f.Calories),
	}
}

func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// Validate reports the name of the first negative field, if any.
func (f Facts) Validate() (field string, ok bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"calories", f.Calories},
		{"fat", f.Fat},
		{"saturated_fat", f.SaturatedFat},
		{"carbohydrates", f.Carbohydrates},
		{"fiber", f.Fiber},
		{"sugar", f.Sugar},
		{"protein", f.Protein},
		{"sodium", f.Sodium},
		{"cholesterol", f.Cholesterol},
	}
	for _, fl := range fields {
		if fl.v < 0 || math.IsNaN(fl.v) || math.IsInf(fl.v, 0) {
			return fl.name, false
		}
	}
	return "", true
}

// IsZero reports whether every field is zero.
func (f Facts) IsZero() bool {
	return f == Facts{}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
