// Package report turns a computed recipe into a human-readable nutrition card.
package report

import (
	"crypto/rand"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/nutri/pkg/nutri"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
)

// Builder constructs nutrition cards. Safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a new card builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Card is the display form of a nutri.Result.
type Card struct {
	ID          string       `json:"id"`
	Title       string       `json:"title,omitempty"`
	Servings    int          `json:"servings"`
	Calories    float64      `json:"calories"`
	Macros      string       `json:"macros"`
	Bullets     []string     `json:"bullets"`
	Labels      []string     `json:"labels"`
	Total       string       `json:"total"`
	Ingredients []Ingredient `json:"ingredients"`
	Note        string       `json:"note,omitempty"`
}

// Ingredient is one line of the ingredient breakdown.
type Ingredient struct {
	Original string `json:"original"`
	Matched  bool   `json:"matched"`
	Detail   string `json:"detail"`
	Calories string `json:"calories,omitempty"`
	Macros   string `json:"macros,omitempty"`
}

// Build creates a card for res.
func (b *Builder) Build(title string, res nutri.Result) Card {
	agg := res.Aggregate
	per := agg.PerServing

	card := Card{
		ID:       b.newID(),
		Title:    title,
		Servings: agg.Servings,
		Calories: per.Calories,
		Macros: fmt.Sprintf("Protein %d%% • Carbs %d%% • Fat %d%%",
			agg.Macros.Protein, agg.Macros.Carbs, agg.Macros.Fat),
		Bullets:     servingBullets(per),
		Labels:      make([]string, 0, len(agg.Labels)),
		Total:       totalLine(agg.Totals),
		Ingredients: make([]Ingredient, 0, len(res.Lines)),
		Note:        unmatchedNote(agg.UnmatchedCount),
	}

	for _, l := range agg.Labels {
		card.Labels = append(card.Labels, string(l))
	}

	for _, line := range res.Lines {
		ing := Ingredient{Original: line.Original, Matched: line.Matched()}
		if !ing.Matched {
			ing.Detail = "Not in database - nutrition not included"
			card.Ingredients = append(card.Ingredients, ing)
			continue
		}
		ing.Detail = "Matched: " + line.Food.Name
		if f, ok := line.Scaled(); ok {
			ing.Calories = num(f.Calories) + " cal"
			ing.Macros = fmt.Sprintf("%sg P • %sg C • %sg F", num(f.Protein), num(f.Carbohydrates), num(f.Fat))
		}
		card.Ingredients = append(card.Ingredients, ing)
	}

	return card
}

func (b *Builder) newID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ulid.MustNew(ulid.Now(), b.entropy).String()
}

func servingBullets(f nutrition.Facts) []string {
	return []string{
		"Total Fat " + num(f.Fat) + "g",
		"Saturated Fat " + num(f.SaturatedFat) + "g",
		"Cholesterol " + num(f.Cholesterol) + "mg",
		"Sodium " + num(f.Sodium) + "mg",
		"Total Carbohydrates " + num(f.Carbohydrates) + "g",
		"Dietary Fiber " + num(f.Fiber) + "g",
		"Total Sugars " + num(f.Sugar) + "g",
		"Protein " + num(f.Protein) + "g",
	}
}

func totalLine(f nutrition.Facts) string {
	return fmt.Sprintf("Total Recipe: %s calories • %sg fat • %sg carbs • %sg protein",
		num(f.Calories), num(math.Round(f.Fat)), num(math.Round(f.Carbohydrates)), num(math.Round(f.Protein)))
}

func unmatchedNote(n int) string {
	switch {
	case n == 0:
		return ""
	case n == 1:
		return "1 ingredient was not recognized."
	default:
		return fmt.Sprintf("%d ingredients were not recognized.", n)
	}
}

// num formats v with the fewest digits that represent it ("5", "5.6").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render writes card as plain text.
func Render(w io.Writer, card Card) error {
	var sb strings.Builder

	if card.Title != "" {
		fmt.Fprintf(&sb, "Nutrition Facts: %s\n", card.Title)
	} else {
		sb.WriteString("Nutrition Facts\n")
	}
	fmt.Fprintf(&sb, "Per Serving (%d servings total)\n", card.Servings)
	fmt.Fprintf(&sb, "Calories %s\n", num(card.Calories))
	fmt.Fprintf(&sb, "%s\n", card.Macros)
	for _, b := range card.Bullets {
		fmt.Fprintf(&sb, "  %s\n", b)
	}
	if len(card.Labels) > 0 {
		fmt.Fprintf(&sb, "Labels: %s\n", strings.Join(card.Labels, ", "))
	}
	fmt.Fprintf(&sb, "%s\n", card.Total)

	if len(card.Ingredients) > 0 {
		sb.WriteString("\nIngredient Breakdown\n")
		for _, ing := range card.Ingredients {
			mark := "[ ]"
			if ing.Matched {
				mark = "[x]"
			}
			fmt.Fprintf(&sb, "  %s %s: %s", mark, ing.Original, ing.Detail)
			if ing.Calories != "" {
				fmt.Fprintf(&sb, " (%s; %s)", ing.Calories, ing.Macros)
			}
			sb.WriteString("\n")
		}
	}

	if card.Note != "" {
		fmt.Fprintf(&sb, "\nNote: %s The totals only include matched ingredients.\n", card.Note)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
