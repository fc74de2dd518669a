package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognicore/nutri/pkg/nutri/units"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		amount float64
		unit   units.Unit
		phrase string
	}{
		{"2 cups all-purpose flour", 2, units.Cup, "all-purpose flour"},
		{"1/2 cup sugar", 0.5, units.Cup, "sugar"},
		{"0.25 tsp baking soda", 0.25, units.Teaspoon, "baking soda"},
		{".5 lb butter", 0.5, units.Pound, "butter"},
		{"1-2 cloves garlic, minced", 1.5, units.Clove, "garlic"},
		{"1 – 2 tbsp olive oil", 1.5, units.Tablespoon, "olive oil"},
		{"3 eggs", 3, units.Count, "eggs"},
		{"4 Large EGGS", 4, units.Large, "eggs"},
		{"1 1/2 cups milk", 1.5, units.Cup, "milk"},
		{"½ tsp salt", 0.5, units.Teaspoon, "salt"},
		{"1½ cups rice", 1.5, units.Cup, "rice"},
		{"2cups flour", 2, units.Cup, "flour"},
		{"8 oz. cream cheese (softened)", 8, units.Ounce, "cream cheese"},
		{"1 cup spinach (fresh, chopped)", 1, units.Cup, "spinach"},
		{"1 cup (8 oz, packed) brown sugar", 1, units.Cup, "brown sugar"},
		{"2.5 lbs ground beef", 2.5, units.Pound, "ground beef"},
		{"salt to taste", 1, units.Count, "salt to taste"},
		{"cup sugar", 1, units.Cup, "sugar"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tok := Parse(tt.line)
			assert.Equal(t, tt.line, tok.Original)
			assert.InDelta(t, tt.amount, tok.Amount, 1e-9)
			assert.Equal(t, tt.unit, tok.Unit)
			assert.Equal(t, tt.phrase, tok.FoodPhrase)
		})
	}
}

func TestParseInvalidAmountDefaultsToOne(t *testing.T) {
	for _, line := range []string{"0 cups flour", "1/0 cup flour", "1/2/3 cup flour", "./ cup flour"} {
		t.Run(line, func(t *testing.T) {
			tok := Parse(line)
			assert.Equal(t, 1.0, tok.Amount)
			assert.Equal(t, units.Cup, tok.Unit)
			assert.Equal(t, "flour", tok.FoodPhrase)
		})
	}
}

func TestParseOversizedAmountDefaultsToOne(t *testing.T) {
	huge := "1" + strings.Repeat("0", 300)
	for _, line := range []string{
		huge + " cups flour",
		"1" + strings.Repeat("0", 400) + " cups flour",
		"1000001 cups flour",
		"1-" + huge + " cups flour",
	} {
		tok := Parse(line)
		assert.Equal(t, 1.0, tok.Amount, line)
		assert.Equal(t, units.Cup, tok.Unit, line)
		assert.Equal(t, "flour", tok.FoodPhrase, line)
	}

	assert.Equal(t, MaxAmount, Parse("1000000 g flour").Amount)
}

func TestParseUnitNeedsFollowingText(t *testing.T) {
	tok := Parse("2 g")
	assert.Equal(t, 2.0, tok.Amount)
	assert.Equal(t, units.Count, tok.Unit)
	assert.Equal(t, "g", tok.FoodPhrase)

	tok = Parse("2 cups")
	assert.Equal(t, units.Count, tok.Unit)
	assert.Equal(t, "cups", tok.FoodPhrase)
}

func TestParseEmptyPhraseFallsBack(t *testing.T) {
	tok := Parse("  (Optional)  ")
	assert.Equal(t, "(Optional)", tok.Original)
	assert.Equal(t, "(optional)", tok.FoodPhrase)

	tok = Parse("2 cups , sifted")
	assert.Equal(t, "2 cups , sifted", tok.FoodPhrase)
}

func TestParseIsDeterministic(t *testing.T) {
	line := "1 1/2 cups shredded cheddar cheese, divided"
	assert.Equal(t, Parse(line), Parse(line))
}

func TestSplitLines(t *testing.T) {
	raw := "2 cups flour\r\n\n   \n  1 cup sugar  \n3 eggs"
	assert.Equal(t, []string{"2 cups flour", "1 cup sugar", "3 eggs"}, SplitLines(raw))
	assert.Empty(t, SplitLines(" \n\t\n"))
}

func TestParseAll(t *testing.T) {
	tokens := ParseAll("2 cups flour\n\n3 eggs")
	assert.Len(t, tokens, 2)
	assert.Equal(t, "flour", tokens[0].FoodPhrase)
	assert.Equal(t, "eggs", tokens[1].FoodPhrase)
}
