package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/nutri/pkg/nutri/catalog"
)

func TestMatchDefaultCatalog(t *testing.T) {
	m := New(catalog.Default())

	tests := []struct {
		phrase string
		id     string
		kind   Kind
	}{
		{"eggs", "eggs", Name},
		{"  EGGS ", "eggs", Name},
		{"egg", "eggs", Alias},
		{"milk", "milk-whole", Alias},
		{"all-purpose flour", "flour-ap", Name},
		{"cream cheese", "cream-cheese", Name},
		{"brown sugar", "brown-sugar", Name},
		{"dark brown sugar", "brown-sugar", Alias},
		{"shredded cheddar cheese", "cheese-cheddar", Substring},
		{"boneless skinless chicken thighs", "chicken-breast", Substring},
		{"chicken and beef", "chicken-breast", Substring},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			item, kind := m.Match(tt.phrase)
			require.NotNil(t, item)
			assert.Equal(t, tt.id, item.ID)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestMatchNone(t *testing.T) {
	m := New(catalog.Default())
	for _, phrase := range []string{"", "   ", "unicorn meat", "saffron"} {
		item, kind := m.Match(phrase)
		assert.Nil(t, item, phrase)
		assert.Equal(t, None, kind, phrase)
	}
}

func TestMatchRulePriorityBeatsCatalogOrder(t *testing.T) {
	cat, err := catalog.New([]catalog.FoodItem{
		{ID: "syrup", Name: "Sugar Syrup", Aliases: []string{"sugar"}, ReferenceGrams: 20},
		{ID: "brown", Name: "Brown Sugar", Aliases: []string{"cane sugar"}, ReferenceGrams: 220},
	})
	require.NoError(t, err)
	m := New(cat)

	tests := []struct {
		phrase string
		id     string
		kind   Kind
	}{
		// an earlier food's alias is contained in each phrase, but an exact
		// hit on a later food takes precedence
		{"brown sugar", "brown", Name},
		{"cane sugar", "brown", Alias},
		{"powdered sugar", "syrup", Substring},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			item, kind := m.Match(tt.phrase)
			require.NotNil(t, item)
			assert.Equal(t, tt.id, item.ID)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	m := New(catalog.Default())
	first, k1 := m.Match("sliced almonds, toasted")
	second, k2 := m.Match("sliced almonds, toasted")
	assert.Same(t, first, second)
	assert.Equal(t, k1, k2)
}

func TestMatchAccentInsensitive(t *testing.T) {
	cat, err := catalog.New([]catalog.FoodItem{
		{ID: "jalapeno", Name: "Jalapeño", Aliases: []string{"jalapeño pepper"}, ReferenceGrams: 14},
		{ID: "creme-fraiche", Name: "Crème Fraîche", ReferenceGrams: 15},
	})
	require.NoError(t, err)
	m := New(cat)

	item, kind := m.Match("jalapeno")
	require.NotNil(t, item)
	assert.Equal(t, "jalapeno", item.ID)
	assert.Equal(t, Name, kind)

	item, kind = m.Match("sliced jalapeno pepper")
	require.NotNil(t, item)
	assert.Equal(t, Substring, kind)

	item, _ = m.Match("creme fraiche")
	require.NotNil(t, item)
	assert.Equal(t, "creme-fraiche", item.ID)
}

func TestWholeWord(t *testing.T) {
	loose := New(catalog.Default())
	strict := New(catalog.Default(), WithWholeWord(true))

	item, kind := loose.Match("eggplant")
	require.NotNil(t, item)
	assert.Equal(t, "eggs", item.ID)
	assert.Equal(t, Substring, kind)

	item, kind = strict.Match("eggplant")
	assert.Nil(t, item)
	assert.Equal(t, None, kind)

	item, kind = strict.Match("egg whites")
	require.NotNil(t, item)
	assert.Equal(t, "eggs", item.ID)
	assert.Equal(t, Substring, kind)

	item, _ = strict.Match("chopped walnut-halves")
	require.NotNil(t, item)
	assert.Equal(t, "walnuts", item.ID)
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("egg", "egg"))
	assert.True(t, containsWord("two egg yolks", "egg"))
	assert.True(t, containsWord("eggplant and egg", "egg"))
	assert.False(t, containsWord("eggplant", "egg"))
	assert.False(t, containsWord("veggie", "egg"))
	assert.False(t, containsWord("eg", "egg"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "name", Name.String())
	assert.Equal(t, "alias", Alias.String())
	assert.Equal(t, "substring", Substring.String())
	assert.Equal(t, "none", None.String())

	text, err := Substring.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "substring", string(text))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "creme brulee", Fold("  Crème   Brûlée "))
	assert.Equal(t, "", Fold(" \t "))
}
