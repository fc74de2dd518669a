// Package catalog holds the reference foods that ingredient lines are
// matched against. A Catalog is immutable once built and is meant to be
// constructed at startup and shared by pointer.
package catalog

import (
	"fmt"
	"strings"

	"github.com/cognicore/nutri/pkg/nutri/internalerr"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
)

// FoodItem is a reference food. Nutrition is given for ReferenceGrams of the
// food; ReferenceDescription is a display label ("1 large (50g)") and is
// never parsed.
type FoodItem struct {
	ID                   string          `json:"id" yaml:"id"`
	Name                 string          `json:"name" yaml:"name"`
	Aliases              []string        `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	ReferenceDescription string          `json:"serving" yaml:"serving"`
	ReferenceGrams       float64         `json:"grams" yaml:"grams"`
	Nutrition            nutrition.Facts `json:"nutrition" yaml:"nutrition"`
}

// Catalog is an ordered, read-only set of foods. Order matters: it breaks
// ties when more than one food matches an ingredient.
type Catalog struct {
	items []FoodItem
	byID  map[string]int
}

// New validates items and builds a catalog that owns a copy of them.
func New(items []FoodItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]FoodItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("food #%d: %w", i+1, err)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("food %q: %w: %w", it.ID, internalerr.ErrDuplicate, internalerr.ErrInvalidCatalog)
		}
		it.Aliases = append([]string(nil), it.Aliases...)
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

func validate(it FoodItem) error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("id is required: %w", internalerr.ErrInvalidCatalog)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("food %q: name is required: %w", it.ID, internalerr.ErrInvalidCatalog)
	}
	if !(it.ReferenceGrams > 0) {
		return fmt.Errorf("food %q: reference grams must be positive: %w", it.ID, internalerr.ErrInvalidCatalog)
	}
	if field, ok := it.Nutrition.Validate(); !ok {
		return fmt.Errorf("food %q: %s must be a non-negative number: %w", it.ID, field, internalerr.ErrInvalidCatalog)
	}
	return nil
}

// Len returns the number of foods.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the foods in catalog order. The slice is a copy.
func (c *Catalog) Items() []FoodItem {
	out := make([]FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the food at position i. The pointer refers to catalog-owned
// memory and must be treated as read-only.
func (c *Catalog) At(i int) *FoodItem {
	return &c.items[i]
}

// Get returns the food with the given id.
func (c *Catalog) Get(id string) (*FoodItem, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("food %q: %w", id, internalerr.ErrNotFound)
	}
	return &c.items[i], nil
}
