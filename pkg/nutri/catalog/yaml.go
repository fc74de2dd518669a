package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/nutri/pkg/nutri/internalerr"
)

// file is the on-disk catalog layout.
type file struct {
	Foods []FoodItem `yaml:"foods"`
}

// LoadFromYAML reads a catalog file.
//
// Expected format:
//
//	foods:
//	  - id: eggs
//	    name: Eggs
//	    aliases: [egg, large egg]
//	    serving: "1 large (50g)"
//	    grams: 50
//	    nutrition: {calories: 72, fat: 5, protein: 6.3, sodium: 71}
//
// Omitted nutrition fields are zero. File order is catalog order.
func LoadFromYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseYAML builds a catalog from YAML bytes in the LoadFromYAML format.
func ParseYAML(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w: %w", err, internalerr.ErrInvalidCatalog)
	}
	if len(f.Foods) == 0 {
		return nil, fmt.Errorf("no foods defined: %w", internalerr.ErrInvalidCatalog)
	}
	return New(f.Foods)
}

// EncodeYAML encodes the catalog in the LoadFromYAML format.
func (c *Catalog) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(file{Foods: c.items})
}

// Source supplies catalog foods from somewhere other than memory.
type Source interface {
	Foods(ctx context.Context) ([]FoodItem, error)
}

// Load reads every food from src and builds a catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	foods, err := src.Foods(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("source returned no foods: %w", internalerr.ErrInvalidCatalog)
	}
	return New(foods)
}
