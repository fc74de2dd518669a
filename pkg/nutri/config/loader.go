package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/nutri/pkg/nutri"
	"github.com/cognicore/nutri/pkg/nutri/catalog"
	"github.com/cognicore/nutri/pkg/nutri/catalog/sqlite"
	"github.com/cognicore/nutri/pkg/nutri/units"
)

// Loader builds engine components from settings.
type Loader struct {
	Settings *Settings
	Logger   *zap.Logger
}

// Components holds everything built from the settings.
type Components struct {
	Catalog *catalog.Catalog
	Units   *units.Table
	Engine  *nutri.Engine
}

// Load resolves the catalog and unit table and constructs the engine.
// Nil settings mean Default().
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	s := l.Settings
	if s == nil {
		s = Default()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cat, err := loadCatalog(ctx, s.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.Int("foods", cat.Len()),
		zap.String("path", s.Catalog.Path),
		zap.String("db", s.Catalog.DB))

	table, err := units.DefaultTable().WithOverrides(s.Units)
	if err != nil {
		return nil, fmt.Errorf("unit overrides: %w", err)
	}

	th := s.Labels
	engine, err := nutri.New(nutri.Options{
		Catalog:        cat,
		Units:          table,
		Thresholds:     &th,
		WholeWordMatch: s.Match.WholeWord,
		Logger:         log,
	})
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	return &Components{Catalog: cat, Units: table, Engine: engine}, nil
}

func loadCatalog(ctx context.Context, cs CatalogSettings) (*catalog.Catalog, error) {
	switch {
	case cs.DB != "":
		st, err := sqlite.Open(ctx, cs.DB)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return catalog.Load(ctx, st)
	case cs.Path != "":
		return catalog.LoadFromYAML(cs.Path)
	default:
		return catalog.Default(), nil
	}
}
