// Package sqlite keeps a food catalog in a SQLite database so that several
// processes can share one catalog file. The engine only ever reads it;
// Replace exists for the import tool.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/nutri/pkg/nutri/catalog"
	"github.com/cognicore/nutri/pkg/nutri/internalerr"
)

// Store is a catalog.Source backed by SQLite.
type Store struct {
	db *sql.DB
}

var _ catalog.Source = (*Store)(nil)

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", internalerr.ErrCatalogUnavailable, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", internalerr.ErrCatalogUnavailable, err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w: %w", internalerr.ErrCatalogUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS foods (
	position INTEGER PRIMARY KEY,
	id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	serving TEXT NOT NULL DEFAULT '',
	grams REAL NOT NULL,
	calories REAL NOT NULL DEFAULT 0,
	fat REAL NOT NULL DEFAULT 0,
	saturated_fat REAL NOT NULL DEFAULT 0,
	carbohydrates REAL NOT NULL DEFAULT 0,
	fiber REAL NOT NULL DEFAULT 0,
	sugar REAL NOT NULL DEFAULT 0,
	protein REAL NOT NULL DEFAULT 0,
	sodium REAL NOT NULL DEFAULT 0,
	cholesterol REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS food_aliases (
	food_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	alias TEXT NOT NULL,
	PRIMARY KEY(food_id, position),
	FOREIGN KEY(food_id) REFERENCES foods(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Foods returns every food in catalog order.
func (s *Store) Foods(ctx context.Context) ([]catalog.FoodItem, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, serving, grams,
	calories, fat, saturated_fat, carbohydrates, fiber, sugar, protein, sodium, cholesterol
FROM foods
ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	var foods []catalog.FoodItem
	index := make(map[string]int)
	for rows.Next() {
		var f catalog.FoodItem
		n := &f.Nutrition
		if err := rows.Scan(&f.ID, &f.Name, &f.ReferenceDescription, &f.ReferenceGrams,
			&n.Calories, &n.Fat, &n.SaturatedFat, &n.Carbohydrates, &n.Fiber,
			&n.Sugar, &n.Protein, &n.Sodium, &n.Cholesterol); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		index[f.ID] = len(foods)
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadAliases(ctx, foods, index); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *Store) loadAliases(ctx context.Context, foods []catalog.FoodItem, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `SELECT food_id, alias FROM food_aliases ORDER BY food_id, position`)
	if err != nil {
		return fmt.Errorf("query aliases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, alias string
		if err := rows.Scan(&id, &alias); err != nil {
			return fmt.Errorf("scan alias: %w", err)
		}
		if i, ok := index[id]; ok {
			foods[i].Aliases = append(foods[i].Aliases, alias)
		}
	}
	return rows.Err()
}

// Replace swaps the stored catalog for the foods of c in one transaction.
func (s *Store) Replace(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_aliases`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return err
	}

	foodStmt, err := tx.PrepareContext(ctx, `
INSERT INTO foods (position, id, name, serving, grams,
	calories, fat, saturated_fat, carbohydrates, fiber, sugar, protein, sodium, cholesterol)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer foodStmt.Close()

	aliasStmt, err := tx.PrepareContext(ctx, `INSERT INTO food_aliases (food_id, position, alias) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer aliasStmt.Close()

	for pos, f := range c.Items() {
		n := f.Nutrition
		if _, err := foodStmt.ExecContext(ctx, pos, f.ID, f.Name, f.ReferenceDescription, f.ReferenceGrams,
			n.Calories, n.Fat, n.SaturatedFat, n.Carbohydrates, n.Fiber,
			n.Sugar, n.Protein, n.Sodium, n.Cholesterol); err != nil {
			return fmt.Errorf("insert food %q: %w", f.ID, err)
		}
		for i, alias := range f.Aliases {
			if _, err := aliasStmt.ExecContext(ctx, f.ID, i, alias); err != nil {
				return fmt.Errorf("insert alias %q for %q: %w", alias, f.ID, err)
			}
		}
	}

	return tx.Commit()
}

// Count returns the number of stored foods.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n)
	return n, err
}
