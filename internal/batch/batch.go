// Package batch computes nutrition for many recipes read from a JSONL file.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/nutri/pkg/nutri"
	"github.com/cognicore/nutri/pkg/nutri/ingest"
)

// Recipe is one JSONL record. Ingredients may be given as a list or as
// newline-separated Text; the list wins when both are present.
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients,omitempty"`
	Text        string   `json:"text,omitempty"`
	Servings    int      `json:"servings,omitempty"`
}

// Lines returns the recipe's ingredient lines.
func (r Recipe) Lines() []string {
	if len(r.Ingredients) > 0 {
		return r.Ingredients
	}
	return ingest.SplitLines(r.Text)
}

// LoadFromJSONL reads recipes from a JSONL file. Malformed lines are
// logged and skipped; a file with no valid recipe is an error.
func LoadFromJSONL(path string, log *zap.Logger) ([]Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	defer f.Close()

	recipes, err := ReadJSONL(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recipes, nil
}

// ReadJSONL is LoadFromJSONL for an open reader.
func ReadJSONL(r io.Reader, log *zap.Logger) ([]Recipe, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var recipes []Recipe
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Recipe
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Warn("skipping malformed recipe", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		recipes = append(recipes, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(recipes) == 0 {
		return nil, fmt.Errorf("no valid recipes found")
	}
	return recipes, nil
}

// Outcome pairs a recipe with its computed result.
type Outcome struct {
	Recipe Recipe       `json:"recipe"`
	Result nutri.Result `json:"result"`
}

// Runner computes recipes in parallel.
type Runner struct {
	Engine          *nutri.Engine
	Workers         int // below 1 means 1
	DefaultServings int // used when a recipe has no servings
}

// Run computes every recipe and returns outcomes in input order. It stops
// early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, recipes []Recipe) ([]Outcome, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	out := make([]Outcome, len(recipes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range recipes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			servings := rec.Servings
			if servings == 0 {
				servings = r.DefaultServings
			}
			out[i] = Outcome{Recipe: rec, Result: r.Engine.ComputeLines(rec.Lines(), servings)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
