// Package nutri estimates the nutrition of a recipe from free-form
// ingredient lines. Engine wires the tokenizer, matcher, scaler, aggregator
// and label classifier together.
package nutri

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/nutri/pkg/nutri/aggregate"
	"github.com/cognicore/nutri/pkg/nutri/catalog"
	"github.com/cognicore/nutri/pkg/nutri/ingest"
	"github.com/cognicore/nutri/pkg/nutri/labels"
	"github.com/cognicore/nutri/pkg/nutri/match"
	"github.com/cognicore/nutri/pkg/nutri/nutrition"
	"github.com/cognicore/nutri/pkg/nutri/scale"
	"github.com/cognicore/nutri/pkg/nutri/units"
)

// Engine is the nutrition estimation facade. It holds only read-only state
// and is safe for concurrent use.
type Engine struct {
	catalog    *catalog.Catalog
	matcher    *match.Matcher
	scaler     *scale.Scaler
	classifier *labels.Classifier
	log        *zap.Logger
}

// Options configures an Engine. The zero value uses the built-in catalog,
// the default unit table and thresholds, and substring matching.
type Options struct {
	Catalog        *catalog.Catalog
	Units          *units.Table
	Thresholds     *labels.Thresholds
	WholeWordMatch bool
	Logger         *zap.Logger
}

// New creates an Engine.
func New(opts Options) (*Engine, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	th := labels.DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		catalog:    cat,
		matcher:    match.New(cat, match.WithWholeWord(opts.WholeWordMatch)),
		scaler:     scale.New(opts.Units),
		classifier: labels.NewClassifier(th),
		log:        log,
	}, nil
}

// Catalog returns the catalog the engine matches against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ParsedLine is one interpreted ingredient line.
type ParsedLine struct {
	Original   string            `json:"original"`
	Amount     float64           `json:"amount"`
	Unit       units.Unit        `json:"unit"`
	FoodPhrase string            `json:"food_phrase"`
	Food       *catalog.FoodItem `json:"food,omitempty"`
	Match      match.Kind        `json:"match"`
	Grams      float64           `json:"grams"`
	Nutrition  *nutrition.Facts  `json:"nutrition,omitempty"`
}

// Matched reports whether the line resolved to a catalog food.
func (l ParsedLine) Matched() bool {
	return l.Food != nil
}

// Scaled returns the line's nutrition, if it has any.
func (l ParsedLine) Scaled() (nutrition.Facts, bool) {
	if l.Nutrition == nil {
		return nutrition.Facts{}, false
	}
	return *l.Nutrition, true
}

// Result is the full computation output.
type Result struct {
	Lines     []ParsedLine     `json:"lines"`
	Aggregate aggregate.Result `json:"summary"`
}

// ParseLine interprets a single ingredient line.
func (e *Engine) ParseLine(line string) ParsedLine {
	tok := ingest.Parse(line)
	pl := ParsedLine{
		Original:   tok.Original,
		Amount:     tok.Amount,
		Unit:       tok.Unit,
		FoodPhrase: tok.FoodPhrase,
	}

	food, kind := e.matcher.Match(tok.FoodPhrase)
	if food == nil {
		e.log.Debug("ingredient not recognized",
			zap.String("line", tok.Original),
			zap.String("phrase", tok.FoodPhrase))
		return pl
	}

	portion := e.scaler.Scale(tok.Amount, tok.Unit, food)
	pl.Food = food
	pl.Match = kind
	pl.Grams = portion.Grams
	pl.Nutrition = &portion.Facts
	return pl
}

// Compute estimates the nutrition of raw, one ingredient per line.
// It never fails: unknown foods are reported as unmatched and servings
// below 1 are treated as 1.
func (e *Engine) Compute(raw string, servings int) Result {
	return e.ComputeLines(ingest.SplitLines(raw), servings)
}

// ComputeLines is Compute for input already split into lines. Blank lines
// are skipped.
func (e *Engine) ComputeLines(lines []string, servings int) Result {
	parsed := make([]ParsedLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parsed = append(parsed, e.ParseLine(line))
	}

	res := Result{
		Lines:     parsed,
		Aggregate: aggregate.Aggregate(parsed, servings, e.classifier),
	}
	e.log.Debug("recipe computed",
		zap.Int("lines", len(parsed)),
		zap.Int("matched", res.Aggregate.MatchedCount),
		zap.Int("unmatched", res.Aggregate.UnmatchedCount),
		zap.Int("servings", res.Aggregate.Servings))
	return res
}
