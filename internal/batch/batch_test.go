package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cognicore/nutri/pkg/nutri"
)

const recipesJSONL = `{"name": "Omelette", "ingredients": ["3 eggs", "1/4 cup cheddar cheese"], "servings": 1}
this is not json
{"name": "Pancakes", "text": "2 cups flour\n1 cup milk\n2 eggs", "servings": 4}

{"name": "Toast", "ingredients": ["2 slices white bread", "1 tbsp butter"]}
`

func TestReadJSONL(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	recipes, err := ReadJSONL(strings.NewReader(recipesJSONL), zap.New(core))
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	assert.Equal(t, "Omelette", recipes[0].Name)
	assert.Equal(t, []string{"3 eggs", "1/4 cup cheddar cheese"}, recipes[0].Lines())
	assert.Equal(t, []string{"2 cups flour", "1 cup milk", "2 eggs"}, recipes[1].Lines())
	assert.Equal(t, 4, recipes[1].Servings)
	assert.Zero(t, recipes[2].Servings)

	warnings := logs.FilterMessage("skipping malformed recipe").All()
	require.Len(t, warnings, 1)
	assert.EqualValues(t, 2, warnings[0].ContextMap()["line"])
}

func TestReadJSONLEmpty(t *testing.T) {
	_, err := ReadJSONL(strings.NewReader("\n\nnot json\n"), nil)
	assert.Error(t, err)
}

func TestLoadFromJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(recipesJSONL), 0o644))

	recipes, err := LoadFromJSONL(path, nil)
	require.NoError(t, err)
	assert.Len(t, recipes, 3)

	_, err = LoadFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunnerKeepsOrder(t *testing.T) {
	e, err := nutri.New(nutri.Options{})
	require.NoError(t, err)

	recipes, err := ReadJSONL(strings.NewReader(recipesJSONL), nil)
	require.NoError(t, err)

	r := &Runner{Engine: e, Workers: 4, DefaultServings: 2}
	out, err := r.Run(context.Background(), recipes)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i, o := range out {
		assert.Equal(t, recipes[i].Name, o.Recipe.Name)
		assert.Equal(t, e.ComputeLines(recipes[i].Lines(), o.Result.Aggregate.Servings), o.Result)
	}
	assert.Equal(t, 1, out[0].Result.Aggregate.Servings)
	assert.Equal(t, 4, out[1].Result.Aggregate.Servings)
	assert.Equal(t, 2, out[2].Result.Aggregate.Servings, "missing servings use the default")
	assert.Equal(t, 216.0+out[0].Result.Lines[1].Nutrition.Calories, out[0].Result.Aggregate.Totals.Calories)
}

func TestRunnerCancelled(t *testing.T) {
	e, err := nutri.New(nutri.Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = (&Runner{Engine: e}).Run(ctx, []Recipe{{Name: "x", Text: "2 eggs"}})
	assert.ErrorIs(t, err, context.Canceled)
}
