package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/nutri/pkg/nutri"
	"github.com/cognicore/nutri/pkg/nutri/report"
)

func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader(stdin), &out))
	return out.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunArgsTextReport(t *testing.T) {
	out := runCLI(t, "", "-title", "Eggs", "2 eggs", "3 unicorn horns")

	assert.Contains(t, out, "Nutrition Facts: Eggs")
	assert.Contains(t, out, "[x] 2 eggs: Matched: Eggs (144 cal;")
	assert.Contains(t, out, "[ ] 3 unicorn horns")
	assert.Contains(t, out, "Note: 1 ingredient was not recognized.")
}

func TestRunStdinJSON(t *testing.T) {
	out := runCLI(t, "1 cup all purpose flour\n", "-json", "-servings", "4")

	var res nutri.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Aggregate.Servings)
	assert.Equal(t, 466.0, res.Aggregate.Totals.Calories)
	assert.Equal(t, 117.0, res.Aggregate.PerServing.Calories)
}

func TestRunServingsCoerced(t *testing.T) {
	out := runCLI(t, "2 eggs", "-json", "-servings", "none")

	var res nutri.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Aggregate.Servings)
}

func TestRunFile(t *testing.T) {
	path := writeTemp(t, "recipe.txt", "2 cups flour\n\n1 cup sugar\n")
	out := runCLI(t, "", "-file", path)

	assert.Contains(t, out, "Matched: All-Purpose Flour")
	assert.Contains(t, out, "Matched: Sugar")
	assert.NotContains(t, out, "Note:")
}

func TestRunHTML(t *testing.T) {
	page := `<html><body><h2>Ingredients</h2><ul><li>2 eggs</li><li>1 tbsp <em>butter</em></li></ul></body></html>`
	out := runCLI(t, page, "-html", "-", "-json")

	var res nutri.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "1 tbsp butter", res.Lines[1].Original)
	assert.Equal(t, 2, res.Aggregate.MatchedCount)
}

func TestRunBatchJSON(t *testing.T) {
	path := writeTemp(t, "recipes.jsonl", `{"name":"Omelette","ingredients":["3 eggs","1 oz cheddar"],"servings":1}
{"name":"Toast","text":"2 slices white bread\n1 tbsp butter","servings":2}
`)
	out := runCLI(t, "", "-batch", path, "-json")

	scanner := bufio.NewScanner(strings.NewReader(out))
	var names []string
	for scanner.Scan() {
		var o struct {
			Recipe struct {
				Name string `json:"name"`
			} `json:"recipe"`
			Result nutri.Result `json:"result"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &o))
		names = append(names, o.Recipe.Name)
		assert.Zero(t, o.Result.Aggregate.UnmatchedCount)
	}
	assert.Equal(t, []string{"Omelette", "Toast"}, names)
}

func TestRunCustomCatalog(t *testing.T) {
	cat := writeTemp(t, "foods.yaml", `
foods:
  - id: tempeh
    name: Tempeh
    aliases: [tempeh]
    serving: "100g"
    grams: 100
    nutrition: {calories: 192, fat: 11, carbohydrates: 7.6, protein: 20, sodium: 9}
`)
	out := runCLI(t, "", "-catalog", cat, "-json", "200 g tempeh", "2 eggs")

	var res nutri.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 384.0, res.Aggregate.Totals.Calories)
	assert.Equal(t, 1, res.Aggregate.UnmatchedCount)
}

func TestRunConflictingSources(t *testing.T) {
	err := run(context.Background(), []string{"-file", "a.txt", "2 eggs"}, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	err := run(context.Background(), []string{"-file", filepath.Join(t.TempDir(), "nope.txt")}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInteractive(t *testing.T) {
	engine, err := nutri.New(nutri.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	p := &printer{out: &out, cards: report.New()}
	in := "2 eggs\n1 cup milk\n\n\n1 banana\n"
	require.NoError(t, interactive(engine, 1, strings.NewReader(in), p))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Nutrition Facts"), "one report per blank-line separated recipe, plus one at EOF")
	assert.Contains(t, text, "Matched: Whole Milk")
	assert.Contains(t, text, "Matched: Banana")
	assert.True(t, strings.HasSuffix(text, "Goodbye!\n"))
}
