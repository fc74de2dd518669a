package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/nutri/internal/batch"
	"github.com/cognicore/nutri/internal/logger"
	"github.com/cognicore/nutri/pkg/nutri"
	"github.com/cognicore/nutri/pkg/nutri/aggregate"
	"github.com/cognicore/nutri/pkg/nutri/config"
	"github.com/cognicore/nutri/pkg/nutri/ingest"
	"github.com/cognicore/nutri/pkg/nutri/report"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	configPath  string
	catalogPath string
	dbPath      string
	file        string
	html        string
	batch       string
	servings    string
	title       string
	workers     int
	jsonOut     bool
	lines       []string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("nutri", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "Settings file (default: ./nutri.yaml if present)")
	fs.StringVar(&o.catalogPath, "catalog", "", "YAML food catalog (overrides config)")
	fs.StringVar(&o.dbPath, "db", "", "SQLite food catalog (overrides config)")
	fs.StringVar(&o.file, "file", "", "Ingredient text file, one ingredient per line (- for stdin)")
	fs.StringVar(&o.html, "html", "", "HTML page to extract ingredient lines from (- for stdin)")
	fs.StringVar(&o.batch, "batch", "", "JSONL file of recipes to compute")
	fs.StringVar(&o.servings, "servings", "", "Number of servings (default from config)")
	fs.StringVar(&o.title, "title", "", "Recipe title for the report")
	fs.IntVar(&o.workers, "workers", 4, "Parallel recipes in --batch mode")
	fs.BoolVar(&o.jsonOut, "json", false, "Print results as JSON")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.lines = fs.Args()

	sources := 0
	for _, s := range []string{o.file, o.html, o.batch} {
		if s != "" {
			sources++
		}
	}
	if len(o.lines) > 0 {
		sources++
	}
	if sources > 1 {
		return o, errors.New("use only one of --file, --html, --batch or ingredient arguments")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.catalogPath != "" {
		settings.Catalog = config.CatalogSettings{Path: opts.catalogPath}
	}
	if opts.dbPath != "" {
		settings.Catalog = config.CatalogSettings{DB: opts.dbPath}
	}
	servings := settings.Servings
	if opts.servings != "" {
		servings = aggregate.ParseServings(opts.servings)
	}

	zl, err := logger.New(logger.Config{Level: settings.Log.Level, Format: settings.Log.Format})
	if err != nil {
		return err
	}
	defer zl.Sync()

	comp, err := (&config.Loader{Settings: settings, Logger: zl}).Load(ctx)
	if err != nil {
		return err
	}

	p := &printer{out: stdout, json: opts.jsonOut, cards: report.New()}

	switch {
	case opts.batch != "":
		return runBatch(ctx, comp.Engine, opts, servings, zl, p)
	case opts.html != "":
		data, err := readInput(opts.html, stdin)
		if err != nil {
			return err
		}
		lines, err := ingest.LinesFromHTML(bytes.NewReader(data))
		if err != nil {
			return err
		}
		return p.print(opts.title, comp.Engine.ComputeLines(lines, servings))
	case opts.file != "":
		data, err := readInput(opts.file, stdin)
		if err != nil {
			return err
		}
		return p.print(opts.title, comp.Engine.Compute(string(data), servings))
	case len(opts.lines) > 0:
		return p.print(opts.title, comp.Engine.ComputeLines(opts.lines, servings))
	case isTerminal(stdin):
		return interactive(comp.Engine, servings, stdin, p)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return p.print(opts.title, comp.Engine.Compute(string(data), servings))
	}
}

func runBatch(ctx context.Context, engine *nutri.Engine, opts options, servings int, zl *zap.Logger, p *printer) error {
	recipes, err := batch.LoadFromJSONL(opts.batch, zl)
	if err != nil {
		return err
	}
	r := &batch.Runner{Engine: engine, Workers: opts.workers, DefaultServings: servings}
	outcomes, err := r.Run(ctx, recipes)
	if err != nil {
		return err
	}
	zl.Info("batch computed", zap.Int("recipes", len(outcomes)))

	if p.json {
		enc := json.NewEncoder(p.out)
		for _, o := range outcomes {
			if err := enc.Encode(o); err != nil {
				return err
			}
		}
		return nil
	}
	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		if err := p.print(o.Recipe.Name, o.Result); err != nil {
			return err
		}
	}
	return nil
}

// interactive reads a recipe one line at a time; an empty line computes
// what has been entered so far.
func interactive(engine *nutri.Engine, servings int, in io.Reader, p *printer) error {
	fmt.Fprintln(p.out, "===========================================")
	fmt.Fprintln(p.out, "  Nutri")
	fmt.Fprintln(p.out, "  Recipe nutrition estimator")
	fmt.Fprintln(p.out, "===========================================")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Enter one ingredient per line, an empty line to compute (Ctrl+D to exit):")
	fmt.Fprintln(p.out)

	var lines []string
	flush := func() error {
		if len(lines) == 0 {
			return nil
		}
		err := p.print("", engine.ComputeLines(lines, servings))
		lines = lines[:0]
		fmt.Fprintln(p.out)
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(p.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
			continue
		}
		if err := flush(); err != nil {
			return err
		}
	}
	if err := flush(); err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\nGoodbye!")
	return scanner.Err()
}

type printer struct {
	out   io.Writer
	json  bool
	cards *report.Builder
}

func (p *printer) print(title string, res nutri.Result) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return report.Render(p.out, p.cards.Build(title, res))
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
