package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/nutri/pkg/nutri/catalog"
	"github.com/cognicore/nutri/pkg/nutri/catalog/sqlite"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("catalog-import", flag.ContinueOnError)
	dbPath := fs.String("db", "", "SQLite catalog database (required)")
	inPath := fs.String("in", "", "YAML catalog to import (default: built-in catalog)")
	exportPath := fs.String("export", "", "Write the stored catalog as YAML to this path (- for stdout) instead of importing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		return errors.New("--db required")
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("open catalog db: %w", err)
	}
	defer st.Close()

	if *exportPath != "" {
		return export(ctx, st, *exportPath, stdout)
	}

	cat := catalog.Default()
	source := "built-in catalog"
	if *inPath != "" {
		cat, err = catalog.LoadFromYAML(*inPath)
		if err != nil {
			return err
		}
		source = *inPath
	}

	if err := st.Replace(ctx, cat); err != nil {
		return fmt.Errorf("store catalog: %w", err)
	}
	fmt.Fprintf(stdout, "Imported %d foods from %s into %s\n", cat.Len(), source, *dbPath)
	return nil
}

func export(ctx context.Context, st *sqlite.Store, path string, stdout io.Writer) error {
	cat, err := catalog.Load(ctx, st)
	if err != nil {
		return fmt.Errorf("load stored catalog: %w", err)
	}
	data, err := cat.EncodeYAML()
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
