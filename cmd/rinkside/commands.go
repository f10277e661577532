package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rinkside"
	"github.com/poiesic/rinkside/core"
	"github.com/poiesic/rinkside/export"
	"github.com/urfave/cli/v2"
)

func openCatalog(c *cli.Context) (*rinkside.Catalog, error) {
	cfg, err := resolveConfig(c)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	catalog, err := rinkside.Open(c.Context, cfg, c.StringSlice("file"), rinkside.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return catalog, nil
}

func filterCommand(c *cli.Context) error {
	format, err := parseOutputFormat(c.String("format"))
	if err != nil {
		return err
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	query := c.String("query")
	results := catalog.Filter(query, rinkside.Selector(catalog.Config()))
	slog.Debug("filter complete", "query", query, "matched", len(results), "total", catalog.Len())

	return writeRecords(c.App.Writer, format, results, c.StringSlice("columns"))
}

func exportCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	results := catalog.Filter(c.String("query"), rinkside.Selector(catalog.Config()))

	columns := c.StringSlice("columns")
	if path := c.String("out"); path != "" {
		err = writeCSVFile(path, results, columns)
	} else {
		err = export.WriteCSV(c.App.Writer, results, columns)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	slog.Info("exported records", "records", len(results), "out", c.String("out"))
	return nil
}

func writeCSVFile(path string, records []core.Record, columns []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := export.WriteCSV(f, records, columns); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func interactiveCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}
	defer catalog.Close()

	out := c.App.Writer
	columns := c.StringSlice("columns")
	total := catalog.Len()

	q, err := catalog.NewDispatcher(rinkside.Selector(catalog.Config()), func(records []core.Record) {
		fmt.Fprintf(out, "%d of %d records\n", len(records), total)
		if err := writeTable(out, records, columns); err != nil {
			slog.Error("error rendering records", "err", err)
		}
	})
	if err != nil {
		return err
	}
	defer q.Close()

	// each line replaces the query text; it is applied once input pauses
	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			q.Escape()
			continue
		}
		q.Input(line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// end of input confirms whatever is still waiting
	if q.Pending() {
		q.Confirm()
	}
	return nil
}
