// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rinkside/config"
	"github.com/poiesic/rinkside/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rinkside",
		Usage: "Filter tournament tables (athletes, clubs, coaches, events) by free-text queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML or TOML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "filter",
				Usage:  "Print the records matching a query",
				Action: filterCommand,
				Flags: append(append(sourceFlags(), matchFlags()...),
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Query text; empty shows every record",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (table, json, csv)",
						Value: "table",
					},
					&cli.StringSliceFlag{
						Name:  "columns",
						Usage: "Field paths to print; defaults to every flat top-level field",
					},
				),
			},
			{
				Name:   "export",
				Usage:  "Write the records matching a query as CSV",
				Action: exportCommand,
				Flags: append(append(sourceFlags(), matchFlags()...),
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Query text; empty exports every record",
					},
					&cli.StringSliceFlag{
						Name:  "columns",
						Usage: "Field paths to export; defaults to every flat top-level field",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
				),
			},
			{
				Name:   "interactive",
				Usage:  "Filter as you type: each line replaces the query and applies after a pause, an empty line shows everything",
				Action: interactiveCommand,
				Flags: append(append(sourceFlags(), matchFlags()...),
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Typing pause before a query is applied",
					},
					&cli.StringSliceFlag{
						Name:  "columns",
						Usage: "Field paths to print; defaults to every flat top-level field",
					},
				),
			},
		},
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "Record file (.json, .yaml, .yml, .csv); repeatable",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "required",
			Usage: "Skip loaded records missing this field; repeatable",
		},
		&cli.BoolFlag{
			Name:  "dedupe",
			Usage: "Drop records with identical content",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Number of files decoded concurrently",
		},
	}
}

func matchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "field",
			Usage: "Dot-separated field path to search; repeatable. Default searches all text and numeric fields",
		},
		&cli.BoolFlag{
			Name:  "words",
			Usage: "Require every query word to match instead of the whole query",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "BCP 47 locale for lowercasing (e.g. tr, ru)",
		},
		&cli.BoolFlag{
			Name:  "fold",
			Usage: "Fold Latin look-alike letters and diacritics",
		},
	}
}

// resolveConfig layers the config file (when given) under explicitly set flags.
func resolveConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("field") {
		cfg.Fields = c.StringSlice("field")
	}
	if c.IsSet("words") {
		cfg.MatchMode = search.MatchSubstring
		if c.Bool("words") {
			cfg.MatchMode = search.MatchWords
		}
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	if c.IsSet("fold") {
		cfg.FoldHomoglyphs = c.Bool("fold")
		cfg.FoldDiacritics = c.Bool("fold")
	}
	if c.IsSet("required") {
		cfg.RequiredFields = c.StringSlice("required")
	}
	if c.IsSet("dedupe") {
		cfg.Dedupe = c.Bool("dedupe")
	}
	if c.IsSet("pool-size") {
		cfg.PoolSize = c.Int("pool-size")
	}
	if c.IsSet("delay") {
		cfg.Delay = c.Duration("delay")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
