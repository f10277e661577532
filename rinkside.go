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

// Package rinkside filters tournament tables (athletes, clubs, coaches,
// events) by free-text queries.
//
// A Catalog holds one loaded record collection together with the searcher
// and dispatchers configured for it.
package rinkside

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/poiesic/rinkside/config"
	"github.com/poiesic/rinkside/core"
	"github.com/poiesic/rinkside/dispatch"
	"github.com/poiesic/rinkside/ingestion"
	"github.com/poiesic/rinkside/search"
)

// Catalog is a loaded record collection with the searcher built for it.
type Catalog struct {
	cfg      *config.Config
	records  []core.Record
	searcher *search.Searcher
	logger   *slog.Logger

	mu          sync.Mutex
	dispatchers []*dispatch.QueryDispatcher
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	logger   *slog.Logger
	progress io.Writer
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		o.logger = logger
	}
}

// WithProgress reports file loading progress to w.
func WithProgress(w io.Writer) CatalogOption {
	return func(o *catalogOptions) {
		o.progress = w
	}
}

// Open loads the record files at paths and prepares a Catalog over them.
// A nil cfg means config.DefaultConfig().
func Open(ctx context.Context, cfg *config.Config, paths []string, opts ...CatalogOption) (*Catalog, error) {
	cfg, options, err := prepare(cfg, opts)
	if err != nil {
		return nil, err
	}

	loaderOpts := []ingestion.Option{
		ingestion.WithLogger(options.logger),
		ingestion.WithRequiredFields(cfg.RequiredFields...),
		ingestion.WithDedupe(cfg.Dedupe),
		ingestion.WithProgress(options.progress),
	}
	if cfg.PoolSize > 0 {
		loaderOpts = append(loaderOpts, ingestion.WithPoolSize(cfg.PoolSize))
	}

	loader, err := ingestion.NewLoader(loaderOpts...)
	if err != nil {
		return nil, err
	}
	defer loader.Release()

	records, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}

	return newCatalog(cfg, records, options)
}

// New prepares a Catalog over records already in memory.
// A nil cfg means config.DefaultConfig().
func New(cfg *config.Config, records []core.Record, opts ...CatalogOption) (*Catalog, error) {
	cfg, options, err := prepare(cfg, opts)
	if err != nil {
		return nil, err
	}
	return newCatalog(cfg, records, options)
}

func prepare(cfg *config.Config, opts []CatalogOption) (*config.Config, *catalogOptions, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	options := &catalogOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	return cfg, options, nil
}

func newCatalog(cfg *config.Config, records []core.Record, options *catalogOptions) (*Catalog, error) {
	searcher, err := NewSearcher(cfg, search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Catalog{
		cfg:      cfg,
		records:  records,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// NewSearcher builds a Searcher from the matching settings in cfg.
func NewSearcher(cfg *config.Config, opts ...search.Option) (*search.Searcher, error) {
	normOpts := []search.NormalizerOption{search.WithLocale(cfg.Language())}
	if cfg.FoldHomoglyphs {
		normOpts = append(normOpts, search.WithHomoglyphFolding())
	}
	if cfg.FoldDiacritics {
		normOpts = append(normOpts, search.WithDiacriticFolding())
	}

	base := []search.Option{
		search.WithNormalizer(search.NewNormalizer(normOpts...)),
		search.WithMatchMode(cfg.MatchMode),
		search.WithMinWordLength(cfg.MinWordLength),
	}
	return search.NewSearcher(append(base, opts...)...)
}

// Selector returns ByFields over the configured fields, or Default when none are set.
func Selector(cfg *config.Config) search.Selector {
	if cfg == nil || len(cfg.Fields) == 0 {
		return search.Default()
	}
	return search.ByFields(cfg.Fields...)
}

// Records returns the loaded records in load order.
func (c *Catalog) Records() []core.Record {
	return append([]core.Record(nil), c.records...)
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Config returns the validated configuration in use.
func (c *Catalog) Config() *config.Config {
	return c.cfg
}

// Searcher returns the configured searcher.
func (c *Catalog) Searcher() *search.Searcher {
	return c.searcher
}

// Filter returns the records matching query under sel, in load order.
func (c *Catalog) Filter(query string, sel search.Selector) []core.Record {
	return c.searcher.Filter(c.records, query, sel)
}

// Mask reports per record whether it matches query under sel.
func (c *Catalog) Mask(query string, sel search.Selector) []bool {
	return c.searcher.Mask(c.records, query, sel)
}

// NewDispatcher returns a dispatcher that filters the catalog on every
// dispatched query and hands the result to render. It uses the configured delay.
func (c *Catalog) NewDispatcher(sel search.Selector, render func([]core.Record)) (*dispatch.QueryDispatcher, error) {
	if render == nil {
		return nil, dispatch.ErrCallbackRequired
	}

	q, err := dispatch.NewQueryDispatcher(func(query string) {
		render(c.Filter(query, sel))
	}, dispatch.WithDelay(c.cfg.Delay), dispatch.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.dispatchers = append(c.dispatchers, q)
	c.mu.Unlock()
	return q, nil
}

// Close stops every dispatcher created by the catalog.
func (c *Catalog) Close() error {
	c.mu.Lock()
	dispatchers := c.dispatchers
	c.dispatchers = nil
	c.mu.Unlock()

	for _, q := range dispatchers {
		q.Close()
	}
	c.logger.Debug("catalog closed", "dispatchers", len(dispatchers))
	return nil
}
