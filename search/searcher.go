package search

import (
	"log/slog"

	"github.com/poiesic/rinkside/core"
)

// Searcher filters record collections with a configured normalizer and match mode.
// It holds no per-query state and is safe for concurrent use.
type Searcher struct {
	normalizer    *Normalizer
	mode          MatchMode
	minWordLength int
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithNormalizer sets the normalizer used for queries and candidate texts.
func WithNormalizer(n *Normalizer) Option {
	return func(s *Searcher) error {
		if n == nil {
			return ErrNormalizerRequired
		}
		s.normalizer = n
		return nil
	}
}

// WithMatchMode sets the match mode.
// Default is MatchSubstring.
func WithMatchMode(mode MatchMode) Option {
	return func(s *Searcher) error {
		parsed, err := ParseMatchMode(string(mode))
		if err != nil {
			return err
		}
		s.mode = parsed
		return nil
	}
}

// WithMinWordLength sets the shortest query word kept in MatchWords mode.
// Default is DefaultMinWordLength.
func WithMinWordLength(n int) Option {
	return func(s *Searcher) error {
		if n < 1 {
			return ErrInvalidWordLength
		}
		s.minWordLength = n
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		normalizer:    defaultNormalizer,
		mode:          MatchSubstring,
		minWordLength: DefaultMinWordLength,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Normalizer returns the normalizer in use.
func (s *Searcher) Normalizer() *Normalizer {
	return s.normalizer
}

// Filter returns the records that match query under sel, in input order.
// A blank query returns every record. Input records are never modified.
func (s *Searcher) Filter(records []core.Record, query string, sel Selector) []core.Record {
	return s.FilterWithMonitor(records, query, sel, nil)
}

// FilterWithMonitor filters records like Filter and reports progress to monitor.
func (s *Searcher) FilterWithMonitor(records []core.Record, query string, sel Selector, monitor FilterMonitor) []core.Record {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query, len(records))

	mask := s.evaluate(records, query, sel, monitor)
	results := make([]core.Record, 0, len(records))
	for i, keep := range mask {
		if keep {
			results = append(results, records[i])
		}
	}

	monitor.Finish(results)
	return results
}

// Mask reports, for each record, whether it matches query. Views that hide
// and show existing rows use this instead of re-rendering a filtered list.
func (s *Searcher) Mask(records []core.Record, query string, sel Selector) []bool {
	return s.evaluate(records, query, sel, &noopMonitor{})
}

// VisibleIDs maps the content ID of every record to its visibility under query.
func (s *Searcher) VisibleIDs(records []core.Record, query string, sel Selector) map[core.ID]bool {
	mask := s.Mask(records, query, sel)
	visible := make(map[core.ID]bool, len(records))
	for i, r := range records {
		id := core.IDFromRecord(r)
		// identical records share an ID; one visible copy is enough
		visible[id] = visible[id] || mask[i]
	}
	return visible
}

func (s *Searcher) evaluate(records []core.Record, query string, sel Selector, monitor FilterMonitor) []bool {
	mask := make([]bool, len(records))

	m := newMatcher(s.normalizer, s.mode, s.minWordLength, query)
	if m == nil {
		for i, r := range records {
			mask[i] = true
			monitor.Matched(i, r)
		}
		return mask
	}

	for i, r := range records {
		texts, err := sel.candidates(r)
		if err != nil {
			s.logger.Warn("projection failed, treating record as non-match", "index", i, "err", err)
			monitor.ProjectionFailed(i, err)
			continue
		}
		if m.match(texts) {
			mask[i] = true
			monitor.Matched(i, r)
		}
	}

	return mask
}
