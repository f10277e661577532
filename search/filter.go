package search

import (
	"github.com/poiesic/rinkside/core"
)

// Filter keeps the records matching query under sel, preserving input order,
// using the default normalizer and substring matching.
//
// With an empty or whitespace-only query every record is returned. Records
// whose projection panics are dropped and filtering continues.
func Filter(records []core.Record, query string, sel Selector) []core.Record {
	s, _ := NewSearcher()
	return s.Filter(records, query, sel)
}
