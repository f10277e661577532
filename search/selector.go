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


package search

import (
	"fmt"
	"slices"

	"github.com/poiesic/rinkside/core"
)

// SelectorKind identifies how a Selector picks the text of a record.
type SelectorKind int

const (
	// SelectDefault searches every direct text or numeric field.
	SelectDefault SelectorKind = iota
	// SelectFields searches an explicit list of field paths.
	SelectFields
	// SelectProjection searches the text returned by a projection function.
	SelectProjection
)

func (k SelectorKind) String() string {
	switch k {
	case SelectDefault:
		return "default"
	case SelectFields:
		return "fields"
	case SelectProjection:
		return "projection"
	default:
		return fmt.Sprintf("SelectorKind(%d)", int(k))
	}
}

// Projection maps a record to a single searchable string.
type Projection func(record core.Record) string

// Selector decides which parts of a record take part in matching.
// The zero value is the default selector.
type Selector struct {
	kind    SelectorKind
	paths   []string
	project Projection
}

// Default returns a selector that searches all direct scalar fields.
// Nested maps and collections are skipped.
func Default() Selector {
	return Selector{kind: SelectDefault}
}

// ByFields returns a selector that matches when any of the given dotted
// paths matches. With no paths, nothing matches a non-empty query.
func ByFields(paths ...string) Selector {
	return Selector{kind: SelectFields, paths: slices.Clone(paths)}
}

// ByProjection returns a selector that matches against fn(record).
// A nil fn yields the default selector.
func ByProjection(fn Projection) Selector {
	if fn == nil {
		return Default()
	}
	return Selector{kind: SelectProjection, project: fn}
}

// Kind returns the selector variant.
func (s Selector) Kind() SelectorKind {
	return s.kind
}

// Paths returns a copy of the field paths of a SelectFields selector.
func (s Selector) Paths() []string {
	return slices.Clone(s.paths)
}

// candidates extracts the raw texts of record that the selector exposes.
// A panicking projection is reported as an error wrapping ErrProjectionPanicked.
func (s Selector) candidates(record core.Record) (texts []string, err error) {
	switch s.kind {
	case SelectProjection:
		defer func() {
			if r := recover(); r != nil {
				texts = nil
				err = fmt.Errorf("%w: %v", ErrProjectionPanicked, r)
			}
		}()
		return []string{s.project(record)}, nil

	case SelectFields:
		texts = make([]string, 0, len(s.paths))
		for _, path := range s.paths {
			texts = append(texts, Text(GetField(record, path)))
		}
		return texts, nil

	default:
		texts = make([]string, 0, len(record))
		for _, v := range record {
			if isScalar(v) {
				texts = append(texts, Text(v))
			}
		}
		return texts, nil
	}
}
