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


// Package export writes filtered record sequences as delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/poiesic/rinkside/core"
	"github.com/poiesic/rinkside/search"
)

// Columns returns the sorted union of direct field names whose values are
// flat (not nested maps or collections) in at least one record.
func Columns(records []core.Record) []string {
	seen := make(map[string]struct{})
	var columns []string
	for _, r := range records {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok || !flat(r[k]) {
				continue
			}
			seen[k] = struct{}{}
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)
	return columns
}

// WriteCSV writes a header row followed by one row per record. Columns are
// dot-separated field paths; when none are given, Columns(records) is used.
// Missing or falsy values produce empty cells.
func WriteCSV(w io.Writer, records []core.Record, columns []string) error {
	if len(columns) == 0 {
		columns = Columns(records)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for i, r := range records {
		for j, col := range columns {
			row[j] = search.Text(search.GetField(r, col))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func flat(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return false
	default:
		return true
	}
}
