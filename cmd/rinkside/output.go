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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/poiesic/rinkside/core"
	"github.com/poiesic/rinkside/export"
	"github.com/poiesic/rinkside/search"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatCSV   outputFormat = "csv"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatTable, formatJSON, formatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of table, json, csv", s)
	}
}

func writeRecords(w io.Writer, format outputFormat, records []core.Record, columns []string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if records == nil {
			records = []core.Record{}
		}
		return enc.Encode(records)
	case formatCSV:
		return export.WriteCSV(w, records, columns)
	default:
		return writeTable(w, records, columns)
	}
}

func writeTable(w io.Writer, records []core.Record, columns []string) error {
	if len(columns) == 0 {
		columns = export.Columns(records)
	}
	if len(records) == 0 || len(columns) == 0 {
		_, err := fmt.Fprintln(w, "no matching records")
		return err
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = search.Text(search.GetField(r, col))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}
