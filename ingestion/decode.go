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

package ingestion

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/poiesic/rinkside/core"
	"gopkg.in/yaml.v3"
)

// Format identifies a record file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseFormat converts a format name such as "json" or "yml" into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Decode reads every record from r.
//
// JSON and YAML input may hold a list of objects or a single object. JSON
// numbers are kept as json.Number so large identifiers survive unchanged.
// CSV input needs a header row; its cells become string fields and short rows
// are padded with "".
func Decode(r io.Reader, format Format) ([]core.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []core.Record
	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatCSV:
		records, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	return records, nil
}

func decodeJSON(data []byte) ([]core.Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []core.Record
	if data[0] == '[' {
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
	} else {
		var record core.Record
		if err := dec.Decode(&record); err != nil {
			return nil, err
		}
		records = []core.Record{record}
	}

	// a file holds exactly one JSON value
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
	}
	return records, nil
}

func decodeYAML(data []byte) ([]core.Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []core.Record{core.Record(v)}, nil
	case []any:
		records := make([]core.Record, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, not a mapping", i, item)
			}
			records = append(records, core.Record(m))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("document is %T, not a mapping or list", doc)
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodeCSV(data []byte) ([]core.Record, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []core.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(core.Record, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}
