package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/poiesic/rinkside/core"
	"github.com/poiesic/rinkside/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	records := []core.Record{
		{"name": "Ivan", "club": map[string]any{"name": "Dynamo"}, "rank": 1},
		{"name": "Petr", "city": "Moscow", "tags": []any{"junior"}, "active": true},
		{"coach": nil},
	}

	assert.Equal(t, []string{"active", "city", "coach", "name", "rank"}, Columns(records))
	assert.Empty(t, Columns(nil))
}

func TestWriteCSV(t *testing.T) {
	records := []core.Record{
		{"name": "Ivanov, Ivan", "club": map[string]any{"name": "Dynamo"}, "rank": json.Number("1")},
		{"name": `Petr "Pete"`, "rank": 2.5},
	}

	tests := []struct {
		name    string
		columns []string
		want    string
	}{
		{
			name:    "explicit columns with nested path",
			columns: []string{"name", "club.name", "rank"},
			want: "name,club.name,rank\n" +
				"\"Ivanov, Ivan\",Dynamo,1\n" +
				"\"Petr \"\"Pete\"\"\",,2.5\n",
		},
		{
			name: "default columns",
			want: "name,rank\n" +
				"\"Ivanov, Ivan\",1\n" +
				"\"Petr \"\"Pete\"\"\",2.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, records, tt.columns))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCSV_FilteredRows(t *testing.T) {
	records := []core.Record{
		{"name": "Ivan", "city": "Moscow"},
		{"name": "Olga", "city": "Kazan"},
		{"name": "Anna", "city": "Moscow"},
	}

	visible := search.Filter(records, "moscow", search.ByFields("city"))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, visible, []string{"name"}))
	assert.Equal(t, "name\nIvan\nAnna\n", buf.String())
}

func TestWriteCSV_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, []string{"name", "city"}))
	assert.Equal(t, "name,city\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, []core.Record{{"name": "Ivan"}}, nil)
	assert.ErrorContains(t, err, "disk full")
}
