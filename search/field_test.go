package search

import (
	"encoding/json"
	"testing"

	"github.com/poiesic/rinkside/core"
	"github.com/stretchr/testify/assert"
)

func TestGetField(t *testing.T) {
	record := map[string]any{
		"name":   "Ann",
		"points": 42.5,
		"zero":   0,
		"paid":   false,
		"empty":  "",
		"owner": map[string]any{
			"name": "Ann",
			"club": core.Record{"city": "Rome"},
		},
		"labels":  map[string]string{"rank": "CMS"},
		"starts":  []any{"Cup", map[string]any{"place": 2}},
		"scalars": []string{"a", "b"},
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"top level", "name", "Ann"},
		{"nested", "owner.name", "Ann"},
		{"nested missing", "owner.age", ""},
		{"deep record value", "owner.club.city", "Rome"},
		{"string map", "labels.rank", "CMS"},
		{"list index", "starts.0", "Cup"},
		{"list then map", "starts.1.place", 2},
		{"typed slice index", "scalars.1", "b"},
		{"index out of range", "starts.5", ""},
		{"non-numeric index", "starts.first", ""},
		{"through scalar", "name.first", ""},
		{"number", "points", 42.5},
		{"zero is empty", "zero", ""},
		{"false is empty", "paid", ""},
		{"empty string", "empty", ""},
		{"missing", "absent", ""},
		{"empty path", "", ""},
		{"double dot", "owner..name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetField(record, tt.path))
		})
	}
}

func TestGetField_Examples(t *testing.T) {
	owner := map[string]any{"owner": map[string]any{"name": "Ann"}}

	assert.Equal(t, "Ann", GetField(owner, "owner.name"))
	assert.Equal(t, "", GetField(owner, "owner.age"))
	assert.Equal(t, "", GetField(map[string]any{}, "a.b.c"))
	assert.Equal(t, "", GetField(nil, "a"))
}

func TestGetField_AcceptsRecord(t *testing.T) {
	r := core.Record{"club": map[string]any{"name": "Star"}}
	assert.Equal(t, "Star", GetField(r, "club.name"))
}

func TestText(t *testing.T) {
	type rank int

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "Ann", "Ann"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"uint", uint8(9), "9"},
		{"float", 42.5, "42.5"},
		{"whole float", 3.0, "3"},
		{"float32", float32(1.25), "1.25"},
		{"json number", json.Number("12.50"), "12.50"},
		{"bool", true, "true"},
		{"named int", rank(3), "3"},
		{"stringer", stringer{"x"}, "x"},
		{"nil", nil, ""},
		{"map", map[string]any{"a": 1}, ""},
		{"slice", []any{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}
