package core

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for records.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Record is one filterable data item, such as the data behind a single table row.
// Values are scalars (text, numbers, bools) or nested associative values.
// The search pipeline treats records as read-only.
type Record map[string]any

// IDFromRecord derives a content ID from the canonical JSON encoding of the record.
// Map keys are encoded in sorted order, so field order never affects the ID.
func IDFromRecord(r Record) ID {
	data, err := json.Marshal(r)
	if err != nil {
		// values json cannot encode still get a stable, sorted rendering
		return IDFromContent(fmt.Sprintf("%v", map[string]any(r)))
	}
	return IDFromContent(string(data))
}

// Keys returns the record's direct field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
