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


package core

import (
	"fmt"
	"strings"
)

// ValidateRecord checks that every required field is present.
//
// Validation rules:
//   - The record must not be nil
//   - Each required field must exist as a direct key
//   - A required field must not be nil or blank text
//
// NOT validated:
//   - Value types (any scalar or nested value is accepted)
//   - Fields that are not listed as required
func ValidateRecord(record Record, required ...string) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	for _, field := range required {
		if !HasValue(record, field) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidRecord, ErrMissingField, field)
		}
	}

	return nil
}

// HasValue reports whether field exists on the record with a non-blank value.
func HasValue(record Record, field string) bool {
	v, ok := record[field]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
