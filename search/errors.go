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

import "errors"

var (
	// ErrNormalizerRequired is returned when a nil normalizer is supplied.
	ErrNormalizerRequired = errors.New("normalizer required")

	// ErrUnknownMatchMode is returned for a match mode name that is not recognized.
	ErrUnknownMatchMode = errors.New("unknown match mode")

	// ErrInvalidWordLength is returned when the minimum word length is below 1.
	ErrInvalidWordLength = errors.New("minimum word length must be at least 1")

	// ErrProjectionPanicked wraps the value recovered from a panicking projection.
	ErrProjectionPanicked = errors.New("projection panicked")
)
