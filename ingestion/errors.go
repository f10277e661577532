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

import "errors"

var (
	// ErrUnsupportedFormat is returned for files whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMalformedFile is returned when a file cannot be decoded into records.
	ErrMalformedFile = errors.New("malformed record file")

	// ErrNoInput is returned when Load is called without any paths.
	ErrNoInput = errors.New("no input files")
)
