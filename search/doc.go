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


// Package search provides free-text filtering over in-memory records.
//
// The pipeline has three stages:
//   - Normalization: trim, lowercase and collapse whitespace (optionally fold
//     diacritics and Latin/Cyrillic lookalike letters)
//   - Matching: substring containment of the normalized query in the
//     normalized candidate text, or every query word in some field
//   - Filtering: a stable, non-mutating pass over a record slice using a
//     Selector to decide which fields take part
//
// Every function is total. Missing fields, malformed paths and failing
// projections degrade to "no match" instead of returning an error.
package search
