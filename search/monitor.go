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

import (
	"github.com/poiesic/rinkside/core"
)

// FilterMonitor provides hooks to observe a filter pass.
// Implement this interface to trace which records matched and which
// projections failed.
type FilterMonitor interface {
	Start(query string, total int)
	ProjectionFailed(index int, err error)
	Matched(index int, record core.Record)
	Finish(results []core.Record)
}

// noopMonitor is a no-op implementation of FilterMonitor
type noopMonitor struct{}

var _ FilterMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)           {}
func (n *noopMonitor) ProjectionFailed(_ int, _ error) {}
func (n *noopMonitor) Matched(_ int, _ core.Record)    {}
func (n *noopMonitor) Finish(_ []core.Record)          {}
