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


package dispatch

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the quiescence interval between the last input change and dispatch.
const DefaultDelay = 300 * time.Millisecond

// Callback receives the query to apply.
type Callback func(query string)

// QueryDispatcher turns text-input events into query callbacks.
//
// Input is debounced, Confirm dispatches at once (the Enter key) and Escape
// clears the query and dispatches the empty query, restoring the unfiltered
// view. Callback invocations never overlap.
type QueryDispatcher struct {
	callback  Callback
	debouncer *Debouncer
	delay     time.Duration
	logger    *slog.Logger

	mu     sync.Mutex // guards query and closed
	query  string
	closed bool

	callMu sync.Mutex // serializes callback invocations
}

// Option configures a QueryDispatcher.
type Option func(*QueryDispatcher) error

// WithDelay sets the quiescence interval.
// Default is DefaultDelay.
func WithDelay(delay time.Duration) Option {
	return func(q *QueryDispatcher) error {
		if delay < 0 {
			return ErrInvalidDelay
		}
		q.delay = delay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(q *QueryDispatcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		q.logger = logger
		return nil
	}
}

// NewQueryDispatcher creates a dispatcher that delivers queries to callback.
func NewQueryDispatcher(callback Callback, opts ...Option) (*QueryDispatcher, error) {
	if callback == nil {
		return nil, ErrCallbackRequired
	}

	q := &QueryDispatcher{
		callback: callback,
		delay:    DefaultDelay,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	q.debouncer = NewDebouncer(q.delay)
	return q, nil
}

// Input records a change of the query text and schedules dispatch once
// input has been quiet for the configured delay.
func (q *QueryDispatcher) Input(query string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.query = query
	q.mu.Unlock()

	q.debouncer.Debounce(q.dispatch)
}

// Confirm dispatches the current query immediately, cancelling any pending dispatch.
func (q *QueryDispatcher) Confirm() {
	q.debouncer.Immediate(q.dispatch)
}

// Escape clears the query and dispatches the empty query immediately.
func (q *QueryDispatcher) Escape() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.query = ""
	q.mu.Unlock()

	q.debouncer.Immediate(q.dispatch)
}

// Query returns the current query text.
func (q *QueryDispatcher) Query() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.query
}

// Pending reports whether a debounced dispatch is waiting to fire.
func (q *QueryDispatcher) Pending() bool {
	return q.debouncer.Pending()
}

// Close cancels any pending dispatch. Later calls are ignored.
func (q *QueryDispatcher) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.debouncer.Cancel()
}

func (q *QueryDispatcher) dispatch() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	query := q.query
	q.mu.Unlock()

	q.callMu.Lock()
	defer q.callMu.Unlock()

	q.logger.Debug("dispatching query", "query", query)
	q.callback(query)
}
