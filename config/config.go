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

// Package config holds the search, dispatch and loading settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/rinkside/dispatch"
	"github.com/poiesic/rinkside/search"
	"golang.org/x/text/language"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds settings shared by the library facade and the CLI.
type Config struct {
	// Delay is the quiescence interval before a typed query is dispatched.
	// Default: 300ms
	Delay time.Duration

	// Fields restricts matching to these dot-separated paths.
	// Empty means every top-level text or numeric field.
	Fields []string

	// MatchMode is "substring" or "words".
	// Default: "substring"
	MatchMode search.MatchMode

	// MinWordLength is the shortest query word used in words mode.
	// Default: 2
	MinWordLength int

	// Locale is a BCP 47 tag controlling lowercasing, e.g. "tr" or "ru".
	// Empty means language-neutral rules.
	Locale string

	// FoldHomoglyphs treats Latin look-alike letters as their Cyrillic twins.
	FoldHomoglyphs bool

	// FoldDiacritics strips combining marks, so "ё" matches "е".
	FoldDiacritics bool

	// RequiredFields lists fields a loaded record must carry to be kept.
	RequiredFields []string

	// PoolSize is the number of files decoded concurrently.
	// Zero picks a size from the CPU count.
	PoolSize int

	// Dedupe drops loaded records with identical content.
	Dedupe bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDelay sets the dispatch delay.
func WithDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.Delay = delay
	}
}

// WithFields sets the field paths used for matching.
func WithFields(fields ...string) ConfigOption {
	return func(c *Config) {
		c.Fields = append([]string(nil), fields...)
	}
}

// WithMatchMode sets the match mode.
func WithMatchMode(mode search.MatchMode) ConfigOption {
	return func(c *Config) {
		c.MatchMode = mode
	}
}

// WithMinWordLength sets the minimum query word length for words mode.
func WithMinWordLength(n int) ConfigOption {
	return func(c *Config) {
		c.MinWordLength = n
	}
}

// WithLocale sets the casing locale.
func WithLocale(locale string) ConfigOption {
	return func(c *Config) {
		c.Locale = locale
	}
}

// WithFolding enables or disables homoglyph and diacritic folding.
func WithFolding(homoglyphs, diacritics bool) ConfigOption {
	return func(c *Config) {
		c.FoldHomoglyphs = homoglyphs
		c.FoldDiacritics = diacritics
	}
}

// WithRequiredFields sets the fields a loaded record must carry.
func WithRequiredFields(fields ...string) ConfigOption {
	return func(c *Config) {
		c.RequiredFields = append([]string(nil), fields...)
	}
}

// WithPoolSize sets the loader pool size.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithDedupe enables or disables duplicate removal on load.
func WithDedupe(enabled bool) ConfigOption {
	return func(c *Config) {
		c.Dedupe = enabled
	}
}

// DefaultConfig returns a Config matching the behavior of the browser front end:
// substring matching over all fields with a 300ms typing delay.
func DefaultConfig() *Config {
	return &Config{
		Delay:         dispatch.DefaultDelay,
		MatchMode:     search.MatchSubstring,
		MinWordLength: search.DefaultMinWordLength,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithFields("athlete.name", "club"),
//	    WithMatchMode(search.MatchWords),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form: trimmed, lowercased
// mode and locale, and no blank field paths.
func (c *Config) Normalize() {
	c.Fields = cleanList(c.Fields)
	c.RequiredFields = cleanList(c.RequiredFields)
	c.MatchMode = search.MatchMode(strings.ToLower(strings.TrimSpace(string(c.MatchMode))))
	if c.MatchMode == "" {
		c.MatchMode = search.MatchSubstring
	}
	c.Locale = strings.TrimSpace(c.Locale)
}

// Validate checks that the configuration is usable.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Delay < 0 {
		return fmt.Errorf("%w: Delay must not be negative", ErrInvalidConfig)
	}
	if _, err := search.ParseMatchMode(string(c.MatchMode)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinWordLength < 1 {
		return fmt.Errorf("%w: MinWordLength must be at least 1", ErrInvalidConfig)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: PoolSize must not be negative", ErrInvalidConfig)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: Locale %q: %w", ErrInvalidConfig, c.Locale, err)
		}
	}
	return nil
}

// Language returns the parsed locale, or language.Und when none is set or it
// does not parse.
func (c *Config) Language() language.Tag {
	if c.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
