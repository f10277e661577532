package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Normalizer converts text into the canonical form used for comparison.
// A Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	tag            language.Tag
	foldDiacritics bool
	foldHomoglyphs bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLocale sets the language used for lowercasing.
// Default is language.Und.
func WithLocale(tag language.Tag) NormalizerOption {
	return func(n *Normalizer) {
		n.tag = tag
	}
}

// WithDiacriticFolding strips combining marks, so "ё" compares equal to "е"
// and "é" to "e".
func WithDiacriticFolding() NormalizerOption {
	return func(n *Normalizer) {
		n.foldDiacritics = true
	}
}

// WithHomoglyphFolding maps Latin letters that look like Cyrillic ones onto
// the Cyrillic letters. Names typed on the wrong keyboard layout or exported
// with mixed alphabets then still match.
func WithHomoglyphFolding() NormalizerOption {
	return func(n *Normalizer) {
		n.foldHomoglyphs = true
	}
}

// NewNormalizer creates a Normalizer with the given options applied.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{tag: language.Und}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize returns the canonical comparison form of v: trimmed, lowercased,
// with every internal whitespace run collapsed to a single space.
// Input that is not text (nil, numbers, maps) normalizes to "".
func (n *Normalizer) Normalize(v any) string {
	s, ok := asText(v)
	if !ok || s == "" {
		return ""
	}

	s = cases.Lower(n.tag).String(s)
	if f := n.folder(); f != nil {
		if folded, _, err := transform.String(f, s); err == nil {
			s = folded
		}
	}

	// folding can leave adjacent spaces behind, so collapse last
	return strings.Join(strings.Fields(s), " ")
}

// Matches reports whether query occurs anywhere in text after normalization.
// An empty query matches everything; empty text never matches a non-empty query.
func (n *Normalizer) Matches(text, query string) bool {
	if query == "" {
		return true
	}
	if text == "" {
		return false
	}
	return strings.Contains(n.Normalize(text), n.Normalize(query))
}

// Normalize normalizes v with the default Normalizer.
func Normalize(v any) string {
	return defaultNormalizer.Normalize(v)
}

// Matches checks text against query with the default Normalizer.
func Matches(text, query string) bool {
	return defaultNormalizer.Matches(text, query)
}

func asText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
