package search

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MatchMode determines how a query is compared with the candidate texts of a record.
type MatchMode string

const (
	// MatchSubstring keeps a record when the whole normalized query occurs in
	// at least one candidate text.
	MatchSubstring MatchMode = "substring"
	// MatchWords keeps a record when every query word occurs in at least one
	// candidate text. Words may be spread across fields and appear in any order.
	MatchWords MatchMode = "words"
)

// DefaultMinWordLength is the shortest query word kept in MatchWords mode.
const DefaultMinWordLength = 2

// ParseMatchMode converts a mode name into a MatchMode.
// The empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchWords:
		return MatchWords, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchMode, s)
	}
}

// matcher holds a query normalized once for a whole filter pass.
type matcher struct {
	normalizer *Normalizer
	mode       MatchMode
	query      string
	words      []string
}

// newMatcher prepares query for matching. It returns nil when the query
// places no constraint on records.
func newMatcher(n *Normalizer, mode MatchMode, minWordLength int, query string) *matcher {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	normalized := n.Normalize(query)
	if normalized == "" {
		return nil
	}

	m := &matcher{normalizer: n, mode: mode, query: normalized}
	if mode == MatchWords {
		for _, w := range strings.Split(normalized, " ") {
			if utf8.RuneCountInString(w) >= minWordLength {
				m.words = append(m.words, w)
			}
		}
		if len(m.words) == 0 {
			return nil
		}
	}
	return m
}

func (m *matcher) match(texts []string) bool {
	normalized := make([]string, 0, len(texts))
	for _, t := range texts {
		if t == "" {
			continue
		}
		normalized = append(normalized, m.normalizer.Normalize(t))
	}

	if m.mode == MatchWords {
		for _, w := range m.words {
			if !containsAny(normalized, w) {
				return false
			}
		}
		return true
	}
	return containsAny(normalized, m.query)
}

func containsAny(texts []string, sub string) bool {
	for _, t := range texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}
