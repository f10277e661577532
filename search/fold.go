package search

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Latin letters that render like Cyrillic ones.
var homoglyphs = map[rune]rune{
	'o': 'о', 'e': 'е', 'c': 'с', 'p': 'р', 'a': 'а', 'y': 'у', 'x': 'х',
	'O': 'О', 'E': 'Е', 'C': 'С', 'P': 'Р', 'A': 'А', 'Y': 'У', 'X': 'Х',
}

func foldHomoglyph(r rune) rune {
	if c, ok := homoglyphs[r]; ok {
		return c
	}
	return r
}

// folder builds a fresh transformer chain per call; chains buffer state and
// must not be shared between goroutines.
func (n *Normalizer) folder() transform.Transformer {
	var ts []transform.Transformer
	if n.foldDiacritics {
		ts = append(ts, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	if n.foldHomoglyphs {
		ts = append(ts, runes.Map(foldHomoglyph))
	}
	if len(ts) == 0 {
		return nil
	}
	return transform.Chain(ts...)
}
