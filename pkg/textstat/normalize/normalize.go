// Package normalize cleans raw document text before tokenization.
//
// Normalization lowercases the text, composes it to NFC, drops every
// decimal digit and strips
// punctuation and symbols. Hyphens survive only when both neighbours are
// word runes, so "co-operation" stays joined while "-foo", "foo-" and "a--b"
// lose their hyphens.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer reuses one caser across calls. It is not safe for concurrent
// use; share the package-level Normalize instead.
type Normalizer struct {
	caser cases.Caser
}

// NewNormalizer creates a Normalizer with a locale-independent lowercaser.
func NewNormalizer() *Normalizer {
	return &Normalizer{caser: cases.Lower(language.Und)}
}

// Normalize lowercases raw, removes digits and punctuation (keeping interior
// hyphens) and trims surrounding whitespace. Interior whitespace is kept
// as-is for the tokenizer to split on.
func Normalize(raw string) string {
	return NewNormalizer().Normalize(raw)
}

// Normalize behaves like the package-level Normalize.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// NFC folds decomposed accents ("e" + U+0301) into one letter rune.
	lower := norm.NFC.String(n.caser.String(raw))

	runes := make([]rune, 0, len(lower))
	for _, r := range lower {
		if unicode.IsDigit(r) {
			continue
		}
		runes = append(runes, r)
	}

	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		switch {
		case IsWord(r), unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' && interior(runes, i):
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// IsWord reports whether r is a word rune: a letter, a number or an
// underscore. Combining marks that do not compose are not word runes.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func interior(runes []rune, i int) bool {
	return i > 0 && i < len(runes)-1 && IsWord(runes[i-1]) && IsWord(runes[i+1])
}
