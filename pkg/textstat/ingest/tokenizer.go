package ingest

import (
	"strings"

	"github.com/cognicore/textstat/pkg/textstat/normalize"
)

// TokenizerOptions configures a Tokenizer.
type TokenizerOptions struct {
	// SplitHyphens treats every hyphen as a separator, so "test-case"
	// becomes "test" and "case". By default a hyphen between two word runes
	// joins them into one token.
	SplitHyphens bool
}

// Tokenizer splits normalized text into word tokens.
type Tokenizer struct {
	splitHyphens bool
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(opts TokenizerOptions) *Tokenizer {
	return &Tokenizer{splitHyphens: opts.SplitHyphens}
}

// Tokenize returns the maximal runs of word runes in text, in order of
// appearance. Whitespace and every other non-word rune act as separators.
// The tokenizer does not change case; text is expected to be normalized.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := []string{}
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case normalize.IsWord(r):
			current.WriteRune(r)
		case r == '-' && t.joins(runes, i, current.Len()):
			current.WriteRune(r)
		default:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// joins reports whether the hyphen at i continues the current token.
func (t *Tokenizer) joins(runes []rune, i, currentLen int) bool {
	if t.splitHyphens || currentLen == 0 {
		return false
	}
	return i+1 < len(runes) && normalize.IsWord(runes[i+1])
}
