package ingest

import (
	"unicode/utf8"

	"github.com/cognicore/textstat/pkg/textstat/stoplist"
)

// DefaultMinTokenLength is the shortest token, in runes, that survives
// filtering. Tokens of two runes or fewer are dropped.
const DefaultMinTokenLength = 3

// Filter drops stopwords and short tokens.
type Filter struct {
	stops     *stoplist.Set
	minLength int
}

// NewFilter creates a filter over the shared stopword set. minLength <= 0
// selects DefaultMinTokenLength.
func NewFilter(stops *stoplist.Set, minLength int) *Filter {
	if minLength <= 0 {
		minLength = DefaultMinTokenLength
	}
	return &Filter{stops: stops, minLength: minLength}
}

// Keep reports whether token survives filtering: it is not a stopword and
// is at least minLength runes long.
func (f *Filter) Keep(token string) bool {
	if f.stops.Contains(token) {
		return false
	}
	return utf8.RuneCountInString(token) >= f.minLength
}

// Apply returns the tokens that survive filtering, preserving order and
// multiplicity. The input is not modified.
func (f *Filter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f.Keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Stopwords returns the set the filter checks against.
func (f *Filter) Stopwords() *stoplist.Set {
	return f.stops
}
