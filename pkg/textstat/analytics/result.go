package analytics

import (
	"time"

	"github.com/cognicore/textstat/pkg/textstat/freq"
	"github.com/cognicore/textstat/pkg/textstat/pmi"
)

// Result is the output of one analysis. Every field is built fresh for the
// run; nothing is shared with other results.
type Result struct {
	ID        string
	Source    string
	CreatedAt time.Time

	Raw      string
	Clean    string
	Tokens   []string
	Filtered []string
	Bigrams  []freq.Bigram

	Words      *freq.Table[string]
	BigramFreq *freq.Table[freq.Bigram]

	Summary Summary

	topN       int
	cloudSize  int
	rawBigrams bool
}

// TopN is the configured size of the default frequency views.
func (r *Result) TopN() int {
	return r.topN
}

// RawBigrams reports whether bigrams were built before filtering.
func (r *Result) RawBigrams() bool {
	return r.rawBigrams
}

// TopWords returns the n most frequent tokens.
func (r *Result) TopWords(n int) []freq.Entry[string] {
	return r.Words.MostCommon(n)
}

// TopBigrams returns the n most frequent bigrams.
func (r *Result) TopBigrams(n int) []freq.Entry[freq.Bigram] {
	return r.BigramFreq.MostCommon(n)
}

// Collocations returns up to n bigrams seen at least twice, ranked by how
// much more often their words occur together than apart.
func (r *Result) Collocations(n int) []pmi.Collocation {
	all := pmi.NewCalculator(0).Collocations(r.Words, r.BigramFreq, pmi.DefaultMinCount)
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// WordWeight is one word-cloud entry.
type WordWeight struct {
	Text   string  `json:"text"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"` // count / max count, in (0, 1]
}

// WordCloud returns up to limit words for a word-cloud renderer, most
// frequent first, weighted relative to the most frequent word. limit <= 0
// selects the analyzer's configured size.
func (r *Result) WordCloud(limit int) []WordWeight {
	if limit <= 0 {
		limit = r.cloudSize
	}
	top := r.Words.MostCommon(limit)
	out := make([]WordWeight, 0, len(top))
	if len(top) == 0 {
		return out
	}

	maxCount := float64(top[0].Count)
	for _, e := range top {
		out = append(out, WordWeight{
			Text:   e.Item,
			Count:  e.Count,
			Weight: float64(e.Count) / maxCount,
		})
	}
	return out
}
