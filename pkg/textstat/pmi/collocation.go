package pmi

import (
	"sort"

	"github.com/cognicore/textstat/pkg/textstat/freq"
)

// Collocation is a bigram with its association scores.
type Collocation struct {
	Bigram freq.Bigram `json:"-"`
	Count  int         `json:"count"`
	PMI    float64     `json:"pmi"`
	NPMI   float64     `json:"npmi"`
}

// Collocations scores every bigram seen at least minCount times against the
// word counts it was built from. The result is sorted by PMI descending,
// ties in first-occurrence order. minCount <= 0 selects DefaultMinCount.
func (c *Calculator) Collocations(words *freq.Table[string], bigrams *freq.Table[freq.Bigram], minCount int) []Collocation {
	if minCount <= 0 {
		minCount = DefaultMinCount
	}

	n := words.Total()
	out := make([]Collocation, 0)
	for _, b := range bigrams.Items() {
		nAB := bigrams.Count(b)
		if nAB < minCount {
			continue
		}
		nA, nB := words.Count(b.A), words.Count(b.B)
		out = append(out, Collocation{
			Bigram: b,
			Count:  nAB,
			PMI:    c.PMI(nAB, nA, nB, n),
			NPMI:   c.NPMI(nAB, nA, nB, n),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PMI > out[j].PMI
	})
	return out
}
