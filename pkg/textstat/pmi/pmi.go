// Package pmi scores how strongly the two words of a bigram are associated
// using pointwise mutual information over token counts.
package pmi

import "math"

// DefaultMinCount is the least number of occurrences a bigram needs before
// it is scored. Bigrams seen once get inflated PMI values.
const DefaultMinCount = 2

// Calculator handles PMI calculations
type Calculator struct {
	epsilon float64 // additive smoothing
}

// NewCalculator creates a calculator with the given smoothing constant.
// Negative values are treated as 0.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon < 0 {
		epsilon = 0
	}
	return &Calculator{epsilon: epsilon}
}

// PMI calculates the pointwise mutual information of a and b
//
// PMI(a,b) = log((n_ab + ε) * n / ((n_a + ε)(n_b + ε)))
//
// Where:
//   - n_ab = occurrences of the bigram "a b"
//   - n_a, n_b = occurrences of each word
//   - n = number of tokens
func (c *Calculator) PMI(nAB, nA, nB, n int) float64 {
	if n == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(n)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)
	if numerator == 0 || denominator == 0 {
		return 0
	}
	return math.Log(numerator / denominator)
}

// NPMI calculates normalized PMI (range: -1 to 1)
// NPMI(a,b) = PMI(a,b) / -log(P(a,b))
func (c *Calculator) NPMI(nAB, nA, nB, n int) float64 {
	if n == 0 || nAB == 0 {
		return 0
	}

	pAB := (float64(nAB) + c.epsilon) / float64(n)
	logPAB := math.Log(pAB)
	if logPAB >= 0 {
		return 0
	}
	return c.PMI(nAB, nA, nB, n) / -logPAB
}
