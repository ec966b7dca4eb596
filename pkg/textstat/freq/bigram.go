package freq

// Bigram is an ordered pair of adjacent tokens.
type Bigram struct {
	A string
	B string
}

// String joins the pair with a single space.
func (b Bigram) String() string {
	return b.A + " " + b.B
}

// BuildBigrams slides a window of two over tokens. The result has
// max(0, len(tokens)-1) pairs.
func BuildBigrams(tokens []string) []Bigram {
	if len(tokens) < 2 {
		return []Bigram{}
	}
	out := make([]Bigram, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, Bigram{A: tokens[i], B: tokens[i+1]})
	}
	return out
}

// AdjacentBigrams pairs tokens that are adjacent in the unfiltered stream
// and both satisfy keep. Unlike BuildBigrams over a filtered sequence, two
// words separated by a dropped token never form a pair.
func AdjacentBigrams(tokens []string, keep func(string) bool) []Bigram {
	out := []Bigram{}
	for i := 0; i < len(tokens)-1; i++ {
		if keep(tokens[i]) && keep(tokens[i+1]) {
			out = append(out, Bigram{A: tokens[i], B: tokens[i+1]})
		}
	}
	return out
}
