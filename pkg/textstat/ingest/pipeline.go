package ingest

import "github.com/cognicore/textstat/pkg/textstat/normalize"

// Pipeline orchestrates the text preparation flow:
// raw text → normalization → tokenization → stopword filtering
type Pipeline struct {
	tokenizer *Tokenizer
	filter    *Filter
}

// NewPipeline creates a pipeline with the given components
func NewPipeline(tokenizer *Tokenizer, filter *Filter) *Pipeline {
	return &Pipeline{
		tokenizer: tokenizer,
		filter:    filter,
	}
}

// ProcessedText holds every intermediate stage of one run. Each stage is a
// fresh value; later stages never modify earlier ones.
type ProcessedText struct {
	Raw      string
	Clean    string
	Tokens   []string
	Filtered []string
}

// Process runs raw text through the pipeline
func (p *Pipeline) Process(raw string) ProcessedText {
	// 1. Lowercase, strip digits and punctuation
	clean := normalize.Normalize(raw)

	// 2. Split into word tokens
	tokens := p.tokenizer.Tokenize(clean)

	// 3. Drop stopwords and short tokens
	filtered := p.filter.Apply(tokens)

	return ProcessedText{
		Raw:      raw,
		Clean:    clean,
		Tokens:   tokens,
		Filtered: filtered,
	}
}

// Filter returns the pipeline's token filter.
func (p *Pipeline) Filter() *Filter {
	return p.filter
}
