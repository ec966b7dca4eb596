package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/cognicore/textstat/pkg/textstat/analytics"
	"github.com/cognicore/textstat/pkg/textstat/pmi"
)

// JSONWriter outputs reports in JSON format, one document per result.
type JSONWriter struct {
	baseWriter
	pretty bool
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts Options) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output, opts), pretty: opts.Pretty}
}

type jsonReport struct {
	ID         string                 `json:"id"`
	Source     string                 `json:"source"`
	CreatedAt  time.Time              `json:"created_at"`
	Summary    analytics.Summary      `json:"summary"`
	TopWords   []jsonCount            `json:"top_words"`
	TopBigrams []jsonBigram           `json:"top_bigrams"`
	Collocates []jsonCollocation      `json:"collocations"`
	RawBigrams bool                   `json:"raw_bigrams"`
	Tokens     []string               `json:"tokens"`
	WordCloud  []analytics.WordWeight `json:"word_cloud"`
}

type jsonCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type jsonBigram struct {
	Bigram [2]string `json:"bigram"`
	Count  int       `json:"count"`
}

type jsonCollocation struct {
	Bigram [2]string `json:"bigram"`
	pmi.Collocation
}

// Write outputs the result in JSON format.
func (w *JSONWriter) Write(result *analytics.Result) error {
	n := w.viewSize(result)

	rep := jsonReport{
		ID:         result.ID,
		Source:     result.Source,
		CreatedAt:  result.CreatedAt,
		Summary:    result.Summary,
		TopWords:   []jsonCount{},
		TopBigrams: []jsonBigram{},
		Collocates: []jsonCollocation{},
		RawBigrams: result.RawBigrams(),
		Tokens:     result.Filtered,
		WordCloud:  result.WordCloud(0),
	}
	for _, e := range result.TopWords(n) {
		rep.TopWords = append(rep.TopWords, jsonCount{Word: e.Item, Count: e.Count})
	}
	for _, e := range result.TopBigrams(n) {
		rep.TopBigrams = append(rep.TopBigrams, jsonBigram{Bigram: [2]string{e.Item.A, e.Item.B}, Count: e.Count})
	}

	for _, c := range result.Collocations(n) {
		rep.Collocates = append(rep.Collocates, jsonCollocation{Bigram: [2]string{c.Bigram.A, c.Bigram.B}, Collocation: c})
	}

	enc := json.NewEncoder(w.output)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rep)
}
