package analytics

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/freq"
	"github.com/cognicore/textstat/pkg/textstat/ingest"
	"github.com/cognicore/textstat/pkg/textstat/internalerr"
)

// Top-N view configuration constants
const (
	// DefaultTopN is the size of the word and bigram frequency views.
	DefaultTopN = 15

	// DefaultWordCloudSize is the number of words handed to a word-cloud
	// renderer.
	DefaultWordCloudSize = 100
)

// Options configures an Analyzer.
type Options struct {
	// TopN is the default size of TopWords/TopBigrams views (default 15).
	TopN int

	// WordCloudSize caps the words returned by Result.WordCloud (default 100).
	WordCloudSize int

	// RawBigrams builds bigrams from tokens adjacent before filtering
	// instead of from the filtered sequence.
	RawBigrams bool

	// Logger receives debug output. Nil discards it.
	Logger *logrus.Entry
}

// Analyzer runs the full pipeline for one document at a time. It holds no
// per-document state and can be shared between goroutines.
type Analyzer struct {
	pipeline *ingest.Pipeline
	opts     Options
	log      *logrus.Entry

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates an analyzer over pipeline.
func New(pipeline *ingest.Pipeline, opts Options) *Analyzer {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.WordCloudSize <= 0 {
		opts.WordCloudSize = DefaultWordCloudSize
	}
	logger := log.OrDiscard(opts.Logger)
	return &Analyzer{
		pipeline: pipeline,
		opts:     opts,
		log:      logger.WithField("component", "analyzer"),
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Analyze computes the statistics of raw. source labels the result (a file
// path, or "<text>"). Blank input returns internalerr.ErrNoText and the
// pipeline is not run.
func (a *Analyzer) Analyze(source, raw string) (*Result, error) {
	// Whitespace-only text counts as no text too, so it never yields a
	// Summary with characters but no words.
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%s: %w", source, internalerr.ErrNoText)
	}

	start := time.Now()
	processed := a.pipeline.Process(raw)

	var bigrams []freq.Bigram
	if a.opts.RawBigrams {
		bigrams = freq.AdjacentBigrams(processed.Tokens, a.pipeline.Filter().Keep)
	} else {
		bigrams = freq.BuildBigrams(processed.Filtered)
	}

	words := freq.Count(processed.Filtered)
	bigramFreq := freq.Count(bigrams)

	result := &Result{
		ID:         a.newID(),
		Source:     source,
		CreatedAt:  time.Now().UTC(),
		Raw:        processed.Raw,
		Clean:      processed.Clean,
		Tokens:     processed.Tokens,
		Filtered:   processed.Filtered,
		Bigrams:    bigrams,
		Words:      words,
		BigramFreq: bigramFreq,
		Summary:    summarize(raw, processed.Filtered, words, bigrams),
		topN:       a.opts.TopN,
		cloudSize:  a.opts.WordCloudSize,
		rawBigrams: a.opts.RawBigrams,
	}

	a.log.WithFields(logrus.Fields{
		"source":   source,
		"id":       result.ID,
		"tokens":   len(processed.Tokens),
		"filtered": len(processed.Filtered),
		"unique":   words.Len(),
		"elapsed":  time.Since(start),
	}).Debug("analysis complete")

	return result, nil
}

func (a *Analyzer) newID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Now(), a.entropy).String()
}

// Summary holds the scalar metrics of one document. Words, Characters and
// UniqueWords describe the raw text (whitespace-separated fields, runes,
// distinct case-sensitive fields); the rest describe the filtered tokens.
type Summary struct {
	Words          int     `json:"words"`
	Characters     int     `json:"characters"`
	UniqueWords    int     `json:"unique_words"`
	Tokens         int     `json:"tokens"`
	UniqueTokens   int     `json:"unique_tokens"`
	Bigrams        int     `json:"bigrams"`
	LexicalDensity float64 `json:"lexical_density"`
}

func summarize(raw string, filtered []string, words *freq.Table[string], bigrams []freq.Bigram) Summary {
	fields := strings.Fields(raw)
	unique := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		unique[f] = struct{}{}
	}

	s := Summary{
		Words:        len(fields),
		Characters:   utf8.RuneCountInString(raw),
		UniqueWords:  len(unique),
		Tokens:       len(filtered),
		UniqueTokens: words.Len(),
		Bigrams:      len(bigrams),
	}
	if s.Tokens > 0 {
		s.LexicalDensity = float64(s.UniqueTokens) / float64(s.Tokens)
	}
	return s
}
