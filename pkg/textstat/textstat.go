// Package textstat computes descriptive statistics over a single text
// document: word and character counts, token and bigram frequency
// distributions and word-cloud weights.
//
// An Engine is built once at startup. It owns the stopword set, which is
// shared read-only by every analysis, while each call to AnalyzeText or
// AnalyzeFile produces a fresh, independent Result.
package textstat

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/analytics"
	"github.com/cognicore/textstat/pkg/textstat/extract"
	"github.com/cognicore/textstat/pkg/textstat/ingest"
	"github.com/cognicore/textstat/pkg/textstat/stoplist"
)

// TextSource labels results of text entered directly.
const TextSource = "<text>"

// Engine is the main analysis facade
type Engine struct {
	stops     *stoplist.Set
	analyzer  *analytics.Analyzer
	extractor *extract.Extractor
	log       *logrus.Entry
}

// Options configures an Engine
type Options struct {
	// Stopwords is the shared stopword set. Nil loads stoplist.Default.
	Stopwords *stoplist.Set

	Tokenizer      ingest.TokenizerOptions
	MinTokenLength int

	Analysis analytics.Options

	// MaxDocumentBytes caps extracted files (0 selects extract.DefaultMaxBytes).
	MaxDocumentBytes int64

	Logger *logrus.Entry
}

// New creates an Engine with the given options. It fails only when the
// default stopword lists cannot be loaded.
func New(opts Options) (*Engine, error) {
	logger := log.OrDiscard(opts.Logger)

	stops := opts.Stopwords
	if stops == nil {
		var err error
		stops, err = stoplist.Default()
		if err != nil {
			return nil, err
		}
	}

	pipeline := ingest.NewPipeline(
		ingest.NewTokenizer(opts.Tokenizer),
		ingest.NewFilter(stops, opts.MinTokenLength),
	)

	analysis := opts.Analysis
	if analysis.Logger == nil {
		analysis.Logger = logger
	}

	logger.WithField("stopwords", stops.Len()).Debug("engine ready")

	return &Engine{
		stops:     stops,
		analyzer:  analytics.New(pipeline, analysis),
		extractor: extract.New(extract.Options{MaxBytes: opts.MaxDocumentBytes, Logger: logger}),
		log:       logger,
	}, nil
}

// AnalyzeText analyzes text entered directly. Blank text yields
// internalerr.ErrNoText.
func (e *Engine) AnalyzeText(text string) (*analytics.Result, error) {
	return e.analyzer.Analyze(TextSource, text)
}

// AnalyzeFile extracts the text of the document at path and analyzes it.
func (e *Engine) AnalyzeFile(ctx context.Context, path string) (*analytics.Result, error) {
	text, err := e.extractor.File(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.analyzer.Analyze(path, text)
}

// Stopwords returns the shared stopword set.
func (e *Engine) Stopwords() *stoplist.Set {
	return e.stops
}
