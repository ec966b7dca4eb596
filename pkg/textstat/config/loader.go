package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/textstat/pkg/textstat"
	"github.com/cognicore/textstat/pkg/textstat/analytics"
	"github.com/cognicore/textstat/pkg/textstat/ingest"
	"github.com/cognicore/textstat/pkg/textstat/stoplist"
)

// Loader loads the stopword lists named by a Config and constructs the
// engine. Loading happens once at startup; any missing list is fatal.
type Loader struct {
	Config *Config
	Logger *logrus.Entry
}

// Stopwords loads and unions the configured embedded languages and files.
func (l *Loader) Stopwords() (*stoplist.Set, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}

	var sets []*stoplist.Set
	if len(cfg.Stopwords.Languages) > 0 {
		langs, err := stoplist.LoadLanguages(stoplist.Embedded(), cfg.Stopwords.Languages...)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		sets = append(sets, langs)
	}
	if len(cfg.Stopwords.Files) > 0 {
		files, err := stoplist.LoadFiles(cfg.Stopwords.Files...)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		sets = append(sets, files)
	}
	return stoplist.Union(sets...), nil
}

// Load builds an Engine from the configuration.
func (l *Loader) Load() (*textstat.Engine, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}

	stops, err := l.Stopwords()
	if err != nil {
		return nil, err
	}

	if l.Logger != nil {
		l.Logger.WithFields(logrus.Fields{
			"languages": cfg.Stopwords.Languages,
			"files":     cfg.Stopwords.Files,
			"stopwords": stops.Len(),
		}).Debug("stoplist loaded")
	}

	return textstat.New(textstat.Options{
		Stopwords:      stops,
		Tokenizer:      ingest.TokenizerOptions{SplitHyphens: cfg.Tokenizer.SplitHyphens},
		MinTokenLength: cfg.Tokenizer.MinLength,
		Analysis: analytics.Options{
			TopN:          cfg.Analysis.TopN,
			WordCloudSize: cfg.Analysis.WordCloudSize,
			RawBigrams:    cfg.Analysis.RawBigrams,
		},
		MaxDocumentBytes: cfg.Extract.MaxBytes,
		Logger:           l.Logger,
	})
}
