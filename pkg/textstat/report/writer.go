// Package report renders analysis results for people and tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/textstat/pkg/textstat/analytics"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write renders one result to the configured destination.
	Write(result *analytics.Result) error
}

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Options shared by every writer.
type Options struct {
	// TopN overrides the result's configured view size when > 0.
	TopN int
	// Pretty indents JSON output.
	Pretty bool
}

// New creates a writer for format.
func New(format Format, output io.Writer, opts Options) (Writer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatText, "":
		return NewTextWriter(output, opts), nil
	case FormatJSON:
		return NewJSONWriter(output, opts), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(output, opts), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	topN   int
}

func newBaseWriter(output io.Writer, opts Options) baseWriter {
	return baseWriter{output: output, topN: opts.TopN}
}

// viewSize returns the number of entries to show for result.
func (w baseWriter) viewSize(result *analytics.Result) int {
	if w.topN > 0 {
		return w.topN
	}
	return result.TopN()
}
