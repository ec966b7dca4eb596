package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cognicore/textstat/pkg/textstat/analytics"
)

// TextWriter outputs aligned plain-text columns for terminals.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts Options) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output, opts)}
}

// Write outputs the result as plain text.
func (w *TextWriter) Write(result *analytics.Result) error {
	n := w.viewSize(result)
	tw := tabwriter.NewWriter(w.output, 0, 4, 2, ' ', 0)

	s := result.Summary
	fmt.Fprintf(tw, "Source:\t%s\n", result.Source)
	fmt.Fprintf(tw, "Words:\t%d\n", s.Words)
	fmt.Fprintf(tw, "Characters:\t%d\n", s.Characters)
	fmt.Fprintf(tw, "Unique words:\t%d\n", s.UniqueWords)
	fmt.Fprintf(tw, "Tokens:\t%d\n", s.Tokens)
	fmt.Fprintf(tw, "Unique tokens:\t%d\n", s.UniqueTokens)
	fmt.Fprintf(tw, "Lexical density:\t%.3f\n", s.LexicalDensity)

	fmt.Fprintf(tw, "\nTop %d words\n", n)
	for i, e := range result.TopWords(n) {
		fmt.Fprintf(tw, "%d.\t%s\t%d\n", i+1, e.Item, e.Count)
	}

	fmt.Fprintf(tw, "\nTop %d bigrams\n", n)
	for i, e := range result.TopBigrams(n) {
		fmt.Fprintf(tw, "%d.\t%s\t%d\n", i+1, e.Item, e.Count)
	}

	if colls := result.Collocations(n); len(colls) > 0 {
		fmt.Fprintf(tw, "\nCollocations\n")
		for _, c := range colls {
			fmt.Fprintf(tw, "%s\t%d\tpmi %.3f\tnpmi %.3f\n", c.Bigram, c.Count, c.PMI, c.NPMI)
		}
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}
