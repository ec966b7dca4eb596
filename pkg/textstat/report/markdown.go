package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/cognicore/textstat/pkg/textstat/analytics"
)

// pieSlices caps the words drawn in the frequency pie chart.
const pieSlices = 8

// MarkdownWriter outputs reports in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts Options) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output, opts)}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *analytics.Result) error {
	md := markdown.NewMarkdown(w.output)
	n := w.viewSize(result)

	md.H1("Text Statistics")
	md.PlainText("")

	w.writeSummary(md, result)
	w.writeWords(md, result, n)
	w.writeBigrams(md, result, n)
	w.writeCollocations(md, result, n)
	w.writeWordCloud(md, result)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Analysis `%s` generated %s*", result.ID, result.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	return md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *analytics.Result) {
	s := result.Summary
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Source", "`" + result.Source + "`"},
			{"Words", strconv.Itoa(s.Words)},
			{"Characters", strconv.Itoa(s.Characters)},
			{"Unique words", strconv.Itoa(s.UniqueWords)},
			{"Tokens", strconv.Itoa(s.Tokens)},
			{"Unique tokens", strconv.Itoa(s.UniqueTokens)},
			{"Lexical density", strconv.FormatFloat(s.LexicalDensity, 'f', 3, 64)},
		},
	})
	md.PlainText("")

	if s.Tokens == 0 {
		md.Note("Every word was a stopword or shorter than the minimum length; no frequencies to show.")
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeWords(md *markdown.Markdown, result *analytics.Result, n int) {
	top := result.TopWords(n)
	md.H2(fmt.Sprintf("Most Frequent Words (top %d)", n))
	md.PlainText("")
	if len(top) == 0 {
		md.PlainText("No words.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(top))
	for i, e := range top {
		rows[i] = []string{strconv.Itoa(i + 1), e.Item, strconv.Itoa(e.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Word", "Frequency"},
		Rows:   rows,
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Word Frequency"),
		piechart.WithShowData(true),
	)
	for i, e := range top {
		if i == pieSlices {
			break
		}
		chart.LabelAndIntValue(e.Item, uint64(e.Count))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeBigrams(md *markdown.Markdown, result *analytics.Result, n int) {
	top := result.TopBigrams(n)
	md.H2(fmt.Sprintf("Most Frequent Bigrams (top %d)", n))
	md.PlainText("")
	if result.RawBigrams() {
		md.Note("Bigrams pair words adjacent in the original text.")
	} else {
		md.Note("Bigrams pair words adjacent after stopword removal.")
	}
	md.PlainText("")
	if len(top) == 0 {
		md.PlainText("No bigrams.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(top))
	for i, e := range top {
		rows[i] = []string{strconv.Itoa(i + 1), e.Item.String(), strconv.Itoa(e.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Bigram", "Frequency"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeCollocations(md *markdown.Markdown, result *analytics.Result, n int) {
	top := result.Collocations(n)
	if len(top) == 0 {
		return
	}
	md.H2("Collocations")
	md.PlainText("")

	rows := make([][]string, len(top))
	for i, c := range top {
		rows[i] = []string{
			c.Bigram.String(),
			strconv.Itoa(c.Count),
			strconv.FormatFloat(c.PMI, 'f', 3, 64),
			strconv.FormatFloat(c.NPMI, 'f', 3, 64),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Bigram", "Frequency", "PMI", "NPMI"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeWordCloud(md *markdown.Markdown, result *analytics.Result) {
	cloud := result.WordCloud(0)
	if len(cloud) == 0 {
		return
	}
	items := make([]string, len(cloud))
	for i, ww := range cloud {
		items[i] = fmt.Sprintf("%s (%.2f)", ww.Text, ww.Weight)
	}
	md.Details("Word cloud weights", markdown.NewMarkdown(io.Discard).BulletList(items...).String())
	md.PlainText("")
}
