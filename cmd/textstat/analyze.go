package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cognicore/textstat/internal/batch"
	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat"
	"github.com/cognicore/textstat/pkg/textstat/config"
	"github.com/cognicore/textstat/pkg/textstat/internalerr"
	"github.com/cognicore/textstat/pkg/textstat/report"
)

// noAnalysis is printed instead of a report when there is no text.
const noAnalysis = "no analysis available"

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze text or documents",
		Long: `Analyze computes word statistics for each file, for --text, or for
standard input when neither is given.

Files are analyzed independently and concurrently. A file that cannot be
read is reported and the others still run; the command then exits 1.

Examples:
  # Analyze a PDF and a DOCX
  textstat analyze report.pdf notes.docx

  # Analyze text entered directly, as Markdown
  textstat analyze --text "O gato correu. O gato pulou." -f markdown

  # JSON to a file, top 30 entries
  textstat analyze essay.txt -f json -n 30 -o essay.json`,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("text", "t", "", "Analyze this text instead of files")
	cmd.Flags().StringP("format", "f", string(report.FormatText), "Output format: text, json or markdown")
	cmd.Flags().IntP("top", "n", 0, "Number of words and bigrams to show (default from config)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Int("concurrency", 0, "Documents analyzed at once (default from config)")
	cmd.Flags().Bool("raw-bigrams", false, "Build bigrams from words adjacent before stopword removal")
	cmd.Flags().Bool("split-hyphens", false, "Split hyphenated words into separate tokens")
	cmd.Flags().Bool("pretty", true, "Indent JSON output")

	return cmd
}

// analyzeFlags holds the analyze command's own flags.
type analyzeFlags struct {
	text    string
	format  string
	output  string
	pretty  bool
	hasText bool
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) (err error) {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	flags, err := applyAnalyzeFlags(cmd, cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loader := config.Loader{Config: cfg, Logger: log.Component(logger, "engine")}
	engine, err := loader.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.output != "" {
		f, createErr := os.Create(flags.output) //nolint:gosec // user-selected output path
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() { err = closeOutput(f, err) }()
		out = f
	}

	writer, err := report.New(report.Format(flags.format), out, report.Options{
		TopN:   cfg.Analysis.TopN,
		Pretty: flags.pretty,
	})
	if err != nil {
		return err
	}

	switch {
	case flags.hasText:
		return analyzeText(engine, writer, out, flags.text)
	case len(args) == 0:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return analyzeText(engine, writer, out, string(data))
	default:
		return analyzeFiles(cmd, engine, writer, out, logger, cfg.Concurrency, args)
	}
}

// closeOutput closes the report file. A close failure is returned only when
// writing the report itself succeeded.
func closeOutput(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("close output: %w", cerr)
	}
	return err
}

// applyAnalyzeFlags copies explicitly set flags over cfg.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) (analyzeFlags, error) {
	var f analyzeFlags
	var err error

	if f.text, err = cmd.Flags().GetString("text"); err != nil {
		return f, err
	}
	f.hasText = cmd.Flags().Changed("text")
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, err
	}
	if f.output, err = cmd.Flags().GetString("output"); err != nil {
		return f, err
	}
	if f.pretty, err = cmd.Flags().GetBool("pretty"); err != nil {
		return f, err
	}

	if cmd.Flags().Changed("top") {
		if cfg.Analysis.TopN, err = cmd.Flags().GetInt("top"); err != nil {
			return f, err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return f, err
		}
	}
	if cmd.Flags().Changed("raw-bigrams") {
		if cfg.Analysis.RawBigrams, err = cmd.Flags().GetBool("raw-bigrams"); err != nil {
			return f, err
		}
	}
	if cmd.Flags().Changed("split-hyphens") {
		if cfg.Tokenizer.SplitHyphens, err = cmd.Flags().GetBool("split-hyphens"); err != nil {
			return f, err
		}
	}
	return f, nil
}

func analyzeText(engine *textstat.Engine, writer report.Writer, out io.Writer, text string) error {
	res, err := engine.AnalyzeText(text)
	if errors.Is(err, internalerr.ErrNoText) {
		fmt.Fprintln(out, noAnalysis)
		return nil
	}
	if err != nil {
		return err
	}
	return writer.Write(res)
}

func analyzeFiles(cmd *cobra.Command, engine *textstat.Engine, writer report.Writer, out io.Writer,
	logger *logrus.Logger, concurrency int, paths []string) error {
	runner := batch.New(engine.AnalyzeFile,
		batch.WithConcurrency(concurrency),
		batch.WithLogger(logger.WithField("files", len(paths))),
	)

	outcomes, err := runner.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		switch {
		case errors.Is(o.Err, internalerr.ErrNoText):
			fmt.Fprintf(out, "%s: %s\n", o.Input, noAnalysis)
		case o.Err != nil:
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Input, o.Err)
		default:
			if err := writer.Write(o.Result); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}
