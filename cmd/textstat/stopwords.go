package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/config"
	"github.com/cognicore/textstat/pkg/textstat/normalize"
)

// NewStopwordsCmd creates the stopwords command.
func NewStopwordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords [words...]",
		Short: "List the stopword set or check words against it",
		Long: `Stopwords prints the effective stopword set, one word per line, sorted.

With --check, each argument is normalized and reported as "stopword" or
"kept".

Examples:
  textstat stopwords
  textstat stopwords --check que the gato`,
		RunE: runStopwordsCmd,
	}

	cmd.Flags().Bool("check", false, "Check the given words instead of listing the set")

	return cmd
}

// runStopwordsCmd executes the stopwords command.
func runStopwordsCmd(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	if check && len(args) == 0 {
		return fmt.Errorf("--check needs at least one word")
	}

	loader := config.Loader{Config: cfg, Logger: log.Component(logger, "stoplist")}
	stops, err := loader.Stopwords()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !check {
		for _, w := range stops.Words() {
			fmt.Fprintln(out, w)
		}
		return nil
	}

	norm := normalize.NewNormalizer()
	for _, arg := range args {
		word := norm.Normalize(arg)
		verdict := "kept"
		if stops.Contains(word) {
			verdict = "stopword"
		}
		fmt.Fprintf(out, "%s\t%s\n", word, verdict)
	}
	return nil
}
