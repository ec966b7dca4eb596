package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/config"
)

// NewRootCmd creates the root command for textstat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textstat",
		Short: "Word and bigram statistics for text documents",
		Long: `textstat normalizes a document, removes Portuguese and English stopwords
and reports word counts, the most common words and bigrams, and
word-cloud weights.

Configuration is read from --config, ./.textstat.yaml or the XDG config
directory, then overridden by TEXTSTAT_* environment variables.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a configuration file")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewStopwordsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger from the global flags.
func setup(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
