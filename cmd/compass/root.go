package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/career-compass-bot/internal/config"
	"github.com/aliskhannn/career-compass-bot/internal/repository"
)

var (
	version = "dev"
	commit  = "none"
)

// options are the flags shared by all commands.
type options struct {
	dataDir string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "compass",
		Short:        "Career Compass content tools",
		Long:         "compass searches the career portal content, scores the personality quiz and serves the JSON API.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", "", "content data directory (default from config)")

	root.AddCommand(
		newSearchCmd(opts),
		newScoreCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compass %s (commit: %s)\n", version, commit)
		},
	}
}

// loadContent reads configuration without secrets and loads the content files.
func (o *options) loadContent() (*config.Config, *repository.ContentRepository, error) {
	cfg, err := config.LoadLocal()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}

	content, err := repository.NewContentRepository(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading content: %w", err)
	}
	return cfg, content, nil
}
