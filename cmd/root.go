package cmd

import (
	"jsanalyzer/internal/analyzer"
	"jsanalyzer/internal/config"
	"jsanalyzer/internal/logging"
	"jsanalyzer/internal/parser"

	"github.com/spf13/cobra"
)

// Build metadata, set from main.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// NewRootCmd creates the js-static-analyzer command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "js-static-analyzer",
		Short: "A simple JavaScript static analyzer",
		Long: "Parses a JavaScript module and reports how many top-level function declarations,\n" +
			"variable declarations and import statements it contains.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}
	rootCmd.Flags().StringP("file", "f", "", "JavaScript module to analyze (env: "+config.EnvPrefix+"FILE)")
	return rootCmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("starting", "version", Version, "commit", GitCommit, "built", BuildTime, "file", cfg.File)

	loader := parser.NewLoader(cmd.ErrOrStderr(), logger)
	module, err := loader.LoadFile(cfg.File)
	if err != nil {
		return err
	}

	for _, item := range module.Body {
		span := item.Span()
		logger.Debug("top-level item", "line", span.Start.Line, "category", analyzer.Classify(item).String())
	}

	counts := analyzer.CountTopLevel(module)
	return analyzer.WriteReport(cmd.OutOrStdout(), counts)
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
