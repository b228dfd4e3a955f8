package cli

import (
	"github.com/joho/godotenv"
	"github.com/kcaldas/tokentally/pkg/logging"
	"github.com/spf13/cobra"
)

const (
	defaultDatasetPath = "data/training.jsonl"
	defaultModel       = "gemini-2.0-flash-001"
	defaultEpochs      = 3
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the tokentally root command.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "tokentally [dataset.jsonl]",
		Short: "Estimate training token usage for a Gemini JSONL dataset",
		Long: `Tokentally reads a Gemini fine-tuning dataset in JSONL format, asks the
Vertex AI token-counting API for the billable token count of every example,
and prints totals with a multi-epoch training projection.`,
		Version: "dev",
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure logger based on flags
			var logger logging.Logger
			if quiet {
				logger = logging.NewQuietLogger()
			} else if verbose {
				logger = logging.NewVerboseLogger()
			} else {
				logger = logging.NewDefaultLogger()
			}
			logging.SetGlobalLogger(logger)

			// Pick up GOOGLE_CLOUD_* and friends from a local .env if present
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	cmd.Flags().StringVar(&opts.model, "model", defaultModel, "base Gemini model used for tuning")
	cmd.Flags().IntVar(&opts.epochs, "epochs", defaultEpochs, "number of training epochs for the cost projection")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "approximate counts locally with tiktoken instead of the API")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "also write the report as YAML to this path")

	return cmd
}
