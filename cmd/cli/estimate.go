package cli

import (
	"fmt"
	"strings"

	"github.com/kcaldas/tokentally/pkg/config"
	"github.com/kcaldas/tokentally/pkg/estimator"
	"github.com/kcaldas/tokentally/pkg/events"
	"github.com/kcaldas/tokentally/pkg/fileops"
	"github.com/kcaldas/tokentally/pkg/llm"
	genaiClient "github.com/kcaldas/tokentally/pkg/llm/genai"
	"github.com/kcaldas/tokentally/pkg/llm/tiktoken"
	"github.com/kcaldas/tokentally/pkg/logging"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	model      string
	epochs     int
	offline    bool
	reportPath string
}

// runEstimate performs one estimation run and prints the report.
func runEstimate(cmd *cobra.Command, args []string, opts *estimateOptions) error {
	logger := logging.GetGlobalLogger()
	files := fileops.NewManager()

	path := resolveDatasetPath(args)

	// The file check comes first so a bad path never costs an API call.
	if !files.FileExists(path) {
		return fmt.Errorf("dataset file not found at path: %s", path)
	}

	counter, err := buildCounter(cmd, opts, logger)
	if err != nil {
		return err
	}

	bus := events.NewEventBus()
	bus.Subscribe(events.RecordCountedEvent{}.Topic(), func(event interface{}) {
		if e, ok := event.(events.RecordCountedEvent); ok {
			logger.Debug("record counted", "ordinal", e.Ordinal, "tokens", e.Tokens)
		}
	})

	report, err := estimator.New(counter, bus, logger).Run(cmd.Context(), path, opts.model, opts.epochs)
	if err != nil {
		return err
	}

	report.Render(cmd.OutOrStdout())

	if opts.reportPath != "" {
		if err := files.WriteObjectAsYAML(opts.reportPath, report.FileReport()); err != nil {
			return fmt.Errorf("error writing report file: %w", err)
		}
		logger.Info("report written", "path", opts.reportPath)
	}

	return nil
}

// resolveDatasetPath applies the default for a missing, empty, or
// whitespace-only argument and expands a leading ~.
func resolveDatasetPath(args []string) string {
	path := defaultDatasetPath
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		path = args[0]
	}
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return path
}

func buildCounter(cmd *cobra.Command, opts *estimateOptions, logger logging.Logger) (llm.Counter, error) {
	if opts.offline {
		logger.Info("counting tokens offline", "model", opts.model)
		return tiktoken.NewEstimator(), nil
	}

	vertexCfg, err := config.NewManager().GetVertexConfig()
	if err != nil {
		return nil, err
	}

	client, err := genaiClient.NewClient(cmd.Context(), vertexCfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing GenAI client, check project/location and credential scope: %w", err)
	}

	logger.Info("counting tokens", "model", opts.model, "project", vertexCfg.ProjectID, "location", vertexCfg.Location)
	return client, nil
}
