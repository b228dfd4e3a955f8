// Package estimator runs a single sequential pass over a JSONL dataset and
// aggregates the token counts reported by a Counter.
package estimator

import (
	"context"
	"fmt"
	"os"

	"github.com/kcaldas/tokentally/pkg/dataset"
	"github.com/kcaldas/tokentally/pkg/events"
	"github.com/kcaldas/tokentally/pkg/llm"
	"github.com/kcaldas/tokentally/pkg/logging"
)

// Estimator walks a dataset and accumulates provider token counts.
type Estimator struct {
	counter llm.Counter
	bus     events.Publisher
	logger  logging.Logger
}

// New creates an estimator. bus may be nil when no progress events are
// wanted; logger falls back to the global logger when nil.
func New(counter llm.Counter, bus events.Publisher, logger logging.Logger) *Estimator {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Estimator{
		counter: counter,
		bus:     bus,
		logger:  logger,
	}
}

// Run processes the dataset at path and returns the aggregated report.
// Malformed lines are skipped with a warning; any counter failure aborts
// the run and no report is produced.
func (e *Estimator) Run(ctx context.Context, path, model string, epochs int) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file not found at path: %s", path)
		}
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	report := &Report{
		FilePath: path,
		Model:    model,
		Epochs:   epochs,
	}

	scanner := dataset.NewScanner(file, func(ordinal int, skipErr error) {
		e.logger.Warn("skipping line: invalid JSON format", "line", ordinal, "error", skipErr)
		e.publish(events.LineSkippedEvent{Ordinal: ordinal, Reason: skipErr.Error()})
	})

	for record := scanner.Next(); record != nil; record = scanner.Next() {
		tokens, err := e.counter.CountTokens(ctx, model, record.Texts())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", report.TotalExamples+1, err)
		}

		report.TotalTokens += int64(tokens)
		report.TotalExamples++
		e.publish(events.RecordCountedEvent{Ordinal: report.TotalExamples, Tokens: tokens})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	return report, nil
}

type topicEvent interface {
	Topic() string
}

func (e *Estimator) publish(event topicEvent) {
	if e.bus != nil {
		e.bus.Publish(event.Topic(), event)
	}
}
