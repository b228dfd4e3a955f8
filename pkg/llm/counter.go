// Package llm defines the token counting capability used by the estimator.
package llm

import "context"

// Counter counts billable tokens for an ordered batch of text strings.
// Implementations may call a provider API or approximate locally.
type Counter interface {
	CountTokens(ctx context.Context, model string, texts []string) (int32, error)
}
