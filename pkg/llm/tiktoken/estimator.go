// Package tiktoken implements offline token estimation. Gemini's tokenizer
// is not published, so cl100k_base is used as a close approximation; counts
// differ slightly from what the API would bill.
package tiktoken

import (
	"context"
	"fmt"
	"sync"

	"github.com/kcaldas/tokentally/pkg/llm"
	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// Estimator implements llm.Counter with a local tiktoken encoder.
type Estimator struct {
	mu      sync.Mutex
	encoder *tiktoken.Tiktoken
}

var _ llm.Counter = &Estimator{}

// NewEstimator creates an offline estimator. The encoder is loaded lazily on
// the first count.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// CountTokens encodes each text locally and returns the summed token count.
func (e *Estimator) CountTokens(ctx context.Context, model string, texts []string) (int32, error) {
	encoder, err := e.encoderFor(model)
	if err != nil {
		return 0, err
	}

	var total int32
	for _, text := range texts {
		if text == "" {
			continue
		}
		total += int32(len(encoder.Encode(text, nil, nil)))
	}
	return total, nil
}

func (e *Estimator) encoderFor(model string) (*tiktoken.Tiktoken, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.encoder != nil {
		return e.encoder, nil
	}

	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("get encoding: %w", err)
		}
	}

	e.encoder = encoder
	return encoder, nil
}
