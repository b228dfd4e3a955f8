// Package genai implements token counting against the Vertex AI backend of
// Google's unified GenAI package. The counts it returns are the official
// ones used for tuning billing.
package genai

import (
	"context"
	"errors"
	"fmt"

	"github.com/kcaldas/tokentally/pkg/config"
	"github.com/kcaldas/tokentally/pkg/llm"
	"google.golang.org/genai"
)

// Client implements llm.Counter using a Vertex AI GenAI client.
type Client struct {
	client *genai.Client
}

var _ llm.Counter = &Client{}

// NewClient creates a Vertex AI token counting client. Construction fails
// when the underlying client cannot be built, typically because application
// default credentials are missing or lack the required scope.
func NewClient(ctx context.Context, cfg config.VertexConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Vertex AI client: %w", err)
	}

	return &Client{client: client}, nil
}

// CountTokens submits texts as user contents and returns the provider's
// total token count for the batch.
func (c *Client) CountTokens(ctx context.Context, model string, texts []string) (int32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		parts := []*genai.Part{genai.NewPartFromText(text)}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	resp, err := c.client.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return 0, fmt.Errorf("API error counting tokens, check model name or quotas: %w", err)
		}
		return 0, fmt.Errorf("error counting tokens: %w", err)
	}

	return resp.TotalTokens, nil
}
