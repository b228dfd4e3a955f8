package genai

import (
	"context"
	"strings"
	"testing"

	"github.com/kcaldas/tokentally/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestClient_CountTokens(t *testing.T) {
	// This test will skip if no Vertex AI context is configured
	cfg, err := config.NewManager().GetVertexConfig()
	if err != nil {
		t.Skip("Skipping CountTokens test - Vertex AI environment not configured:", err)
	}

	ctx := context.Background()
	client, err := NewClient(ctx, cfg)
	if err != nil {
		t.Skip("Skipping CountTokens test - no genai client available:", err)
	}

	count, err := client.CountTokens(ctx, "gemini-2.0-flash-001", []string{
		"You are a helpful assistant.",
		"The quick brown fox jumps over the lazy dog.",
	})

	// If we get an authentication error, skip the test
	if err != nil && (containsError(err, "API") || containsError(err, "authentication") || containsError(err, "credential")) {
		t.Skip("Skipping CountTokens test - API credentials not configured:", err)
	}

	assert.NoError(t, err)
	assert.Greater(t, count, int32(0), "Should have counted some tokens")

	t.Logf("Token count for test texts: %d total tokens", count)
}

func containsError(err error, substr string) bool {
	return err != nil && strings.Contains(err.Error(), substr)
}
