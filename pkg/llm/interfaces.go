// Package llm provides the model clients behind the retrieval and
// generation fallback.
package llm

import (
	"context"
)

// GenerateOptions controls a single completion request.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// LLMClient defines the interface for model operations.
// Combines both generative (chat completion) and embedding capabilities.
// Use this interface for dependency injection to enable mocking in tests.
type LLMClient interface {
	// GenerateResponse generates a chat completion response.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, opts GenerateOptions) (string, error)

	// CreateEmbeddings generates embedding vectors for the inputs.
	CreateEmbeddings(ctx context.Context, inputs []string) ([][]float32, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// Ensure implementations satisfy LLMClient at compile time.
var (
	_ LLMClient = (*Client)(nil)
	_ LLMClient = (*AnthropicClient)(nil)
	_ LLMClient = (*MockClient)(nil)
)
