package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/config"
)

// NewFromConfig builds the generation client named by the AI config.
// The "openai" provider covers any OpenAI-compatible endpoint.
func NewFromConfig(cfg *config.AIConfig, logger *zap.Logger) (LLMClient, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewClient(&Config{
			Endpoint:       cfg.BaseURL,
			Model:          cfg.Model,
			EmbeddingModel: cfg.EmbeddingModel,
			APIKey:         cfg.APIKey,
		}, logger)
	case "anthropic":
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// NewEmbeddingClientFromConfig builds the embedding client. Embeddings always
// go through the OpenAI-compatible endpoint regardless of the generation
// provider.
func NewEmbeddingClientFromConfig(cfg *config.AIConfig, logger *zap.Logger) (*Client, error) {
	return NewClient(&Config{
		Endpoint:       cfg.BaseURL,
		Model:          cfg.Model,
		EmbeddingModel: cfg.EmbeddingModel,
		APIKey:         cfg.APIKey,
	}, logger)
}
