package provider

import (
	"context"

	"github.com/talentsift/talentsift/config"
	openai_provider "github.com/talentsift/talentsift/provider/openai"
)

// Provider is the interface all model endpoints must satisfy. Both the
// reranking LLM and the embedding model speak the OpenAI wire format, so a
// single implementation serves both roles with different configuration.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}

// NewRerankProvider builds the chat-completion client used for reranking.
// The credential is checked on first call, not here, so a misconfigured
// process still boots and reports the problem per request.
func NewRerankProvider(cfg config.LLMConfig) Provider {
	return openai_provider.NewClient(openai_provider.Options{
		APIKey:      cfg.APIKey,
		KeyName:     "llm.api_key",
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})
}

// NewEmbeddingProvider builds the embedding client.
func NewEmbeddingProvider(cfg config.EmbeddingConfig) Provider {
	return openai_provider.NewClient(openai_provider.Options{
		APIKey:  cfg.APIKey,
		KeyName: "embedding.api_key",
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
}
