package utils

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EmbeddingClientInterface abstracts the external embedding provider so the
// search service can be tested without network access.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
	Close() error
}

// NewEmbeddingClient builds a client for the configured provider.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiEmbeddingClient(apiKey, model)
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// NewEmbeddingClientFromEnv picks the provider from the environment.
// GEMINI_API_KEY is the primary key variable; OPENAI_API_KEY is accepted as
// the legacy fallback and switches the provider accordingly.
func NewEmbeddingClientFromEnv() (EmbeddingClientInterface, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return NewGeminiEmbeddingClient(key, os.Getenv("EMBEDDING_MODEL"))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return NewOpenAIEmbeddingClient(key, os.Getenv("EMBEDDING_MODEL")), nil
	}
	return nil, fmt.Errorf("no embedding API key configured: set GEMINI_API_KEY (or OPENAI_API_KEY for legacy)")
}
