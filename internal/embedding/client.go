// Package embedding provides clients for the sentence-embedding collaborator.
// Implementations are stateless and safe for concurrent use across pairs.
package embedding

import (
	"context"
	"fmt"
)

// Client defines the interface for generating text embeddings.
type Client interface {
	// GetEmbedding generates an embedding vector for the given text.
	GetEmbedding(ctx context.Context, text string) ([]float32, error)

	// GetEmbeddings generates embedding vectors for multiple texts in a batch.
	// More efficient than calling GetEmbedding repeatedly.
	GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// NewClient creates an embedding client for the given provider.
// dimensions applies to providers that support requesting a specific
// output dimension; zero selects the provider default.
func NewClient(ctx context.Context, provider, apiKey string, dimensions int) (Client, error) {
	switch provider {
	case "openai":
		opts := []OpenAIOption{}
		if dimensions > 0 {
			opts = append(opts, WithDimensions(dimensions))
		}
		return NewOpenAIClient(apiKey, opts...), nil
	case "gemini", "":
		return NewGeminiClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", provider)
	}
}
