package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModel = "text-embedding-004"
	// geminiBatchLimit is the API's maximum number of contents per batch call.
	geminiBatchLimit = 100
)

// GeminiClient generates embeddings via the Gemini embedding API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiOption configures the GeminiClient.
type GeminiOption func(*GeminiClient)

// WithGeminiModel overrides the default embedding model.
func WithGeminiModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		c.model = model
	}
}

// NewGeminiClient creates a Gemini embedding client.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	gc := &GeminiClient{
		client: client,
		model:  defaultGeminiModel,
	}
	for _, opt := range opts {
		opt(gc)
	}

	return gc, nil
}

// GetEmbedding embeds a single query string.
func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	em := c.client.EmbeddingModel(c.model)
	em.TaskType = genai.TaskTypeRetrievalQuery

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embedding: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini embedding: empty response")
	}

	return resp.Embedding.Values, nil
}

// GetEmbeddings embeds document texts, batching to stay under the API limit.
func (c *GeminiClient) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}

	em := c.client.EmbeddingModel(c.model)
	em.TaskType = genai.TaskTypeRetrievalDocument

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += geminiBatchLimit {
		end := min(start+geminiBatchLimit, len(texts))

		batch := em.NewBatch()
		for _, t := range texts[start:end] {
			batch.AddContent(genai.Text(t))
		}

		resp, err := em.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("gemini batch embedding: %w", err)
		}
		if len(resp.Embeddings) != end-start {
			return nil, fmt.Errorf("gemini batch embedding: got %d embeddings for %d texts", len(resp.Embeddings), end-start)
		}

		for _, e := range resp.Embeddings {
			out = append(out, e.Values)
		}
	}

	return out, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var _ Client = (*GeminiClient)(nil)
