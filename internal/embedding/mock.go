package embedding

import (
	"context"
	"crypto/sha256"
	"fmt"
)

// MockClient implements Client for tests. It derives deterministic
// unit-length embeddings from the input text hash, so identical texts always
// embed identically and no network is involved.
type MockClient struct {
	dimensions int
}

// NewMockClient creates a mock embedding client with a small default dimension.
func NewMockClient() *MockClient {
	return &MockClient{dimensions: 64}
}

// NewMockClientWithDimensions creates a mock client with custom dimensions.
func NewMockClientWithDimensions(dimensions int) *MockClient {
	return &MockClient{dimensions: dimensions}
}

// GetEmbedding generates a deterministic embedding from the text hash.
func (c *MockClient) GetEmbedding(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	return c.deterministicEmbedding(text), nil
}

// GetEmbeddings generates deterministic embeddings for multiple texts.
func (c *MockClient) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}

	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("text at index %d cannot be empty", i)
		}
		embeddings[i] = c.deterministicEmbedding(text)
	}
	return embeddings, nil
}

func (c *MockClient) deterministicEmbedding(text string) []float32 {
	hash := sha256.Sum256([]byte(text))
	embedding := make([]float32, c.dimensions)

	for i := 0; i < c.dimensions; i++ {
		// Cycle hash bytes, offset per round so vectors longer than the
		// digest do not simply repeat.
		byteIdx := (i + i/len(hash)) % len(hash)
		embedding[i] = (float32(hash[byteIdx]) / 127.5) - 1.0
	}

	NormalizeL2(embedding)
	return embedding
}

var _ Client = (*MockClient)(nil)
