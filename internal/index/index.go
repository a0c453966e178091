// Package index provides an in-memory similarity index over a candidate's
// accomplishment fragments. Vectors are stored unit-length so inner product
// equals cosine similarity. An index is built once per pair and discarded
// with it; rebuilding replaces the whole index, there is no incremental add.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/types"
)

var (
	// ErrEmptyCorpus is returned when Build is called with no fragments.
	ErrEmptyCorpus = errors.New("index: cannot build over an empty fragment corpus")
	// ErrNotBuilt is returned when Search is called before a successful Build.
	ErrNotBuilt = errors.New("index: not built")
)

// Index holds the embedded fragment corpus for one candidate.
// Read-only after Build; safe for concurrent Search calls.
type Index struct {
	enc       embedding.Client
	dimension int
	vectors   [][]float32
	fragments []types.SourceFragment
}

// Build embeds every fragment and stores the normalized vectors.
func Build(ctx context.Context, enc embedding.Client, fragments []types.SourceFragment) (*Index, error) {
	if len(fragments) == 0 {
		return nil, ErrEmptyCorpus
	}

	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
	}

	vectors, err := enc.GetEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("index: embedding corpus: %w", err)
	}
	if len(vectors) != len(fragments) {
		return nil, fmt.Errorf("index: got %d vectors for %d fragments", len(vectors), len(fragments))
	}

	dimension := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dimension {
			return nil, fmt.Errorf("index: inconsistent embedding dimension at %d: got %d, want %d", i, len(v), dimension)
		}
		embedding.NormalizeL2(v)
	}

	owned := make([]types.SourceFragment, len(fragments))
	copy(owned, fragments)

	return &Index{
		enc:       enc,
		dimension: dimension,
		vectors:   vectors,
		fragments: owned,
	}, nil
}

// Search embeds the query and returns the top-k fragments by cosine
// similarity, sorted descending. Fewer than k results are returned only
// when the index holds fewer than k entries.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]types.RetrievedMatch, error) {
	if idx == nil || len(idx.vectors) == 0 {
		return nil, ErrNotBuilt
	}
	if k <= 0 {
		return nil, fmt.Errorf("index: k must be positive, got %d", k)
	}

	qv, err := idx.enc.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("index: embedding query: %w", err)
	}
	if len(qv) != idx.dimension {
		return nil, fmt.Errorf("index: query dimension %d does not match index dimension %d", len(qv), idx.dimension)
	}
	embedding.NormalizeL2(qv)

	order := make([]int, len(idx.vectors))
	scores := make([]float32, len(idx.vectors))
	for i, v := range idx.vectors {
		order[i] = i
		scores[i] = dot(qv, v)
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}

	matches := make([]types.RetrievedMatch, k)
	for i := 0; i < k; i++ {
		j := order[i]
		matches[i] = types.RetrievedMatch{
			Fragment: idx.fragments[j],
			Query:    query,
			Score:    scores[j],
		}
	}

	return matches, nil
}

// Size returns the number of indexed fragments.
func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.fragments)
}

// Dimension returns the embedding dimension of the indexed vectors.
func (idx *Index) Dimension() int {
	if idx == nil {
		return 0
	}
	return idx.dimension
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
