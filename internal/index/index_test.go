package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/types"
)

func corpus() []types.SourceFragment {
	return []types.SourceFragment{
		{OwnerID: "exp-1", Kind: types.KindExperience, Text: "Reduced API latency by 40% through caching"},
		{OwnerID: "exp-1", Kind: types.KindExperience, Text: "Led migration of monolith to microservices"},
		{OwnerID: "exp-2", Kind: types.KindExperience, Text: "Built CI/CD pipelines for 12 services"},
		{OwnerID: "proj-1", Kind: types.KindProject, Text: "Implemented collaborative text editor with CRDTs"},
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), nil)

	assert.Nil(t, idx)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuild_IndexesAllFragments(t *testing.T) {
	enc := embedding.NewMockClient()

	idx, err := Build(context.Background(), enc, corpus())

	require.NoError(t, err)
	assert.Equal(t, 4, idx.Size())
	assert.Equal(t, 64, idx.Dimension())
}

func TestSearch_NotBuilt(t *testing.T) {
	var idx *Index

	matches, err := idx.Search(context.Background(), "anything", 3)

	assert.Nil(t, matches)
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestSearch_ExactTextScoresHighest(t *testing.T) {
	enc := embedding.NewMockClient()
	frags := corpus()
	idx, err := Build(context.Background(), enc, frags)
	require.NoError(t, err)

	matches, err := idx.Search(context.Background(), frags[2].Text, 4)

	require.NoError(t, err)
	require.Len(t, matches, 4)
	assert.Equal(t, frags[2].Text, matches[0].Fragment.Text)
	assert.InDelta(t, 1.0, float64(matches[0].Score), 1e-4)
}

func TestSearch_ScoresSortedDescending(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), corpus())
	require.NoError(t, err)

	matches, err := idx.Search(context.Background(), "database performance tuning", 4)

	require.NoError(t, err)
	require.Len(t, matches, 4)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestSearch_FewerEntriesThanK(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), corpus()[:2])
	require.NoError(t, err)

	matches, err := idx.Search(context.Background(), "kubernetes", 10)

	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestSearch_InvalidK(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), corpus())
	require.NoError(t, err)

	_, err = idx.Search(context.Background(), "query", 0)

	assert.Error(t, err)
}

func TestSearch_RecordsQuery(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), corpus())
	require.NoError(t, err)

	matches, err := idx.Search(context.Background(), "shipping features", 2)

	require.NoError(t, err)
	for _, m := range matches {
		assert.Equal(t, "shipping features", m.Query)
	}
}

// Two candidates sharing owner IDs must never leak fragments into each
// other's results: every search runs against a single candidate's index.
func TestSearch_IndexesAreIsolated(t *testing.T) {
	enc := embedding.NewMockClient()
	alice := []types.SourceFragment{
		{OwnerID: "exp-1", Kind: types.KindExperience, Text: "Designed fraud detection models"},
		{OwnerID: "exp-2", Kind: types.KindExperience, Text: "Scaled feature store to 2B rows"},
	}
	bob := []types.SourceFragment{
		{OwnerID: "exp-1", Kind: types.KindExperience, Text: "Maintained legacy billing system"},
		{OwnerID: "exp-2", Kind: types.KindExperience, Text: "Wrote Terraform modules for AWS accounts"},
	}

	aliceIdx, err := Build(context.Background(), enc, alice)
	require.NoError(t, err)
	bobIdx, err := Build(context.Background(), enc, bob)
	require.NoError(t, err)

	aliceTexts := map[string]bool{alice[0].Text: true, alice[1].Text: true}

	matches, err := aliceIdx.Search(context.Background(), "machine learning at scale", 2)
	require.NoError(t, err)
	for _, m := range matches {
		assert.True(t, aliceTexts[m.Fragment.Text])
	}

	matches, err = bobIdx.Search(context.Background(), "machine learning at scale", 2)
	require.NoError(t, err)
	for _, m := range matches {
		assert.False(t, aliceTexts[m.Fragment.Text])
	}
}

func TestSearch_ScoresWithinCosineRange(t *testing.T) {
	idx, err := Build(context.Background(), embedding.NewMockClient(), corpus())
	require.NoError(t, err)

	matches, err := idx.Search(context.Background(), "observability dashboards", 4)

	require.NoError(t, err)
	for _, m := range matches {
		assert.LessOrEqual(t, m.Score, float32(1.0001))
		assert.GreaterOrEqual(t, m.Score, float32(-1.0001))
	}
}
