// Package retrieval turns a job posting into similarity queries against a
// candidate's fragment index and merges the per-requirement results into a
// single ranked evidence set.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonathan/resume-tailor/internal/index"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ErrNoRequirements is returned when the posting lists no responsibilities
// to query with.
var ErrNoRequirements = errors.New("retrieval: job posting has no responsibilities")

// ForJob runs one similarity query per job responsibility and returns the
// combined matches in query order. Matches are not deduplicated; callers
// aggregate afterwards.
func ForJob(ctx context.Context, idx *index.Index, job *types.JobPosting, perQueryK int) ([]types.RetrievedMatch, error) {
	if job == nil || len(job.Responsibilities) == 0 {
		return nil, ErrNoRequirements
	}

	var combined []types.RetrievedMatch
	for _, responsibility := range job.Responsibilities {
		matches, err := idx.Search(ctx, responsibility, perQueryK)
		if err != nil {
			return nil, fmt.Errorf("retrieval: querying %q: %w", responsibility, err)
		}
		combined = append(combined, matches...)
	}

	return combined, nil
}

// Dedupe collapses matches that share fragment text, keeping the highest
// score seen for each. First-seen order is preserved.
func Dedupe(matches []types.RetrievedMatch) []types.RetrievedMatch {
	seen := make(map[string]int, len(matches))
	deduped := make([]types.RetrievedMatch, 0, len(matches))

	for _, m := range matches {
		at, ok := seen[m.Fragment.Text]
		if !ok {
			seen[m.Fragment.Text] = len(deduped)
			deduped = append(deduped, m)
			continue
		}
		if m.Score > deduped[at].Score {
			deduped[at] = m
		}
	}

	return deduped
}

// Aggregate dedupes the combined matches, orders them by score descending
// and truncates to limit. A limit of zero or less means no truncation.
func Aggregate(matches []types.RetrievedMatch, limit int) []types.RetrievedMatch {
	merged := Dedupe(matches)

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Score > merged[b].Score
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
