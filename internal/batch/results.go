// Package batch fans a set of job and candidate pairs out across bounded
// worker goroutines and collects one result per pair.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/types"
)

// WriteResults writes one JSON-encoded PairResult per line, creating the
// parent directory when needed. Line-delimited output keeps downstream
// aggregation a streaming job.
func WriteResults(path string, results []types.PairResult) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return fmt.Errorf("encoding result %d: %w", i+1, err)
		}
	}

	return nil
}

// Summary aggregates a batch's outcomes for the CLI report.
type Summary struct {
	Total         int
	Succeeded     int
	Failed        int
	TotalAttempts int
}

// Summarize tallies per-pair outcomes.
func Summarize(results []types.PairResult) Summary {
	s := Summary{Total: len(results)}
	for i := range results {
		if results[i].Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
		s.TotalAttempts += results[i].Metrics.Attempts
	}
	return s
}
