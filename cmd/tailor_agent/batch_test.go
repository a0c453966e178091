package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/batch"
	"github.com/jonathan/resume-tailor/internal/types"
)

type stubRunner struct {
	results map[string]*types.PairResult
}

func (s *stubRunner) RunPair(_ context.Context, pair batch.Pair) *types.PairResult {
	return s.results[pair.Job.ID]
}

func TestProgressRunner_ReportsCompletionStatus(t *testing.T) {
	stub := &stubRunner{results: map[string]*types.PairResult{
		"job-a": {JobID: "job-a", CandidateID: "cand-1", Success: true},
		"job-b": {JobID: "job-b", CandidateID: "cand-2", Success: false},
	}}

	var buf bytes.Buffer
	progress := newProgressRunner(stub, 2, &buf)

	ctx := context.Background()
	resultA := progress.RunPair(ctx, batch.Pair{Job: &types.JobPosting{ID: "job-a"}})
	resultB := progress.RunPair(ctx, batch.Pair{Job: &types.JobPosting{ID: "job-b"}})

	assert.True(t, resultA.Success)
	assert.False(t, resultB.Success)

	output := buf.String()
	assert.Contains(t, output, "[1/2] job-a / cand-1: SUCCESS")
	assert.Contains(t, output, "[2/2] job-b / cand-2: FAILED")
}

func TestProgressRunner_CountsConcurrentCompletions(t *testing.T) {
	stub := &stubRunner{results: map[string]*types.PairResult{
		"job-a": {JobID: "job-a", CandidateID: "cand-1", Success: true},
	}}

	var buf bytes.Buffer
	progress := newProgressRunner(stub, 8, &safeWriter{w: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			progress.RunPair(context.Background(), batch.Pair{Job: &types.JobPosting{ID: "job-a"}})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8)
	assert.Contains(t, buf.String(), "[8/8]")
}

type safeWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *safeWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
