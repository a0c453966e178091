// Package batch fans a set of job and candidate pairs out across bounded
// worker goroutines and collects one result per pair.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/jonathan/resume-tailor/internal/types"
)

// PairRunner executes one pair to a terminal result. Satisfied by
// agent.Executor; tests substitute fakes.
type PairRunner interface {
	RunPair(ctx context.Context, pair Pair) *types.PairResult
}

// Runner fans pairs out under a weighted-semaphore admission gate. One
// goroutine per pair; at most maxConcurrent pairs run at a time; results
// come back in input order regardless of completion order.
type Runner struct {
	runner        PairRunner
	maxConcurrent int
}

// NewRunner builds a Runner over the given pair executor.
func NewRunner(runner PairRunner, maxConcurrent int) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{
		runner:        runner,
		maxConcurrent: maxConcurrent,
	}
}

// Run executes every pair and returns one result per input pair, in input
// order. There is no fail-fast: a pair's failure (or panic) becomes its
// result and the rest of the batch proceeds.
func (r *Runner) Run(ctx context.Context, pairs []Pair) []types.PairResult {
	results := make([]types.PairResult, len(pairs))
	sem := semaphore.NewWeighted(int64(r.maxConcurrent))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		go func(i int, pair Pair) {
			defer wg.Done()

			// Acquire fails only when ctx is cancelled while queued.
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = *failureResult(pair, fmt.Errorf("pair cancelled while queued: %w", err))
				return
			}
			defer sem.Release(1)

			results[i] = *r.runPair(ctx, pair)
		}(i, pairs[i])
	}
	wg.Wait()

	return results
}

// runPair guards a single execution. The executor contains its own panics,
// but a faulty PairRunner must not take the batch down with it.
func (r *Runner) runPair(ctx context.Context, pair Pair) (result *types.PairResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = failureResult(pair, fmt.Errorf("pair runner panicked: %v", rec))
		}
	}()

	if res := r.runner.RunPair(ctx, pair); res != nil {
		return res
	}
	return failureResult(pair, errors.New("pair runner returned no result"))
}

func failureResult(pair Pair, err error) *types.PairResult {
	result := &types.PairResult{
		JobPath:    pair.JobPath,
		ResumePath: pair.ResumePath,
		State:      types.StateFailed,
		Errors:     []string{err.Error()},
	}
	if pair.Job != nil {
		result.JobID = pair.Job.ID
	}
	if pair.Candidate != nil {
		result.CandidateID = pair.Candidate.ID
	}
	return result
}
