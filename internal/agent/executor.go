// Package agent runs the retrieve/generate/validate protocol for one job
// and candidate pair.
package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/resume-tailor/internal/batch"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/index"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/jonathan/resume-tailor/internal/retrieval"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// Executor drives one pair through
// RETRIEVING -> GENERATING -> VALIDATING -> {ACCEPTED | RETRYING | FAILED}.
// It holds no per-pair state; one instance is shared across a whole batch and
// every RunPair call builds its own index and attempt history.
type Executor struct {
	client llm.Client
	enc    embedding.Client
	cfg    config.Config
	mode   Mode
	limits validation.Limits
	out    io.Writer
}

// NewExecutor builds an executor for the given mode. FullMode needs both
// collaborators; BaselineMode never retrieves and accepts a nil encoder.
func NewExecutor(client llm.Client, enc embedding.Client, cfg config.Config, mode Mode) (*Executor, error) {
	if client == nil {
		return nil, errors.New("agent: llm client is required")
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}
	if mode == FullMode && enc == nil {
		return nil, errors.New("agent: full mode requires an embedding client")
	}

	return &Executor{
		client: client,
		enc:    enc,
		cfg:    cfg,
		mode:   mode,
		limits: validation.Limits{
			MinBulletChars:      cfg.MinBulletChars,
			MaxBulletChars:      cfg.MaxBulletChars,
			MinCoverageRatio:    cfg.MinCoverageRatio,
			MinCoverLetterChars: cfg.MinCoverLetterChars,
		},
		out: os.Stdout,
	}, nil
}

// SetOutput redirects verbose progress output. Defaults to stdout.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

// RunPair executes one pair to a terminal result. It never returns an error
// and never panics outward: infrastructure failures and panics become a
// FAILED result so sibling pairs in a batch are unaffected.
func (e *Executor) RunPair(ctx context.Context, pair batch.Pair) (result *types.PairResult) {
	start := time.Now()
	result = &types.PairResult{
		JobPath:    pair.JobPath,
		ResumePath: pair.ResumePath,
		Metrics:    types.RunMetrics{Mode: string(e.mode)},
	}
	defer func() {
		if rec := recover(); rec != nil {
			result = e.fail(result, fmt.Errorf("executor panicked: %v", rec))
		}
		result.Metrics.DurationMS = time.Since(start).Milliseconds()
	}()

	if pair.Job == nil || pair.Job.ID == "" || pair.Candidate == nil || pair.Candidate.ID == "" {
		return e.fail(result, errors.New("pair is missing job or candidate identity"))
	}
	result.JobID = pair.Job.ID
	result.CandidateID = pair.Candidate.ID

	if e.mode == BaselineMode {
		return e.runBaseline(ctx, pair, result)
	}
	return e.runFull(ctx, pair, result)
}

// runFull is the retrieval-augmented path with the validation retry loop.
func (e *Executor) runFull(ctx context.Context, pair batch.Pair, result *types.PairResult) *types.PairResult {
	result.State = types.StateRetrieving
	e.logf("[%s] Step 1/4: Building fragment index...\n", pair.Job.ID)

	fragments := profile.Fragments(pair.Candidate)
	idx, err := index.Build(ctx, e.enc, fragments)
	if err != nil {
		return e.fail(result, err)
	}
	result.Metrics.FragmentsIndexed = idx.Size()

	combined, err := retrieval.ForJob(ctx, idx, pair.Job, e.cfg.TopKPerRequirement)
	if err != nil {
		return e.fail(result, err)
	}
	matches := retrieval.Aggregate(combined, e.cfg.TopKOverall)
	result.Metrics.MatchesRetrieved = len(matches)
	e.logf("[%s] Step 2/4: Retrieved %d context fragments across %d responsibilities\n",
		pair.Job.ID, len(matches), len(pair.Job.Responsibilities))

	var bullets []types.GeneratedBullet
	var lastViolations types.Violations
	feedback := ""
	accepted := false

	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		result.State = types.StateGenerating
		result.Metrics.Attempts = attempt
		e.logf("[%s] Step 3/4: Generating bullets (attempt %d/%d)...\n", pair.Job.ID, attempt, e.cfg.MaxRetries)

		generated, parseViolations, err := generation.Bullets(ctx, e.client, generation.BulletRequest{
			Job:         pair.Job,
			Candidate:   pair.Candidate,
			Matches:     matches,
			Feedback:    feedback,
			MinChars:    e.cfg.MinBulletChars,
			MaxChars:    e.cfg.MaxBulletChars,
			MaxAttempts: e.cfg.NetworkAttempts,
		})
		if err != nil {
			// A transport failure that survived its own network retries
			// consumes one validation attempt rather than killing the pair.
			result.Metrics.AttemptHistory = append(result.Metrics.AttemptHistory, types.AttemptRecord{
				Attempt: attempt,
				Err:     err.Error(),
			})
			if ctx.Err() != nil {
				return e.fail(result, ctx.Err())
			}
			e.logf("[%s] Attempt %d failed: %v\n", pair.Job.ID, attempt, err)
			continue
		}

		result.State = types.StateValidating
		violations := append(parseViolations, validation.ValidateAttempt(generated, pair.Job, pair.Candidate, e.limits)...)
		result.Metrics.AttemptHistory = append(result.Metrics.AttemptHistory, types.AttemptRecord{
			Attempt:    attempt,
			Violations: violations,
		})
		lastViolations = violations

		if !violations.HasHard() {
			bullets = generated
			accepted = true
			break
		}

		e.logf("[%s] Attempt %d: %d hard violations, %d warnings\n",
			pair.Job.ID, attempt, len(violations.Hard()), len(violations.Soft()))
		if attempt < e.cfg.MaxRetries {
			result.State = types.StateRetrying
			feedback = validation.FormatFeedback(violations)
		}
	}

	if !accepted {
		result.Violations = lastViolations
		return e.fail(result, fmt.Errorf("validation retries exhausted after %d attempts", e.cfg.MaxRetries))
	}

	return e.finishAccepted(ctx, pair, result, bullets)
}

// runBaseline is the evaluation baseline: no retrieval, one generation pass,
// validation findings recorded but not enforced.
func (e *Executor) runBaseline(ctx context.Context, pair batch.Pair, result *types.PairResult) *types.PairResult {
	result.State = types.StateGenerating
	result.Metrics.Attempts = 1
	e.logf("[%s] Generating bullets (baseline, single pass)...\n", pair.Job.ID)

	bullets, parseViolations, err := generation.BaselineBullets(ctx, e.client, generation.BulletRequest{
		Job:         pair.Job,
		Candidate:   pair.Candidate,
		MinChars:    e.cfg.MinBulletChars,
		MaxChars:    e.cfg.MaxBulletChars,
		MaxAttempts: e.cfg.NetworkAttempts,
	})
	if err != nil {
		return e.fail(result, err)
	}
	result.Metrics.AttemptHistory = append(result.Metrics.AttemptHistory, types.AttemptRecord{
		Attempt:    1,
		Violations: parseViolations,
	})
	if len(bullets) == 0 {
		result.Violations = parseViolations
		return e.fail(result, errors.New("baseline generation produced no usable bullets"))
	}

	return e.finishAccepted(ctx, pair, result, bullets)
}

// finishAccepted runs the best-effort cover letter pass, assembles the
// package, and records the aggregate validation findings on the result.
func (e *Executor) finishAccepted(ctx context.Context, pair batch.Pair, result *types.PairResult, bullets []types.GeneratedBullet) *types.PairResult {
	e.logf("[%s] Step 4/4: Generating cover letter...\n", pair.Job.ID)

	var residual types.Violations
	letter, err := generation.CoverLetter(ctx, e.client, pair.Job, pair.Candidate, bullets, e.cfg.NetworkAttempts)
	if err != nil {
		if ctx.Err() != nil {
			return e.fail(result, ctx.Err())
		}
		// One pass only. A tailored resume without a letter is still a
		// partial success, so this stays a warning.
		residual = append(residual, types.Violation{
			Rule:     types.RuleCoverLetter,
			Severity: types.SeveritySoft,
			Details:  fmt.Sprintf("cover letter generation failed: %v", err),
		})
	}

	pkg := types.NewApplicationPackage(pair.Job.ID, pair.Candidate.ID, bullets, letter)
	result.Package = pkg
	result.Violations = append(residual, validation.ValidatePackage(pkg, pair.Job, pair.Candidate, e.limits)...)
	result.State = types.StateAccepted
	result.Success = true
	result.Metrics.BulletsGenerated = len(bullets)
	result.Metrics.CoverLetterChars = len([]rune(letter))

	e.logf("[%s] Accepted: %d bullets, %d residual warnings\n",
		pair.Job.ID, len(bullets), len(result.Violations.Soft()))
	return result
}

func (e *Executor) fail(result *types.PairResult, err error) *types.PairResult {
	result.State = types.StateFailed
	result.Success = false
	result.Errors = append(result.Errors, err.Error())
	return result
}

//nolint:errcheck // progress output; write errors are not recoverable
func (e *Executor) logf(format string, args ...any) {
	if e.cfg.Verbose && e.out != nil {
		fmt.Fprintf(e.out, format, args...)
	}
}

var _ batch.PairRunner = (*Executor)(nil)
