// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// State is the executor's position in the per-pair protocol. The terminal
// state is recorded on the pair result.
type State string

// Executor states
const (
	StateRetrieving State = "RETRIEVING"
	StateGenerating State = "GENERATING"
	StateValidating State = "VALIDATING"
	StateRetrying   State = "RETRYING"
	StateAccepted   State = "ACCEPTED"
	StateFailed     State = "FAILED"
)

// AttemptRecord captures one generate/validate cycle for diagnostics.
type AttemptRecord struct {
	Attempt    int        `json:"attempt"`
	Violations Violations `json:"violations,omitempty"`
	Err        string     `json:"error,omitempty"`
}

// RunMetrics carries per-pair counters for downstream aggregation.
type RunMetrics struct {
	Mode             string          `json:"mode"`
	Attempts         int             `json:"attempts"`
	FragmentsIndexed int             `json:"fragments_indexed"`
	MatchesRetrieved int             `json:"matches_retrieved"`
	DurationMS       int64           `json:"duration_ms"`
	AttemptHistory   []AttemptRecord `json:"attempt_history,omitempty"`
	CoverLetterChars int             `json:"cover_letter_chars"`
	BulletsGenerated int             `json:"bullets_generated"`
}

// PairResult is the terminal outcome of one (job, candidate) pair. It is
// the only artifact that outlives a pair; one line of the batch JSONL output.
type PairResult struct {
	JobID       string              `json:"job_id"`
	CandidateID string              `json:"candidate_id"`
	JobPath     string              `json:"job_path,omitempty"`
	ResumePath  string              `json:"resume_path,omitempty"`
	State       State               `json:"state"`
	Success     bool                `json:"success"`
	Package     *ApplicationPackage `json:"package,omitempty"`
	Violations  Violations          `json:"violations,omitempty"`
	Errors      []string            `json:"errors,omitempty"`
	Metrics     RunMetrics          `json:"metrics"`
}
