// Package batch fans a set of job and candidate pairs out across bounded
// worker goroutines and collects one result per pair.
package batch

import (
	"github.com/jonathan/resume-tailor/internal/types"
)

// Pair is one unit of batch work: a target job and the candidate applying
// to it, plus the file paths they were loaded from for traceability.
type Pair struct {
	JobPath    string
	ResumePath string
	Job        *types.JobPosting
	Candidate  *types.CandidateProfile
}
