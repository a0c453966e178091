// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// ApplicationPackage is the accepted output for one (job, candidate) pair:
// the tailored bullets plus a best-effort cover letter.
type ApplicationPackage struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Bullets     []GeneratedBullet `json:"bullets"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// NewApplicationPackage assembles a package for the given pair identifiers.
func NewApplicationPackage(jobID, candidateID string, bullets []GeneratedBullet, coverLetter string) *ApplicationPackage {
	return &ApplicationPackage{
		ID:          fmt.Sprintf("pkg-%s", jobID),
		JobID:       jobID,
		CandidateID: candidateID,
		Bullets:     bullets,
		CoverLetter: coverLetter,
		GeneratedAt: time.Now().UTC(),
	}
}
