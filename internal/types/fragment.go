// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceKind tags where a fragment came from in the candidate's history.
type SourceKind string

// Source kinds for accomplishment fragments
const (
	KindExperience SourceKind = "experience"
	KindProject    SourceKind = "project"
)

// SourceFragment is one atomic accomplishment string from a candidate's
// work or project history. Immutable; many fragments belong to one candidate.
type SourceFragment struct {
	OwnerID string     `json:"owner_id"`
	Kind    SourceKind `json:"kind"`
	Text    string     `json:"text"`
}

// RetrievedMatch is the output of one similarity query: the fragment that
// matched, the query it matched against, and a cosine similarity in [-1, 1].
// Produced fresh per query, never persisted.
type RetrievedMatch struct {
	Fragment SourceFragment `json:"fragment"`
	Query    string         `json:"query"`
	Score    float32        `json:"score"`
}
