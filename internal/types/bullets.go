// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GeneratedBullet is one tailored resume line produced by the generation
// step. Immutable once produced; a failed validation discards the whole
// attempt and generates fresh bullets, it never mutates these in place.
type GeneratedBullet struct {
	ID                string   `json:"id"`
	Text              string   `json:"text"`
	SkillsClaimed     []string `json:"skills_claimed"`
	SourceReferenceID string   `json:"source_reference_id,omitempty"`
}
