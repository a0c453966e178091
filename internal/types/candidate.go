// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// CandidateProfile represents a candidate's structured history loaded from JSON.
// Immutable once loaded; shared read-only across concurrently running pairs.
type CandidateProfile struct {
	ID          string           `json:"candidate_id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Email       string           `json:"email,omitempty"`
	Skills      []string         `json:"skills"`
	WorkHistory []WorkExperience `json:"work_experiences"`
	Projects    []Project        `json:"projects,omitempty"`
}

// WorkExperience is one employment entry in a candidate's history.
type WorkExperience struct {
	ID              string   `json:"id" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Role            string   `json:"role"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Accomplishments []string `json:"achievements"`
}

// Project is one project entry in a candidate's history.
type Project struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Accomplishments []string `json:"achievements"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Employers returns the distinct company names in the candidate's work history.
func (c *CandidateProfile) Employers() []string {
	seen := make(map[string]bool)
	employers := make([]string, 0, len(c.WorkHistory))
	for _, exp := range c.WorkHistory {
		if exp.Company == "" || seen[exp.Company] {
			continue
		}
		seen[exp.Company] = true
		employers = append(employers, exp.Company)
	}
	return employers
}

// ExperienceByID returns the work experience with the given ID, or nil.
func (c *CandidateProfile) ExperienceByID(id string) *WorkExperience {
	for i := range c.WorkHistory {
		if c.WorkHistory[i].ID == id {
			return &c.WorkHistory[i]
		}
	}
	return nil
}
