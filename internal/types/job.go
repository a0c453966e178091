// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// JobPosting represents a target job loaded from a structured YAML record.
// Immutable once loaded; shared read-only across concurrently running pairs.
type JobPosting struct {
	ID               string   `json:"job_id" yaml:"job_id" validate:"required"`
	Title            string   `json:"title" yaml:"title" validate:"required"`
	Company          string   `json:"company" yaml:"company"`
	Location         string   `json:"location,omitempty" yaml:"location"`
	Seniority        string   `json:"seniority,omitempty" yaml:"seniority"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities" validate:"required,min=1,dive,required"`
	RequiredSkills   []string `json:"required_skills" yaml:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills,omitempty" yaml:"nice_to_have_skills"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// AllSkills returns required and nice-to-have skills as one list.
// Used by checks that accept a mention of either kind.
func (j *JobPosting) AllSkills() []string {
	skills := make([]string, 0, len(j.RequiredSkills)+len(j.NiceToHaveSkills))
	skills = append(skills, j.RequiredSkills...)
	skills = append(skills, j.NiceToHaveSkills...)
	return skills
}
