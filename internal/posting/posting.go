// Package posting provides functionality to load and validate job posting files.
package posting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadError represents an error during file I/O, YAML parsing, or field
// validation of a job posting.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a job posting from a YAML file and validates its required
// fields. Postings arrive as structured records; nothing here parses
// free-form posting text.
func Load(path string) (*types.JobPosting, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var job types.JobPosting
	if err := yaml.Unmarshal(content, &job); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	if err := job.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid job posting",
			Cause:   err,
		}
	}

	return &job, nil
}
