// Package profile provides functionality to load candidate profiles and
// derive their accomplishment fragment corpus.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadError represents an error during file I/O, JSON parsing, or field
// validation of a candidate profile.
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

// Load reads a candidate profile from a JSON file and validates its
// required fields.
func Load(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := candidate.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid candidate profile",
			Cause:   err,
		}
	}

	return &candidate, nil
}

// Fragments flattens the candidate's history into the accomplishment corpus
// the index is built from: one fragment per work or project accomplishment,
// tagged with the entry it belongs to. Blank accomplishments are skipped.
func Fragments(candidate *types.CandidateProfile) []types.SourceFragment {
	if candidate == nil {
		return nil
	}

	var fragments []types.SourceFragment
	for _, exp := range candidate.WorkHistory {
		for _, a := range exp.Accomplishments {
			if strings.TrimSpace(a) == "" {
				continue
			}
			fragments = append(fragments, types.SourceFragment{
				OwnerID: exp.ID,
				Kind:    types.KindExperience,
				Text:    a,
			})
		}
	}
	for _, proj := range candidate.Projects {
		for _, a := range proj.Accomplishments {
			if strings.TrimSpace(a) == "" {
				continue
			}
			fragments = append(fragments, types.SourceFragment{
				OwnerID: proj.ID,
				Kind:    types.KindProject,
				Text:    a,
			})
		}
	}

	return fragments
}
