// Package batch fans a set of job and candidate pairs out across bounded
// worker goroutines and collects one result per pair.
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-tailor/internal/posting"
	"github.com/jonathan/resume-tailor/internal/profile"
)

const (
	defaultMaxConcurrent = 3
	defaultOutputDir     = "outputs"
)

// PairSpec names the input files for one pair.
type PairSpec struct {
	Job    string `yaml:"job" validate:"required"`
	Resume string `yaml:"resume" validate:"required"`
}

// Spec describes a batch run, loaded from YAML.
type Spec struct {
	BatchID       string     `yaml:"batch_id"`
	Pairs         []PairSpec `yaml:"pairs" validate:"required,min=1,dive"`
	MaxConcurrent int        `yaml:"max_concurrent"`
	OutputDir     string     `yaml:"output_dir"`
}

// LoadSpec reads a batch spec from a YAML file, fills defaults, and
// validates it. A missing batch_id gets a generated one so every run has a
// distinct results artifact.
func LoadSpec(path string) (*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var spec Spec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	if spec.MaxConcurrent < 1 {
		spec.MaxConcurrent = defaultMaxConcurrent
	}
	if spec.OutputDir == "" {
		spec.OutputDir = defaultOutputDir
	}
	if spec.BatchID == "" {
		spec.BatchID = fmt.Sprintf("batch-%s", uuid.NewString()[:8])
	}

	if err := spec.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid batch spec",
			Cause:   err,
		}
	}

	return &spec, nil
}

// Validate validates the Spec using the validator.
func (s *Spec) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// LoadPairs loads every pair's job posting and candidate profile. The whole
// batch is rejected up front when any input file is unreadable; partial
// batches are harder to reason about than a fixed spec.
func (s *Spec) LoadPairs() ([]Pair, error) {
	pairs := make([]Pair, 0, len(s.Pairs))
	for i, ps := range s.Pairs {
		job, err := posting.Load(ps.Job)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i+1, err)
		}
		candidate, err := profile.Load(ps.Resume)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i+1, err)
		}
		pairs = append(pairs, Pair{
			JobPath:    ps.Job,
			ResumePath: ps.Resume,
			Job:        job,
			Candidate:  candidate,
		})
	}
	return pairs, nil
}

// ResultsPath is where this batch's JSONL artifact goes.
func (s *Spec) ResultsPath() string {
	return filepath.Join(s.OutputDir, fmt.Sprintf("%s_results.jsonl", s.BatchID))
}
