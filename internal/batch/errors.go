// Package batch fans a set of job and candidate pairs out across bounded
// worker goroutines and collects one result per pair.
package batch

import "fmt"

// LoadError represents an error during file I/O, YAML parsing, or field
// validation of a batch spec.
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
