package llm

import "fmt"

// APICallError indicates the provider API kept failing after every retry
// attempt was exhausted.
type APICallError struct {
	Model    string
	Attempts int
	Cause    error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("generation with %s failed after %d attempts: %v", e.Model, e.Attempts, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
