// Package agent runs the retrieve/generate/validate protocol for one job
// and candidate pair.
package agent

import "fmt"

// Mode selects how a pair is executed.
type Mode string

// Execution modes. FullMode retrieves context per responsibility and
// enforces the validation retry loop. BaselineMode inlines the raw resume,
// generates once, and records validation findings without enforcing them.
const (
	FullMode     Mode = "full"
	BaselineMode Mode = "baseline"
)

// ParseMode converts a CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case FullMode:
		return FullMode, nil
	case BaselineMode:
		return BaselineMode, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, FullMode, BaselineMode)
	}
}
