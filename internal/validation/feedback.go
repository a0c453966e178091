// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// FormatFeedback renders violations as a numbered list followed by fixed
// regeneration guidance, for injection into a retry prompt.
func FormatFeedback(violations types.Violations) string {
	if len(violations) == 0 {
		return "All validation checks passed."
	}

	var sb strings.Builder
	sb.WriteString("The previous attempt had the following validation issues:\n\n")

	for i, v := range violations {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, v.Details)
	}

	sb.WriteString("\nPlease regenerate addressing these issues:\n")
	sb.WriteString("- Keep every bullet within the character bounds given above\n")
	sb.WriteString("- Only claim skills that appear in the candidate's resume\n")
	sb.WriteString("- Cover the job's required skills across the full bullet set")

	return sb.String()
}
