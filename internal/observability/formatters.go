// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of the loaded job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	sb.WriteString("\n")

	if len(job.Responsibilities) > 0 {
		sb.WriteString("Responsibilities:\n")
		count := min(len(job.Responsibilities), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Responsibilities[i]))
		}
		if len(job.Responsibilities) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Responsibilities)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.RequiredSkills) > 0 {
		skills := strings.Join(job.RequiredSkills, ", ")
		sb.WriteString(fmt.Sprintf("Required: %s\n", skills))
	}
	if len(job.NiceToHaveSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Nice-to-have: %s\n", strings.Join(job.NiceToHaveSkills, ", ")))
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRetrievedMatches outputs the top retrieved fragments with scores.
func (p *Printer) PrintRetrievedMatches(matches []types.RetrievedMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Retrieved %d context fragments:\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		text := m.Fragment.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %.3f  %s\n", i+1, m.Score, text))
		sb.WriteString(fmt.Sprintf("    from %s (%s)\n", m.Fragment.OwnerID, m.Fragment.Kind))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("RETRIEVED CONTEXT", sb.String())
}

// PrintViolations outputs the validation findings for a pair, split by
// severity.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations types.Violations) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d hard, %d soft:\n\n", len(violations.Hard()), len(violations.Soft())))

	for i, v := range violations {
		marker := "⚠"
		if v.Severity == types.SeverityHard {
			marker = "✗"
		}
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, v.Rule))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION FINDINGS", sb.String())
}

// PrintAttemptHistory outputs the generate/validate cycles a pair went
// through before reaching a terminal state.
func (p *Printer) PrintAttemptHistory(history []types.AttemptRecord) {
	if len(history) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range history {
		switch {
		case rec.Err != "":
			msg := rec.Err
			if len(msg) > 40 {
				msg = msg[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("Attempt %d: error: %s\n", rec.Attempt, msg))
		case rec.Violations.HasHard():
			sb.WriteString(fmt.Sprintf("Attempt %d: %d hard, %d soft violations\n",
				rec.Attempt, len(rec.Violations.Hard()), len(rec.Violations.Soft())))
		default:
			sb.WriteString(fmt.Sprintf("Attempt %d: accepted (%d warnings)\n",
				rec.Attempt, len(rec.Violations.Soft())))
		}
		if i < len(history)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATTEMPT HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs per-batch success and failure counts.
func (p *Printer) PrintBatchSummary(total, succeeded, failed, totalAttempts int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pairs:     %d\n", total))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", succeeded))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", failed))
	sb.WriteString(fmt.Sprintf("Attempts:  %d", totalAttempts))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintPairFailure outputs the first few errors and warnings for one failed
// pair; the structured result carries the full detail.
func (p *Printer) PrintPairFailure(result *types.PairResult) {
	if result == nil || result.Success {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateID))
	sb.WriteString("\n")

	shown := 0
	for _, msg := range result.Errors {
		if shown >= maxItemsToShow {
			break
		}
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("✗ %s\n", msg))
		shown++
	}
	for _, v := range result.Violations {
		if shown >= maxItemsToShow {
			break
		}
		details := v.Details
		if len(details) > 50 {
			details = details[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", details))
		shown++
	}

	remaining := len(result.Errors) + len(result.Violations) - shown
	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("... and %d more\n", remaining))
	}

	p.printBox("FAILED PAIR", strings.TrimSuffix(sb.String(), "\n"))
}
