package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestPrintJobPosting(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobPosting{
		ID:               "job-001",
		Title:            "Backend Engineer",
		Company:          "Initech",
		Responsibilities: []string{"Design data pipelines", "Own reliability"},
		RequiredSkills:   []string{"Python", "AWS"},
		NiceToHaveSkills: []string{"Terraform"},
	}

	p.PrintJobPosting(job)
	output := buf.String()

	assert.Contains(t, output, "JOB POSTING")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Design data pipelines")
	assert.Contains(t, output, "Python, AWS")
	assert.Contains(t, output, "Terraform")
}

func TestPrintJobPosting_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobPosting(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRetrievedMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.RetrievedMatch{
		{
			Fragment: types.SourceFragment{OwnerID: "exp-001", Kind: types.KindExperience, Text: "Built ingestion service"},
			Query:    "Design data pipelines",
			Score:    0.91,
		},
		{
			Fragment: types.SourceFragment{OwnerID: "proj-001", Kind: types.KindProject, Text: "Wrote a log shipper"},
			Query:    "Own reliability",
			Score:    0.78,
		},
	}

	p.PrintRetrievedMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "RETRIEVED CONTEXT")
	assert.Contains(t, output, "0.910")
	assert.Contains(t, output, "Built ingestion service")
	assert.Contains(t, output, "exp-001")
	assert.Contains(t, output, "proj-001")
}

func TestPrintRetrievedMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRetrievedMatches(nil)

	assert.Empty(t, buf.String())
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	violations := types.Violations{
		{Rule: types.RuleBulletLength, Severity: types.SeverityHard, Details: "bullet too short"},
		{Rule: types.RuleTechMention, Severity: types.SeveritySoft, Details: "unrecognized tool name"},
	}

	p.PrintViolations(violations)
	output := buf.String()

	assert.Contains(t, output, "VALIDATION FINDINGS")
	assert.Contains(t, output, "1 hard, 1 soft")
	assert.Contains(t, output, "bullet_length")
	assert.Contains(t, output, "bullet too short")
	assert.Contains(t, output, "tech_mention")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintAttemptHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	history := []types.AttemptRecord{
		{Attempt: 1, Violations: types.Violations{{Rule: types.RuleSkillCoverage, Severity: types.SeverityHard, Details: "missing AWS"}}},
		{Attempt: 2, Err: "rate limited"},
		{Attempt: 3, Violations: types.Violations{{Rule: types.RuleTechMention, Severity: types.SeveritySoft, Details: "maybe a tool"}}},
	}

	p.PrintAttemptHistory(history)
	output := buf.String()

	assert.Contains(t, output, "ATTEMPT HISTORY")
	assert.Contains(t, output, "Attempt 1: 1 hard, 0 soft")
	assert.Contains(t, output, "Attempt 2: error: rate limited")
	assert.Contains(t, output, "Attempt 3: accepted (1 warnings)")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(5, 3, 2, 9)
	output := buf.String()

	assert.Contains(t, output, "BATCH SUMMARY")
	assert.Contains(t, output, "Pairs:     5")
	assert.Contains(t, output, "Succeeded: 3")
	assert.Contains(t, output, "Failed:    2")
	assert.Contains(t, output, "Attempts:  9")
}

func TestPrintPairFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.PairResult{
		JobID:       "job-002",
		CandidateID: "cand-001",
		State:       types.StateFailed,
		Errors:      []string{"validation retries exhausted after 3 attempts"},
		Violations: types.Violations{
			{Rule: types.RuleSkillCoverage, Severity: types.SeverityHard, Details: "missing AWS"},
		},
	}

	p.PrintPairFailure(result)
	output := buf.String()

	assert.Contains(t, output, "FAILED PAIR")
	assert.Contains(t, output, "job-002")
	assert.Contains(t, output, "retries exhausted")
	assert.Contains(t, output, "missing AWS")
}

func TestPrintPairFailure_SkipsSuccess(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPairFailure(&types.PairResult{Success: true})

	assert.Empty(t, buf.String())
}
