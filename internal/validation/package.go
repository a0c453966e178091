// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// ValidateAttempt runs the per-attempt checks the retry loop judges on:
// length bounds, skill and employer grounding, technology mentions and
// collective skill coverage.
func ValidateAttempt(bullets []types.GeneratedBullet, job *types.JobPosting, candidate *types.CandidateProfile, limits Limits) types.Violations {
	var candidateSkills, jobSkills []string
	if candidate != nil {
		candidateSkills = candidate.Skills
	}
	if job != nil {
		jobSkills = job.AllSkills()
	}

	var violations types.Violations
	violations = append(violations, CheckLength(bullets, limits)...)
	violations = append(violations, CheckSkillGrounding(bullets, candidateSkills)...)
	violations = append(violations, CheckTechMentions(bullets, candidateSkills, jobSkills)...)
	violations = append(violations, CheckCompanyGrounding(bullets, candidate)...)
	violations = append(violations, CheckSkillCoverage(bullets, job, limits.MinCoverageRatio)...)

	return violations
}

// ValidatePackage runs the attempt checks plus package-level checks on an
// assembled application package: a non-empty bullet list, a cover letter of
// at least the minimum length (soft, a thin letter never fails the pair)
// and identity checks against the requested job and candidate.
func ValidatePackage(pkg *types.ApplicationPackage, job *types.JobPosting, candidate *types.CandidateProfile, limits Limits) types.Violations {
	if pkg == nil {
		return types.Violations{{
			Rule:     types.RuleEmptyPackage,
			Severity: types.SeverityHard,
			Details:  "no application package was assembled",
		}}
	}

	var violations types.Violations

	if len(pkg.Bullets) == 0 {
		violations = append(violations, types.Violation{
			Rule:     types.RuleEmptyPackage,
			Severity: types.SeverityHard,
			Details:  "package has no bullets",
		})
	} else {
		violations = append(violations, ValidateAttempt(pkg.Bullets, job, candidate, limits)...)
	}

	letterLen := len([]rune(strings.TrimSpace(pkg.CoverLetter)))
	if letterLen < limits.MinCoverLetterChars {
		violations = append(violations, types.Violation{
			Rule:     types.RuleCoverLetter,
			Severity: types.SeveritySoft,
			Details:  fmt.Sprintf("cover letter has %d characters, minimum is %d", letterLen, limits.MinCoverLetterChars),
		})
	}

	if job != nil && pkg.JobID != job.ID {
		violations = append(violations, types.Violation{
			Rule:     types.RuleIdentity,
			Severity: types.SeverityHard,
			Details:  fmt.Sprintf("package job_id %q does not match requested job %q", pkg.JobID, job.ID),
		})
	}
	if candidate != nil && pkg.CandidateID != candidate.ID {
		violations = append(violations, types.Violation{
			Rule:     types.RuleIdentity,
			Severity: types.SeverityHard,
			Details:  fmt.Sprintf("package candidate_id %q does not match requested candidate %q", pkg.CandidateID, candidate.ID),
		})
	}

	return violations
}
