// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// CheckSkillCoverage verifies that the bullets collectively address the
// job's required skills. An individual bullet need not cover every skill,
// but the union of claimed skills must reach the minimum ratio; a shortfall
// is one hard violation naming the missing skills and the measured ratio.
func CheckSkillCoverage(bullets []types.GeneratedBullet, job *types.JobPosting, minCoverage float64) types.Violations {
	if job == nil || len(job.RequiredSkills) == 0 {
		return nil
	}

	var claimed []string
	for _, b := range bullets {
		claimed = append(claimed, b.SkillsClaimed...)
	}

	covered := 0
	var missing []string
	for _, required := range job.RequiredSkills {
		if skillKnown(required, claimed) {
			covered++
		} else {
			missing = append(missing, required)
		}
	}

	ratio := float64(covered) / float64(len(job.RequiredSkills))
	if ratio >= minCoverage {
		return nil
	}

	return types.Violations{{
		Rule:     types.RuleSkillCoverage,
		Severity: types.SeverityHard,
		Details: fmt.Sprintf("bullets cover %.2f of required skills, minimum is %.2f; missing: %s",
			ratio, minCoverage, strings.Join(missing, ", ")),
	}}
}
