// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// CheckSkillGrounding flags claimed skills absent from the candidate's
// declared skill list. Unmatched claims are potential fabrications, reported
// as soft warnings.
func CheckSkillGrounding(bullets []types.GeneratedBullet, candidateSkills []string) types.Violations {
	var violations types.Violations

	for _, b := range bullets {
		for _, claimed := range b.SkillsClaimed {
			if skillKnown(claimed, candidateSkills) {
				continue
			}
			violations = append(violations, types.Violation{
				Rule:     types.RuleSkillGrounding,
				Severity: types.SeveritySoft,
				Details:  fmt.Sprintf("bullet %q claims skill %q not found in the candidate's resume", b.ID, claimed),
				BulletID: b.ID,
			})
		}
	}

	return violations
}

// skillKnown reports whether the claimed label matches any declared skill.
// Matching is case-insensitive and accepts substring containment in either
// direction, so "Postgres" grounds against "PostgreSQL" and vice versa.
func skillKnown(claimed string, declared []string) bool {
	c := strings.ToLower(strings.TrimSpace(claimed))
	if c == "" {
		return true
	}

	for _, d := range declared {
		dl := strings.ToLower(strings.TrimSpace(d))
		if dl == "" {
			continue
		}
		if strings.Contains(dl, c) || strings.Contains(c, dl) {
			return true
		}
	}

	return false
}
