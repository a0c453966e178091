// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// CheckLength verifies each bullet stays within the configured character
// bounds. Under-minimum bullets are hard violations; over-maximum bullets
// are soft warnings and never block acceptance.
func CheckLength(bullets []types.GeneratedBullet, limits Limits) types.Violations {
	var violations types.Violations

	for _, b := range bullets {
		length := len([]rune(strings.TrimSpace(b.Text)))

		if length < limits.MinBulletChars {
			violations = append(violations, types.Violation{
				Rule:     types.RuleBulletLength,
				Severity: types.SeverityHard,
				Details:  fmt.Sprintf("bullet %q has %d characters, minimum is %d", b.ID, length, limits.MinBulletChars),
				BulletID: b.ID,
			})
			continue
		}

		if length > limits.MaxBulletChars {
			violations = append(violations, types.Violation{
				Rule:     types.RuleBulletLength,
				Severity: types.SeveritySoft,
				Details:  fmt.Sprintf("bullet %q has %d characters, maximum is %d", b.ID, length, limits.MaxBulletChars),
				BulletID: b.ID,
			})
		}
	}

	return violations
}
