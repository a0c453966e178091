// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// atCompanyPattern captures a run of capitalized words following "at",
// the usual shape of an employer reference in a resume bullet.
var atCompanyPattern = regexp.MustCompile(`\b(?i:at)\s+((?:[A-Z][\w&.'-]*)(?:\s+[A-Z][\w&.'-]*)*)`)

// knownNonCompanies are capitalized words that commonly follow "at" without
// naming an employer.
var knownNonCompanies = map[string]bool{
	"the": true, "a": true, "an": true,
	"least": true, "most": true, "scale": true,
	"once": true, "first": true, "present": true, "large": true,
}

// CheckCompanyGrounding scans bullet text for "at <Name>" references and
// flags any name that is not among the candidate's declared employers.
// Fabricated employers are reported as soft warnings.
func CheckCompanyGrounding(bullets []types.GeneratedBullet, candidate *types.CandidateProfile) types.Violations {
	if candidate == nil {
		return nil
	}
	employers := candidate.Employers()

	var violations types.Violations
	for _, b := range bullets {
		for _, name := range mentionedCompanies(b.Text) {
			if employerKnown(name, employers) {
				continue
			}
			violations = append(violations, types.Violation{
				Rule:     types.RuleCompanyGrounding,
				Severity: types.SeveritySoft,
				Details:  fmt.Sprintf("bullet %q references %q, which is not a declared employer", b.ID, name),
				BulletID: b.ID,
			})
		}
	}

	return violations
}

// mentionedCompanies returns the distinct capitalized names following "at"
// in the text, excluding known non-company phrases.
func mentionedCompanies(text string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, groups := range atCompanyPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(groups[1])
		first := strings.ToLower(strings.SplitN(name, " ", 2)[0])
		if name == "" || knownNonCompanies[first] || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// employerKnown reports whether name matches a declared employer,
// case-insensitively with substring containment in either direction.
func employerKnown(name string, employers []string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return true
	}

	for _, e := range employers {
		el := strings.ToLower(strings.TrimSpace(e))
		if el == "" {
			continue
		}
		if strings.Contains(el, n) || strings.Contains(n, el) {
			return true
		}
	}

	return false
}
