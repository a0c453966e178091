// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Rule identifies which validation rule produced a violation.
type Rule string

// Validation rules
const (
	RuleBulletLength     Rule = "bullet_length"
	RuleSkillGrounding   Rule = "skill_grounding"
	RuleTechMention      Rule = "tech_mention"
	RuleCompanyGrounding Rule = "company_grounding"
	RuleSkillCoverage    Rule = "skill_coverage"
	RuleCoverLetter      Rule = "cover_letter"
	RuleIdentity         Rule = "identity"
	RuleOutputShape      Rule = "output_shape"
	RuleEmptyPackage     Rule = "empty_package"
)

// Severity partitions violations into those that block acceptance and
// those that are recorded only.
type Severity string

// Violation severities. Hard violations trigger the retry transition;
// soft violations ride along on the final result.
const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

// Violation represents a single validation rule failure against one
// generated bullet or against the generated set as a whole.
type Violation struct {
	Rule     Rule     `json:"rule"`
	Severity Severity `json:"severity"`
	Details  string   `json:"details"`
	BulletID string   `json:"bullet_id,omitempty"`
}

// Violations is an accumulated list of rule failures for one attempt or package.
type Violations []Violation

// Hard returns only the violations that block acceptance.
func (vs Violations) Hard() Violations {
	var out Violations
	for _, v := range vs {
		if v.Severity == SeverityHard {
			out = append(out, v)
		}
	}
	return out
}

// Soft returns only the violations recorded as warnings.
func (vs Violations) Soft() Violations {
	var out Violations
	for _, v := range vs {
		if v.Severity == SeveritySoft {
			out = append(out, v)
		}
	}
	return out
}

// HasHard reports whether any violation blocks acceptance.
func (vs Violations) HasHard() bool {
	for _, v := range vs {
		if v.Severity == SeverityHard {
			return true
		}
	}
	return false
}

// Messages returns the human-readable detail strings in order.
func (vs Violations) Messages() []string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Details)
	}
	return msgs
}
