// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// techTokenPattern matches tokens that plausibly name a tool or technology:
// a capitalized word, optionally carrying digits or symbols like "C++",
// "Node.js" or "F#".
var techTokenPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9+#./-]*$`)

// commonCapitalizedWords are capitalized tokens that read as ordinary
// English mid-sentence rather than tool names.
var commonCapitalizedWords = map[string]bool{
	"I": true, "We": true, "My": true, "Our": true,
	"The": true, "A": true, "An": true,
	"This": true, "That": true, "These": true, "Those": true,
	"It": true, "Its": true, "As": true, "And": true, "But": true,
	"Or": true, "For": true, "To": true, "In": true, "On": true,
	"At": true, "Of": true, "By": true, "With": true, "From": true,
}

const tokenPunctuation = `.,;:!?()"'` + "`"

// CheckTechMentions flags capitalized tokens in bullet text that look like
// tool or technology names but appear in neither the candidate's skills nor
// the job's. The detector is heuristic and misfires on proper nouns, so its
// findings are always soft and never block acceptance.
func CheckTechMentions(bullets []types.GeneratedBullet, candidateSkills, jobSkills []string) types.Violations {
	known := make([]string, 0, len(candidateSkills)+len(jobSkills))
	known = append(known, candidateSkills...)
	known = append(known, jobSkills...)

	var violations types.Violations
	for _, b := range bullets {
		for _, token := range suspectTechTokens(b.Text) {
			if skillKnown(token, known) || skillKnown(token, b.SkillsClaimed) {
				continue
			}
			violations = append(violations, types.Violation{
				Rule:     types.RuleTechMention,
				Severity: types.SeveritySoft,
				Details:  fmt.Sprintf("bullet %q mentions %q, which appears in neither the candidate's nor the job's skills", b.ID, token),
				BulletID: b.ID,
			})
		}
	}

	return violations
}

// suspectTechTokens extracts the distinct capitalized tokens from text that
// could name a technology. Sentence openers, common English words and names
// following "at" (the company grounding check's concern) are skipped.
func suspectTechTokens(text string) []string {
	fields := strings.Fields(text)

	var tokens []string
	seen := make(map[string]bool)

	for i, field := range fields {
		token := strings.Trim(field, tokenPunctuation)
		if len(token) < 2 || !techTokenPattern.MatchString(token) {
			continue
		}
		if i == 0 || endsSentence(fields[i-1]) {
			continue
		}
		if strings.EqualFold(strings.Trim(fields[i-1], tokenPunctuation), "at") {
			continue
		}
		if commonCapitalizedWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}

func endsSentence(field string) bool {
	return strings.HasSuffix(field, ".") ||
		strings.HasSuffix(field, "!") ||
		strings.HasSuffix(field, "?") ||
		strings.HasSuffix(field, ";") ||
		strings.HasSuffix(field, ":")
}
