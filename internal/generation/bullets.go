// Package generation produces tailored resume bullets and cover letters from candidate history using an LLM collaborator.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

const generationFile = "generation.json"

// minBulletCount is the floor on requested bullets for jobs with few
// listed responsibilities.
const minBulletCount = 5

// BulletRequest carries everything one bullet generation attempt needs.
type BulletRequest struct {
	Job       *types.JobPosting
	Candidate *types.CandidateProfile
	Matches   []types.RetrievedMatch

	// Feedback is the formatted violation summary from the previous
	// attempt. Empty on the first attempt.
	Feedback string

	MinChars int
	MaxChars int

	// MaxAttempts bounds the network-level retry inside this single
	// generation pass, not the caller's regeneration loop.
	MaxAttempts int
}

// Bullets runs one bullet generation attempt against the retrieved context.
// Transport failures surface as an error; malformed model output surfaces as
// violations so the caller's retry loop regenerates with feedback instead of
// crashing.
func Bullets(ctx context.Context, client llm.Client, req BulletRequest) ([]types.GeneratedBullet, types.Violations, error) {
	system := prompts.Format(prompts.MustGet(generationFile, "bullet-system"), map[string]string{
		"MinChars": strconv.Itoa(req.MinChars),
		"MaxChars": strconv.Itoa(req.MaxChars),
	})
	user := BuildBulletPrompt(req)

	raw, err := llm.GenerateJSONWithRetry(ctx, client, system, user, llm.TierStandard, req.MaxAttempts)
	if err != nil {
		return nil, nil, err
	}

	bullets, violations := ParseBullets(raw)
	applySourceReferences(bullets, req.Matches, req.Candidate)
	return bullets, violations, nil
}

// BuildBulletPrompt renders the user prompt for one generation attempt,
// appending the prior attempt's validator feedback when present.
func BuildBulletPrompt(req BulletRequest) string {
	user := prompts.Format(prompts.MustGet(generationFile, "bullet-user"), map[string]string{
		"JobDetails":  bulletJobDetails(req.Job),
		"Context":     BuildContext(req.Matches, req.Candidate),
		"BulletCount": strconv.Itoa(BulletCount(req.Job)),
		"MinChars":    strconv.Itoa(req.MinChars),
		"MaxChars":    strconv.Itoa(req.MaxChars),
	})

	if req.Feedback != "" {
		user += prompts.Format(prompts.MustGet(generationFile, "bullet-feedback"), map[string]string{
			"Feedback": req.Feedback,
		})
	}

	return user
}

// BulletCount is how many bullets to request: one per listed responsibility
// with a floor of five.
func BulletCount(job *types.JobPosting) int {
	if job == nil || len(job.Responsibilities) < minBulletCount {
		return minBulletCount
	}
	return len(job.Responsibilities)
}

// bulletJobDetails renders the full job block for the generation prompt.
func bulletJobDetails(job *types.JobPosting) string {
	if job == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Job Title:** %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("**Company:** %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("**Location:** %s\n", job.Location))
	}
	if job.Seniority != "" {
		sb.WriteString(fmt.Sprintf("**Seniority Level:** %s\n", job.Seniority))
	}

	if len(job.Responsibilities) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Key Responsibilities (%d):**\n", len(job.Responsibilities)))
		for i, resp := range job.Responsibilities {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, resp))
		}
	}

	if len(job.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Required Skills:** %s\n", strings.Join(job.RequiredSkills, ", ")))
	}
	if len(job.NiceToHaveSkills) > 0 {
		sb.WriteString(fmt.Sprintf("**Nice-to-Have Skills:** %s\n", strings.Join(job.NiceToHaveSkills, ", ")))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// bulletEnvelope mirrors the model's documented output contract. A bare
// array is also accepted.
type bulletEnvelope struct {
	Bullets []json.RawMessage `json:"bullets"`
}

// ParseBullets decodes the model's JSON output into bullets. Individual
// malformed entries are dropped with a soft violation each; an undecodable
// document or a batch with no usable entries yields one hard violation that
// drives a regeneration instead of a crash.
func ParseBullets(raw string) ([]types.GeneratedBullet, types.Violations) {
	if err := schemas.ValidateBulletsJSON(raw); err != nil {
		return nil, types.Violations{{
			Rule:     types.RuleOutputShape,
			Severity: types.SeverityHard,
			Details:  fmt.Sprintf("model output failed schema validation: %v", err),
		}}
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, types.Violations{{
			Rule:     types.RuleOutputShape,
			Severity: types.SeverityHard,
			Details:  fmt.Sprintf("model output is not decodable JSON: %v", err),
		}}
	}

	var violations types.Violations
	bullets := make([]types.GeneratedBullet, 0, len(entries))

	for i, entry := range entries {
		var b types.GeneratedBullet
		if err := json.Unmarshal(entry, &b); err != nil || strings.TrimSpace(b.Text) == "" {
			violations = append(violations, types.Violation{
				Rule:     types.RuleOutputShape,
				Severity: types.SeveritySoft,
				Details:  fmt.Sprintf("dropped malformed bullet entry %d", i+1),
			})
			continue
		}
		if b.ID == "" {
			b.ID = fmt.Sprintf("bullet-%03d", len(bullets)+1)
		}
		bullets = append(bullets, b)
	}

	if len(bullets) == 0 {
		return nil, append(violations, types.Violation{
			Rule:     types.RuleOutputShape,
			Severity: types.SeverityHard,
			Details:  "model output contained no usable bullet entries",
		})
	}

	return bullets, violations
}

// decodeEntries unwraps the bullets array from either accepted envelope form.
func decodeEntries(raw string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var env bulletEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, err
	}
	return env.Bullets, nil
}

// applySourceReferences fills in missing source IDs so every bullet traces
// back to a history entry.
func applySourceReferences(bullets []types.GeneratedBullet, matches []types.RetrievedMatch, candidate *types.CandidateProfile) {
	inferred := inferSourceID(matches, candidate)
	if inferred == "" {
		return
	}
	for i := range bullets {
		if bullets[i].SourceReferenceID == "" {
			bullets[i].SourceReferenceID = inferred
		}
	}
}

// inferSourceID picks the most frequent owner among the retrieved matches,
// falling back to the candidate's first work history entry. Ties keep the
// owner that reached the top count first.
func inferSourceID(matches []types.RetrievedMatch, candidate *types.CandidateProfile) string {
	counts := make(map[string]int)
	best := ""
	for _, m := range matches {
		owner := m.Fragment.OwnerID
		if owner == "" {
			continue
		}
		counts[owner]++
		if best == "" || counts[owner] > counts[best] {
			best = owner
		}
	}
	if best != "" {
		return best
	}

	if candidate != nil && len(candidate.WorkHistory) > 0 {
		return candidate.WorkHistory[0].ID
	}
	return ""
}
