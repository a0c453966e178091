// Package generation produces tailored resume bullets and cover letters from candidate history using an LLM collaborator.
package generation

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxInlinedAccomplishments caps how much raw history the baseline prompt
// carries, since it inlines everything instead of retrieving.
const maxInlinedAccomplishments = 20

// BaselineBullets generates bullets without retrieval: the candidate's raw
// accomplishments are inlined directly and the model gets a single
// generation pass. This exists as the evaluation baseline the retrieval
// pipeline is compared against.
func BaselineBullets(ctx context.Context, client llm.Client, req BulletRequest) ([]types.GeneratedBullet, types.Violations, error) {
	system := prompts.Format(prompts.MustGet(generationFile, "baseline-system"), map[string]string{
		"MinChars": strconv.Itoa(req.MinChars),
		"MaxChars": strconv.Itoa(req.MaxChars),
	})
	user := BuildBaselinePrompt(req)

	raw, err := llm.GenerateJSONWithRetry(ctx, client, system, user, llm.TierStandard, req.MaxAttempts)
	if err != nil {
		return nil, nil, err
	}

	bullets, violations := ParseBullets(raw)
	applySourceReferences(bullets, nil, req.Candidate)
	return bullets, violations, nil
}

// BuildBaselinePrompt renders the one-shot prompt with inlined history.
func BuildBaselinePrompt(req BulletRequest) string {
	return prompts.Format(prompts.MustGet(generationFile, "baseline-user"), map[string]string{
		"JobDetails":    bulletJobDetails(req.Job),
		"ResumeBullets": inlineAccomplishments(req.Candidate),
		"BulletCount":   strconv.Itoa(BulletCount(req.Job)),
	})
}

// inlineAccomplishments lists work and project accomplishments verbatim,
// capped so oversized histories do not blow up the prompt.
func inlineAccomplishments(candidate *types.CandidateProfile) string {
	if candidate == nil {
		return "(no resume content provided)"
	}

	var lines []string
	for _, exp := range candidate.WorkHistory {
		for _, a := range exp.Accomplishments {
			lines = append(lines, "- "+a)
		}
	}
	for _, proj := range candidate.Projects {
		for _, a := range proj.Accomplishments {
			lines = append(lines, "- "+a)
		}
	}

	if len(lines) == 0 {
		return "(no resume content provided)"
	}
	if len(lines) > maxInlinedAccomplishments {
		lines = lines[:maxInlinedAccomplishments]
	}
	return strings.Join(lines, "\n")
}
