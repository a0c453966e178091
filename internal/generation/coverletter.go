// Package generation produces tailored resume bullets and cover letters from candidate history using an LLM collaborator.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Prompt caps for the cover letter. The letter needs highlights, not the
// whole posting or resume.
const (
	coverLetterMaxResponsibilities = 3
	coverLetterMaxSkills           = 8
	coverLetterMaxCandidateSkills  = 10
	coverLetterMaxExperiences      = 2
	coverLetterMaxBullets          = 5
)

// CoverLetter writes a letter grounded in the accepted bullets. Plain text
// out; network retry inside; one pass with no regeneration loop. The caller
// records a failure as a warning rather than failing the pair.
func CoverLetter(ctx context.Context, client llm.Client, job *types.JobPosting, candidate *types.CandidateProfile, bullets []types.GeneratedBullet, maxAttempts int) (string, error) {
	system := prompts.MustGet(generationFile, "cover-letter-system")
	user := prompts.Format(prompts.MustGet(generationFile, "cover-letter-user"), map[string]string{
		"JobDetails":       coverLetterJobDetails(job),
		"CandidateDetails": candidateDetails(candidate),
		"Bullets":          numberedBullets(bullets),
	})

	text, err := llm.GenerateContentWithRetry(ctx, client, system, user, llm.TierAdvanced, maxAttempts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// coverLetterJobDetails renders an abbreviated job block: top
// responsibilities and skills only.
func coverLetterJobDetails(job *types.JobPosting) string {
	if job == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Job Title:** %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("**Company:** %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("**Location:** %s\n", job.Location))
	}

	if len(job.Responsibilities) > 0 {
		shown := job.Responsibilities
		if len(shown) > coverLetterMaxResponsibilities {
			shown = shown[:coverLetterMaxResponsibilities]
		}
		sb.WriteString("\n**Key Responsibilities:**\n")
		for i, resp := range shown {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, resp))
		}
		if rest := len(job.Responsibilities) - len(shown); rest > 0 {
			sb.WriteString(fmt.Sprintf("   ...and %d more\n", rest))
		}
	}

	if len(job.RequiredSkills) > 0 {
		shown := job.RequiredSkills
		if len(shown) > coverLetterMaxSkills {
			shown = shown[:coverLetterMaxSkills]
		}
		sb.WriteString(fmt.Sprintf("\n**Required Skills:** %s\n", strings.Join(shown, ", ")))
		if rest := len(job.RequiredSkills) - len(shown); rest > 0 {
			sb.WriteString(fmt.Sprintf("   ...and %d more\n", rest))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// candidateDetails renders the candidate block: identity, top skills, and
// the most recent experience entries.
func candidateDetails(candidate *types.CandidateProfile) string {
	if candidate == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Name:** %s\n", candidate.Name))
	if candidate.Email != "" {
		sb.WriteString(fmt.Sprintf("**Email:** %s\n", candidate.Email))
	}

	if len(candidate.Skills) > 0 {
		shown := candidate.Skills
		if len(shown) > coverLetterMaxCandidateSkills {
			shown = shown[:coverLetterMaxCandidateSkills]
		}
		sb.WriteString(fmt.Sprintf("**Key Skills:** %s\n", strings.Join(shown, ", ")))
	}

	if len(candidate.WorkHistory) > 0 {
		shown := candidate.WorkHistory
		if len(shown) > coverLetterMaxExperiences {
			shown = shown[:coverLetterMaxExperiences]
		}
		sb.WriteString("\n**Recent Experience:**\n")
		for _, exp := range shown {
			line := fmt.Sprintf("- %s at %s", exp.Role, exp.Company)
			if exp.StartDate != "" {
				end := exp.EndDate
				if end == "" {
					end = "Present"
				}
				line += fmt.Sprintf(" (%s to %s)", exp.StartDate, end)
			}
			sb.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// numberedBullets lists the accepted bullets the letter should draw from.
func numberedBullets(bullets []types.GeneratedBullet) string {
	if len(bullets) == 0 {
		return "(no tailored bullets available)"
	}

	shown := bullets
	if len(shown) > coverLetterMaxBullets {
		shown = shown[:coverLetterMaxBullets]
	}

	var sb strings.Builder
	for i, b := range shown {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, b.Text))
	}
	if rest := len(bullets) - len(shown); rest > 0 {
		sb.WriteString(fmt.Sprintf("   ...and %d more relevant accomplishments\n", rest))
	}

	return strings.TrimRight(sb.String(), "\n")
}
