// Package generation produces tailored resume bullets and cover letters from candidate history using an LLM collaborator.
package generation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// BuildContext renders retrieved matches as a prompt block grouped by the
// history entry they came from. Groups follow first appearance, so fragments
// from the highest scored entries stay near the top. Duplicate fragment
// texts are shown once.
func BuildContext(matches []types.RetrievedMatch, candidate *types.CandidateProfile) string {
	if len(matches) == 0 {
		return "No relevant experience retrieved."
	}

	ownerOrder := make([]string, 0, len(matches))
	ownerTexts := make(map[string][]string)
	seen := make(map[string]bool)

	for _, m := range matches {
		text := strings.TrimSpace(m.Fragment.Text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true

		owner := m.Fragment.OwnerID
		if _, ok := ownerTexts[owner]; !ok {
			ownerOrder = append(ownerOrder, owner)
		}
		ownerTexts[owner] = append(ownerTexts[owner], text)
	}

	var sb strings.Builder
	for i, owner := range ownerOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ownerHeading(owner, candidate))
		sb.WriteString("\n")
		for _, text := range ownerTexts[owner] {
			sb.WriteString("  - ")
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// ownerHeading names the history entry a fragment group came from. Falls
// back to the raw owner ID when the candidate has no matching entry.
func ownerHeading(ownerID string, candidate *types.CandidateProfile) string {
	if candidate != nil {
		if exp := candidate.ExperienceByID(ownerID); exp != nil {
			role := exp.Role
			if role == "" {
				role = "a prior role"
			}
			return fmt.Sprintf("From **%s** at **%s**:", role, exp.Company)
		}
		for i := range candidate.Projects {
			if candidate.Projects[i].ID == ownerID {
				name := candidate.Projects[i].Name
				if name == "" {
					name = ownerID
				}
				return fmt.Sprintf("From the **%s** project:", name)
			}
		}
	}
	return fmt.Sprintf("From **%s**:", ownerID)
}
