package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func testCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:     "cand-1",
		Name:   "Sam Rivera",
		Skills: []string{"Go", "PostgreSQL"},
		WorkHistory: []types.WorkExperience{
			{ID: "exp-1", Company: "Acme Corp", Role: "Backend Engineer"},
			{ID: "exp-2", Company: "Globex", Role: "SRE"},
		},
	}
}

func TestCheckCompanyGrounding_DeclaredEmployer(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Led the payments migration at Acme Corp over two quarters"},
	}

	violations := CheckCompanyGrounding(bullets, testCandidate())

	assert.Empty(t, violations)
}

func TestCheckCompanyGrounding_PartialEmployerName(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Ran the on-call rotation at Acme for eight engineers"},
	}

	violations := CheckCompanyGrounding(bullets, testCandidate())

	assert.Empty(t, violations)
}

func TestCheckCompanyGrounding_FabricatedEmployer(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Built the search stack at Initech with a team of five"},
	}

	violations := CheckCompanyGrounding(bullets, testCandidate())

	require.Len(t, violations, 1)
	assert.Equal(t, types.RuleCompanyGrounding, violations[0].Rule)
	assert.Equal(t, types.SeveritySoft, violations[0].Severity)
	assert.Contains(t, violations[0].Details, "Initech")
}

func TestCheckCompanyGrounding_NonCompanyPhrases(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Operated pipelines at Scale with strict SLOs"},
		{ID: "b2", Text: "Kept error rates at Least an order of magnitude lower"},
	}

	violations := CheckCompanyGrounding(bullets, testCandidate())

	assert.Empty(t, violations)
}

func TestCheckCompanyGrounding_LowercasePhraseNotMatched(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Processed 2M events per day at scale across regions"},
	}

	violations := CheckCompanyGrounding(bullets, testCandidate())

	assert.Empty(t, violations)
}

func TestMentionedCompanies_MultiWordName(t *testing.T) {
	names := mentionedCompanies("Shipped the mobile app at Hooli Mobile Labs in 2023")

	assert.Equal(t, []string{"Hooli Mobile Labs"}, names)
}

func TestMentionedCompanies_NoMention(t *testing.T) {
	assert.Empty(t, mentionedCompanies("Improved cache hit rates by 25%"))
}
