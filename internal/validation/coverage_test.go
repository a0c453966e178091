package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestCheckSkillCoverage_FullCoverage(t *testing.T) {
	job := &types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"Python", "AWS"},
	}
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Python"}},
		{ID: "b2", SkillsClaimed: []string{"AWS"}},
	}

	violations := CheckSkillCoverage(bullets, job, 0.8)

	assert.Empty(t, violations)
}

// A lone bullet claiming Python against a job requiring Python and AWS
// measures 0.50 coverage, under the 0.80 default, and must fail hard
// naming the missing skill.
func TestCheckSkillCoverage_BelowMinimum(t *testing.T) {
	job := &types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"Python", "AWS"},
	}
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Python"}},
	}

	violations := CheckSkillCoverage(bullets, job, 0.8)

	require.Len(t, violations, 1)
	assert.Equal(t, types.RuleSkillCoverage, violations[0].Rule)
	assert.Equal(t, types.SeverityHard, violations[0].Severity)
	assert.Contains(t, violations[0].Details, "0.50")
	assert.Contains(t, violations[0].Details, "0.80")
	assert.Contains(t, violations[0].Details, "AWS")
}

func TestCheckSkillCoverage_NoRequiredSkills(t *testing.T) {
	job := &types.JobPosting{ID: "job-1"}
	bullets := []types.GeneratedBullet{{ID: "b1", SkillsClaimed: []string{"Go"}}}

	violations := CheckSkillCoverage(bullets, job, 0.8)

	assert.Empty(t, violations)
}

func TestCheckSkillCoverage_CoveringBulletClearsShortfall(t *testing.T) {
	job := &types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"Python", "AWS"},
	}
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Python"}},
	}

	require.True(t, CheckSkillCoverage(bullets, job, 0.8).HasHard())

	bullets = append(bullets, types.GeneratedBullet{ID: "b2", SkillsClaimed: []string{"AWS"}})

	assert.Empty(t, CheckSkillCoverage(bullets, job, 0.8))
}

func TestCheckSkillCoverage_SubstringMatch(t *testing.T) {
	job := &types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"PostgreSQL", "Amazon Web Services"},
	}
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Postgres", "Amazon Web Services (AWS)"}},
	}

	violations := CheckSkillCoverage(bullets, job, 0.8)

	assert.Empty(t, violations)
}

func TestCheckSkillCoverage_NoBullets(t *testing.T) {
	job := &types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"Go"},
	}

	violations := CheckSkillCoverage(nil, job, 0.8)

	require.Len(t, violations, 1)
	assert.Equal(t, types.SeverityHard, violations[0].Severity)
	assert.Contains(t, violations[0].Details, "0.00")
}
