package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestCheckSkillGrounding_AllGrounded(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Python", "AWS"}},
	}

	violations := CheckSkillGrounding(bullets, []string{"Python", "AWS", "Docker"})

	assert.Empty(t, violations)
}

func TestCheckSkillGrounding_UnknownSkillFlagged(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Python", "Kubernetes"}},
	}

	violations := CheckSkillGrounding(bullets, []string{"Python"})

	require.Len(t, violations, 1)
	assert.Equal(t, types.RuleSkillGrounding, violations[0].Rule)
	assert.Equal(t, types.SeveritySoft, violations[0].Severity)
	assert.Equal(t, "b1", violations[0].BulletID)
	assert.Contains(t, violations[0].Details, "Kubernetes")
}

func TestCheckSkillGrounding_CaseInsensitive(t *testing.T) {
	bullets := []types.GeneratedBullet{{ID: "b1", SkillsClaimed: []string{"python"}}}

	violations := CheckSkillGrounding(bullets, []string{"Python"})

	assert.Empty(t, violations)
}

func TestCheckSkillGrounding_SubstringEitherDirection(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Postgres", "Amazon Web Services"}},
	}

	violations := CheckSkillGrounding(bullets, []string{"PostgreSQL", "Amazon Web"})

	assert.Empty(t, violations)
}

func TestCheckSkillGrounding_NoDeclaredSkills(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", SkillsClaimed: []string{"Go"}},
	}

	violations := CheckSkillGrounding(bullets, nil)

	require.Len(t, violations, 1)
	assert.Equal(t, types.SeveritySoft, violations[0].Severity)
}

func TestSkillKnown_EmptyClaim(t *testing.T) {
	assert.True(t, skillKnown("", []string{"Go"}))
	assert.True(t, skillKnown("  ", []string{"Go"}))
}
