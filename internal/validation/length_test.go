package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestCheckLength_WithinBounds(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "b1", Text: "Reduced deployment time by 60% with automated pipelines"},
	}

	violations := CheckLength(bullets, DefaultLimits())

	assert.Empty(t, violations)
}

func TestCheckLength_ExactBoundaries(t *testing.T) {
	bullets := []types.GeneratedBullet{
		{ID: "min", Text: strings.Repeat("a", 30)},
		{ID: "max", Text: strings.Repeat("a", 150)},
	}

	violations := CheckLength(bullets, DefaultLimits())

	assert.Empty(t, violations)
}

func TestCheckLength_TooShort(t *testing.T) {
	bullets := []types.GeneratedBullet{{ID: "b1", Text: "Did stuff"}}

	violations := CheckLength(bullets, DefaultLimits())

	require.Len(t, violations, 1)
	assert.Equal(t, types.RuleBulletLength, violations[0].Rule)
	assert.Equal(t, types.SeverityHard, violations[0].Severity)
	assert.Equal(t, "b1", violations[0].BulletID)
	assert.Contains(t, violations[0].Details, "minimum is 30")
}

func TestCheckLength_TooLongIsSoft(t *testing.T) {
	bullets := []types.GeneratedBullet{{ID: "b1", Text: strings.Repeat("a", 151)}}

	violations := CheckLength(bullets, DefaultLimits())

	require.Len(t, violations, 1)
	assert.Equal(t, types.SeveritySoft, violations[0].Severity)
	assert.Contains(t, violations[0].Details, "maximum is 150")
	assert.False(t, violations.HasHard())
}

func TestCheckLength_WhitespaceOnlyIsHard(t *testing.T) {
	bullets := []types.GeneratedBullet{{ID: "b1", Text: "   "}}

	violations := CheckLength(bullets, DefaultLimits())

	require.Len(t, violations, 1)
	assert.Equal(t, types.SeverityHard, violations[0].Severity)
}

func TestCheckLength_CountsRunes(t *testing.T) {
	bullets := []types.GeneratedBullet{{ID: "b1", Text: strings.Repeat("é", 40)}}

	violations := CheckLength(bullets, DefaultLimits())

	assert.Empty(t, violations)
}
