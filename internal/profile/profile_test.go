// Package profile provides functionality to load candidate profiles and
// derive their accomplishment fragment corpus.
package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
  "candidate_id": "cand-001",
  "name": "Jordan Reyes",
  "email": "jordan@example.com",
  "skills": ["Go", "PostgreSQL", "Kubernetes"],
  "work_experiences": [
    {
      "id": "exp-1",
      "company": "Acme Corp",
      "role": "Backend Engineer",
      "start_date": "2021-03",
      "achievements": [
        "Built a payment API handling 10k requests per second",
        "Migrated 30 services to Kubernetes"
      ]
    }
  ],
  "projects": [
    {
      "id": "proj-1",
      "name": "Trail Mapper",
      "achievements": ["Rendered vector tiles offline"]
    }
  ]
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	candidate, err := Load(writeProfile(t, validProfileJSON))
	require.NoError(t, err)
	require.NotNil(t, candidate)

	assert.Equal(t, "cand-001", candidate.ID)
	assert.Equal(t, "Jordan Reyes", candidate.Name)
	require.Len(t, candidate.WorkHistory, 1)
	assert.Equal(t, "Acme Corp", candidate.WorkHistory[0].Company)
	require.Len(t, candidate.WorkHistory[0].Accomplishments, 2)
	require.Len(t, candidate.Projects, 1)
	assert.Equal(t, "Trail Mapper", candidate.Projects[0].Name)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("nonexistent_resume.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeProfile(t, "{ invalid json }"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestLoad_MissingIdentity(t *testing.T) {
	_, err := Load(writeProfile(t, `{"name": "No ID"}`))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "invalid candidate profile")
}

func TestFragments(t *testing.T) {
	candidate, err := Load(writeProfile(t, validProfileJSON))
	require.NoError(t, err)

	fragments := Fragments(candidate)
	require.Len(t, fragments, 3)

	assert.Equal(t, "exp-1", fragments[0].OwnerID)
	assert.Equal(t, types.KindExperience, fragments[0].Kind)
	assert.Equal(t, "Built a payment API handling 10k requests per second", fragments[0].Text)

	assert.Equal(t, "proj-1", fragments[2].OwnerID)
	assert.Equal(t, types.KindProject, fragments[2].Kind)
}

func TestFragments_SkipsBlankAccomplishments(t *testing.T) {
	candidate := &types.CandidateProfile{
		WorkHistory: []types.WorkExperience{
			{ID: "exp-1", Company: "Acme Corp", Accomplishments: []string{"Did a thing", "   ", ""}},
		},
	}

	fragments := Fragments(candidate)
	require.Len(t, fragments, 1)
	assert.Equal(t, "Did a thing", fragments[0].Text)
}

func TestFragments_EmptyHistory(t *testing.T) {
	assert.Empty(t, Fragments(nil))
	assert.Empty(t, Fragments(&types.CandidateProfile{ID: "cand-002", Name: "Empty"}))
}
