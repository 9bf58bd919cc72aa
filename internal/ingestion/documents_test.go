package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile_Success(t *testing.T) {
	path := writeFile(t, "profile.json", `{
		"skills": [{"id": 1, "name": "Python"}, {"id": 2, "name": "SQL"}],
		"categories": [{"id": 3, "name": "Backend"}],
		"bio": "<p>Lập trình viên <b>Python</b></p>"
	}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, types.NewSkillSet(1, 2), profile.SkillIDs())
	assert.Equal(t, "Lập trình viên Python", profile.Bio)
	assert.Equal(t, "Lập trình viên Python Python SQL Backend", profile.DerivedText())
}

func TestLoadProfile_FileNotFound(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestDecodeProfile_SchemaViolation(t *testing.T) {
	_, err := DecodeProfile("inline", []byte(`{"skills": [{"id": "1"}]}`))
	require.Error(t, err)

	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "inline", docErr.Source)

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestLoadJobs_Success(t *testing.T) {
	path := writeFile(t, "jobs.json", `[
		{
			"id": 10,
			"title": "  Python   Developer ",
			"description": "<ul><li>Build APIs</li><li>Write tests</li></ul>",
			"requirements": "3 years   experience",
			"required_skills": [{"id": 1, "name": "Python"}]
		},
		{"id": 11, "title": "Kế toán", "description": "Quản lý sổ sách"}
	]`)

	jobs, err := LoadJobs(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Python Developer", jobs[0].Title)
	assert.Equal(t, "- Build APIs - Write tests", jobs[0].Description)
	assert.Equal(t, "3 years experience", jobs[0].Requirements)
	assert.Empty(t, jobs[0].Responsibilities)
	assert.Equal(t, []string{"Python"}, jobs[0].RequiredSkillNames())

	assert.Equal(t, types.JobID(11), jobs[1].ID)
	assert.Empty(t, jobs[1].RequiredSkills)
}

func TestDecodeJobs_MissingTitle(t *testing.T) {
	_, err := DecodeJobs("inline", []byte(`[{"id": 1}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job list")
}

func TestPrepareJob_BlankTitleFailsValidation(t *testing.T) {
	job := types.JobPosting{ID: 1, Title: "   "}
	assert.Error(t, PrepareJob(&job))
}
