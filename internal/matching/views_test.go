package matching

import (
	"testing"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingInfo_NoProfile(t *testing.T) {
	job := pythonJob(1, skillPython)

	for name, profile := range map[string]*types.CandidateProfile{
		"nil":       nil,
		"no skills": {Bio: "Python developer"},
	} {
		t.Run(name, func(t *testing.T) {
			info := MatchingInfo(profile, &job)
			assert.False(t, info.HasProfile)
			assert.Equal(t, 0, info.MatchingScore)
			assert.Equal(t, 0, info.SkillScore)
			assert.Equal(t, 0, info.TextScore)
			assert.NotNil(t, info.MatchedSkills)
			assert.Empty(t, info.MatchedSkills)
		})
	}
}

func TestHasSkillProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.CandidateProfile
		want    bool
	}{
		{"nil", nil, false},
		{"empty", &types.CandidateProfile{Bio: "Python developer"}, false},
		{"skills only", &types.CandidateProfile{Skills: []types.Skill{{ID: 1, Name: "Python"}}}, true},
		{"categories only", &types.CandidateProfile{Categories: []types.Category{{ID: 2, Name: "Backend"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasSkillProfile(tt.profile))
		})
	}
}

func TestMatchingInfo_CategoriesOnlyIsNoProfile(t *testing.T) {
	job := pythonJob(1, skillPython)
	profile := &types.CandidateProfile{Categories: []types.Category{{ID: 2, Name: "Backend"}}}

	assert.False(t, MatchingInfo(profile, &job).HasProfile)
}

func TestMatchingInfo_WithProfile(t *testing.T) {
	job := pythonJob(1, skillPython, skillDocker)

	info := MatchingInfo(pythonProfile(), &job)
	assert.True(t, info.HasProfile)
	assert.Equal(t, 50, info.SkillScore)
	assert.Equal(t, []types.Skill{skillPython}, info.MatchedSkills)
}

func TestJobsWithScores_PreservesOrder(t *testing.T) {
	jobs := []types.JobPosting{
		pythonJob(3, skillGo),
		pythonJob(1, skillPython, skillSQL),
		pythonJob(2, skillPython),
	}

	rows := JobsWithScores(pythonProfile(), jobs)
	require.Len(t, rows, 3)
	assert.Equal(t, types.JobID(3), rows[0].JobID)
	assert.Equal(t, types.JobID(1), rows[1].JobID)
	assert.Equal(t, types.JobID(2), rows[2].JobID)
	for _, r := range rows {
		assert.True(t, r.HasProfile)
	}
	assert.Equal(t, 100, rows[1].SkillScore)
}

func TestJobsWithScores_NoProfile(t *testing.T) {
	jobs := []types.JobPosting{pythonJob(1, skillPython), pythonJob(2)}

	rows := JobsWithScores(nil, jobs)
	assert.Equal(t, []types.JobScore{{JobID: 1}, {JobID: 2}}, rows)
}

func TestTopMatches(t *testing.T) {
	jobs := []types.JobPosting{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	results := map[types.JobID]types.MatchResult{
		1: {MatchingScore: 40},
		2: {MatchingScore: 0},
		3: {MatchingScore: 75},
		4: {MatchingScore: 40},
	}

	top := TopMatches(results, jobs, 6)
	ids := make([]types.JobID, len(top))
	for i, r := range top {
		ids[i] = r.JobID
	}
	assert.Equal(t, []types.JobID{3, 1, 4}, ids)

	assert.Len(t, TopMatches(results, jobs, 2), 2)
	assert.Empty(t, TopMatches(results, jobs, 0))
}
