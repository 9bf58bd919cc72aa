package matching

import (
	"sort"

	"github.com/jonathan/job-matcher/internal/types"
)

// hasUsableProfile reports whether profile can drive matching at all.
// A profile without skills is treated as missing.
func hasUsableProfile(profile *types.CandidateProfile) bool {
	return profile != nil && len(profile.Skills) > 0
}

// HasSkillProfile reports whether the candidate has picked at least one skill
// or category. This is the home-page rule that gates the top-matches list;
// per-job views use the stricter skills-only rule.
func HasSkillProfile(profile *types.CandidateProfile) bool {
	return profile != nil && (len(profile.Skills) > 0 || len(profile.Categories) > 0)
}

// MatchingInfo scores one job for profile. HasProfile is false, with every
// score 0 and no matched skills, when the profile is missing or has no skills.
func MatchingInfo(profile *types.CandidateProfile, job *types.JobPosting, opts ...Option) types.MatchingInfo {
	if !hasUsableProfile(profile) {
		return types.MatchingInfo{
			MatchResult: types.MatchResult{
				MatchedSkillIDs: types.SkillSet{},
				MatchedSkills:   []types.Skill{},
			},
		}
	}
	return types.MatchingInfo{
		HasProfile:  true,
		MatchResult: New(profile, opts...).ScoreOne(job),
	}
}

// JobsWithScores scores jobs for profile and returns one row per job in input order.
func JobsWithScores(profile *types.CandidateProfile, jobs []types.JobPosting, opts ...Option) []types.JobScore {
	rows := make([]types.JobScore, len(jobs))
	if !hasUsableProfile(profile) {
		for i := range jobs {
			rows[i] = types.JobScore{JobID: jobs[i].ID}
		}
		return rows
	}

	results := New(profile, opts...).ScoreMany(jobs)
	for i := range jobs {
		r := results[jobs[i].ID]
		rows[i] = types.JobScore{
			JobID:         jobs[i].ID,
			MatchingScore: r.MatchingScore,
			SkillScore:    r.SkillScore,
			TextScore:     r.TextScore,
			HasProfile:    true,
		}
	}
	return rows
}

// TopMatches returns up to n jobs with a positive matching score, highest
// first. Equal scores keep input order. Jobs missing from results are skipped.
func TopMatches(results map[types.JobID]types.MatchResult, jobs []types.JobPosting, n int) []types.JobScore {
	rows := make([]types.JobScore, 0, len(jobs))
	for i := range jobs {
		r, ok := results[jobs[i].ID]
		if !ok || r.MatchingScore <= 0 {
			continue
		}
		rows = append(rows, types.JobScore{
			JobID:         jobs[i].ID,
			MatchingScore: r.MatchingScore,
			SkillScore:    r.SkillScore,
			TextScore:     r.TextScore,
			HasProfile:    true,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MatchingScore > rows[j].MatchingScore
	})

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
