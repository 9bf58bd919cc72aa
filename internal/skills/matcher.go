// Package skills scores structured skill overlap between a candidate and a job.
//
// The score is one-directional coverage of the job's requirements: candidate
// skills the job does not ask for neither help nor hurt.
package skills

import (
	"github.com/jonathan/job-matcher/internal/types"
)

// Matched returns the skills present in both sets.
func Matched(candidate, job types.SkillSet) types.SkillSet {
	small, large := candidate, job
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(types.SkillSet, len(small))
	for id := range small {
		if large.Contains(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Score returns floor(100 * |candidate ∩ job| / |job|), or 0 when the job
// declares no skills.
func Score(candidate, job types.SkillSet) int {
	if len(job) == 0 {
		return 0
	}
	return 100 * len(Matched(candidate, job)) / len(job)
}

// Resolve looks up the names of matched ids among the job's required skills,
// in ascending id order. Ids without a known name are skipped.
func Resolve(matched types.SkillSet, names map[types.SkillID]string) []types.Skill {
	out := make([]types.Skill, 0, len(matched))
	for _, id := range matched.Sorted() {
		if name, ok := names[id]; ok {
			out = append(out, types.Skill{ID: id, Name: name})
		}
	}
	return out
}
