package types

import (
	"time"

	"github.com/google/uuid"
)

// Weights used to combine the skill and text scores.
const (
	SkillScoreWeight = 0.6
	TextScoreWeight  = 0.4
)

// MatchResult is the score record of one job against one candidate profile.
// MatchingScore is always floor(SkillScore*0.6 + TextScore*0.4).
type MatchResult struct {
	MatchingScore       int      `json:"matching_score"`
	SkillScore          int      `json:"skill_score"`
	TextScore           int      `json:"text_score"`
	MatchedSkillIDs     SkillSet `json:"matched_skill_ids"`
	MatchedSkills       []Skill  `json:"matched_skills"`
	MatchedSkillCount   int      `json:"matched_skill_count"`
	TotalRequiredSkills int      `json:"total_required_skills"`
}

// CombineScores applies the fixed weights and truncates toward zero.
func CombineScores(skillScore, textScore int) int {
	return int(float64(skillScore)*SkillScoreWeight + float64(textScore)*TextScoreWeight)
}

// MatchingInfo wraps a MatchResult with an explicit flag distinguishing
// "no usable profile" from "computed and scored zero".
type MatchingInfo struct {
	HasProfile bool `json:"has_profile"`
	MatchResult
}

// JobScore is one row of a scored job listing, in listing order.
type JobScore struct {
	JobID         JobID `json:"job_id"`
	MatchingScore int   `json:"matching_score"`
	SkillScore    int   `json:"skill_score"`
	TextScore     int   `json:"text_score"`
	HasProfile    bool  `json:"has_profile"`
}

// MatchReport is the JSON document written by the CLI scoring commands.
// HasProfile is true when the candidate has at least one skill or category;
// Top is only filled in that case.
type MatchReport struct {
	RunID       uuid.UUID             `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	HasProfile  bool                  `json:"has_profile"`
	Results     map[JobID]MatchResult `json:"results"`
	Top         []JobScore            `json:"top,omitempty"`
}
