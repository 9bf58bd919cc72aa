package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobPosting is the read-only snapshot of a job posting used for scoring.
// Requirements and Responsibilities are optional and treated as empty when absent.
type JobPosting struct {
	ID               JobID   `json:"id" validate:"required"`
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description"`
	Requirements     string  `json:"requirements,omitempty"`
	Responsibilities string  `json:"responsibilities,omitempty"`
	RequiredSkills   []Skill `json:"required_skills" validate:"dive"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// RequiredSkillIDs returns the set of skill ids the job requires.
func (j *JobPosting) RequiredSkillIDs() SkillSet {
	s := make(SkillSet, len(j.RequiredSkills))
	for _, sk := range j.RequiredSkills {
		s[sk.ID] = struct{}{}
	}
	return s
}

// RequiredSkillNames returns the required skill names in declaration order.
func (j *JobPosting) RequiredSkillNames() []string {
	names := make([]string, 0, len(j.RequiredSkills))
	for _, sk := range j.RequiredSkills {
		names = append(names, sk.Name)
	}
	return names
}

// Text builds the composite free text of the job: title, description, the
// optional requirements and responsibilities, then required skill names.
func (j *JobPosting) Text() string {
	parts := []string{j.Title, j.Description}
	if j.Requirements != "" {
		parts = append(parts, j.Requirements)
	}
	if j.Responsibilities != "" {
		parts = append(parts, j.Responsibilities)
	}
	parts = append(parts, strings.Join(j.RequiredSkillNames(), " "))
	return strings.Join(parts, " ")
}

// SkillNames maps the job's required skill ids to their names.
func (j *JobPosting) SkillNames() map[SkillID]string {
	m := make(map[SkillID]string, len(j.RequiredSkills))
	for _, sk := range j.RequiredSkills {
		m[sk.ID] = sk.Name
	}
	return m
}
