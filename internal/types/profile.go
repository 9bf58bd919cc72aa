package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the read-only snapshot of a candidate's declared skills,
// categories and free-text bio.
type CandidateProfile struct {
	Skills     []Skill    `json:"skills" validate:"dive"`
	Categories []Category `json:"categories" validate:"dive"`
	Bio        string     `json:"bio,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillIDs returns the set of the profile's skill ids.
func (p *CandidateProfile) SkillIDs() SkillSet {
	s := make(SkillSet, len(p.Skills))
	for _, sk := range p.Skills {
		s[sk.ID] = struct{}{}
	}
	return s
}

// CategoryIDs returns the set of the profile's category ids.
func (p *CandidateProfile) CategoryIDs() CategorySet {
	s := make(CategorySet, len(p.Categories))
	for _, c := range p.Categories {
		s[c.ID] = struct{}{}
	}
	return s
}

// SkillsText joins skill names with single spaces.
func (p *CandidateProfile) SkillsText() string {
	names := make([]string, 0, len(p.Skills))
	for _, sk := range p.Skills {
		names = append(names, sk.Name)
	}
	return strings.Join(names, " ")
}

// CategoriesText joins category names with single spaces.
func (p *CandidateProfile) CategoriesText() string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// DerivedText is the bio followed by skill names and category names.
// An empty bio is left out rather than contributing a leading space.
func (p *CandidateProfile) DerivedText() string {
	parts := make([]string, 0, 3)
	if p.Bio != "" {
		parts = append(parts, p.Bio)
	}
	parts = append(parts, p.SkillsText(), p.CategoriesText())
	return strings.Join(parts, " ")
}
