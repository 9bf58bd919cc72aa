package types

import (
	"encoding/json"
	"sort"
)

// SkillID identifies a discrete skill in the system of record.
type SkillID int64

// CategoryID identifies a job category in the system of record.
type CategoryID int64

// JobID identifies a job posting in the system of record.
type JobID int64

// Skill is a named skill as stored by the host application.
type Skill struct {
	ID   SkillID `json:"id" validate:"required"`
	Name string  `json:"name" validate:"required"`
}

// Category is a named job category as stored by the host application.
type Category struct {
	ID   CategoryID `json:"id" validate:"required"`
	Name string     `json:"name" validate:"required"`
}

// SkillSet is an unordered set of skill ids.
type SkillSet map[SkillID]struct{}

// NewSkillSet builds a set from the given ids, dropping duplicates.
func NewSkillSet(ids ...SkillID) SkillSet {
	s := make(SkillSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s SkillSet) Contains(id SkillID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s SkillSet) Sorted() []SkillID {
	ids := make([]SkillID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarshalJSON encodes the set as a sorted array so output is deterministic.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of ids into the set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var ids []SkillID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSkillSet(ids...)
	return nil
}

// CategorySet is an unordered set of category ids.
type CategorySet map[CategoryID]struct{}

// NewCategorySet builds a set from the given ids, dropping duplicates.
func NewCategorySet(ids ...CategoryID) CategorySet {
	s := make(CategorySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}
