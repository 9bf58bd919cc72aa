package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	selectSkillProfile = `SELECT id, COALESCE(bio, '')
		FROM jobs_userskillprofile
		WHERE user_id = $1`

	selectProfileSkills = `SELECT s.id, s.name
		FROM jobs_userskillprofile_skills ps
		JOIN jobs_skill s ON s.id = ps.skill_id
		WHERE ps.userskillprofile_id = $1
		ORDER BY s.name`

	selectProfileCategories = `SELECT c.id, c.name
		FROM jobs_userskillprofile_categories pc
		JOIN jobs_jobcategory c ON c.id = pc.jobcategory_id
		WHERE pc.userskillprofile_id = $1
		ORDER BY c.name`
)

// LoadCandidateProfile returns the skill profile of the given user, or nil if
// the user has none.
func (db *DB) LoadCandidateProfile(ctx context.Context, userID int64) (*types.CandidateProfile, error) {
	var profileID int64
	profile := &types.CandidateProfile{}

	err := db.pool.QueryRow(ctx, selectSkillProfile, userID).Scan(&profileID, &profile.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill profile for user %d: %w", userID, err)
	}

	rows, err := db.pool.Query(ctx, selectProfileSkills, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile skills: %w", err)
	}
	profile.Skills, err = pgx.CollectRows(rows, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile skills: %w", err)
	}

	rows, err = db.pool.Query(ctx, selectProfileCategories, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile categories: %w", err)
	}
	profile.Categories, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.Category, error) {
		var c types.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile categories: %w", err)
	}

	return profile, nil
}

func scanSkill(row pgx.CollectableRow) (types.Skill, error) {
	var s types.Skill
	err := row.Scan(&s.ID, &s.Name)
	return s, err
}
