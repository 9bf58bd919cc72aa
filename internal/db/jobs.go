package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	selectActiveJobs = `SELECT id, title, COALESCE(description, ''),
			COALESCE(requirements, ''), COALESCE(responsibilities, '')
		FROM jobs_job
		WHERE is_active
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	selectRequiredSkills = `SELECT rs.job_id, s.id, s.name
		FROM jobs_job_required_skills rs
		JOIN jobs_skill s ON s.id = rs.skill_id
		WHERE rs.job_id = ANY($1)
		ORDER BY rs.job_id, s.id`
)

// jobSkill is one row of the job/skill join table.
type jobSkill struct {
	JobID types.JobID
	Skill types.Skill
}

// ListActiveJobs returns active jobs, newest first, with their required
// skills. A limit of zero or less returns every active job.
func (db *DB) ListActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := db.pool.Query(ctx, selectActiveJobs, lim)
	if err != nil {
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.JobPosting, error) {
		var j types.JobPosting
		err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Responsibilities)
		return j, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active jobs: %w", err)
	}
	if len(jobs) == 0 {
		return jobs, nil
	}

	rows, err = db.pool.Query(ctx, selectRequiredSkills, jobIDs(jobs))
	if err != nil {
		return nil, fmt.Errorf("failed to query required skills: %w", err)
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (jobSkill, error) {
		var js jobSkill
		err := row.Scan(&js.JobID, &js.Skill.ID, &js.Skill.Name)
		return js, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan required skills: %w", err)
	}

	attachSkills(jobs, links)
	return jobs, nil
}

func jobIDs(jobs []types.JobPosting) []int64 {
	ids := make([]int64, len(jobs))
	for i := range jobs {
		ids[i] = int64(jobs[i].ID)
	}
	return ids
}

// attachSkills appends each link's skill to its job, keeping link order.
// Every job ends up with a non-nil skill slice.
func attachSkills(jobs []types.JobPosting, links []jobSkill) {
	index := make(map[types.JobID]int, len(jobs))
	for i := range jobs {
		index[jobs[i].ID] = i
		if jobs[i].RequiredSkills == nil {
			jobs[i].RequiredSkills = []types.Skill{}
		}
	}
	for _, l := range links {
		if i, ok := index[l.JobID]; ok {
			jobs[i].RequiredSkills = append(jobs[i].RequiredSkills, l.Skill)
		}
	}
}
