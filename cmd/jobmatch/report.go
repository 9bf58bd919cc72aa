package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// scoreJobs scores jobs for profile and assembles a validated report.
// A concurrency above 1 spreads scoring over that many goroutines.
func (a *app) scoreJobs(ctx context.Context, profile *types.CandidateProfile, jobs []types.JobPosting, topN, concurrency int) (*types.MatchReport, error) {
	m := matching.New(profile, matching.WithFlags(a.flags), matching.WithLogger(a.logger))

	var results map[types.JobID]types.MatchResult
	if concurrency > 1 {
		var err error
		results, err = m.ScoreManyConcurrent(ctx, jobs, concurrency)
		if err != nil {
			return nil, err
		}
	} else {
		results = m.ScoreMany(jobs)
	}

	report := &types.MatchReport{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		HasProfile:  matching.HasSkillProfile(profile),
		Results:     results,
	}
	if report.HasProfile && topN > 0 {
		report.Top = matching.TopMatches(results, jobs, topN)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := schemas.Validate(schemas.MatchReport, data); err != nil {
		return nil, fmt.Errorf("generated report is invalid: %w", err)
	}

	a.logger.Info("scored jobs",
		"run_id", report.RunID,
		"jobs", len(jobs),
		"matches", len(report.Top))
	return report, nil
}
