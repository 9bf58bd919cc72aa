// Package matching combines skill overlap and text similarity into one
// relevance score per job for a single candidate profile.
package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/skills"
	"github.com/jonathan/job-matcher/internal/types"
)

// JobMatcher scores jobs against one candidate profile. The profile's skill
// set and derived text are loaded once at construction; a JobMatcher holds
// no other state and is safe for concurrent use.
type JobMatcher struct {
	skillIDs types.SkillSet
	text     string
	loaded   bool

	flags  *backend.Flags
	engine *similarity.Engine
	logger *slog.Logger
}

// Option configures a JobMatcher.
type Option func(*JobMatcher)

// WithFlags sets the backend flags. Without it every backend is available.
func WithFlags(f *backend.Flags) Option {
	return func(m *JobMatcher) { m.flags = f }
}

// WithEngine replaces the similarity engine.
func WithEngine(e *similarity.Engine) Option {
	return func(m *JobMatcher) { m.engine = e }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *JobMatcher) { m.logger = l }
}

// New builds a JobMatcher for profile. A nil profile yields a matcher with
// no skills and no text, which scores every job 0.
func New(profile *types.CandidateProfile, opts ...Option) *JobMatcher {
	m := &JobMatcher{
		skillIDs: types.SkillSet{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.engine == nil {
		m.engine = similarity.NewEngine(m.flags, similarity.WithLogger(m.logger))
	}
	if profile != nil {
		m.skillIDs = profile.SkillIDs()
		m.text = profile.DerivedText()
		m.loaded = true
	}
	return m
}

// Loaded reports whether the matcher was built from a profile.
func (m *JobMatcher) Loaded() bool {
	return m.loaded
}

// ScoreOne scores a single job. Text similarity is only computed when the
// profile has derived text; otherwise the text score is 0.
func (m *JobMatcher) ScoreOne(job *types.JobPosting) types.MatchResult {
	jobSkills := job.RequiredSkillIDs()
	matched := skills.Matched(m.skillIDs, jobSkills)
	skillScore := skills.Score(m.skillIDs, jobSkills)

	textScore := 0
	if m.text != "" {
		textScore = m.engine.PercentageScore(m.text, job.Text())
	}

	return types.MatchResult{
		MatchingScore:       types.CombineScores(skillScore, textScore),
		SkillScore:          skillScore,
		TextScore:           textScore,
		MatchedSkillIDs:     matched,
		MatchedSkills:       skills.Resolve(matched, job.SkillNames()),
		MatchedSkillCount:   len(matched),
		TotalRequiredSkills: len(jobSkills),
	}
}

// ScoreMany scores every job in order. Duplicate ids keep the last result.
func (m *JobMatcher) ScoreMany(jobs []types.JobPosting) map[types.JobID]types.MatchResult {
	results := make(map[types.JobID]types.MatchResult, len(jobs))
	for i := range jobs {
		results[jobs[i].ID] = m.ScoreOne(&jobs[i])
	}
	return results
}

// ScoreManyConcurrent is ScoreMany spread over at most limit goroutines
// (limit <= 0 means unbounded). It stops early only if ctx is cancelled.
// Duplicate ids resolve to the result of the later job, as in ScoreMany.
func (m *JobMatcher) ScoreManyConcurrent(ctx context.Context, jobs []types.JobPosting, limit int) (map[types.JobID]types.MatchResult, error) {
	scored := make([]types.MatchResult, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	done := 0
	for i := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scored[i] = m.ScoreOne(&jobs[i])
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring cancelled after %d of %d jobs: %w", done, len(jobs), err)
	}

	results := make(map[types.JobID]types.MatchResult, len(jobs))
	for i := range jobs {
		results[jobs[i].ID] = scored[i]
	}
	m.logger.Debug("scored jobs", slog.Int("count", len(jobs)), slog.Int("limit", limit))
	return results, nil
}
