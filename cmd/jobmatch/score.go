package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ingestion"
)

type scoreOptions struct {
	profile     string
	jobs        string
	out         string
	top         int
	concurrency int
}

func newScoreCmd(a *app) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a candidate profile against a list of jobs",
		Long: "Loads a CandidateProfile JSON file and a job list JSON file, validates both against their schemas, " +
			"and writes a MatchReport with per-job scores and the top matches.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Path to CandidateProfile JSON file (required)")
	cmd.Flags().StringVarP(&opts.jobs, "jobs", "j", "", "Path to job list JSON file (required)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Path to output MatchReport JSON file (default stdout)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Number of top matches to include (default from config)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Scoring goroutines, 1 = sequential (default from config)")

	if err := cmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	return cmd
}

func runScore(cmd *cobra.Command, a *app, opts *scoreOptions) error {
	profile, err := ingestion.LoadProfile(opts.profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	jobs, err := ingestion.LoadJobs(opts.jobs)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	report, err := a.scoreJobs(cmd.Context(), profile, jobs,
		orDefault(opts.top, a.cfg.TopN), orDefault(opts.concurrency, a.cfg.Concurrency))
	if err != nil {
		return err
	}

	return a.writeReport(cmd.OutOrStdout(), opts.out, report, jobs)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
