package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/ingestion"
)

type scoreDBOptions struct {
	userID      int64
	databaseURL string
	limit       int
	top         int
	out         string
	save        bool
}

func newScoreDBCmd(a *app) *cobra.Command {
	opts := &scoreDBOptions{}

	cmd := &cobra.Command{
		Use:   "score-db",
		Short: "Score a user's skill profile against active jobs in the database",
		Long: "Reads the user's skill profile and every active job from PostgreSQL, scores them, " +
			"and writes a MatchReport. With --save the report is also stored in match_reports.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScoreDB(cmd, a, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.userID, "user-id", "u", 0, "User ID whose skill profile is scored (required)")
	cmd.Flags().StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (default from config or DATABASE_URL)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of active jobs to score (0 = all)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Number of top matches to include (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Path to output MatchReport JSON file (default stdout)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the report in the database")

	if err := cmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}

	return cmd
}

func runScoreDB(cmd *cobra.Command, a *app, opts *scoreDBOptions) error {
	ctx := cmd.Context()

	databaseURL := opts.databaseURL
	if databaseURL == "" {
		databaseURL = a.cfg.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("no database URL: set --database-url, database_url in config, or DATABASE_URL")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	profile, err := database.LoadCandidateProfile(ctx, opts.userID)
	if err != nil {
		return err
	}
	if profile == nil {
		a.logger.Info("user has no skill profile", "user_id", opts.userID)
	}

	jobs, err := database.ListActiveJobs(ctx, opts.limit)
	if err != nil {
		return err
	}
	for i := range jobs {
		if err := ingestion.PrepareJob(&jobs[i]); err != nil {
			return fmt.Errorf("job %d: %w", jobs[i].ID, err)
		}
	}

	report, err := a.scoreJobs(ctx, profile, jobs, orDefault(opts.top, a.cfg.TopN), a.cfg.Concurrency)
	if err != nil {
		return err
	}

	if opts.save {
		if err := database.EnsureReportsTable(ctx); err != nil {
			return err
		}
		if err := database.SaveReport(ctx, opts.userID, report); err != nil {
			return err
		}
		a.logger.Info("saved report", "run_id", report.RunID)
	}

	return a.writeReport(cmd.OutOrStdout(), opts.out, report, jobs)
}
