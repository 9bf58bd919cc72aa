package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/nlp"
	"github.com/jonathan/job-matcher/internal/similarity"
)

type similarityOptions struct {
	a string
	b string
}

// similarityOutput is the JSON printed by the similarity command.
type similarityOutput struct {
	Similarity float64 `json:"similarity"`
	Percentage int     `json:"percentage"`
	Degraded   string  `json:"degraded,omitempty"`
}

func newSimilarityCmd(a *app) *cobra.Command {
	opts := &similarityOptions{}

	cmd := &cobra.Command{
		Use:   "similarity",
		Short: "Compute TF-IDF cosine similarity between two texts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimilarity(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.a, "a", "", "First text (required)")
	cmd.Flags().StringVar(&opts.b, "b", "", "Second text (required)")

	if err := cmd.MarkFlagRequired("a"); err != nil {
		panic(fmt.Sprintf("failed to mark a flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("b"); err != nil {
		panic(fmt.Sprintf("failed to mark b flag as required: %v", err))
	}

	return cmd
}

func runSimilarity(cmd *cobra.Command, a *app, opts *similarityOptions) error {
	engine := similarity.NewEngine(a.flags, similarity.WithLogger(a.logger))

	score, err := engine.Compare(opts.a, opts.b)
	out := similarityOutput{
		Similarity: score,
		Percentage: similarity.Percentage(score),
	}
	if err != nil {
		var de *nlp.DegradedError
		if !errors.As(err, &de) {
			return err
		}
		out.Degraded = de.Reason.Error()
	}

	return writeJSON(cmd.OutOrStdout(), "", out)
}
