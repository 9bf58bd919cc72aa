// Package main implements the jobmatch CLI, which scores candidate profiles
// against job postings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jobmatch",
		Short: "Job matching engine",
		Long: "jobmatch scores how well a candidate's skills, categories and bio fit job postings, " +
			"combining skill coverage with Vietnamese/English TF-IDF text similarity.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log degradation diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", formatJSON, "Output format for score, score-db and keywords (json or text)")
	rootCmd.PersistentFlags().StringSliceVar(&a.disable, "disable", nil, "Backends to mark unavailable (text_similarity, vi_segmenter, en_segmenter)")

	rootCmd.AddCommand(
		newScoreCmd(a),
		newScoreDBCmd(a),
		newSimilarityCmd(a),
		newKeywordsCmd(a),
		newTokenizeCmd(a),
		newValidateCmd(a),
		newStatusCmd(a),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
