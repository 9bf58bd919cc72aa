package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/schemas"
)

type validateOptions struct {
	file       string
	schema     string
	schemaFile string
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON document against a schema",
		Long: "Validates a JSON file against one of the embedded schemas (candidate_profile, job_list, match_report) " +
			"or against a JSON Schema file on disk.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the JSON document to validate (required)")
	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Name of an embedded schema")
	cmd.Flags().StringVar(&opts.schemaFile, "schema-file", "", "Path to a JSON Schema file")

	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	cmd.MarkFlagsMutuallyExclusive("schema", "schema-file")
	cmd.MarkFlagsOneRequired("schema", "schema-file")

	return cmd
}

func runValidate(cmd *cobra.Command, a *app, opts *validateOptions) error {
	var err error
	if opts.schemaFile != "" {
		err = schemas.ValidateJSON(opts.schemaFile, opts.file)
	} else {
		err = schemas.ValidateFile(opts.schema, opts.file)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("document is valid", "file", opts.file)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", opts.file)
	return nil
}
