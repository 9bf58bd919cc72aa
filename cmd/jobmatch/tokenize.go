package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/nlp"
	"github.com/jonathan/job-matcher/internal/types"
)

type tokenizeOptions struct {
	text string
	lang string
}

// tokenizeOutput is the JSON printed by the tokenize command.
type tokenizeOutput struct {
	Language   types.Language `json:"language"`
	Normalized string         `json:"normalized"`
	Tokens     []string       `json:"tokens"`
}

func newTokenizeCmd(a *app) *cobra.Command {
	opts := &tokenizeOptions{}

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Normalize and tokenize a text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokenize(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text to tokenize (required)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Language code (vi or en); detected when empty")

	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}

	return cmd
}

func runTokenize(cmd *cobra.Command, a *app, opts *tokenizeOptions) error {
	lang, err := languageFlag(opts.lang)
	if err != nil {
		return err
	}
	if lang == nil {
		detected := nlp.DetectLanguage(opts.text)
		lang = &detected
	}

	tokenizer := nlp.NewTokenizer(a.flags, nlp.WithLogger(a.logger))
	return writeJSON(cmd.OutOrStdout(), "", tokenizeOutput{
		Language:   *lang,
		Normalized: nlp.Normalize(opts.text),
		Tokens:     tokenizer.TokenizeLang(opts.text, *lang),
	})
}
