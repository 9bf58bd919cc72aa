package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/keywords"
	"github.com/jonathan/job-matcher/internal/nlp"
)

type keywordsOptions struct {
	text string
	file string
	top  int
	lang string
}

func newKeywordsCmd(a *app) *cobra.Command {
	opts := &keywordsOptions{}

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract the top TF-IDF keywords of a text",
		Long:  "Ranks the unigrams and bigrams of one document by TF-IDF weight. Text may be given inline or read from a file; HTML is converted to plain text first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeywords(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text to analyze")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to a text or HTML file to analyze")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 10, "Number of keywords to return")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Language code (vi or en); detected when empty")
	cmd.MarkFlagsOneRequired("text", "file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

func runKeywords(cmd *cobra.Command, a *app, opts *keywordsOptions) error {
	text := opts.text
	if opts.file != "" {
		content, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", opts.file, err)
		}
		text = string(content)
	}

	text, err := ingestion.TextField(text)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	lang, err := languageFlag(opts.lang)
	if err != nil {
		return err
	}
	if lang == nil {
		detected := nlp.DetectLanguage(text)
		lang = &detected
	}

	extractor := keywords.NewExtractor(a.flags, keywords.WithLogger(a.logger))
	kws := extractor.TopKeywordsLang(text, opts.top, *lang)
	if p := a.printer(cmd.OutOrStdout()); p != nil {
		p.PrintKeywords(kws)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), "", kws)
}
