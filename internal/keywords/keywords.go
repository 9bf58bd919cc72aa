// Package keywords ranks the terms of a single document by TF-IDF weight.
package keywords

import (
	"log/slog"
	"sort"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/nlp"
	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/types"
)

// MaxFeatures caps the vocabulary of one extraction.
const MaxFeatures = 100

const opKeywords = "keyword extraction"

// Extractor extracts top keywords. It shares the text similarity backend flag.
type Extractor struct {
	flags      *backend.Flags
	tokenizer  *nlp.Tokenizer
	vectorizer similarity.Vectorizer
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTokenizer replaces the tokenizer.
func WithTokenizer(t *nlp.Tokenizer) Option {
	return func(e *Extractor) { e.tokenizer = t }
}

// WithLogger sets the logger used for degradation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// NewExtractor returns an Extractor that reads flags at call time.
func NewExtractor(flags *backend.Flags, opts ...Option) *Extractor {
	e := &Extractor{
		flags:      flags,
		vectorizer: similarity.NewVectorizer(MaxFeatures),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.tokenizer == nil {
		e.tokenizer = nlp.NewTokenizer(flags, nlp.WithLogger(e.logger))
	}
	return e
}

// TopKeywords returns at most topN keywords of text, detecting its language.
// The result is empty, never nil, when nothing can be extracted.
func (e *Extractor) TopKeywords(text string, topN int) []types.KeywordScore {
	return e.TopKeywordsLang(text, topN, nlp.DetectLanguage(text))
}

// TopKeywordsLang is TopKeywords with an explicit language.
func (e *Extractor) TopKeywordsLang(text string, topN int, lang types.Language) []types.KeywordScore {
	kws, err := e.Extract(text, topN, lang)
	if err != nil {
		e.logger.Debug("keyword extraction degraded", slog.Any("error", err))
		return []types.KeywordScore{}
	}
	return kws
}

// Extract ranks the terms of text by weight, descending, ties in order of
// first occurrence. A non-nil error is a *nlp.DegradedError and the
// returned slice is then empty.
func (e *Extractor) Extract(text string, topN int, lang types.Language) (kws []types.KeywordScore, err error) {
	kws = []types.KeywordScore{}
	defer func() {
		if err != nil {
			kws = []types.KeywordScore{}
		}
	}()
	defer nlp.RecoverDegraded(opKeywords, &err)

	if !e.flags.Enabled(backend.TextSimilarity) {
		return kws, nlp.Degraded(opKeywords, nlp.ErrBackendUnavailable)
	}
	if text == "" {
		return kws, nlp.Degraded(opKeywords, nlp.ErrEmptyInput)
	}
	if topN <= 0 {
		return kws, nil
	}

	doc := e.tokenizer.TokenizeJoinLang(text, lang)
	if doc == "" {
		return kws, nlp.Degraded(opKeywords, nlp.ErrNoFeatures)
	}

	m, err := e.vectorizer.FitTransform([]string{doc})
	if err != nil {
		return kws, &nlp.DegradedError{Op: opKeywords, Reason: nlp.ErrNoFeatures, Cause: err}
	}

	// Terms are indexed by first occurrence, so a stable sort on weight
	// keeps that order among ties.
	row := m.Rows[0]
	idx := make([]int, 0, len(row))
	for i := range row {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	sort.SliceStable(idx, func(i, j int) bool { return row[idx[i]] > row[idx[j]] })

	if len(idx) > topN {
		idx = idx[:topN]
	}
	for _, i := range idx {
		kws = append(kws, types.KeywordScore{Term: m.Terms[i], Weight: row[i]})
	}
	return kws, nil
}
