// Package similarity scores free-text fit between two documents with TF-IDF
// vectors and cosine similarity.
//
// Similarity is a best-effort signal: when the backend is flagged
// unavailable, an input is empty, or processing fails, the score is 0 and the
// reason is reported through a *nlp.DegradedError (Compare) or a debug log
// line (Similarity, PercentageScore).
package similarity

import (
	"log/slog"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/nlp"
)

const opSimilarity = "text similarity"

// Engine computes text similarity. The vocabulary is rebuilt on every call;
// nothing is cached between calls.
type Engine struct {
	flags      *backend.Flags
	tokenizer  *nlp.Tokenizer
	vectorizer Vectorizer
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTokenizer replaces the tokenizer.
func WithTokenizer(t *nlp.Tokenizer) Option {
	return func(e *Engine) { e.tokenizer = t }
}

// WithMaxFeatures overrides the vocabulary cap.
func WithMaxFeatures(n int) Option {
	return func(e *Engine) { e.vectorizer.MaxFeatures = n }
}

// WithLogger sets the logger used for degradation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an Engine that reads flags at call time.
func NewEngine(flags *backend.Flags, opts ...Option) *Engine {
	e := &Engine{
		flags:      flags,
		vectorizer: NewVectorizer(DefaultMaxFeatures),
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

// Compare returns the cosine similarity of a and b in [0, 1]. Both texts are
// tokenized with the language detected on their concatenation. A non-nil
// error is always a *nlp.DegradedError and the score is then 0.
func (e *Engine) Compare(a, b string) (score float64, err error) {
	defer nlp.RecoverDegraded(opSimilarity, &err)

	if !e.flags.Enabled(backend.TextSimilarity) {
		return 0, nlp.Degraded(opSimilarity, nlp.ErrBackendUnavailable)
	}
	if a == "" || b == "" {
		return 0, nlp.Degraded(opSimilarity, nlp.ErrEmptyInput)
	}

	lang := nlp.DetectLanguage(a + " " + b)
	docA := e.tokenizer.TokenizeJoinLang(a, lang)
	docB := e.tokenizer.TokenizeJoinLang(b, lang)
	if docA == "" || docB == "" {
		return 0, nlp.Degraded(opSimilarity, nlp.ErrNoFeatures)
	}

	m, err := e.vectorizer.FitTransform([]string{docA, docB})
	if err != nil {
		return 0, &nlp.DegradedError{Op: opSimilarity, Reason: nlp.ErrNoFeatures, Cause: err}
	}
	if len(m.Rows[0]) == 0 || len(m.Rows[1]) == 0 {
		return 0, nlp.Degraded(opSimilarity, nlp.ErrNoFeatures)
	}

	return m.Cosine(0, 1), nil
}

// Similarity is Compare with degradation logged and collapsed to 0.
func (e *Engine) Similarity(a, b string) float64 {
	score, err := e.Compare(a, b)
	if err != nil {
		e.logger.Debug("text similarity degraded", slog.Any("error", err))
		return 0
	}
	return score
}

// PercentageScore returns floor(min(similarity*100, 100)).
func (e *Engine) PercentageScore(a, b string) int {
	return Percentage(e.Similarity(a, b))
}

// Percentage converts a similarity in [0, 1] to an integer percentage in [0, 100].
// The value is floored, not rounded: a self-comparison whose cosine comes out
// as 0.9999999999999999 yields 99.
func Percentage(similarity float64) int {
	p := int(similarity * 100)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
