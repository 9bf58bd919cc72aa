package nlp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/types"
)

// Tokenizer normalizes text and segments it with the segmenter of its language.
// A segmenter flagged unavailable, or one that fails, is replaced by
// whitespace splitting for that call.
type Tokenizer struct {
	flags    *backend.Flags
	vi       Segmenter
	en       Segmenter
	fallback Segmenter
	logger   *slog.Logger
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithVietnameseSegmenter replaces the Vietnamese segmenter.
func WithVietnameseSegmenter(s Segmenter) TokenizerOption {
	return func(t *Tokenizer) { t.vi = s }
}

// WithEnglishSegmenter replaces the English segmenter.
func WithEnglishSegmenter(s Segmenter) TokenizerOption {
	return func(t *Tokenizer) { t.en = s }
}

// WithLogger sets the logger used for degradation diagnostics.
func WithLogger(l *slog.Logger) TokenizerOption {
	return func(t *Tokenizer) { t.logger = l }
}

// NewTokenizer returns a Tokenizer consulting flags on every call.
// A nil flags value means every segmenter is available.
func NewTokenizer(flags *backend.Flags, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		flags:    flags,
		vi:       NewVietnameseSegmenter(),
		en:       EnglishSegmenter{},
		fallback: WhitespaceSegmenter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize detects the language of the raw text, then normalizes and segments it.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	return t.TokenizeLang(text, DetectLanguage(text))
}

// TokenizeLang normalizes and segments text using the given language.
// The result is never nil.
func (t *Tokenizer) TokenizeLang(text string, lang types.Language) []string {
	cleaned := Normalize(text)
	if cleaned == "" {
		return []string{}
	}

	tokens, err := t.segment(cleaned, lang)
	if err != nil {
		t.logger.Debug("segmenter degraded, splitting on whitespace",
			slog.String("lang", lang.String()), slog.Any("error", err))
		tokens, _ = t.fallback.Segment(cleaned)
	}
	if tokens == nil {
		tokens = []string{}
	}
	return tokens
}

// TokenizeJoin returns the space-joined tokens of text.
func (t *Tokenizer) TokenizeJoin(text string) string {
	return strings.Join(t.Tokenize(text), " ")
}

// TokenizeJoinLang returns the space-joined tokens of text for the given language.
func (t *Tokenizer) TokenizeJoinLang(text string, lang types.Language) string {
	return strings.Join(t.TokenizeLang(text, lang), " ")
}

// segment runs the language's segmenter, reporting degradation as an error.
func (t *Tokenizer) segment(text string, lang types.Language) (tokens []string, err error) {
	op := "segment " + lang.String()
	defer RecoverDegraded(op, &err)

	var seg Segmenter
	var name backend.Name
	switch lang {
	case types.Vietnamese:
		seg, name = t.vi, backend.ViSegmenter
	case types.English:
		seg, name = t.en, backend.EnSegmenter
	default:
		return nil, &DegradedError{Op: op, Reason: ErrProcessing, Cause: fmt.Errorf("unsupported language %v", lang)}
	}

	if seg == nil || !t.flags.Enabled(name) {
		return nil, Degraded(op, ErrBackendUnavailable)
	}

	tokens, err = seg.Segment(text)
	if err != nil {
		return nil, &DegradedError{Op: op, Reason: ErrProcessing, Cause: err}
	}
	return tokens, nil
}
