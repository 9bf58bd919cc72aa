package keywords

import (
	"testing"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/nlp"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terms(kws []types.KeywordScore) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Term
	}
	return out
}

func TestTopKeywords_TermFrequencyDominates(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywords("python python django rest api", 2)
	require.Len(t, kws, 2)
	assert.Equal(t, "python", kws[0].Term)
	assert.Equal(t, "django", kws[1].Term)
	assert.Greater(t, kws[0].Weight, kws[1].Weight)
}

func TestTopKeywords_TiesKeepFirstOccurrence(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywordsLang("zeta alpha beta", 3, types.English)
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, terms(kws))
}

func TestTopKeywords_SortedDescending(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywords("golang golang golang docker docker kubernetes ci", 10)
	require.NotEmpty(t, kws)
	for i := 1; i < len(kws); i++ {
		assert.GreaterOrEqual(t, kws[i-1].Weight, kws[i].Weight)
	}
	for _, kw := range kws {
		assert.GreaterOrEqual(t, kw.Weight, 0.0)
	}
}

func TestTopKeywords_IncludesBigrams(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywordsLang("machine learning engineer", 10, types.English)
	assert.Contains(t, terms(kws), "machine learning")
}

func TestTopKeywords_Vietnamese(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywords("tuyển lập trình viên python, lập trình viên java", 1)
	require.Len(t, kws, 1)
	assert.Equal(t, "lập_trình_viên", kws[0].Term)
}

func TestTopKeywords_LengthBoundedByTopN(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	for _, n := range []int{0, 1, 3, 50} {
		kws := e.TopKeywords("senior backend engineer go postgres redis", n)
		assert.LessOrEqual(t, len(kws), n)
		assert.NotNil(t, kws)
	}
}

func TestTopKeywords_EmptyNeverNil(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	kws := e.TopKeywords("", 5)
	assert.NotNil(t, kws)
	assert.Empty(t, kws)

	_, err := e.Extract("", 5, types.English)
	assert.ErrorIs(t, err, nlp.ErrEmptyInput)
}

func TestExtract_BackendUnavailable(t *testing.T) {
	flags := backend.New(backend.Settings{TextSimilarity: backend.Unavailable})
	e := NewExtractor(flags)

	kws, err := e.Extract("python django", 5, types.English)
	assert.Empty(t, kws)
	assert.NotNil(t, kws)
	assert.ErrorIs(t, err, nlp.ErrBackendUnavailable)
	assert.True(t, nlp.IsDegraded(err))
}

func TestExtract_NoFeatures(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	_, err := e.Extract("a b c", 5, types.English)
	assert.ErrorIs(t, err, nlp.ErrNoFeatures)
}

func TestExtract_VocabularyCapped(t *testing.T) {
	e := NewExtractor(backend.AllAvailable())

	text := ""
	for i := 0; i < 150; i++ {
		text += "w" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + " "
	}
	kws, err := e.Extract(text, 1000, types.English)
	require.NoError(t, err)
	assert.Len(t, kws, MaxFeatures)
}
