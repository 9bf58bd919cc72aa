package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_UnigramsThenBigrams(t *testing.T) {
	grams := analyze("go is fun", 2)
	// "go", "is" and "fun" all have two or more runes.
	assert.Equal(t, []string{"go", "is", "fun", "go is", "is fun"}, grams)
}

func TestAnalyze_DropsSingleRuneTokens(t *testing.T) {
	grams := analyze("a python c dev", 2)
	assert.Equal(t, []string{"python", "dev", "python dev"}, grams)
}

func TestAnalyze_KeepsCompounds(t *testing.T) {
	grams := analyze("lập_trình_viên python", 1)
	assert.Equal(t, []string{"lập_trình_viên", "python"}, grams)
}

func TestFitTransform_EmptyVocabulary(t *testing.T) {
	_, err := NewVectorizer(10).FitTransform([]string{"", "a b"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestFitTransform_SmoothedIDF(t *testing.T) {
	m, err := Vectorizer{MaxNGram: 1}.FitTransform([]string{"shared only", "shared"})
	require.NoError(t, err)

	// shared: df=2 -> idf 1; only: df=1 -> idf ln(3/2)+1.
	idfOnly := math.Log(3.0/2.0) + 1
	norm := math.Sqrt(1 + idfOnly*idfOnly)

	row := m.Row(0)
	assert.InDelta(t, 1/norm, row["shared"], 1e-9)
	assert.InDelta(t, idfOnly/norm, row["only"], 1e-9)

	row = m.Row(1)
	assert.InDelta(t, 1.0, row["shared"], 1e-9)
}

func TestFitTransform_RowsAreUnitLength(t *testing.T) {
	m, err := NewVectorizer(DefaultMaxFeatures).FitTransform([]string{
		"python django rest api python",
		"golang grpc api",
	})
	require.NoError(t, err)

	for i := range m.Rows {
		sum := 0.0
		for _, w := range m.Rows[i] {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestFitTransform_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	m, err := Vectorizer{MaxFeatures: 2, MaxNGram: 1}.FitTransform([]string{
		"rare common common other",
		"common other",
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"common", "other"}, m.Terms)
	assert.NotContains(t, m.Row(0), "rare")
}

func TestFitTransform_TermsInFirstOccurrenceOrder(t *testing.T) {
	m, err := Vectorizer{MaxNGram: 1}.FitTransform([]string{"zeta alpha", "beta alpha"})
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, m.Terms)
}

func TestCosine_DisjointIsZero(t *testing.T) {
	m, err := NewVectorizer(DefaultMaxFeatures).FitTransform([]string{"python django", "golang grpc"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Cosine(0, 1))
}

func TestCosine_IdenticalIsOne(t *testing.T) {
	m, err := NewVectorizer(DefaultMaxFeatures).FitTransform([]string{"python django", "python django"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Cosine(0, 1), 1e-9)
	assert.LessOrEqual(t, m.Cosine(0, 1), 1.0)
}
