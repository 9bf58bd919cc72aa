package similarity

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyVocabulary is returned when no document yields a single feature.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no usable terms")

// Vector sizing defaults.
const (
	DefaultMaxFeatures = 5000
	minTokenRunes      = 2
)

// Vectorizer builds TF-IDF vectors over a small in-memory corpus.
//
// Documents are analyzed into unigrams and bigrams of word tokens with at
// least two runes. Weights are raw term counts times the smoothed inverse
// document frequency ln((1+n)/(1+df))+1, and every row is L2-normalized.
// When the vocabulary exceeds MaxFeatures, the most frequent terms across the
// corpus are kept, ties going to the term seen first.
type Vectorizer struct {
	MaxFeatures int
	MaxNGram    int
}

// NewVectorizer returns a unigram+bigram vectorizer capped at maxFeatures terms.
func NewVectorizer(maxFeatures int) Vectorizer {
	return Vectorizer{MaxFeatures: maxFeatures, MaxNGram: 2}
}

// Matrix is the sparse TF-IDF matrix of a corpus. Terms are indexed in order
// of first occurrence across the corpus.
type Matrix struct {
	Terms []string
	Rows  []map[int]float64
}

// Row returns the weights of document i keyed by term.
func (m *Matrix) Row(i int) map[string]float64 {
	out := make(map[string]float64, len(m.Rows[i]))
	for idx, w := range m.Rows[i] {
		out[m.Terms[idx]] = w
	}
	return out
}

// Cosine returns the cosine similarity of documents i and j, clamped to [0, 1].
// Rows are already unit length, so this is their dot product.
func (m *Matrix) Cosine(i, j int) float64 {
	a, b := m.Rows[i], m.Rows[j]
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for idx, w := range a {
		dot += w * b[idx]
	}
	return math.Max(0, math.Min(1, dot))
}

type termStats struct {
	first int // first occurrence position across the corpus
	count int // total occurrences across the corpus
	df    int
}

// FitTransform learns the vocabulary of docs and returns their TF-IDF matrix.
func (v Vectorizer) FitTransform(docs []string) (*Matrix, error) {
	maxN := v.MaxNGram
	if maxN < 1 {
		maxN = 1
	}

	stats := make(map[string]*termStats)
	counts := make([]map[string]int, len(docs))
	pos := 0
	for d, doc := range docs {
		counts[d] = make(map[string]int)
		for _, term := range analyze(doc, maxN) {
			st, ok := stats[term]
			if !ok {
				st = &termStats{first: pos}
				stats[term] = st
			}
			if counts[d][term] == 0 {
				st.df++
			}
			counts[d][term]++
			st.count++
			pos++
		}
	}

	if len(stats) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(stats))
	for term := range stats {
		terms = append(terms, term)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			a, b := stats[terms[i]], stats[terms[j]]
			if a.count != b.count {
				return a.count > b.count
			}
			return a.first < b.first
		})
		terms = terms[:v.MaxFeatures]
	}

	sort.Slice(terms, func(i, j int) bool {
		return stats[terms[i]].first < stats[terms[j]].first
	})

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	n := float64(len(docs))
	m := &Matrix{Terms: terms, Rows: make([]map[int]float64, len(docs))}
	for d := range docs {
		row := make(map[int]float64, len(counts[d]))
		sumSq := 0.0
		for term, c := range counts[d] {
			idx, ok := index[term]
			if !ok {
				continue
			}
			idf := math.Log((1+n)/(1+float64(stats[term].df))) + 1
			w := float64(c) * idf
			row[idx] = w
			sumSq += w * w
		}
		if sumSq > 0 {
			norm := math.Sqrt(sumSq)
			for idx := range row {
				row[idx] /= norm
			}
		}
		m.Rows[d] = row
	}

	return m, nil
}

// analyze splits a document into word tokens and joins consecutive tokens
// into n-grams up to maxN, unigrams first.
func analyze(doc string, maxN int) []string {
	words := strings.FieldsFunc(doc, func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minTokenRunes {
			tokens = append(tokens, w)
		}
	}

	grams := make([]string, 0, len(tokens)*maxN)
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.M, r) || r == '_'
}
