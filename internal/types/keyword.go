package types

// KeywordScore is a term (unigram or bigram) with its non-negative TF-IDF weight.
type KeywordScore struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}
