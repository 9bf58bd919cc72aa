package nlp

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Segmenter splits normalized text into word tokens.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// SegmenterFunc adapts a function to the Segmenter interface.
type SegmenterFunc func(text string) ([]string, error)

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) ([]string, error) {
	return f(text)
}

// WhitespaceSegmenter splits on runs of whitespace. It never fails and is
// the fallback for both languages.
type WhitespaceSegmenter struct{}

// Segment splits text on whitespace.
func (WhitespaceSegmenter) Segment(text string) ([]string, error) {
	return strings.Fields(text), nil
}

// EnglishSegmenter splits text on Unicode word boundaries and drops
// segments that carry no letter or digit.
type EnglishSegmenter struct{}

// Segment returns the words of text.
func (EnglishSegmenter) Segment(text string) ([]string, error) {
	words := make([]string, 0, len(text)/4)
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if hasWordRune(word) {
			words = append(words, word)
		}
	}
	return words, nil
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
