package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/job-matcher/internal/types"
	"golang.org/x/text/unicode/norm"
)

// vietnameseThreshold is the share of diacritic runes above which text is Vietnamese.
const vietnameseThreshold = 0.02

const vietnameseLetters = "àáảãạăằắẳẵặâầấẩẫậèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵđ"

var vietnameseRunes = func() map[rune]struct{} {
	m := make(map[rune]struct{}, 2*utf8.RuneCountInString(vietnameseLetters))
	for _, r := range vietnameseLetters {
		m[r] = struct{}{}
		m[unicode.ToUpper(r)] = struct{}{}
	}
	return m
}()

// DetectLanguage classifies text as Vietnamese or English by the share of
// Vietnamese diacritic letters. Empty text is Vietnamese. This is a heuristic;
// short or mixed-language strings may be misclassified.
func DetectLanguage(text string) types.Language {
	if text == "" {
		return types.Vietnamese
	}

	text = norm.NFC.String(text)
	total := utf8.RuneCountInString(text)
	count := 0
	for _, r := range strings.ToLower(text) {
		if _, ok := vietnameseRunes[r]; ok {
			count++
		}
	}

	if float64(count)/float64(total) > vietnameseThreshold {
		return types.Vietnamese
	}
	return types.English
}
