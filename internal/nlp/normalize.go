// Package nlp provides bilingual (Vietnamese/English) text normalization,
// language detection and tokenization for the matcher.
package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// nonSpace matches one rune that is not whitespace in the Unicode sense.
// RE2's \S only excludes ASCII whitespace, so a URL followed by a
// no-break space would otherwise swallow the next word.
const nonSpace = `[^\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	urlPattern      = regexp.MustCompile(`(?:http|www|https)` + nonSpace + `+`)
	emailPattern    = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+`)
	phonePattern    = regexp.MustCompile(`\b\d{9,11}\b`)
	nonWordPattern  = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s]`)
	digitRunPattern = regexp.MustCompile(`\p{Nd}+`)
)

// Normalize cleans raw text for tokenization: lowercases, strips URLs,
// emails, phone-like digit runs, punctuation and remaining digits, and
// collapses whitespace. Input is composed to NFC first so decomposed
// diacritics are treated as letters.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(norm.NFC.String(text))
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = phonePattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = digitRunPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
