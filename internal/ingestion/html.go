package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var markup = regexp.MustCompile(`<(?:[a-zA-Z][a-zA-Z0-9]*|/[a-zA-Z][a-zA-Z0-9]*)(?:\s[^<>]*)?/?>|&(?:[a-zA-Z]+|#[0-9]+);`)

const (
	noiseSelector = "script, style, noscript, iframe, svg"
	blockSelector = "p, div, li, ul, ol, br, tr, table, section, article, h1, h2, h3, h4, h5, h6"
)

// HasMarkup reports whether s looks like an HTML fragment rather than plain text.
func HasMarkup(s string) bool {
	return markup.MatchString(s)
}

// PlainText extracts readable text from an HTML fragment, as produced by the
// rich-text editor job postings are written with. Block elements become line
// breaks and list items become "- " bullets.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find("li").PrependHtml("- ")
	doc.Find(blockSelector).AfterHtml("\n")

	return CleanText(doc.Text()), nil
}

// TextField returns s as plain text, converting it from HTML when it carries markup.
func TextField(s string) (string, error) {
	if !HasMarkup(s) {
		return CleanText(s), nil
	}
	return PlainText(s)
}
