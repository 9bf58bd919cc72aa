// Package ingestion turns raw profile and job documents into the clean,
// validated snapshots the matcher consumes.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	inlineSpace = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankRun    = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and spacing while keeping line structure.
// Bullet markers are rewritten to "- " so lists read the same whatever their source.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	// Max one blank line between paragraphs
	result = blankRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	if line == "" {
		return ""
	}
	for _, marker := range []string{"• ", "· ", "* ", "+ "} {
		if strings.HasPrefix(line, marker) {
			return "- " + strings.TrimSpace(line[len(marker):])
		}
	}
	return line
}

// Flatten joins the non-empty lines of cleaned text with single spaces.
func Flatten(content string) string {
	return strings.Join(strings.Fields(content), " ")
}
