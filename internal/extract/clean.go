package extract

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes extracted text: runs of spaces and tabs collapse into a
// single space, three or more consecutive newlines collapse into two, and
// leading/trailing whitespace is trimmed.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
