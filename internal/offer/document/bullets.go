package document

import (
	"regexp"
	"strings"
)

var bulletPrefix = regexp.MustCompile(`^[•\s]+`)

// ParseBulletList splits a newline-delimited free-text block into display
// lines, stripping any leading bullet glyphs and whitespace. Empty lines are
// dropped.
func ParseBulletList(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitLines splits free text on newlines keeping non-empty lines as-is.
// Used for the customer info block, which is displayed verbatim.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) > 0 {
			out = append(out, line)
		}
	}
	return out
}
