package watchlist

import "strings"

// Thresholds of the single-line export heuristic. Existing watchlist exports
// depend on these exact values.
const (
	// MaxNewlinesForCommaList is the newline count below which a text may be
	// treated as a comma-joined list.
	MaxNewlinesForCommaList = 3
	// MinCommasForCommaList is the comma count a text must exceed to be
	// treated as a comma-joined list.
	MinCommasForCommaList = 3
)

var lineEndingReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize splits raw watchlist text into trimmed, non-empty lines in source
// order. Empty input yields an empty slice.
func Normalize(text string) []string {
	t := UnifyLineEndings(text)

	if IsCommaList(t) {
		t = strings.ReplaceAll(t, `"`, "")
		t = strings.ReplaceAll(t, ",", "\n")
	}

	lines := make([]string, 0, strings.Count(t, "\n")+1)
	for _, line := range strings.Split(t, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// UnifyLineEndings rewrites CRLF and lone CR line endings as LF.
func UnifyLineEndings(text string) string {
	return lineEndingReplacer.Replace(text)
}

// IsCommaList reports whether text, with line endings already unified, looks
// like a single comma-separated export rather than one entry per line.
func IsCommaList(text string) bool {
	return strings.Count(text, "\n") < MaxNewlinesForCommaList &&
		strings.Count(text, ",") > MinCommasForCommaList
}
