package cleantext

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRE = regexp.MustCompile(`\s+`)
	blankRunRE   = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up extracted text. Each line has internal whitespace runs
// collapsed to single spaces and surrounding whitespace stripped, runs of
// three or more newlines collapse to exactly two, and leading/trailing blank
// lines are removed. Normalize is idempotent.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(innerSpaceRE.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = blankRunRE.ReplaceAllString(joined, "\n\n")
	return strings.Trim(joined, "\n")
}

// CollapseSpace collapses all whitespace runs in s, newlines included, to
// single spaces and trims the result. This is the "inner text" form used for
// structural tokens, which must stay on a single line.
func CollapseSpace(s string) string {
	return strings.TrimSpace(innerSpaceRE.ReplaceAllString(s, " "))
}

// Format assembles the final output document: the metadata header block,
// one blank line, then the body. An empty body yields the header alone.
func Format(res *Result) string {
	if res.Body == "" {
		return res.Meta.Header()
	}
	return res.Meta.Header() + "\n\n" + res.Body
}
