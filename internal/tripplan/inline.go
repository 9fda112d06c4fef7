package tripplan

import (
	"regexp"
	"strings"
)

var imageRe = regexp.MustCompile(`!\[[^\]]*\]\(([^)]*)\)`)

// ExtractImage returns the URL of the first ![alt](url) marker in text, or ""
// if there is none.
func ExtractImage(text string) string {
	m := imageRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractLink returns the URL of the first [phrase](url) marker in text whose
// link text equals phrase, or "" if there is none.
func ExtractLink(text, phrase string) string {
	re, err := regexp.Compile(`\[` + regexp.QuoteMeta(phrase) + `\]\(([^)]*)\)`)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// isImageLine reports whether the line is an inline image on its own.
func isImageLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "![")
}

// valueAfterColon returns everything after the first colon, trimmed.
func valueAfterColon(line string) string {
	_, after, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
