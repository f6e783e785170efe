package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// PreprocessMarkdown normalizes a markdown body before conversion:
// CRLF and bare CR become LF, and runs of blank lines collapse to two.
// This is a fixed pipeline step, applied before any markdown-stage hooks.
func PreprocessMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
