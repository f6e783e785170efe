package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates front-matter that looked delimited but could
// not be parsed as YAML.
var ErrFrontMatter = errors.New("malformed front-matter")

// delimiter is the front-matter fence line.
const delimiter = "---"

// NormalizeFrontMatter ensures content begins with exactly one delimiter
// line: any existing leading delimiter line is stripped, then a fresh one
// is prepended. Files that never had front-matter come out with a lone
// opening fence, which SplitFrontMatter treats as "no metadata".
func NormalizeFrontMatter(content string) string {
	if line, rest, ok := strings.Cut(content, "\n"); ok && strings.TrimRight(line, "\r") == delimiter {
		content = rest
	} else if strings.TrimRight(content, "\r") == delimiter {
		content = ""
	}
	return delimiter + "\n" + content
}

// SplitFrontMatter parses raw file content into its metadata mapping and
// markdown body. Only content whose FIRST line is a delimiter can carry
// front-matter; a delimiter further down an unfenced file is a markdown
// thematic break, not a fence, so such files pass through as body-only.
// An opening fence that never closes also means no metadata. A closed
// fence with invalid YAML is a hard error.
func SplitFrontMatter(content string) (map[string]any, string, error) {
	if !hasLeadingFence(content) {
		return map[string]any{}, content, nil
	}

	normalized := NormalizeFrontMatter(content)
	if !hasClosingFence(normalized) {
		_, body, _ := strings.Cut(normalized, "\n")
		return map[string]any{}, body, nil
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(normalized), &meta)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, strings.TrimPrefix(string(body), "\n"), nil
}

// hasLeadingFence reports whether the first line is a delimiter.
func hasLeadingFence(content string) bool {
	line, _, _ := strings.Cut(content, "\n")
	return strings.TrimRight(line, "\r") == delimiter
}

// hasClosingFence reports whether a delimiter line follows the opening
// fence.
func hasClosingFence(content string) bool {
	_, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return false
	}
	for line := range strings.Lines(rest) {
		if strings.TrimRight(line, "\r\n") == delimiter {
			return true
		}
	}
	return false
}
