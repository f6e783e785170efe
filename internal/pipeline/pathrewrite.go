package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotADirectory indicates the base path supplied for link resolution
// does not name a directory.
var ErrNotADirectory = errors.New("link resolution base path is not a directory")

// ResolveRelativeLinks converts relative image and link paths in an HTML
// fragment to absolute file:// URLs rooted at baseDir. The PDF engine
// loads the page from a temporary location, so relative references would
// otherwise dangle.
//
// Rewrites img[src] and a[href] only. Absolute paths, URLs, anchors and
// data URIs are left alone, as is anything resolving outside baseDir.
func ResolveRelativeLinks(htmlContent, baseDir string) (string, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrNotADirectory, baseDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrNotADirectory, baseDir)
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	nodes, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, absBase)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// parseFragment parses an HTML fragment in body context so the parser
// does not wrap it in html/head/body elements.
func parseFragment(content string) ([]*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), body)
}

// rewriteNode traverses the DOM and rewrites relative paths.
func rewriteNode(n *html.Node, baseDir string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", baseDir)
		case "a":
			rewriteAttr(n, "href", baseDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, baseDir)
	}
}

// rewriteAttr rewrites a single attribute when it holds a relative path
// that stays inside baseDir.
func rewriteAttr(n *html.Node, attrName, baseDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		abs := filepath.Join(baseDir, attr.Val)
		if !isPathUnderDir(abs, baseDir) {
			continue // traversal attempt, leave the original path
		}

		u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		n.Attr[i].Val = u.String()
	}
}

// isRelativePath reports whether the value should be rewritten.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks that absPath does not escape dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
