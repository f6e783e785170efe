package docpdf

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// CollectSourceFiles resolves the configured source directories into the
// deduplicated, sorted list of markdown files to compile. Each directory
// is searched non-recursively for *.md files; paths are canonicalized so
// the same file reached through two directories appears once.
//
// Returns ErrNoSourceDirs for an empty directory list and
// ErrNoMarkdownFiles when the glob finds nothing.
func CollectSourceFiles(dirs []string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, ErrNoSourceDirs
	}

	seen := make(map[string]struct{})
	var files []string

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
		if err != nil {
			return nil, fmt.Errorf("globbing %s: %w", dir, err)
		}
		for _, match := range matches {
			abs, err := canonicalPath(match)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			files = append(files, abs)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: searched %s", ErrNoMarkdownFiles, strings.Join(dirs, ", "))
	}

	// Sorted order keeps the assembled document deterministic.
	sort.Strings(files)
	return files, nil
}

// canonicalPath resolves a path to its absolute, symlink-free form so
// deduplication compares real files.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}
	return abs, nil
}
