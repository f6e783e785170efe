package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets compiled into the binary. The embedded set
// carries the page shell and default style but deliberately no layout
// template: without a project-supplied layout the PDF engine runs on
// structural defaults alone.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadTemplate loads a template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// FindTemplate loads an optional template, reporting absence via found.
func (e *EmbeddedLoader) FindTemplate(name string) (string, bool, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", false, err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), true, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
