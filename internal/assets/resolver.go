package assets

import "errors"

// Resolver layers a filesystem loader over the embedded defaults: every
// lookup tries the project directory first and falls back to the
// compiled-in assets, so a project overrides only what it changes.
type Resolver struct {
	primary  Loader
	fallback Loader
}

// NewResolver creates a Resolver over the given asset directory.
func NewResolver(basePath string) (*Resolver, error) {
	fsLoader, err := NewFilesystemLoader(basePath)
	if err != nil {
		return nil, err
	}
	return &Resolver{primary: fsLoader, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads a style, preferring the project directory.
func (r *Resolver) LoadStyle(name string) (string, error) {
	content, err := r.primary.LoadStyle(name)
	if errors.Is(err, ErrStyleNotFound) {
		return r.fallback.LoadStyle(name)
	}
	return content, err
}

// LoadTemplate loads a template, preferring the project directory.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	content, err := r.primary.LoadTemplate(name)
	if errors.Is(err, ErrTemplateNotFound) {
		return r.fallback.LoadTemplate(name)
	}
	return content, err
}

// FindTemplate resolves an optional template through both layers.
func (r *Resolver) FindTemplate(name string) (string, bool, error) {
	content, found, err := r.primary.FindTemplate(name)
	if err != nil || found {
		return content, found, err
	}
	return r.fallback.FindTemplate(name)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
