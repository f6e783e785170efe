package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Engine names accepted in config and flags.
const (
	EngineWkhtmltopdf = "wkhtmltopdf"
	EngineChrome      = "chrome"
)

// Config holds project configuration for the docpdf CLI. All fields are
// optional; flags override whatever the file sets.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Sources  SourcesConfig  `yaml:"sources"`
	Output   OutputConfig   `yaml:"output"`
	Style    StyleConfig    `yaml:"style"`
	Layout   LayoutConfig   `yaml:"layout"`
	Engine   EngineConfig   `yaml:"engine"`
	Tokens   map[string]any `yaml:"tokens"`
}

// DocumentConfig carries document-level metadata.
type DocumentConfig struct {
	Title string `yaml:"title"`
}

// SourcesConfig defines where markdown files come from.
type SourcesConfig struct {
	Dirs    []string `yaml:"dirs"`    // Searched non-recursively for *.md
	BaseDir string   `yaml:"baseDir"` // Base for relative links (empty = per-file)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path      string `yaml:"path"`      // Output PDF path (empty = derived)
	Overwrite bool   `yaml:"overwrite"` // Replace an existing output file
	HTMLOnly  bool   `yaml:"htmlOnly"`  // Skip PDF generation
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name      string `yaml:"name"`      // Style name, CSS file path, or raw CSS
	AssetPath string `yaml:"assetPath"` // Asset directory override (empty = embedded)
}

// LayoutConfig defines page geometry options.
type LayoutConfig struct {
	Template            string `yaml:"template"`            // Layout template name (default "layout")
	CorrectBottomMargin bool   `yaml:"correctBottomMargin"` // Read margin-bottom for the bottom edge
}

// EngineConfig selects and tunes the PDF renderer.
type EngineConfig struct {
	Name    string `yaml:"name"`    // "wkhtmltopdf" (default) or "chrome"
	Binary  string `yaml:"binary"`  // Override the wkhtmltopdf binary path
	Timeout string `yaml:"timeout"` // Render timeout, Go duration syntax
	Workers int    `yaml:"workers"` // Parallel per-file workers (0 = auto)
}

// Validate checks the fields whose values come from a fixed set.
func (c *Config) Validate() error {
	if c.Engine.Name != "" {
		switch strings.ToLower(c.Engine.Name) {
		case EngineWkhtmltopdf, EngineChrome:
		default:
			return fmt.Errorf("%w: engine.name %q (must be %s or %s)",
				ErrConfigInvalid, c.Engine.Name, EngineWkhtmltopdf, EngineChrome)
		}
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("%w: engine.workers must not be negative", ErrConfigInvalid)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Starter returns a config pre-filled with the fields a new project
// edits first, used to generate an initial config file.
func Starter() *Config {
	return &Config{
		Document: DocumentConfig{Title: "My Document"},
		Sources:  SourcesConfig{Dirs: []string{"docs"}},
		Output:   OutputConfig{Path: "document.pdf"},
		Style:    StyleConfig{Name: "default"},
	}
}

// Save writes the config to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlutil.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- config files are meant to be edited
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-docpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-docpdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
