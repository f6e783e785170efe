// Package yamlutil narrows the YAML dependency to the two operations the
// project performs: strict decoding of project config files and encoding
// of generated starter configs. Callers go through this package instead
// of importing the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps decoded input. Project config files are a few
// hundred bytes; a document past this limit is a mistake, not a
// workload.
const MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields so a
// typo in a config file fails loudly instead of being silently ignored.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML, for writing generated config files.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return data, nil
}
