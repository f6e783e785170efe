package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

// ErrTokenRender indicates the token-substitution pass over generated
// HTML failed.
var ErrTokenRender = errors.New("token rendering failed")

// Token template delimiters. Square brackets keep Go template syntax in
// markdown code fences inert; text/template leaves HTML unescaped, which
// this pass requires.
const (
	tokenDelimLeft  = "[["
	tokenDelimRight = "]]"
)

// RenderTokens treats content as a template string and substitutes the
// supplied tokens. With an empty token map and no [[ ]] markers in the
// content this is the identity.
func RenderTokens(content string, tokens map[string]any) (string, error) {
	tmpl, err := template.New("tokens").Delims(tokenDelimLeft, tokenDelimRight).Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRender, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tokens); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRender, err)
	}
	return buf.String(), nil
}
