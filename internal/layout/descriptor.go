package layout

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Sentinel errors for layout template handling.
var (
	ErrLayoutRender = errors.New("layout template rendering failed")
	ErrLayoutDecode = errors.New("layout template is not a valid page descriptor")
)

// Renderer placeholder tokens. The layout template is rendered before the
// PDF engine runs, so page numbers cannot be known yet; these tokens are
// passed through verbatim and substituted by the engine at print time.
const (
	PageNumberToken = "[page]"
	TotalPagesToken = "[topage]"
)

// Template delimiters. Square brackets keep Go template syntax appearing
// inside documents (code fences, examples) inert.
const (
	DelimLeft  = "[["
	DelimRight = "]]"
)

// Region is a header or footer band of the page descriptor. Left, Center
// and Right carry literal cell text; Style is a semicolon-delimited list
// of CSS-like declarations.
type Region struct {
	Style  string `xml:"style,attr"`
	Left   string `xml:"left"`
	Center string `xml:"center"`
	Right  string `xml:"right"`
}

// Descriptor is the parsed representation of a rendered layout template:
// a page element with optional header and footer children, each styled
// with inline declarations.
type Descriptor struct {
	XMLName xml.Name `xml:"page"`
	Style   string   `xml:"style,attr"`
	Header  *Region  `xml:"header"`
	Footer  *Region  `xml:"footer"`
}

// templateData is the data passed to the layout template.
type templateData struct {
	Title  string
	Page   string
	ToPage string
}

// ParseDescriptor renders the layout template source with the project
// title and page-number placeholder tokens, then decodes the result into
// a Descriptor.
func ParseDescriptor(source, title string) (*Descriptor, error) {
	tmpl, err := template.New("layout").Delims(DelimLeft, DelimRight).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}

	var buf bytes.Buffer
	data := templateData{
		Title:  title,
		Page:   PageNumberToken,
		ToPage: TotalPagesToken,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}

	var desc Descriptor
	if err := xml.Unmarshal(buf.Bytes(), &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutDecode, err)
	}

	return &desc, nil
}

// text returns the concatenated cell text of a region. A nil region reads
// as empty, so a layout without a header or footer needs no special case.
func (r *Region) text() string {
	if r == nil {
		return ""
	}
	return r.Left + r.Center + r.Right
}

// present reports whether the region has any visible cell content.
func (r *Region) present() bool {
	return strings.TrimSpace(r.text()) != ""
}

// style returns the region's style attribute, empty for a nil region.
func (r *Region) style() string {
	if r == nil {
		return ""
	}
	return r.Style
}
