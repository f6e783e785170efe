// Package layout derives physical PDF page geometry from a layout
// template.
//
// A layout template renders to a small XML document: a page element whose
// style attribute carries CSS-like margin declarations, with optional
// header and footer children carrying left/center/right cell text and
// their own style attributes. The package parses that document, extracts
// the declarations, converts inch lengths to millimeters, enforces a
// minimum edge margin wherever a header or footer band is present, and
// assembles the flat option map consumed by the PDF engine.
package layout
