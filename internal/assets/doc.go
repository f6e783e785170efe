// Package assets loads the templates and stylesheets used to assemble
// the combined document page.
//
// Assets resolve by name: "page" is the HTML shell wrapping the combined
// content, "layout" is the optional page-geometry template read by the
// layout deriver, and styles are CSS files injected into the shell.
// Defaults are embedded in the binary; a filesystem loader lets projects
// override any of them, and the resolver layers the two so a project only
// supplies what it changes. The layout template is optional by contract,
// so lookups distinguish "not found" from real errors.
package assets
