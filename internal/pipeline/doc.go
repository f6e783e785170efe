// Package pipeline implements the per-file document transformation
// pipeline.
//
// Each markdown source file moves through a fixed sequence of steps:
//
//  1. Raw file load, then fileload-stage hooks
//  2. Front-matter normalization and extraction
//  3. Markdown preprocessing, then markdown-stage hooks
//  4. Markdown to HTML conversion via Goldmark
//  5. html-stage hooks
//  6. Token substitution over the generated HTML
//
// Hooks are explicit ordered registrations per stage; an unregistered
// stage is a pass-through. Page assembly, layout derivation and PDF
// rendering are handled by the root docpdf package.
package pipeline
