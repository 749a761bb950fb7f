// Package pipeline implements the plain-text to XHTML conversion pipeline.
//
// This package handles the per-chapter stages of a build:
//   - Line rewriting: an ordered rule table that turns one line of manuscript
//     text into an inline markup fragment (ruby, tate-chu-yoko, illustrations,
//     scene breaks, headings, page-break and residual annotation pragmas)
//   - Document assembly: line-ending normalization, ornament and blank-line
//     handling, paragraph segmentation and paragraph balancing
//   - Chapter sources: natural ordering of source files, chapter titles and
//     filename-safe identifiers
//
// Packaging into an EPUB container is handled separately by internal/epub.
// The only side effect of this package is registering illustration files in
// an explicit AssetTable passed by the caller.
package pipeline
