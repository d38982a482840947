// Package pipeline renders individual tiddlers to standalone HTML previews.
//
// Two stages run per tiddler:
//   - Front matter separation via adrg/frontmatter, decoded with goccy/go-yaml
//   - Markdown to HTML conversion via Goldmark with chroma highlighting
//
// Splitting the export and naming files is handled by the root tiddlersplit
// package; this package only sees one record body at a time.
package pipeline
