package pipeline

import (
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-tiddlersplit/internal/yamlutil"
)

// yamlFormat matches the "---" fenced block TiddlyWiki's Markdown export emits.
var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalLenient)

// Meta holds the tiddler fields shown in the preview header.
// Pandoc exports carry tags under "keywords" instead of "tags".
type Meta struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`
	Abstract string   `yaml:"abstract"`
	Tags     []string `yaml:"tags"`
	Keywords []string `yaml:"keywords"`
}

// AllTags returns tags followed by keywords.
func (m Meta) AllTags() []string {
	if len(m.Keywords) == 0 {
		return m.Tags
	}
	return append(append([]string(nil), m.Tags...), m.Keywords...)
}

// Document is a tiddler separated into metadata and Markdown body.
type Document struct {
	Meta Meta
	Body string

	// HasFrontMatter is false when the record had no parsable front matter
	// and Body is the record unchanged.
	HasFrontMatter bool
}

// ParseFrontMatter separates a tiddler's front matter from its body.
// Records whose front matter is missing or malformed come back whole.
func ParseFrontMatter(record string) Document {
	var meta Meta
	body, err := frontmatter.Parse(strings.NewReader(record), &meta, yamlFormat)
	if err != nil || len(body) == len(record) {
		return Document{Body: record}
	}

	return Document{
		Meta:           meta,
		Body:           strings.TrimLeft(string(body), "\r\n"),
		HasFrontMatter: true,
	}
}
