package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
// The first verb is the escaped title, the second the optional header, the third the body.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s%s
</body>
</html>`

// HTMLConverter abstracts tiddler to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, title, record string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not set: raw HTML in tiddlers is dropped from the preview.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML renders one tiddler record as a standalone HTML5 document.
// The record's front matter becomes a small header; title names the page.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, title, record string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc := ParseFrontMatter(record)

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(doc.Body), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	return fmt.Sprintf(htmlTemplate, stdhtml.EscapeString(title), renderHeader(doc.Meta), buf.String()), nil
}

// renderHeader returns a <header> block for the metadata fields that are set,
// or the empty string when there are none.
func renderHeader(m Meta) string {
	var lines []string
	if m.Author != "" {
		lines = append(lines, `<p class="author">`+stdhtml.EscapeString(m.Author)+`</p>`)
	}
	if m.Date != "" {
		lines = append(lines, `<p class="date">`+stdhtml.EscapeString(m.Date)+`</p>`)
	}
	if m.Abstract != "" {
		lines = append(lines, `<p class="abstract">`+stdhtml.EscapeString(m.Abstract)+`</p>`)
	}
	if tags := m.AllTags(); len(tags) > 0 {
		escaped := make([]string, len(tags))
		for i, t := range tags {
			escaped[i] = stdhtml.EscapeString(t)
		}
		lines = append(lines, `<p class="tags">`+strings.Join(escaped, ", ")+`</p>`)
	}
	if len(lines) == 0 {
		return ""
	}
	return "<header>\n" + strings.Join(lines, "\n") + "\n</header>\n"
}
