package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// HTMLRenderer converts the Markdown document to a standalone HTML page.
type HTMLRenderer struct {
	markdown *MarkdownRenderer
	md       goldmark.Markdown
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		markdown: NewMarkdownRenderer(),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Anchors are emitted as raw <a name> tags.
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

func (r *HTMLRenderer) Extension() string {
	return "html"
}

func (r *HTMLRenderer) Render(docs *domain.BuiltDocs, opts port.RenderOptions) ([]byte, error) {
	src, err := r.markdown.Render(docs, opts)
	if err != nil {
		return nil, err
	}

	var content bytes.Buffer
	if err := r.md.Convert(src, &content); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = docs.Name
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s API Documentation</title>\n", html.EscapeString(title))
	page.WriteString("</head>\n<body>\n")
	page.Write(content.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
