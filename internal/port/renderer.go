package port

import "doccomment/internal/domain"

// RenderOptions carries presentation settings shared by all renderers.
type RenderOptions struct {
	Title  string
	Footer string
}

// Renderer turns built documentation into a human-readable document.
type Renderer interface {
	Render(docs *domain.BuiltDocs, opts RenderOptions) ([]byte, error)

	// Extension is the file extension of the output, without the dot.
	Extension() string
}
