package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// JSONRenderer emits the built documentation unchanged.
type JSONRenderer struct{}

func (JSONRenderer) Extension() string {
	return "json"
}

func (JSONRenderer) Render(docs *domain.BuiltDocs, _ port.RenderOptions) ([]byte, error) {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

var factories = map[string]func() port.Renderer{
	"md":       func() port.Renderer { return NewMarkdownRenderer() },
	"markdown": func() port.Renderer { return NewMarkdownRenderer() },
	"html":     func() port.Renderer { return NewHTMLRenderer() },
	"json":     func() port.Renderer { return JSONRenderer{} },
}

// New returns the renderer registered for format.
func New(format string) (port.Renderer, error) {
	factory, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", domain.ErrNoRenderer, format, Formats())
	}
	return factory(), nil
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
