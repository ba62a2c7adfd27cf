// Package markup implements the tag language of the documentation editor:
// one "@tag {type} name = default - content" statement per line, rendered to
// an HTML page.
package markup

import (
	"regexp"
	"slices"
	"strings"

	"doccomment/internal/domain"
)

// DefaultTags is the vocabulary understood by the HTML renderer.
var DefaultTags = []string{
	"root", "section", "list", "item", "table", "thead",
	"image", "link", "trow", "text", "end", "separator",
}

var statement = regexp.MustCompile(
	`.*?@(?P<tag>\w+)` +
		`(?: +\{(?P<type>\w+)\})?` +
		`(?:(?: +['"]?(?P<name>[^'"\-=\n]+))?` +
		`(?:['"]?(?: *= +['"]?(?P<default>\w+)['"]?)?(?: ?-?)+(?P<content>[^'"\n]+))?)?` +
		`\n?`)

// Element is one recognized statement.
type Element struct {
	Tag     string `json:"tag"`
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
	Default string `json:"default,omitempty"`
	Content string `json:"content,omitempty"`
	Line    int    `json:"-"`
}

// Text is the content of the element, or its name when it has none.
func (e Element) Text() string {
	if e.Content != "" {
		return e.Content
	}
	return e.Name
}

// Parse scans input for statements. Tags outside vocabulary (DefaultTags
// when nil) are reported as warnings and skipped.
func Parse(input string, vocabulary []string) ([]Element, []domain.UnknownTagWarning) {
	if vocabulary == nil {
		vocabulary = DefaultTags
	}

	var (
		elements []Element
		warnings []domain.UnknownTagWarning
	)

	names := statement.SubexpNames()
	for _, loc := range statement.FindAllStringSubmatchIndex(input, -1) {
		groups := make(map[string]string, len(names))
		for i, name := range names {
			if name == "" || loc[2*i] < 0 {
				continue
			}
			groups[name] = strings.TrimSpace(input[loc[2*i]:loc[2*i+1]])
		}

		raw := input[loc[0]:loc[1]]
		trimmed := strings.TrimSpace(raw)
		start := loc[0] + strings.Index(raw, trimmed)
		line := strings.Count(input[:start], "\n") + 1

		tag := groups["tag"]
		if !slices.Contains(vocabulary, tag) {
			warnings = append(warnings, domain.UnknownTagWarning{Line: line, Tag: tag, Text: trimmed})
			continue
		}

		elements = append(elements, Element{
			Tag:     tag,
			Type:    groups["type"],
			Name:    groups["name"],
			Default: groups["default"],
			Content: groups["content"],
			Line:    line,
		})
	}

	return elements, warnings
}
