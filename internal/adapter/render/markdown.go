package render

import (
	"fmt"
	"sort"
	"strings"

	"doccomment/internal/domain"
	"doccomment/internal/port"
)

const (
	articleSeparator = "----"
	sectionSeparator = "## ------------"
	defaultFooter    = "Generated by doccomment"
)

// MarkdownRenderer renders an API document with a table of contents and one
// article per module.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Extension() string {
	return "md"
}

func (r *MarkdownRenderer) Render(docs *domain.BuiltDocs, opts port.RenderOptions) ([]byte, error) {
	if docs == nil {
		return nil, fmt.Errorf("nothing to render")
	}

	units := sortedUnits(docs.Tree)

	parts := []string{
		header(docs, opts),
		tableOfContents(docs.Tree, units),
		body(docs.Tree, units),
		footer(opts),
	}
	return []byte(strings.Join(parts, "\n") + "\n"), nil
}

func sortedUnits(tree domain.ModuleTree) []string {
	units := make([]string, 0, len(tree))
	for id := range tree {
		units = append(units, id)
	}
	sort.Strings(units)
	return units
}

func header(docs *domain.BuiltDocs, opts port.RenderOptions) string {
	title := opts.Title
	if title == "" {
		title = docs.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# **`%s`** API Documentation", title)
	if docs.Version != "" {
		fmt.Fprintf(&b, "<br />Version `%s`", docs.Version)
	}
	b.WriteString("\n\n")
	b.WriteString(sectionSeparator)
	b.WriteString("\n")
	return b.String()
}

func footer(opts port.RenderOptions) string {
	text := opts.Footer
	if text == "" {
		text = defaultFooter
	}
	return articleSeparator + "\n\n## " + text
}

// moduleTitle is the heading text of a unit; units without @module fall
// back to their ID.
func moduleTitle(unit string, node domain.ModuleNode) string {
	if node.Module != "" {
		return node.Module
	}
	return unit
}

// Anchor lowercases text and replaces anything outside [a-z0-9._-] with '-'.
func Anchor(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// signature is "name (a, b = 1)" or just "name" without arguments.
func signature(m domain.MethodNode, withDefaults bool) string {
	if len(m.Arguments) == 0 {
		return m.Name
	}
	args := make([]string, len(m.Arguments))
	for i, a := range m.Arguments {
		args[i] = a.Name
		if withDefaults && a.Default != "" {
			args[i] += " = " + a.Default
		}
	}
	return m.Name + " (" + strings.Join(args, ", ") + ")"
}

func asyncPrefix(m domain.MethodNode) string {
	if m.Async {
		return "`async` "
	}
	return ""
}

func tableOfContents(tree domain.ModuleTree, units []string) string {
	toc := []string{"### **Table of Contents**", ""}

	for _, unit := range units {
		node := tree[unit]
		base := Anchor(moduleTitle(unit, node))

		toc = append(toc, fmt.Sprintf("* `Module` [%s](#module-%s)", moduleTitle(unit, node), base))

		if len(node.Properties) > 0 {
			toc = append(toc, fmt.Sprintf("  * [Properties](#module-%s-properties)", base))
			for _, p := range node.Properties {
				toc = append(toc, fmt.Sprintf("    * [%s](#%s-%s)", p.Name, base, Anchor(p.Name)))
			}
		}

		if len(node.Methods) > 0 {
			toc = append(toc, fmt.Sprintf("  * [Methods](#module-%s-methods)", base))
			for _, m := range node.Methods {
				toc = append(toc, fmt.Sprintf("    * %s[%s](#%s-%s)", asyncPrefix(m), signature(m, true), base, Anchor(m.Name)))
			}
		}
	}

	return strings.Join(toc, "\n") + "\n"
}

func body(tree domain.ModuleTree, units []string) string {
	var contents []string

	for _, unit := range units {
		node := tree[unit]
		title := moduleTitle(unit, node)
		base := Anchor(title)

		contents = append(contents,
			articleSeparator,
			"",
			fmt.Sprintf("<a name='module-%s'></a>", base),
			"# Module "+title,
			"",
		)
		if node.Description != "" {
			contents = append(contents, node.Description, "")
		}
		contents = append(contents, sectionSeparator, "")

		if len(node.Properties) > 0 {
			contents = append(contents, propertiesSection(base, node.Properties)...)
		}

		if len(node.Methods) > 0 {
			contents = append(contents,
				fmt.Sprintf("<a name='module-%s-methods'></a>", base),
				"## Methods",
				"",
				sectionSeparator,
				"",
			)
			for _, m := range node.Methods {
				contents = append(contents, methodSection(base, m)...)
			}
		}
	}

	return strings.Join(contents, "\n")
}

func propertiesSection(base string, props []domain.TypedEntry) []string {
	lines := []string{
		fmt.Sprintf("<a name='module-%s-properties'></a>", base),
		"## Properties",
		"",
		sectionSeparator,
		"",
		"| Name | Type | Description |",
		"| --- | --- | --- |",
	}
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("| <a name='%s-%s'></a> %s | %s | %s |",
			base, Anchor(p.Name), cell(p.Name), cell(p.Type), cell(p.Description)))
	}
	return append(lines, "", sectionSeparator, "")
}

func methodSection(base string, m domain.MethodNode) []string {
	lines := []string{
		fmt.Sprintf("<a name='%s-%s'></a>", base, Anchor(m.Name)),
		fmt.Sprintf("#### %s%s", asyncPrefix(m), signature(m, false)),
		"",
	}
	if m.Description != "" {
		lines = append(lines, m.Description, "")
	}

	if len(m.Arguments) > 0 {
		lines = append(lines, "> **Arguments**", "")
		for _, a := range m.Arguments {
			lines = append(lines, fmt.Sprintf("* `%s` *is a* `%s`%s", a.Name, typeName(a), defaultNote(a)), "")
			lines = append(lines, "  "+a.Description, "")
		}
	}

	if len(m.Returns) > 0 {
		lines = append(lines, "> **Returns**", "")
		for _, r := range m.Returns {
			lines = append(lines, fmt.Sprintf("* `%s` - %s", typeName(r), r.Description), "")
		}
	}

	if len(m.Throws) > 0 {
		lines = append(lines, "> **Throws**", "")
		for _, e := range m.Throws {
			lines = append(lines, fmt.Sprintf("* `%s` - %s", typeName(e), e.Description), "")
		}
	}

	return append(lines, sectionSeparator, "")
}

func typeName(e domain.TypedEntry) string {
	if e.Type == "" {
		return "*"
	}
	return e.Type
}

// defaultNote quotes String defaults the way they would be written in source.
func defaultNote(e domain.TypedEntry) string {
	if e.Default == "" {
		return ""
	}
	if e.Type == "String" && !strings.HasPrefix(e.Default, `"`) && !strings.HasPrefix(e.Default, "'") {
		return fmt.Sprintf(` [default = "%s"]`, e.Default)
	}
	return fmt.Sprintf(" [default = %s]", e.Default)
}

func cell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
