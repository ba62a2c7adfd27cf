package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"doccomment/internal/domain"
)

// inline matches a secondary tag inside item or text content, e.g.
// "Home - @link home".
var inline = regexp.MustCompile(`^(?P<name>.*?)(?:[ -]+)?@(?P<tag>link|image|text)(?:[ -]+)?(?P<data>.*)$`)

type tocEntry struct {
	title    string
	link     string
	children []tocEntry
}

type openElement struct {
	tag     string
	section bool
}

type htmlWriter struct {
	lines []string
	stack []openElement
	toc   []tocEntry
}

func (w *htmlWriter) indent(extra int) string {
	return strings.Repeat("  ", len(w.stack)+extra)
}

func (w *htmlWriter) emit(extra int, format string, args ...any) {
	w.lines = append(w.lines, w.indent(extra)+fmt.Sprintf(format, args...))
}

func (w *htmlWriter) open(tag string, section bool, format string, args ...any) {
	w.emit(0, format, args...)
	w.stack = append(w.stack, openElement{tag: tag, section: section})
}

func (w *htmlWriter) close() {
	if len(w.stack) == 0 {
		return
	}
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.emit(0, "</%s>", top.tag)
}

func (w *htmlWriter) inSection() bool {
	return len(w.stack) > 0 && w.stack[len(w.stack)-1].section
}

// sectionLink turns a section title into an id: titles with spaces or
// quotes lose the quotes and get underscores.
func sectionLink(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, `"`, ""), " ", "_")
}

// inlineHTML escapes text and expands one secondary tag.
func inlineHTML(text string) string {
	m := inline.FindStringSubmatch(text)
	if m == nil {
		return html.EscapeString(text)
	}
	name := html.EscapeString(strings.TrimSpace(m[1]))
	data := html.EscapeString(strings.TrimSpace(m[3]))

	switch m[2] {
	case "link":
		return fmt.Sprintf(`<a href="#%s">%s</a>`, data, name)
	case "image":
		return fmt.Sprintf(`<img src="%s" alt="%s">`, data, name)
	default:
		return fmt.Sprintf(`%s<span>%s</span>`, name, data)
	}
}

func cells(content string) []string {
	parts := strings.Split(content, ",")
	for i := range parts {
		parts[i] = html.EscapeString(strings.TrimSpace(parts[i]))
	}
	return parts
}

// RenderHTML renders parsed elements to HTML. A table of contents of the
// sections is placed at the top of the body (or the output when there is
// no root). Open elements are closed at the end. Warnings are appended to
// the output, one per line.
func RenderHTML(elements []Element, warnings []domain.UnknownTagWarning) string {
	w := &htmlWriter{}
	root := false
	bodyAt := 0

	for _, e := range elements {
		switch e.Tag {
		case "root":
			if root {
				continue
			}
			root = true
			w.emit(0, "<html>")
			w.emit(0, "<head>")
			w.emit(1, "<title>%s</title>", html.EscapeString(e.Text()))
			w.emit(0, "</head>")
			w.emit(0, "<body>")
			bodyAt = len(w.lines)

		case "section":
			link := sectionLink(e.Name)
			level := "h2"
			entry := tocEntry{title: e.Name, link: link}
			if w.inSection() && len(w.toc) > 0 {
				level = "h3"
				last := &w.toc[len(w.toc)-1]
				last.children = append(last.children, entry)
			} else {
				w.toc = append(w.toc, entry)
			}
			w.open("section", true, "<section>")
			w.emit(0, `<%s id="%s">%s</%s>`, level, html.EscapeString(link), html.EscapeString(e.Name), level)

		case "list":
			w.open("ul", false, "<ul>")

		case "item":
			text := e.Name
			if e.Content != "" {
				text = strings.TrimSpace(e.Name + " - " + e.Content)
			}
			w.emit(0, "<li>%s</li>", inlineHTML(text))

		case "text", "link":
			w.emit(0, "%s", inlineHTML(e.Text()))

		case "image":
			w.emit(0, `<img src="%s" alt="%s">`, html.EscapeString(e.Content), html.EscapeString(e.Name))

		case "separator":
			w.emit(0, "<hr>")

		case "table":
			if e.Name != "" {
				w.emit(0, "<h3>%s</h3>", html.EscapeString(e.Name))
			}
			w.open("table", false, "<table>")

		case "thead", "trow":
			cell := "td"
			if e.Tag == "thead" {
				cell = "th"
			}
			w.open("tr", false, "<tr>")
			for _, c := range cells(e.Text()) {
				w.emit(0, "<%s>%s</%s>", cell, c, cell)
			}
			w.close()

		case "end":
			w.close()
		}
	}

	for len(w.stack) > 0 {
		w.close()
	}
	if root {
		w.lines = append(w.lines, "</body>", "</html>")
	}

	toc := renderTOC(w.toc)
	out := make([]string, 0, len(w.lines)+len(toc))
	out = append(out, w.lines[:bodyAt]...)
	out = append(out, toc...)
	out = append(out, w.lines[bodyAt:]...)

	result := strings.Join(out, "\n") + "\n"
	for _, warn := range warnings {
		result += warn.String() + "\n"
	}
	return result
}

func renderTOC(entries []tocEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	lines := []string{"<h2>Table of Contents</h2>"}
	return append(lines, tocList(entries, 0)...)
}

func tocList(entries []tocEntry, depth int) []string {
	pad := strings.Repeat("  ", depth)
	lines := []string{pad + "<ul>"}
	for _, e := range entries {
		link := fmt.Sprintf(`<a href="#%s">%s</a>`, html.EscapeString(e.link), html.EscapeString(e.title))
		if len(e.children) == 0 {
			lines = append(lines, pad+"  <li>"+link+"</li>")
			continue
		}
		lines = append(lines, pad+"  <li>"+link)
		lines = append(lines, tocList(e.children, depth+2)...)
		lines = append(lines, pad+"  </li>")
	}
	return append(lines, pad+"</ul>")
}

// Render parses input with the default vocabulary and renders it.
func Render(input string) (string, []domain.UnknownTagWarning) {
	elements, warnings := Parse(input, nil)
	return RenderHTML(elements, warnings), warnings
}
