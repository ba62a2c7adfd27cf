package analyzer

import (
	"regexp"
	"strings"

	"doccomment/internal/domain"
)

const (
	descriptionDelim = " - "
	defaultDelim     = " = "
)

var tagWord = regexp.MustCompile(`@\w+`)

// ParseTypedEntry parses the payload of a typed tag line such as
//
//	@arg {String} name = "world" - Who to greet.
//
// The name is only extracted when withName is set. The description is
// mandatory; a line without " - " yields a *domain.MalformedEntryError.
func ParseTypedEntry(line string, withName bool) (domain.TypedEntry, error) {
	entry := domain.TypedEntry{}

	typ, after := parseType(line)
	entry.Type = typ

	rest := line[after:]

	description, ok := Chunk(rest, descriptionDelim, lineEnd)
	if !ok {
		return domain.TypedEntry{}, &domain.MalformedEntryError{Line: line}
	}
	entry.Description = description

	if withName {
		entry.Name = parseName(line, after)
	}

	// Only the text ahead of the description can carry a default.
	head := rest[:strings.Index(rest, descriptionDelim)]
	if strings.Contains(head, defaultDelim) {
		entry.Default, _ = Chunk(head, "= ", " -")
	}

	return entry, nil
}

// parseType returns the text inside the first {...} and the offset just past
// the closing brace. Braces that only appear inside the description are not a
// type.
func parseType(line string) (string, int) {
	open := strings.Index(line, "{")
	if open < 0 {
		return "", 0
	}
	if d := strings.Index(line, descriptionDelim); d >= 0 && d < open {
		return "", 0
	}

	end := strings.Index(line[open+1:], "}")
	if end < 0 {
		return "", 0
	}
	end += open + 1

	return line[open+1 : end], end + 1
}

// parseName reads the word between the type (or the tag when there is no
// type) and the next " =" or " -". after is zero for untyped lines.
func parseName(line string, after int) string {
	from := after
	if after == 0 {
		loc := tagWord.FindStringIndex(line)
		if loc == nil {
			return ""
		}
		from = loc[1]
	}

	name, _ := ChunkAny(line[from:], "", " =", " -")
	return strings.TrimSpace(name)
}
