package analyzer

import (
	"regexp"
	"strings"

	"doccomment/internal/domain"
)

// typedFamily selects the lines of one typed tag family in a block.
type typedFamily struct {
	pattern  *regexp.Regexp
	withName bool
	assign   func(*domain.DocRecord, []domain.TypedEntry)
}

// TagScanner turns a comment block into a DocRecord.
type TagScanner struct {
	module      *regexp.Regexp
	method      *regexp.Regexp
	description *regexp.Regexp
	async       *regexp.Regexp
	families    []typedFamily
}

func NewTagScanner() *TagScanner {
	return &TagScanner{
		module:      regexp.MustCompile(`@module\b`),
		method:      regexp.MustCompile(`@method\b`),
		description: regexp.MustCompile(`@description\b`),
		async:       regexp.MustCompile(`@async\b`),
		families: []typedFamily{
			{
				pattern:  regexp.MustCompile(`@(arg|param)`),
				withName: true,
				assign:   func(r *domain.DocRecord, e []domain.TypedEntry) { r.Arguments = e },
			},
			{
				pattern:  regexp.MustCompile(`@property`),
				withName: true,
				assign:   func(r *domain.DocRecord, e []domain.TypedEntry) { r.Properties = e },
			},
			{
				pattern: regexp.MustCompile(`@throws`),
				assign:  func(r *domain.DocRecord, e []domain.TypedEntry) { r.Throws = e },
			},
			{
				pattern: regexp.MustCompile(`@returns`),
				assign:  func(r *domain.DocRecord, e []domain.TypedEntry) { r.Returns = e },
			},
		},
	}
}

// Scan builds the record for one block. Each line sets at most one of
// module, function, description and async; the last value wins for the
// first three. Typed entries are collected per family in line order, and the
// first malformed one fails the whole block.
func (s *TagScanner) Scan(block domain.CommentBlock) (domain.DocRecord, error) {
	var rec domain.DocRecord

	for _, line := range block {
		switch {
		case s.module.MatchString(line):
			rec.Module = payload(line, "@module ")
		case s.method.MatchString(line):
			rec.Function = payload(line, "@method ")
		case s.description.MatchString(line):
			rec.Description = payload(line, "@description ")
		case s.async.MatchString(line):
			rec.Async = true
		}
	}

	for _, family := range s.families {
		var entries []domain.TypedEntry
		for _, line := range block {
			if !family.pattern.MatchString(line) {
				continue
			}
			entry, err := ParseTypedEntry(line, family.withName)
			if err != nil {
				return domain.DocRecord{}, err
			}
			entries = append(entries, entry)
		}
		family.assign(&rec, entries)
	}

	return rec, nil
}

// payload is the text after tag up to the end of the line.
func payload(line, tag string) string {
	text, ok := Chunk(line, tag, lineEnd)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}
