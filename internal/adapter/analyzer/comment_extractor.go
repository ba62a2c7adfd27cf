package analyzer

import (
	"iter"
	"regexp"
	"strings"

	"doccomment/internal/domain"
)

// CommentExtractor finds /** ... */ documentation blocks in source text.
type CommentExtractor struct {
	blockStart *regexp.Regexp
	blockEnd   *regexp.Regexp
}

func NewCommentExtractor() *CommentExtractor {
	return &CommentExtractor{
		blockStart: regexp.MustCompile(`/\*\*`),
		blockEnd:   regexp.MustCompile(`\*/`),
	}
}

// Blocks yields every terminated documentation block of content in source
// order. Blank lines are dropped; the marker lines are kept. A block that is
// never closed is discarded.
func (e *CommentExtractor) Blocks(content string) iter.Seq[domain.CommentBlock] {
	return func(yield func(domain.CommentBlock) bool) {
		inBlockComment := false
		var lines domain.CommentBlock

		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSuffix(line, "\r")

			if !inBlockComment && e.blockStart.MatchString(line) {
				inBlockComment = true
			}

			if inBlockComment && strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}

			if inBlockComment && e.blockEnd.MatchString(line) {
				inBlockComment = false
				block := lines
				lines = nil
				if !yield(block) {
					return
				}
			}
		}
	}
}

// Extract collects Blocks into a slice. The result is never nil.
func (e *CommentExtractor) Extract(content string) []domain.CommentBlock {
	blocks := []domain.CommentBlock{}
	for block := range e.Blocks(content) {
		blocks = append(blocks, block)
	}
	return blocks
}
