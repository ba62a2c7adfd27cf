package analyzer

import (
	"testing"

	"doccomment/internal/domain"
)

func TestCommentExtractor_SingleBlock(t *testing.T) {
	e := NewCommentExtractor()

	content := `'use strict'
/**
 * @module Greeter

 * @description Says hello.
 */
function greet () {}`

	blocks := e.Extract(content)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	want := domain.CommentBlock{
		"/**",
		" * @module Greeter",
		" * @description Says hello.",
		" */",
	}
	if len(blocks[0]) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(blocks[0]), blocks[0])
	}
	for i := range want {
		if blocks[0][i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], blocks[0][i])
		}
	}
}

func TestCommentExtractor_MultipleBlocksInOrder(t *testing.T) {
	e := NewCommentExtractor()

	content := "/**\n * @module A\n */\ncode()\n/**\n * @method b\n */\n"

	blocks := e.Extract(content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0][1] != " * @module A" {
		t.Errorf("unexpected first block: %q", blocks[0])
	}
	if blocks[1][1] != " * @method b" {
		t.Errorf("unexpected second block: %q", blocks[1])
	}
}

func TestCommentExtractor_UnterminatedBlockIsDiscarded(t *testing.T) {
	e := NewCommentExtractor()

	content := "/**\n * @module Done\n */\n/**\n * @module Never closed\n"

	blocks := e.Extract(content)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0][1] != " * @module Done" {
		t.Errorf("unexpected block: %q", blocks[0])
	}
}

func TestCommentExtractor_StrayEndMarkerIgnored(t *testing.T) {
	e := NewCommentExtractor()

	blocks := e.Extract("x = 1 */\n/* plain comment */\n")
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %q", blocks)
	}
}

func TestCommentExtractor_SingleLineBlock(t *testing.T) {
	e := NewCommentExtractor()

	blocks := e.Extract("/** @module Inline */\n")
	if len(blocks) != 1 || len(blocks[0]) != 1 {
		t.Fatalf("expected one single-line block, got %q", blocks)
	}
}

func TestCommentExtractor_CRLF(t *testing.T) {
	e := NewCommentExtractor()

	blocks := e.Extract("/**\r\n * @module Win\r\n\r\n */\r\n")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0]) != 3 {
		t.Fatalf("expected blank CRLF line to be dropped, got %q", blocks[0])
	}
	if blocks[0][1] != " * @module Win" {
		t.Errorf("expected trailing CR to be stripped, got %q", blocks[0][1])
	}
}

func TestCommentExtractor_BlocksStopsEarly(t *testing.T) {
	e := NewCommentExtractor()

	content := "/**\n */\n/**\n */\n/**\n */\n"

	count := 0
	for range e.Blocks(content) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected iteration to stop after 2 blocks, got %d", count)
	}
}

func TestCommentExtractor_EmptyInput(t *testing.T) {
	e := NewCommentExtractor()

	blocks := e.Extract("")
	if blocks == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}
