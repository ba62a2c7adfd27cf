package cache

import (
	"testing"
	"time"

	"doccomment/internal/domain"
)

func TestRecordCache_GetAdd(t *testing.T) {
	c := NewRecordCache(10, time.Minute)

	block := domain.CommentBlock{"/**", " * @module A", " */"}
	if _, ok := c.Get(block); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Add(block, domain.DocRecord{Module: "A"})

	rec, ok := c.Get(block)
	if !ok {
		t.Fatal("expected hit after Add")
	}
	if rec.Module != "A" {
		t.Errorf("expected module A, got %q", rec.Module)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
}

func TestRecordCache_ReturnsCopies(t *testing.T) {
	c := NewRecordCache(10, time.Minute)

	block := domain.CommentBlock{" * @arg {String} a - first"}
	c.Add(block, domain.DocRecord{
		Arguments: []domain.TypedEntry{{Type: "String", Name: "a", Description: "first"}},
	})

	rec, _ := c.Get(block)
	rec.Arguments[0].Name = "mutated"

	again, _ := c.Get(block)
	if again.Arguments[0].Name != "a" {
		t.Errorf("expected cached entry to be unaffected, got %q", again.Arguments[0].Name)
	}
}

func TestRecordCache_Eviction(t *testing.T) {
	c := NewRecordCache(2, time.Minute)

	a := domain.CommentBlock{"a"}
	b := domain.CommentBlock{"b"}
	d := domain.CommentBlock{"d"}

	c.Add(a, domain.DocRecord{Module: "a"})
	c.Add(b, domain.DocRecord{Module: "b"})
	c.Add(d, domain.DocRecord{Module: "d"})

	if _, ok := c.Get(a); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if _, ok := c.Get(d); !ok {
		t.Error("expected newest entry to be present")
	}
}

func TestRecordCache_DistinctLines(t *testing.T) {
	c := NewRecordCache(10, time.Minute)

	c.Add(domain.CommentBlock{"ab", "c"}, domain.DocRecord{Module: "split"})

	if _, ok := c.Get(domain.CommentBlock{"a", "bc"}); ok {
		t.Error("expected blocks with different line breaks to use different keys")
	}
}

func TestRecordCache_Purge(t *testing.T) {
	c := NewRecordCache(10, time.Minute)
	c.Add(domain.CommentBlock{"x"}, domain.DocRecord{})
	c.Purge()
	if c.Size() != 0 {
		t.Errorf("expected empty cache after purge, got %d", c.Size())
	}
}
