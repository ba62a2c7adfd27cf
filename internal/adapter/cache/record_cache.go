package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"doccomment/internal/domain"
)

// RecordCache is a bounded, expiring cache of scanned comment blocks. It is
// safe for concurrent use.
type RecordCache struct {
	lru *expirable.LRU[string, domain.DocRecord]
}

func NewRecordCache(maxSize int, ttl time.Duration) *RecordCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RecordCache{
		lru: expirable.NewLRU[string, domain.DocRecord](maxSize, nil, ttl),
	}
}

func cacheKey(block domain.CommentBlock) string {
	hash := sha256.Sum256([]byte(strings.Join(block, "\n")))
	return hex.EncodeToString(hash[:16])
}

// Get returns a copy of the cached record so callers never share entries.
func (c *RecordCache) Get(block domain.CommentBlock) (domain.DocRecord, bool) {
	rec, ok := c.lru.Get(cacheKey(block))
	if !ok {
		return domain.DocRecord{}, false
	}
	return cloneRecord(rec), true
}

func (c *RecordCache) Add(block domain.CommentBlock, rec domain.DocRecord) {
	c.lru.Add(cacheKey(block), cloneRecord(rec))
}

func (c *RecordCache) Size() int {
	return c.lru.Len()
}

func (c *RecordCache) Purge() {
	c.lru.Purge()
}

func cloneRecord(rec domain.DocRecord) domain.DocRecord {
	rec.Arguments = slices.Clone(rec.Arguments)
	rec.Properties = slices.Clone(rec.Properties)
	rec.Returns = slices.Clone(rec.Returns)
	rec.Throws = slices.Clone(rec.Throws)
	return rec
}
