package analyzer

import (
	"log/slog"

	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// DocParser runs the scan and compression passes over the blocks of a unit.
// It holds no per-unit state and may be shared between goroutines as long as
// the cache is.
type DocParser struct {
	extractor  *CommentExtractor
	scanner    *TagScanner
	compressor *Compressor
	cache      port.RecordCache
}

// NewDocParser creates a parser. cache may be nil.
func NewDocParser(cache port.RecordCache, log *slog.Logger) *DocParser {
	return &DocParser{
		extractor:  NewCommentExtractor(),
		scanner:    NewTagScanner(),
		compressor: NewCompressor(log),
		cache:      cache,
	}
}

// ParseBlocks scans every block and compresses the records. A failing block
// is reported as a *domain.UnitError with the given unit ID.
func (p *DocParser) ParseBlocks(unit string, blocks []domain.CommentBlock) (domain.ModuleNode, error) {
	records := make([]domain.DocRecord, 0, len(blocks))

	for i, block := range blocks {
		rec, err := p.scan(block)
		if err != nil {
			return domain.ModuleNode{}, &domain.UnitError{Unit: unit, Block: i, Err: err}
		}
		records = append(records, rec)
	}

	return p.compressor.Compress(records), nil
}

// ParseSource extracts and parses the documentation of one source text.
func (p *DocParser) ParseSource(unit, content string) (domain.ModuleNode, error) {
	return p.ParseBlocks(unit, p.extractor.Extract(content))
}

func (p *DocParser) scan(block domain.CommentBlock) (domain.DocRecord, error) {
	if p.cache != nil {
		if rec, ok := p.cache.Get(block); ok {
			return rec, nil
		}
	}

	rec, err := p.scanner.Scan(block)
	if err != nil {
		return domain.DocRecord{}, err
	}

	if p.cache != nil {
		p.cache.Add(block, rec)
	}
	return rec, nil
}
