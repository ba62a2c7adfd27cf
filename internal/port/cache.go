package port

import "doccomment/internal/domain"

// RecordCache memoizes the scan of individual comment blocks.
type RecordCache interface {
	Get(block domain.CommentBlock) (domain.DocRecord, bool)

	Add(block domain.CommentBlock, rec domain.DocRecord)
}

// UnitStore persists compressed nodes keyed by unit and content hash.
type UnitStore interface {
	GetUnit(id, hash string) (domain.ModuleNode, bool, error)

	PutUnit(id, hash string, node domain.ModuleNode) error

	PruneUnits(keep map[string]bool) (int, error)

	Close() error
}
