package analyzer

import (
	"log/slog"

	"doccomment/internal/domain"
)

// Compressor folds the records of one unit into a single module node.
type Compressor struct {
	log *slog.Logger
}

func NewCompressor(log *slog.Logger) *Compressor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Compressor{log: log}
}

// Compress merges module-level records into the node (last write wins per
// field) and appends method records in source order. Records with neither a
// module nor a method tag are dropped.
func (c *Compressor) Compress(records []domain.DocRecord) domain.ModuleNode {
	var node domain.ModuleNode

	for _, rec := range records {
		switch {
		case rec.IsModule():
			c.log.Debug("found module", "module", rec.Module)
			mergeModule(&node, rec)
		case rec.IsMethod():
			if rec.Module != "" {
				c.log.Debug("found method", "method", rec.Function, "module", rec.Module)
			} else {
				c.log.Debug("found method", "method", rec.Function)
			}
			node.Methods = append(node.Methods, toMethod(rec))
		}
	}

	return node
}

func mergeModule(node *domain.ModuleNode, rec domain.DocRecord) {
	node.Module = rec.Module
	if rec.Description != "" {
		node.Description = rec.Description
	}
	if rec.Async {
		node.Async = true
	}
	if len(rec.Properties) > 0 {
		node.Properties = rec.Properties
	}
	if len(rec.Arguments) > 0 {
		node.Arguments = rec.Arguments
	}
	if len(rec.Returns) > 0 {
		node.Returns = rec.Returns
	}
	if len(rec.Throws) > 0 {
		node.Throws = rec.Throws
	}
}

func toMethod(rec domain.DocRecord) domain.MethodNode {
	return domain.MethodNode{
		Name:        rec.Function,
		Description: rec.Description,
		Async:       rec.Async,
		Arguments:   rec.Arguments,
		Properties:  rec.Properties,
		Returns:     rec.Returns,
		Throws:      rec.Throws,
	}
}
