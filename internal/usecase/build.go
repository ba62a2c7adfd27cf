package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"doccomment/internal/adapter/analyzer"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// ProgressFunc is called after each unit is built.
type ProgressFunc func(processed, total int, unit string)

// BuildUseCase turns extracted blocks into the compressed module tree.
type BuildUseCase struct {
	parser  *analyzer.DocParser
	units   port.UnitStore
	workers int
	log     *slog.Logger
}

// NewBuildUseCase creates a build use case. units may be nil to disable
// the persistent unit cache.
func NewBuildUseCase(parser *analyzer.DocParser, units port.UnitStore, workers int, log *slog.Logger) *BuildUseCase {
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &BuildUseCase{
		parser:  parser,
		units:   units,
		workers: workers,
		log:     log,
	}
}

// BuildResult contains the results of a build.
type BuildResult struct {
	Docs        *domain.BuiltDocs
	UnitsParsed int
	UnitsCached int
	UnitsPruned int
}

// Build parses every unit of docs. Units run concurrently, each one as a
// whole; the first failure cancels the remaining units and is returned.
func (u *BuildUseCase) Build(ctx context.Context, docs *domain.ExtractedDocs, progress ProgressFunc) (*BuildResult, error) {
	ids := make([]string, 0, len(docs.Tree))
	for id := range docs.Tree {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]domain.ModuleNode, len(ids))
	var processed, cached atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			node, hit, err := u.buildUnit(id, docs.Tree[id])
			if err != nil {
				return err
			}
			nodes[i] = node
			if hit {
				cached.Add(1)
			}

			n := processed.Add(1)
			if progress != nil {
				progress(int(n), len(ids), id)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BuildResult{
		Docs: &domain.BuiltDocs{
			Name:    docs.Name,
			Version: docs.Version,
			Tree:    make(domain.ModuleTree, len(ids)),
		},
		UnitsCached: int(cached.Load()),
	}
	result.UnitsParsed = len(ids) - result.UnitsCached
	for i, id := range ids {
		result.Docs.Tree[id] = nodes[i]
	}

	if u.units != nil {
		keep := make(map[string]bool, len(ids))
		for _, id := range ids {
			keep[id] = true
		}
		pruned, err := u.units.PruneUnits(keep)
		if err != nil {
			return nil, fmt.Errorf("failed to prune unit cache: %w", err)
		}
		result.UnitsPruned = pruned
	}

	u.log.Info("build complete",
		"units", len(ids),
		"parsed", result.UnitsParsed,
		"cached", result.UnitsCached,
		"pruned", result.UnitsPruned,
	)
	return result, nil
}

func (u *BuildUseCase) buildUnit(id string, blocks []domain.CommentBlock) (domain.ModuleNode, bool, error) {
	if u.units == nil {
		node, err := u.parser.ParseBlocks(id, blocks)
		return node, false, err
	}

	hash := blocksHash(blocks)
	node, ok, err := u.units.GetUnit(id, hash)
	if err != nil {
		return domain.ModuleNode{}, false, fmt.Errorf("failed to read unit cache for %s: %w", id, err)
	}
	if ok {
		u.log.Debug("unit cache hit", "unit", id)
		return node, true, nil
	}

	node, err = u.parser.ParseBlocks(id, blocks)
	if err != nil {
		return domain.ModuleNode{}, false, err
	}
	if err := u.units.PutUnit(id, hash, node); err != nil {
		return domain.ModuleNode{}, false, fmt.Errorf("failed to store unit %s: %w", id, err)
	}
	return node, false, nil
}

func blocksHash(blocks []domain.CommentBlock) string {
	h := sha256.New()
	for _, block := range blocks {
		for _, line := range block {
			h.Write([]byte(line))
			h.Write([]byte{'\n'})
		}
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
