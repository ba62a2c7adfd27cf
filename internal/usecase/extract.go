package usecase

import (
	"fmt"
	"log/slog"

	"doccomment/internal/adapter/analyzer"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// ExtractUseCase collects the raw comment blocks of every source unit.
type ExtractUseCase struct {
	walker    port.SourceWalker
	reader    port.FileReader
	extractor *analyzer.CommentExtractor
	log       *slog.Logger
}

// NewExtractUseCase creates a new extract use case.
func NewExtractUseCase(walker port.SourceWalker, reader port.FileReader, log *slog.Logger) *ExtractUseCase {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ExtractUseCase{
		walker:    walker,
		reader:    reader,
		extractor: analyzer.NewCommentExtractor(),
		log:       log,
	}
}

// Extract walks root and returns the blocks of each unit. Units without any
// comment block are left out of the tree.
func (u *ExtractUseCase) Extract(root string, project domain.Project) (*domain.ExtractedDocs, error) {
	units, err := u.walker.Walk(root)
	if err != nil {
		return nil, err
	}

	docs := &domain.ExtractedDocs{
		Name:    project.Name,
		Version: project.Version,
		Tree:    make(map[string][]domain.CommentBlock, len(units)),
	}

	for _, unit := range units {
		content, err := u.reader.ReadFile(unit.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", unit.ID, err)
		}

		blocks := u.extractor.Extract(content)
		if len(blocks) == 0 {
			u.log.Debug("no comment blocks", "unit", unit.ID)
			continue
		}
		u.log.Debug("extracted", "unit", unit.ID, "blocks", len(blocks))
		docs.Tree[unit.ID] = blocks
	}

	u.log.Info("extraction complete", "units", len(units), "documented", len(docs.Tree))
	return docs, nil
}
