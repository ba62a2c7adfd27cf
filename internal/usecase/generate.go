package usecase

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"doccomment/internal/adapter/fs"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// GenerateUseCase renders built documentation to a file.
type GenerateUseCase struct {
	renderer port.Renderer
	log      *slog.Logger
}

// NewGenerateUseCase creates a new generate use case.
func NewGenerateUseCase(renderer port.Renderer, log *slog.Logger) *GenerateUseCase {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &GenerateUseCase{renderer: renderer, log: log}
}

// GenerateResult describes the written document.
type GenerateResult struct {
	Path  string
	Bytes int
}

// Size is the document size in human-readable form.
func (r *GenerateResult) Size() string {
	return humanize.Bytes(uint64(r.Bytes))
}

// Generate renders docs and writes the result to out. The directory holding
// out must already exist.
func (u *GenerateUseCase) Generate(docs *domain.BuiltDocs, out string, opts port.RenderOptions) (*GenerateResult, error) {
	if err := fs.CheckDir(filepath.Dir(out)); err != nil {
		return nil, err
	}

	data, err := u.renderer.Render(docs, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render documentation: %w", err)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}

	result := &GenerateResult{Path: out, Bytes: len(data)}
	u.log.Info("documentation written", "path", out, "size", result.Size())
	return result, nil
}
