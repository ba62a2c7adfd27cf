package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"doccomment/config"
	"doccomment/internal/adapter/analyzer"
	"doccomment/internal/adapter/cache"
	"doccomment/internal/adapter/fs"
	"doccomment/internal/adapter/store"
	"doccomment/internal/domain"
	"doccomment/internal/port"
	"doccomment/internal/usecase"
)

// extractDocs resolves the project identity and extracts the comment
// blocks of the configured source directory.
func extractDocs() (*domain.ExtractedDocs, error) {
	src := resolvePath(cfg.Source.Dir)
	if err := fs.CheckDir(src); err != nil {
		return nil, err
	}

	project, err := usecase.ResolveProject(cfg, src)
	if err != nil {
		return nil, err
	}

	walker := fs.NewWalker(cfg.Source.Includes, cfg.Source.Excludes, cfg.Source.Recursive)
	extractUC := usecase.NewExtractUseCase(walker, fs.Reader{}, logger)

	logger.Debug("scanning", "source", src, "recursive", cfg.Source.Recursive)
	return extractUC.Extract(src, project)
}

// buildDocs compresses extracted docs, using the unit and record caches
// when enabled. A progress bar is drawn when showProgress is set.
func buildDocs(ctx context.Context, extracted *domain.ExtractedDocs, showProgress bool) (*usecase.BuildResult, error) {
	var (
		units   port.UnitStore
		records port.RecordCache
	)

	if cfg.Cache.Enabled {
		st, err := openUnitStore(cfg)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		units = st
		records = cache.NewRecordCache(cfg.Cache.Records, cfg.Cache.TTL)
	}

	var progress usecase.ProgressFunc
	if showProgress {
		progress = newProgress(len(extracted.Tree))
	}
	return buildWith(ctx, extracted, units, records, progress)
}

func buildWith(ctx context.Context, extracted *domain.ExtractedDocs, units port.UnitStore, records port.RecordCache, progress usecase.ProgressFunc) (*usecase.BuildResult, error) {
	parser := analyzer.NewDocParser(records, logger)
	buildUC := usecase.NewBuildUseCase(parser, units, cfg.Build.Workers, logger)
	return buildUC.Build(ctx, extracted, progress)
}

func openUnitStore(cfg *config.Config) (*store.BoltStore, error) {
	if err := config.EnsureStateDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	st, err := store.NewBoltStore(config.CacheDBPath(rootDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open unit cache: %w", err)
	}

	reason, err := st.Prepare(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to prepare unit cache: %w", err)
	}
	if reason != "" {
		logger.Info("unit cache cleared", "reason", reason)
	}
	return st, nil
}

// saveCheckpoint writes docs to the configured intermediary file when
// intermediary output is enabled.
func saveCheckpoint(docs any) error {
	if !cfg.Output.WriteIntermediary {
		return nil
	}
	path := resolvePath(cfg.Output.Intermediary)
	size, err := store.WriteCheckpoint(path, docs)
	if err != nil {
		return err
	}
	logger.Info("intermediary written", "path", path, "size", humanize.Bytes(uint64(size)))
	return nil
}

func newProgress(total int) usecase.ProgressFunc {
	var (
		mu        sync.Mutex
		startTime = time.Now()
	)

	bar := progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Parsing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	return func(processed, total int, unit string) {
		mu.Lock()
		defer mu.Unlock()

		bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Parsing[reset] ETA: %s", formatDuration(eta)))
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
