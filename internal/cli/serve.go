package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"doccomment/internal/adapter/cache"
	"doccomment/internal/adapter/memstore"
	"doccomment/internal/adapter/preview"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the documentation",
	Long: `Serve the documentation over HTTP, rebuilt from the sources on every request:
  /           HTML page
  /api.md     Markdown
  /tree.json  module tree

Examples:
  doccomment serve
  doccomment serve --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default is 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("addr") {
		cfg.Serve.Addr = serveAddr
	}

	// Units and records stay cached in memory between page loads.
	units := memstore.NewMemoryStore()
	records := cache.NewRecordCache(cfg.Cache.Records, cfg.Cache.TTL)

	build := func(ctx context.Context) (*domain.BuiltDocs, error) {
		extracted, err := extractDocs()
		if err != nil {
			return nil, err
		}
		result, err := buildWith(ctx, extracted, units, records, nil)
		if err != nil {
			return nil, err
		}
		return result.Docs, nil
	}

	srv := preview.NewServer(build, port.RenderOptions{Footer: cfg.Output.Footer}, logger)
	httpServer := &http.Server{
		Addr:         cfg.Serve.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("serving documentation", "addr", cfg.Serve.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
