// Package preview serves the generated documentation over HTTP.
package preview

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"doccomment/internal/adapter/render"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

// BuildFunc produces the documentation to serve. It runs on every page
// request so edits to the sources show up on reload.
type BuildFunc func(ctx context.Context) (*domain.BuiltDocs, error)

// Server is the HTTP preview server.
type Server struct {
	router chi.Router
	build  BuildFunc
	opts   port.RenderOptions
	log    *slog.Logger
}

// NewServer creates and configures the preview server.
func NewServer(build BuildFunc, opts port.RenderOptions, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		build: build,
		opts:  opts,
		log:   log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleFormat(render.NewHTMLRenderer(), "text/html; charset=utf-8"))
	r.Get("/api.md", s.handleFormat(render.NewMarkdownRenderer(), "text/markdown; charset=utf-8"))
	r.Get("/tree.json", s.handleFormat(render.JSONRenderer{}, "application/json"))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleFormat(renderer port.Renderer, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := s.build(r.Context())
		if err != nil {
			s.log.Error("build failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		data, err := renderer.Render(docs, s.opts)
		if err != nil {
			s.log.Error("render failed", "format", renderer.Extension(), "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
