package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdlorem/internal/archive"
	"github.com/dgallion1/mdlorem/internal/config"
	"github.com/dgallion1/mdlorem/internal/corpus"
	"github.com/dgallion1/mdlorem/internal/lorem"
	"github.com/dgallion1/mdlorem/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for mdlorem.
type Server struct {
	router    chi.Router
	generator *lorem.Generator
	corpora   *corpus.Registry
	archive   *archive.Store // nil when archiving is disabled
	stats     *stats.Window
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. store may be nil.
func NewServer(corpora *corpus.Registry, store *archive.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		generator: lorem.NewGenerator(corpora),
		corpora:   corpora,
		archive:   store,
		stats:     stats.NewWindow(cfg.StatsWindow),
		log:       log,
		cfg:       cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}
		r.Use(BodyLimit(s.cfg.MaxBodyBytes))

		r.Get("/api/tool", s.handleTool)
		r.Get("/api/languages", s.handleLanguages)
		r.Get("/api/config/default", s.handleDefaultConfig)
		r.Get("/api/stats", s.handleStats)

		r.Post("/api/generate", s.handleGenerate)
		r.Post("/api/generate/batch", s.handleBatchGenerate)
		r.Post("/api/outline", s.handleOutline)

		r.Get("/api/documents", s.handleListDocuments)
		r.Post("/api/documents", s.handleCreateDocument)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"generation":      s.stats.Snapshot(),
		"window_seconds":  int(s.cfg.StatsWindow.Seconds()),
		"archive_enabled": s.archive != nil,
	})
}
