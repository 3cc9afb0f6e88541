package api

import (
	"net/http"
	"time"

	"github.com/dgallion1/mdlorem/internal/archive"
	"github.com/go-chi/chi/v5"
)

// requireArchive writes 503 and returns false when archiving is disabled.
func (s *Server) requireArchive(w http.ResponseWriter) bool {
	if s.archive == nil {
		jsonError(w, "document archive is disabled", http.StatusServiceUnavailable)
		return false
	}
	return true
}

// handleCreateDocument generates a document and archives it. Archiving the
// same config twice returns the existing record.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}
	cfg := s.defaultConfig()
	if err := s.decodeConfig(r.Body, &cfg); err != nil {
		jsonError(w, err.Error(), badRequestOr(err))
		return
	}

	start := time.Now()
	md, err := s.generator.Generate(cfg)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	s.stats.Record(cfg.Language, time.Since(start), len(md))
	rec, duplicate, err := s.archive.Put(cfg, md)
	if err != nil {
		s.log.Error("archive document", "error", err)
		jsonError(w, "failed to archive document", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	s.log.Info("archived document", "id", rec.ID, "fingerprint", rec.Fingerprint, "duplicate", duplicate)
	writeJSON(w, status, map[string]any{
		"id":          rec.ID,
		"fingerprint": rec.Fingerprint,
		"duplicate":   duplicate,
		"url":         "/api/documents/" + rec.ID,
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}
	rec, err := s.archive.Get(chi.URLParam(r, "docID"))
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(rec.Markdown))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}
	docs, err := s.archive.List()
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []archive.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}
	id := chi.URLParam(r, "docID")
	if err := s.archive.Delete(id); err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}
