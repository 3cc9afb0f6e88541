package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/mdlorem/internal/archive"
	"github.com/dgallion1/mdlorem/internal/lorem"
	"github.com/dgallion1/mdlorem/internal/outline"
	"github.com/dgallion1/mdlorem/internal/render"
	"golang.org/x/sync/errgroup"
)

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lorem.ToolInfo())
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": s.corpora.Languages(),
		"default":   s.cfg.DefaultLanguage,
	})
}

func (s *Server) handleDefaultConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaultConfig())
}

func (s *Server) defaultConfig() lorem.Config {
	cfg := lorem.DefaultConfig()
	cfg.Language = s.cfg.DefaultLanguage
	return cfg
}

// decodeConfig reads a Config from the body on top of the defaults. An empty
// body yields the defaults; unknown keys are rejected.
func (s *Server) decodeConfig(body io.Reader, cfg *lorem.Config) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid config json: %w", err)
	}
	return s.checkLimits(*cfg)
}

func (s *Server) checkLimits(cfg lorem.Config) error {
	if cfg.Blocks > s.cfg.MaxBlocks {
		return fmt.Errorf("%w: blocks must be at most %d, got %d", lorem.ErrInvalidConfig, s.cfg.MaxBlocks, cfg.Blocks)
	}
	if cfg.AvgSentencesPerParagraph > float64(s.cfg.MaxSentences) {
		return fmt.Errorf("%w: avg_sentences_per_paragraph must be at most %d, got %v",
			lorem.ErrInvalidConfig, s.cfg.MaxSentences, cfg.AvgSentencesPerParagraph)
	}
	return nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cfg := s.defaultConfig()
	if err := s.decodeConfig(r.Body, &cfg); err != nil {
		jsonError(w, err.Error(), badRequestOr(err))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}
	if format != "markdown" && format != "html" {
		jsonError(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
		return
	}

	start := time.Now()
	blocks, err := s.generator.Blocks(cfg)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	doc := strings.Join(blocks, "\n\n")
	s.stats.Record(cfg.Language, time.Since(start), len(doc))

	s.log.Debug("generated document",
		"seed", cfg.Seed,
		"language", cfg.Language,
		"blocks", cfg.Blocks,
		"emitted_blocks", len(blocks),
		"bytes", len(doc),
	)

	w.Header().Set("X-Mdlorem-Blocks", strconv.Itoa(len(blocks)))
	w.Header().Set("X-Mdlorem-Fingerprint", archive.Fingerprint(cfg))

	if format == "html" {
		html, err := render.HTML([]byte(doc))
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(doc))
}

type batchRequest struct {
	Config *lorem.Config `json:"config"`
	Seeds  []string      `json:"seeds"`
}

type batchDocument struct {
	Seed        string `json:"seed"`
	Fingerprint string `json:"fingerprint"`
	Markdown    string `json:"markdown"`
}

func (s *Server) handleBatchGenerate(w http.ResponseWriter, r *http.Request) {
	base := s.defaultConfig()
	req := batchRequest{Config: &base}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		jsonError(w, "invalid batch json: "+err.Error(), badRequestOr(err))
		return
	}
	if req.Config == nil {
		req.Config = &base
	}
	if len(req.Seeds) == 0 {
		jsonError(w, "at least one seed is required", http.StatusBadRequest)
		return
	}
	if len(req.Seeds) > s.cfg.MaxBatch {
		jsonError(w, fmt.Sprintf("batch exceeds max size (%d)", s.cfg.MaxBatch), http.StatusBadRequest)
		return
	}
	if err := s.checkLimits(*req.Config); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Each run owns its PRNG and chain, so documents can be built in parallel.
	docs := make([]batchDocument, len(req.Seeds))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, seed := range req.Seeds {
		cfg := *req.Config
		cfg.Seed = seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			md, err := s.generator.Generate(cfg)
			if err != nil {
				return fmt.Errorf("seed %q: %w", seed, err)
			}
			s.stats.Record(cfg.Language, time.Since(start), len(md))
			docs[i] = batchDocument{Seed: seed, Fingerprint: archive.Fingerprint(cfg), Markdown: md}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}

	s.log.Info("generated batch", "documents", len(docs), "language", req.Config.Language)
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	src, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), statusFor(err))
		return
	}

	var o *outline.Outline
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "text/html" {
		o, err = outline.FromHTML(bytes.NewReader(src))
		if err != nil {
			jsonError(w, "invalid html: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		o = outline.FromMarkdown(src)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"outline":   o,
		"headings":  o.Headings(),
		"max_depth": o.MaxDepth(),
	})
}

// badRequestOr keeps 413 for oversized bodies and reports everything else
// as a client error.
func badRequestOr(err error) int {
	if code := statusFor(err); code == http.StatusRequestEntityTooLarge {
		return code
	}
	return http.StatusBadRequest
}
