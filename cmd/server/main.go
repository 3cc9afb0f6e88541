package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/mdlorem/internal/api"
	"github.com/dgallion1/mdlorem/internal/archive"
	"github.com/dgallion1/mdlorem/internal/config"
	"github.com/dgallion1/mdlorem/internal/corpus"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	corpora := corpus.Default()
	if cfg.CorpusFile != "" {
		reg, err := corpus.LoadFile(cfg.CorpusFile)
		if err != nil {
			log.Error("load corpus file", "path", cfg.CorpusFile, "error", err)
			os.Exit(1)
		}
		corpora = reg
	}
	if !corpora.Supports(cfg.DefaultLanguage) {
		log.Error("default language has no corpus", "language", cfg.DefaultLanguage)
		os.Exit(1)
	}

	var store *archive.Store
	if cfg.ArchivePath != "" {
		var err error
		store, err = archive.Open(cfg.ArchivePath)
		if err != nil {
			log.Error("open archive", "path", cfg.ArchivePath, "error", err)
			os.Exit(1)
		}
	}

	srv := api.NewServer(corpora, store, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if store != nil {
			store.Close()
		}
	}()

	log.Info("starting mdlorem",
		"port", cfg.Port,
		"languages", len(corpora.Languages()),
		"archive", cfg.ArchivePath,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
