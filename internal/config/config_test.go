package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "MDLOREM_API_KEY", "CORPUS_FILE", "MAX_BLOCKS", "MAX_SENTENCES", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "STATS_WINDOW"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("expected port %q, got %q", "8090", cfg.Port)
	}
	if cfg.MaxBlocks != 500 {
		t.Errorf("expected max blocks 500, got %d", cfg.MaxBlocks)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxSentences != 20 {
		t.Errorf("expected max sentences 20, got %d", cfg.MaxSentences)
	}
	if cfg.StatsWindow != time.Hour {
		t.Errorf("expected stats window 1h, got %v", cfg.StatsWindow)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_BLOCKS", "25")
	t.Setenv("MAX_SENTENCES", "7")
	t.Setenv("BATCH_CONCURRENCY", "-3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("STATS_WINDOW", "5m")
	t.Setenv("ARCHIVE_PATH", "")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port %q, got %q", "9000", cfg.Port)
	}
	if cfg.MaxBlocks != 25 {
		t.Errorf("expected max blocks 25, got %d", cfg.MaxBlocks)
	}
	if cfg.MaxSentences != 7 {
		t.Errorf("expected max sentences 7, got %d", cfg.MaxSentences)
	}
	if cfg.BatchConcurrency != 4 {
		t.Errorf("expected invalid concurrency to reset to 4, got %d", cfg.BatchConcurrency)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.StatsWindow != 5*time.Minute {
		t.Errorf("expected 5m, got %v", cfg.StatsWindow)
	}
	if cfg.ArchivePath != "" {
		t.Errorf("expected archive disabled, got %q", cfg.ArchivePath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Port: "8090", DefaultLanguage: "Latin"}, false},
		{"empty port", Config{DefaultLanguage: "Latin"}, true},
		{"bad port", Config{Port: "http", DefaultLanguage: "Latin"}, true},
		{"no language", Config{Port: "8090"}, true},
		{"missing corpus", Config{Port: "8090", DefaultLanguage: "Latin", CorpusFile: filepath.Join(t.TempDir(), "nope.yaml")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
