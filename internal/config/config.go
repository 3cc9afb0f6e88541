package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth. Empty leaves the API open.
	APIKey string

	// Archive of generated documents. Empty disables it.
	ArchivePath string

	// Corpus table override (YAML). Empty uses the built-in table.
	CorpusFile      string
	DefaultLanguage string

	// Request limits
	MaxBlocks        int
	MaxSentences     int // cap on avg_sentences_per_paragraph
	MaxBatch         int
	BatchConcurrency int
	MaxBodyBytes     int64

	ShutdownTimeout time.Duration

	// Rolling window for /api/stats.
	StatsWindow time.Duration

	LogLevel slog.Level
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("MDLOREM_API_KEY"),

		ArchivePath: envOr("ARCHIVE_PATH", "mdlorem.db"),

		CorpusFile:      os.Getenv("CORPUS_FILE"),
		DefaultLanguage: envOr("DEFAULT_LANGUAGE", "Latin"),

		MaxBlocks:        envInt("MAX_BLOCKS", 500),
		MaxSentences:     envInt("MAX_SENTENCES", 20),
		MaxBatch:         envInt("MAX_BATCH", 16),
		BatchConcurrency: envInt("BATCH_CONCURRENCY", 4),
		MaxBodyBytes:     envInt64("MAX_BODY_BYTES", 1<<20), // 1MB

		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		StatsWindow:     envDuration("STATS_WINDOW", time.Hour),

		LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if v, ok := os.LookupEnv("ARCHIVE_PATH"); ok && v == "" {
		cfg.ArchivePath = ""
	}

	if cfg.MaxBlocks <= 0 {
		cfg.MaxBlocks = 500
	}
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = 20
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 16
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 4
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.DefaultLanguage == "" {
		return fmt.Errorf("DEFAULT_LANGUAGE must not be empty")
	}
	if c.CorpusFile != "" {
		if _, err := os.Stat(c.CorpusFile); err != nil {
			return fmt.Errorf("CORPUS_FILE: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			return l
		}
	}
	return fallback
}
