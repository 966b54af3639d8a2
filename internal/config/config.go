package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"docscan/internal/scan"
)

// defaultKeywords seeds the keyword list for requests that do not supply
// their own, covering the common planning-document vocabulary.
const defaultKeywords = "affordable housing, biodiversity, construction, green belt, height, heritage, parking, traffic"

type Config struct {
	Port string

	// Auth. Empty disables bearer authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Scan defaults
	DefaultKeywords      []string
	DefaultContextWindow int
	MaxContextWindow     int

	// Session state
	SessionTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCSCAN_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultKeywords:      scan.ParseKeywords(envOr("DEFAULT_KEYWORDS", defaultKeywords)),
		DefaultContextWindow: envInt("DEFAULT_CONTEXT_WINDOW", 60),
		MaxContextWindow:     envInt("MAX_CONTEXT_WINDOW", 200),

		SessionTTL: envDuration("SESSION_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DefaultContextWindow <= 0 {
		return fmt.Errorf("DEFAULT_CONTEXT_WINDOW must be positive, got %d", c.DefaultContextWindow)
	}
	if c.MaxContextWindow < c.DefaultContextWindow {
		return fmt.Errorf("MAX_CONTEXT_WINDOW (%d) must be at least DEFAULT_CONTEXT_WINDOW (%d)",
			c.MaxContextWindow, c.DefaultContextWindow)
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
