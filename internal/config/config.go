package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dgallion1/docvox/internal/describe"
	"github.com/dgallion1/docvox/internal/traverse"
)

type Config struct {
	Port string

	// Auth
	DocvoxAPIKey string

	// Upload limits
	MaxUploadBytes int64

	// Sessions
	SessionTTL time.Duration

	// Reading preferences
	Verbosity  string
	LineLength int
	BreakTags  []string
	SkipClass  string
	Language   string

	// Latency stats window
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		DocvoxAPIKey: os.Getenv("DOCVOX_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB

		SessionTTL: envDuration("SESSION_TTL", 1*time.Hour),

		Verbosity:  envOr("VERBOSITY", "verbose"),
		LineLength: envInt("LINE_LENGTH", 60),
		BreakTags:  envList("BREAK_TAGS", []string{"br", "li", "td", "th", "dt", "dd"}),
		SkipClass:  envOr("SKIP_CLASS", "vox-skip"),
		Language:   envOr("LANGUAGE", "en"),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 1 * time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocvoxAPIKey == "" {
		return fmt.Errorf("DOCVOX_API_KEY is required")
	}
	if _, err := describe.ParseVerbosity(c.Verbosity); err != nil {
		return fmt.Errorf("VERBOSITY: %w", err)
	}
	if c.LineLength <= 0 {
		return fmt.Errorf("LINE_LENGTH must be positive, got %d", c.LineLength)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("LANGUAGE: %w", err)
	}
	return nil
}

// ReadingOptions returns the traversal options the config describes.
func (c Config) ReadingOptions() traverse.Options {
	return traverse.Options{
		BreakTags:  traverse.NewTagSet(c.BreakTags...),
		LineLength: c.LineLength,
	}
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

// envList splits a comma separated value, dropping empty entries.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
