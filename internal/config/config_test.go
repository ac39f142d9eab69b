package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LASTFM_API_KEY", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ENRICH_CONCURRENCY", "")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr)
	}
	if cfg.Catalog.Timeout != 8*time.Second {
		t.Fatalf("expected 8s catalog timeout, got %v", cfg.Catalog.Timeout)
	}
	if cfg.Catalog.EnrichConcurrency != 1 {
		t.Fatalf("expected sequential enrichment by default, got %d", cfg.Catalog.EnrichConcurrency)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wide-open CORS by default, got %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.FallbackImageEnabled() {
		t.Fatalf("fallback image lookup must be disabled without LASTFM_API_KEY")
	}
}

func TestLoadRequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error when GEMINI_API_KEY is missing")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LASTFM_API_KEY", "lastfm-key")
	t.Setenv("ENRICH_CONCURRENCY", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("OPENAI_ENABLE_FALLBACK", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cfg.FallbackImageEnabled() {
		t.Fatalf("expected fallback image lookup to be enabled")
	}
	if cfg.Catalog.EnrichConcurrency != 3 {
		t.Fatalf("expected concurrency 3, got %d", cfg.Catalog.EnrichConcurrency)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 || cfg.Server.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.OpenAI.EnableFallback {
		t.Fatalf("expected OpenAI fallback to be disabled")
	}
}

func TestValidateRejectsZeroConcurrency(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Addr: ":8000"},
		Gemini:  GeminiConfig{APIKey: "k"},
		Catalog: CatalogConfig{ITunesBaseURL: "https://itunes.apple.com", Timeout: time.Second},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero concurrency")
	}
}

func TestValidateRateLimitWindow(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Addr: ":8000", RateLimitRequests: 10},
			Gemini:  GeminiConfig{APIKey: "k"},
			Catalog: CatalogConfig{ITunesBaseURL: "https://itunes.apple.com", Timeout: time.Second, EnrichConcurrency: 1},
		}
	}

	cfg := base()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero window with rate limiting enabled")
	}

	cfg = base()
	cfg.Server.RateLimitWindow = time.Minute
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg = base()
	cfg.Server.RateLimitRequests = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero window is fine when rate limiting is off, got %v", err)
	}
}
