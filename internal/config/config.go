package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Catalog CatalogConfig
	LastFM  LastFMConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr               string
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type CatalogConfig struct {
	ITunesBaseURL     string
	Timeout           time.Duration
	EnrichConcurrency int
}

// LastFMConfig configures the optional artist-image fallback. An empty APIKey
// disables the fallback lookup; PageBaseURL is always used for artist links.
type LastFMConfig struct {
	APIKey      string
	BaseURL     string
	PageBaseURL string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:               getEnv("HTTP_ADDR", ":8000"),
			CORSAllowedOrigins: parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			RateLimitRequests:  getEnvInt("RATE_LIMIT_REQUESTS", 0),
			RateLimitWindow:    time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-5-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Catalog: CatalogConfig{
			ITunesBaseURL:     getEnv("ITUNES_BASE_URL", "https://itunes.apple.com"),
			Timeout:           time.Duration(getEnvInt("CATALOG_TIMEOUT_SECONDS", 8)) * time.Second,
			EnrichConcurrency: getEnvInt("ENRICH_CONCURRENCY", 1),
		},
		LastFM: LastFMConfig{
			APIKey:      getEnv("LASTFM_API_KEY", ""),
			BaseURL:     getEnv("LASTFM_BASE_URL", "http://ws.audioscrobbler.com/2.0/"),
			PageBaseURL: getEnv("LASTFM_PAGE_BASE_URL", "https://www.last.fm/music/"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.Catalog.ITunesBaseURL == "" {
		return fmt.Errorf("ITUNES_BASE_URL must not be empty")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT_SECONDS must be positive")
	}
	if c.Catalog.EnrichConcurrency < 1 {
		return fmt.Errorf("ENRICH_CONCURRENCY must be at least 1")
	}
	if c.Server.RateLimitRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative")
	}
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive when rate limiting is enabled")
	}
	return nil
}

// FallbackImageEnabled reports whether the Last.fm image lookup may run.
func (c *Config) FallbackImageEnabled() bool {
	return c.LastFM.APIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
