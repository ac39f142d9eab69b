package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kapu/undercurrent/internal/config"
	"github.com/kapu/undercurrent/internal/constants"
	"github.com/kapu/undercurrent/internal/prompt"
	"github.com/kapu/undercurrent/internal/server"
	"github.com/kapu/undercurrent/internal/service/ai"
	"github.com/kapu/undercurrent/internal/service/catalog"
	"github.com/kapu/undercurrent/internal/service/recommend"
	"go.uber.org/zap"
)

// Container bundles the assembled services behind the HTTP server.
type Container struct {
	Config  *config.Config
	Handler http.Handler
}

// NewHTTPServer wraps the router in an http.Server listening on the configured address.
func (c *Container) NewHTTPServer() (*http.Server, error) {
	if c == nil || c.Handler == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return &http.Server{
		Addr:              c.Config.Server.Addr,
		Handler:           c.Handler,
		ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
	}, nil
}

// Build wires configuration into the generator, enricher and orchestrator.
// Credentials are passed explicitly; nothing reads the environment after Load.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// AI stack
	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: cfg.OpenAI.Model,
		EnableFallback:     cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}
	recommender := ai.NewRecommender(modelManager, prompt.NewPromptBuilder(), logger)

	// Catalog lookups
	httpClient := catalog.NewHTTPClient(cfg.Catalog.Timeout)
	itunes := catalog.NewITunesClient(cfg.Catalog.ITunesBaseURL, httpClient, logger)
	lastfm := catalog.NewLastFMClient(cfg.LastFM.APIKey, cfg.LastFM.BaseURL, cfg.LastFM.PageBaseURL, httpClient, logger)
	enricher := catalog.NewEnricher(itunes, lastfm, logger)

	if cfg.FallbackImageEnabled() {
		logger.Info("Last.fm image fallback enabled")
	} else {
		logger.Info("Last.fm image fallback disabled (no API key)")
	}

	recommendSvc := recommend.NewService(recommender, enricher, logger, cfg.Catalog.EnrichConcurrency)

	handler := server.NewRouter(server.NewHandler(recommendSvc, logger), server.RouterConfig{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitRequests:  cfg.Server.RateLimitRequests,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
	}, logger)

	return &Container{
		Config:  cfg,
		Handler: handler,
	}, nil
}
