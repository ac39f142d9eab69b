package ai

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kapu/undercurrent/internal/constants"
	"github.com/kapu/undercurrent/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	httpStatusRegex  = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodeRegex  = regexp.MustCompile(`"code":\s*(\d{3})`)
	openaiCodeRegex  = regexp.MustCompile(`^(\d{3})\s`)
	rateLimitMarkers = []string{"429", "Rate limit", "RESOURCE_EXHAUSTED", "quota"}
)

// ModelManager sends prompts to Gemini, optionally falling back to OpenAI.
type ModelManager struct {
	primary  TextProvider
	fallback TextProvider
	logger   *zap.Logger
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	defaultGemini := cfg.DefaultGeminiModel
	if defaultGemini == "" {
		defaultGemini = constants.AIConfig.DefaultGeminiModel
	}

	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = constants.AIConfig.DefaultOpenAIModel
	}

	primary := NewGeminiProvider(geminiClient, defaultGemini, logger)

	var fallback TextProvider
	if cfg.EnableFallback {
		if openaiProvider := NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger); openaiProvider != nil {
			fallback = openaiProvider
			logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
		}
	}
	if fallback == nil {
		logger.Info("OpenAI fallback disabled")
	}

	return newModelManager(primary, fallback, logger), nil
}

func newModelManager(primary, fallback TextProvider, logger *zap.Logger) *ModelManager {
	return &ModelManager{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GenerateText returns the raw model text. Decoding is left to the caller
// because model replies are not guaranteed to be clean JSON. Every call
// reaches the primary provider; no failure state is carried between calls.
func (mm *ModelManager) GenerateText(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error) {
	primaryResult, primaryErr := mm.invokeProvider(ctx, mm.primary, prompt, preset, opts)
	if primaryErr == nil {
		return primaryResult.Text, &GenerateMetadata{
			Provider: mm.primary.Name(),
			Model:    primaryResult.Model,
		}, nil
	}
	mm.logFailure(mm.primary, primaryErr)

	if mm.fallback != nil {
		fallbackResult, fallbackErr := mm.invokeProvider(ctx, mm.fallback, prompt, preset, opts)
		if fallbackErr == nil {
			return fallbackResult.Text, &GenerateMetadata{
				Provider:     mm.fallback.Name(),
				Model:        fallbackResult.Model,
				UsedFallback: true,
			}, nil
		}
		mm.logFailure(mm.fallback, fallbackErr)
		return "", nil, errors.NewServiceError("all AI providers failed", "ai", "generate", fallbackErr)
	}

	return "", nil, errors.NewServiceError("AI generation failed", "ai", "generate", primaryErr)
}

func (mm *ModelManager) invokeProvider(ctx context.Context, provider TextProvider, prompt string, preset ModelPreset, opts *GenerateOptions) (ProviderResult, error) {
	if provider == nil {
		return ProviderResult{}, fmt.Errorf("model provider is not configured")
	}
	return provider.Generate(ctx, prompt, preset, opts)
}

func (mm *ModelManager) logFailure(provider TextProvider, err error) {
	mm.logger.Warn("AI provider failed",
		zap.String("provider", provider.Name()),
		zap.Bool("service_failure", isServiceFailure(err)),
		zap.Bool("rate_limited", isRateLimitError(err)),
		zap.Error(err),
	)
}

// isServiceFailure reports errors that indicate provider trouble (timeouts,
// rate limits, 5xx) rather than a bad request.
func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return true
	}
	if isRateLimitError(err) {
		return true
	}
	if httpStatusRegex.MatchString(msg) {
		return true
	}
	if code, ok := extractStatusCode(msg); ok {
		return code >= 500 && code < 600
	}
	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	if code, ok := extractStatusCode(msg); ok {
		return code == 429
	}
	return false
}

func extractStatusCode(msg string) (int, bool) {
	for _, re := range []*regexp.Regexp{geminiCodeRegex, openaiCodeRegex} {
		if matches := re.FindStringSubmatch(msg); len(matches) > 1 {
			if code, err := strconv.Atoi(matches[1]); err == nil {
				return code, true
			}
		}
	}
	return 0, false
}
