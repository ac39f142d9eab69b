package ai

import (
	"context"

	"github.com/kapu/undercurrent/internal/domain"
	"github.com/kapu/undercurrent/internal/prompt"
	"github.com/kapu/undercurrent/internal/util"
	"go.uber.org/zap"
)

// TextGenerator is the model access the Recommender needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error)
}

// Recommender asks the model for tags and niche artist recommendations.
type Recommender struct {
	generator     TextGenerator
	promptBuilder *prompt.PromptBuilder
	logger        *zap.Logger
	preset        ModelPreset
}

func NewRecommender(generator TextGenerator, builder *prompt.PromptBuilder, logger *zap.Logger) *Recommender {
	if builder == nil {
		builder = prompt.NewPromptBuilder()
	}
	return &Recommender{
		generator:     generator,
		promptBuilder: builder,
		logger:        logger,
		preset:        PresetCreative,
	}
}

// Generate issues one model call for the whole artist list. A reply that
// cannot be decoded yields an empty result, not an error; only a failed model
// call is returned as an error.
func (r *Recommender) Generate(ctx context.Context, artists []string) (*domain.GenerationResult, error) {
	promptText, err := r.promptBuilder.RenderRecommend(artists)
	if err != nil {
		r.logger.Error("Failed to render recommend template, using fallback", zap.Error(err))
	}

	text, metadata, err := r.generator.GenerateText(ctx, promptText, r.preset, &GenerateOptions{JSONMode: true})
	if err != nil {
		r.logger.Error("Recommendation generation failed", zap.Error(err))
		return nil, err
	}

	outcome := ParseRecommendations(text)
	fields := []zap.Field{
		zap.String("parse_status", string(outcome.Status)),
		zap.Int("tags", len(outcome.Result.Tags)),
		zap.Int("recommendations", len(outcome.Result.Recommendations)),
	}
	if metadata != nil {
		fields = append(fields,
			zap.String("provider", metadata.Provider),
			zap.String("model", metadata.Model),
			zap.Bool("used_fallback", metadata.UsedFallback),
		)
	}

	if !outcome.Parsed() {
		r.logger.Warn("Model reply was not decodable JSON, returning empty result",
			append(fields, zap.String("response_preview", util.TruncateString(text, 200)))...,
		)
		return outcome.Result, nil
	}

	r.logger.Debug("Recommendations generated", fields...)
	return outcome.Result, nil
}
