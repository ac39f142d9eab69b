package recommend

import (
	"context"
	"time"

	"github.com/kapu/undercurrent/internal/constants"
	"github.com/kapu/undercurrent/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Generator produces raw tags and recommendations for an artist list.
type Generator interface {
	Generate(ctx context.Context, artists []string) (*domain.GenerationResult, error)
}

// Enricher attaches catalog metadata to one artist.
type Enricher interface {
	Enrich(ctx context.Context, artist string) domain.Enrichment
	ArtistPageURL(artist string) string
}

// Service runs the generate, truncate and enrich pipeline for one request.
type Service struct {
	generator   Generator
	enricher    Enricher
	logger      *zap.Logger
	concurrency int
}

func NewService(generator Generator, enricher Enricher, logger *zap.Logger, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		generator:   generator,
		enricher:    enricher,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Analyze returns at most five enriched recommendations in model order.
// Only a failed model call is reported as an error.
func (s *Service) Analyze(ctx context.Context, artists []string) (*domain.AnalysisResult, error) {
	if artists == nil {
		artists = []string{}
	}

	started := time.Now()
	generated, err := s.generator.Generate(ctx, artists)
	if err != nil {
		return nil, err
	}
	if generated == nil {
		generated = &domain.GenerationResult{}
	}

	tags := generated.Tags
	if tags == nil {
		tags = []string{}
	}

	recs := generated.Recommendations
	if limit := constants.RecommendationLimits.MaxRecommendations; len(recs) > limit {
		recs = recs[:limit]
	}

	enriched := s.enrichAll(ctx, recs)

	s.logger.Info("Analysis completed",
		zap.Int("input_artists", len(artists)),
		zap.Int("tags", len(tags)),
		zap.Int("generated", len(generated.Recommendations)),
		zap.Int("returned", len(enriched)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &domain.AnalysisResult{
		Tags:            tags,
		Recommendations: enriched,
	}, nil
}

// enrichAll writes results by index, so output order matches input order for
// any concurrency. With concurrency 1 lookups run one after another.
func (s *Service) enrichAll(ctx context.Context, recs []domain.Recommendation) []domain.EnrichedRecommendation {
	results := make([]domain.EnrichedRecommendation, len(recs))

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for idx, rec := range recs {
		idx, rec := idx, rec
		p.Go(func() {
			meta := s.enricher.Enrich(ctx, rec.Artist)
			results[idx] = domain.NewEnrichedRecommendation(rec, meta, s.enricher.ArtistPageURL(rec.Artist))
		})
	}
	p.Wait()

	return results
}
