package domain

// Recommendation is a single artist suggestion as returned by the model,
// before any catalog enrichment.
type Recommendation struct {
	Artist      string   `json:"artist"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags"`
}

// GenerationResult is the decoded model reply.
type GenerationResult struct {
	Tags            []string         `json:"tags"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Empty reports whether the model produced nothing usable.
func (g *GenerationResult) Empty() bool {
	return g == nil || (len(g.Tags) == 0 && len(g.Recommendations) == 0)
}

// Enrichment holds catalog metadata for one artist. Nil fields serialize as null.
type Enrichment struct {
	Image       *string
	SampleURL   *string
	SampleTrack *string
}

type EnrichedRecommendation struct {
	Artist      string   `json:"artist"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags"`
	Image       *string  `json:"image"`
	SampleURL   *string  `json:"sampleUrl"`
	SampleTrack *string  `json:"sampleTrack"`
	LastFMURL   string   `json:"lastFmUrl"`
}

// NewEnrichedRecommendation merges a raw recommendation with its enrichment.
func NewEnrichedRecommendation(rec Recommendation, meta Enrichment, pageURL string) EnrichedRecommendation {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	return EnrichedRecommendation{
		Artist:      rec.Artist,
		Explanation: rec.Explanation,
		Tags:        tags,
		Image:       meta.Image,
		SampleURL:   meta.SampleURL,
		SampleTrack: meta.SampleTrack,
		LastFMURL:   pageURL,
	}
}

type AnalysisResult struct {
	Tags            []string                 `json:"tags"`
	Recommendations []EnrichedRecommendation `json:"recommendations"`
}

// AnalyzeRequest is the body accepted by the analysis endpoint.
type AnalyzeRequest struct {
	Artists []string `json:"artists"`
}
