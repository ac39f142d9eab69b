package prompt

import (
	"strings"

	"github.com/kapu/undercurrent/internal/constants"
)

type RecommendPromptData struct {
	ArtistList          string
	MinGlobalTags       int
	MaxGlobalTags       int
	RecommendationCount int
	TagsPerArtist       int
}

// NewRecommendPromptData fills the template variables for the given artists.
func NewRecommendPromptData(artists []string) RecommendPromptData {
	return RecommendPromptData{
		ArtistList:          strings.Join(artists, ", "),
		MinGlobalTags:       constants.RecommendationLimits.MinGlobalTags,
		MaxGlobalTags:       constants.RecommendationLimits.MaxGlobalTags,
		RecommendationCount: constants.RecommendationLimits.MaxRecommendations,
		TagsPerArtist:       constants.RecommendationLimits.TagsPerArtist,
	}
}
