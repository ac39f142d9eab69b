package prompt

import "fmt"

// FallbackRecommendPrompt renders the recommendation prompt without the
// embedded template.
func FallbackRecommendPrompt(data RecommendPromptData) string {
	return fmt.Sprintf(`The user listens to these artists: %s.
1) Return %d–%d descriptive global tags (genres, moods, themes, style) for the overall taste.
2) Recommend %d VERY small, niche, or underground artists (avoid popular/mainstream names entirely).
3) For each artist, give one-sentence why it fits AND %d specific tags for that artist.

Respond as strict JSON:
{
  "tags": ["tag1", "..."],
  "recommendations": [
    {"artist": "Name", "explanation": "one sentence", "tags": ["tag1", "tag2", "tag3"]}
  ]
}
`,
		data.ArtistList,
		data.MinGlobalTags,
		data.MaxGlobalTags,
		data.RecommendationCount,
		data.TagsPerArtist,
	)
}
