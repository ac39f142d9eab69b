package ai

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kapu/undercurrent/internal/domain"
)

// ParseStatus tags how a model reply was decoded.
type ParseStatus string

const (
	ParseStrict    ParseStatus = "strict"    // reply was valid JSON as-is
	ParseExtracted ParseStatus = "extracted" // JSON object recovered from surrounding text
	ParseEmpty     ParseStatus = "empty"     // nothing decodable
)

type ParseOutcome struct {
	Status ParseStatus
	Result *domain.GenerationResult
}

// Parsed reports whether any JSON object was decoded.
func (o ParseOutcome) Parsed() bool {
	return o.Status != ParseEmpty
}

// ParseRecommendations decodes a model reply in two stages: the whole text,
// then the span from the first '{' to the last '}'. Stray braces in the
// surrounding prose can make the second stage fail; that yields ParseEmpty.
func ParseRecommendations(text string) ParseOutcome {
	if result, ok := decodeGeneration(text); ok {
		return ParseOutcome{Status: ParseStrict, Result: result}
	}

	trimmed := strings.TrimSpace(text)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start != -1 && end > start {
		if result, ok := decodeGeneration(trimmed[start : end+1]); ok {
			return ParseOutcome{Status: ParseExtracted, Result: result}
		}
	}

	return ParseOutcome{Status: ParseEmpty, Result: emptyGeneration()}
}

// rawGeneration and rawRecommendation defer field decoding so one
// mistyped field does not discard the rest of a well-formed reply.
type rawGeneration struct {
	Tags            json.RawMessage `json:"tags"`
	Recommendations json.RawMessage `json:"recommendations"`
}

type rawRecommendation struct {
	Artist      json.RawMessage `json:"artist"`
	Explanation json.RawMessage `json:"explanation"`
	Tags        json.RawMessage `json:"tags"`
}

// decodeGeneration accepts any JSON object. Fields with unexpected types are
// coerced where the intent is clear and dropped otherwise; recommendations
// without a usable artist name are skipped.
func decodeGeneration(raw string) (*domain.GenerationResult, bool) {
	var envelope rawGeneration
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, false
	}

	result := emptyGeneration()
	result.Tags = coerceTags(envelope.Tags)

	var entries []json.RawMessage
	if err := json.Unmarshal(envelope.Recommendations, &entries); err != nil {
		return result, true
	}
	for _, entry := range entries {
		var rec rawRecommendation
		if err := json.Unmarshal(entry, &rec); err != nil {
			continue
		}
		artist, ok := coerceString(rec.Artist)
		if !ok || strings.TrimSpace(artist) == "" {
			continue
		}
		explanation, _ := coerceString(rec.Explanation)
		result.Recommendations = append(result.Recommendations, domain.Recommendation{
			Artist:      artist,
			Explanation: explanation,
			Tags:        coerceTags(rec.Tags),
		})
	}
	return result, true
}

// coerceTags reads a list of scalars, or a single comma separated string.
func coerceTags(raw json.RawMessage) []string {
	tags := []string{}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		for _, item := range items {
			if tag, ok := coerceString(item); ok && tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}

	if joined, ok := coerceString(raw); ok {
		for _, tag := range strings.Split(joined, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// coerceString returns strings as-is and numbers or booleans in their JSON
// spelling. Objects, arrays, null and missing values are rejected.
func coerceString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), true
	}
	return "", false
}

func emptyGeneration() *domain.GenerationResult {
	return &domain.GenerationResult{
		Tags:            []string{},
		Recommendations: []domain.Recommendation{},
	}
}
