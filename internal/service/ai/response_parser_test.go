package ai

import (
	"reflect"
	"testing"

	"github.com/kapu/undercurrent/internal/domain"
)

func TestParseRecommendationsStrictJSON(t *testing.T) {
	text := `{"tags":["shoegaze","slowcore"],"recommendations":[{"artist":"Flying Saucer Attack","explanation":"Droning home-recorded noise pop.","tags":["drone","lo-fi","bristol"]}]}`

	outcome := ParseRecommendations(text)
	if outcome.Status != ParseStrict {
		t.Fatalf("expected strict parse, got %s", outcome.Status)
	}

	want := &domain.GenerationResult{
		Tags: []string{"shoegaze", "slowcore"},
		Recommendations: []domain.Recommendation{
			{
				Artist:      "Flying Saucer Attack",
				Explanation: "Droning home-recorded noise pop.",
				Tags:        []string{"drone", "lo-fi", "bristol"},
			},
		},
	}
	if !reflect.DeepEqual(outcome.Result, want) {
		t.Fatalf("unexpected result: %+v", outcome.Result)
	}
}

func TestParseRecommendationsExtractsFromProse(t *testing.T) {
	text := "Sure! {\"tags\":[\"x\"],\"recommendations\":[]} Hope that helps!"

	outcome := ParseRecommendations(text)
	if outcome.Status != ParseExtracted {
		t.Fatalf("expected extracted parse, got %s", outcome.Status)
	}
	if !reflect.DeepEqual(outcome.Result.Tags, []string{"x"}) {
		t.Fatalf("unexpected tags: %v", outcome.Result.Tags)
	}
	if outcome.Result.Recommendations == nil || len(outcome.Result.Recommendations) != 0 {
		t.Fatalf("expected empty non-nil recommendations, got %v", outcome.Result.Recommendations)
	}
}

func TestParseRecommendationsHandlesCodeFence(t *testing.T) {
	text := "```json\n{\"tags\":[\"ambient\"],\"recommendations\":[]}\n```"

	outcome := ParseRecommendations(text)
	if !outcome.Parsed() {
		t.Fatalf("expected fenced JSON to be recovered")
	}
	if len(outcome.Result.Tags) != 1 || outcome.Result.Tags[0] != "ambient" {
		t.Fatalf("unexpected tags: %v", outcome.Result.Tags)
	}
}

func TestParseRecommendationsWithoutBracesIsEmpty(t *testing.T) {
	outcome := ParseRecommendations("I could not think of anything, sorry.")

	if outcome.Status != ParseEmpty || outcome.Parsed() {
		t.Fatalf("expected empty outcome, got %s", outcome.Status)
	}
	if outcome.Result.Tags == nil || len(outcome.Result.Tags) != 0 {
		t.Fatalf("expected empty tags, got %v", outcome.Result.Tags)
	}
	if outcome.Result.Recommendations == nil || len(outcome.Result.Recommendations) != 0 {
		t.Fatalf("expected empty recommendations, got %v", outcome.Result.Recommendations)
	}
}

func TestParseRecommendationsStrayBracesDegradeToEmpty(t *testing.T) {
	text := `Here {you go}: {"tags":["x"],"recommendations":[]}`

	outcome := ParseRecommendations(text)
	if outcome.Status != ParseEmpty {
		t.Fatalf("expected stray braces to defeat extraction, got %s", outcome.Status)
	}
}

func TestParseRecommendationsKeepsValidFieldsAlongsideMistypedOnes(t *testing.T) {
	text := `{"tags":["shoegaze","slowcore","dream pop","noise","drone"],"recommendations":[` +
		`{"artist":"Flying Saucer Attack","explanation":"Home-recorded noise pop.","tags":["drone","lo-fi","bristol"]},` +
		`{"artist":"Bowery Electric","explanation":"Trip-hop haze.","tags":"ambient, post-rock , shoegaze"},` +
		`{"artist":{"name":"nested"},"explanation":"unusable"},` +
		`"not an object"]}`

	outcome := ParseRecommendations(text)
	if outcome.Status != ParseStrict {
		t.Fatalf("expected strict parse, got %s", outcome.Status)
	}

	want := &domain.GenerationResult{
		Tags: []string{"shoegaze", "slowcore", "dream pop", "noise", "drone"},
		Recommendations: []domain.Recommendation{
			{
				Artist:      "Flying Saucer Attack",
				Explanation: "Home-recorded noise pop.",
				Tags:        []string{"drone", "lo-fi", "bristol"},
			},
			{
				Artist:      "Bowery Electric",
				Explanation: "Trip-hop haze.",
				Tags:        []string{"ambient", "post-rock", "shoegaze"},
			},
		},
	}
	if !reflect.DeepEqual(outcome.Result, want) {
		t.Fatalf("unexpected result: %+v", outcome.Result)
	}
}

func TestParseRecommendationsCoercesScalarFields(t *testing.T) {
	outcome := ParseRecommendations(`{"tags":"not-a-list","recommendations":[{"artist":808,"explanation":true,"tags":[1990,"idm",null]}]}`)

	if outcome.Status != ParseStrict {
		t.Fatalf("expected strict parse, got %s", outcome.Status)
	}
	if !reflect.DeepEqual(outcome.Result.Tags, []string{"not-a-list"}) {
		t.Fatalf("unexpected tags: %v", outcome.Result.Tags)
	}
	want := []domain.Recommendation{{Artist: "808", Explanation: "true", Tags: []string{"1990", "idm"}}}
	if !reflect.DeepEqual(outcome.Result.Recommendations, want) {
		t.Fatalf("unexpected recommendations: %+v", outcome.Result.Recommendations)
	}
}

func TestParseRecommendationsNonListRecommendationsIsEmptyList(t *testing.T) {
	outcome := ParseRecommendations(`{"tags":["x"],"recommendations":{}}`)

	if outcome.Status != ParseStrict {
		t.Fatalf("expected strict parse, got %s", outcome.Status)
	}
	if outcome.Result.Recommendations == nil || len(outcome.Result.Recommendations) != 0 {
		t.Fatalf("expected empty non-nil recommendations, got %v", outcome.Result.Recommendations)
	}
}
