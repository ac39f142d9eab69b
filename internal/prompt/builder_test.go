package prompt

import (
	"strings"
	"testing"
)

func TestRenderRecommendEmbedsArtistList(t *testing.T) {
	pb := NewPromptBuilder()

	text, err := pb.RenderRecommend([]string{"Grouper", "Duster", "Hood"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(text, "The user listens to these artists: Grouper, Duster, Hood.") {
		t.Fatalf("artist list not embedded: %s", text)
	}
	if !strings.Contains(text, "Recommend 5 VERY small, niche, or underground artists") {
		t.Fatalf("recommendation count missing: %s", text)
	}
	if !strings.Contains(text, `"recommendations"`) {
		t.Fatalf("JSON shape missing from prompt: %s", text)
	}
}

func TestTemplateMatchesInlineFallback(t *testing.T) {
	pb := NewPromptBuilder()
	data := NewRecommendPromptData([]string{"Low"})

	rendered, err := pb.Render(TemplateRecommend, data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rendered != FallbackRecommendPrompt(data) {
		t.Fatalf("template and fallback diverged:\n%s\n---\n%s", rendered, FallbackRecommendPrompt(data))
	}
}

func TestRenderUnknownTemplateFails(t *testing.T) {
	pb := NewPromptBuilder()

	if _, err := pb.Render(TemplateName("missing.tmpl"), nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRenderRecommendEmptyArtists(t *testing.T) {
	text, err := NewPromptBuilder().RenderRecommend(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(text, "these artists: .") {
		t.Fatalf("expected empty artist list, got %s", text)
	}
}
