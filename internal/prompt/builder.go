package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type TemplateName string

const (
	TemplateRecommend TemplateName = "recommend_prompt.tmpl"
)

// PromptBuilder renders embedded prompt templates, parsing each one once.
type PromptBuilder struct {
	mu        sync.RWMutex
	templates map[TemplateName]*template.Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		templates: make(map[TemplateName]*template.Template),
	}
}

func (pb *PromptBuilder) Render(name TemplateName, data any) (string, error) {
	tmpl, err := pb.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}

	return buf.String(), nil
}

// RenderRecommend builds the recommendation prompt, falling back to the
// inline version when the template cannot be rendered.
func (pb *PromptBuilder) RenderRecommend(artists []string) (string, error) {
	data := NewRecommendPromptData(artists)
	text, err := pb.Render(TemplateRecommend, data)
	if err != nil {
		return FallbackRecommendPrompt(data), err
	}
	return text, nil
}

func (pb *PromptBuilder) getTemplate(name TemplateName) (*template.Template, error) {
	pb.mu.RLock()
	tmpl, ok := pb.templates[name]
	pb.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	content, err := templateFS.ReadFile(path.Join("templates", string(name)))
	if err != nil {
		return nil, fmt.Errorf("load prompt template %s: %w", name, err)
	}

	tmpl, err = template.New(string(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.templates[name] = tmpl

	return tmpl, nil
}
