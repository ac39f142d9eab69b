package ai

// ModelPreset represents the model usage preset
type ModelPreset string

// PresetCreative favours varied, less obvious suggestions.
const PresetCreative ModelPreset = "creative"

// ModelConfig holds Gemini sampling configuration
type ModelConfig struct {
	Temperature      float32
	TopP             float32
	TopK             int
	MaxOutputTokens  int
	ResponseMimeType string
}

// OpenAIConfig holds OpenAI-specific sampling configuration
type OpenAIConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// GenerateMetadata records which provider answered.
type GenerateMetadata struct {
	Provider     string
	Model        string
	UsedFallback bool
}

type GenerateOptions struct {
	JSONMode bool
}

var presetConfigs = map[ModelPreset]ModelConfig{
	PresetCreative: {
		Temperature:     0.9,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 8192,
	},
}

// GetPresetConfig returns the sampling settings for preset. Unknown presets
// use the creative settings.
func GetPresetConfig(preset ModelPreset) ModelConfig {
	if cfg, ok := presetConfigs[preset]; ok {
		return cfg
	}
	return presetConfigs[PresetCreative]
}

func GetOpenAIPresetConfig(preset ModelPreset) OpenAIConfig {
	cfg := GetPresetConfig(preset)
	return OpenAIConfig{
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxOutputTokens,
		TopP:        cfg.TopP,
	}
}
