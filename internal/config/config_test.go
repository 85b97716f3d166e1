package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "OPENAI_API_KEY", "GEMINI_API_KEY", "OLLAMA_ENDPOINT",
		"EXTRACTION_MODEL", "NARRATIVE_MODEL", "STORY_MODE", "MAX_MODE",
		"CREATIVITY_LEVEL", "SENTRY_DSN", "LANGFUSE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gpt-5-mini", cfg.ExtractionModel)
	assert.Equal(t, "gpt-5-mini", cfg.NarrativeModel)
	assert.Equal(t, 50, cfg.CreativityLevel)
	assert.False(t, cfg.StoryMode)
	assert.False(t, cfg.MaxMode)
	assert.False(t, cfg.LangfuseEnabled)
	assert.False(t, cfg.HasLLM())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("EXTRACTION_MODEL", "gpt-5")
	t.Setenv("STORY_MODE", "true")
	t.Setenv("CREATIVITY_LEVEL", "85")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-5", cfg.ExtractionModel)
	assert.True(t, cfg.StoryMode)
	assert.Equal(t, 85, cfg.CreativityLevel)
	assert.True(t, cfg.HasLLM())
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("CREATIVITY_LEVEL", "not-a-number")
	assert.Equal(t, 50, Load().CreativityLevel)
}

func TestHasLLM(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "none", cfg: Config{}, want: false},
		{name: "openai", cfg: Config{OpenAIAPIKey: "k"}, want: true},
		{name: "gemini", cfg: Config{GeminiAPIKey: "k"}, want: true},
		{name: "ollama", cfg: Config{OllamaEndpoint: "http://localhost:11434"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.HasLLM(), tt.name)
		})
	}
}
