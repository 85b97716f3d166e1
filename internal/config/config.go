package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string

	// LLM API keys and endpoints
	OpenAIAPIKey   string // OpenAI API key for GPT models
	GeminiAPIKey   string // Google Gemini API key
	OllamaEndpoint string // Local Ollama base URL (optional)

	// Model selection
	ExtractionModel string // Model for thematic-context extraction
	NarrativeModel  string // Model for story-narrative generation

	// Generation behavior
	StoryMode       bool // Render narrative prose instead of structured fields
	MaxMode         bool // Emit the MAX quoted-field format
	CreativityLevel int  // Default 0-100 creativity slider value

	// Observability
	SentryDSN       string // Sentry DSN for error tracking
	LangfuseEnabled bool   // Feature flag for Langfuse tracing
}

func Load() *Config {
	return &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		OllamaEndpoint:  getEnv("OLLAMA_ENDPOINT", ""),
		ExtractionModel: getEnv("EXTRACTION_MODEL", "gpt-5-mini"),
		NarrativeModel:  getEnv("NARRATIVE_MODEL", "gpt-5-mini"),
		StoryMode:       getEnv("STORY_MODE", "false") == "true",
		MaxMode:         getEnv("MAX_MODE", "false") == "true",
		CreativityLevel: getEnvInt("CREATIVITY_LEVEL", 50),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		LangfuseEnabled: getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// HasLLM reports whether any LLM provider is configured.
func (c *Config) HasLLM() bool {
	return c.OpenAIAPIKey != "" || c.GeminiAPIKey != "" || c.OllamaEndpoint != ""
}
