package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name or explicit provider
// choice.
type ProviderFactory struct {
	openaiAPIKey   string
	geminiAPIKey   string
	ollamaEndpoint string
}

// NewProviderFactory creates a new provider factory.
func NewProviderFactory(openaiAPIKey, geminiAPIKey, ollamaEndpoint string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey:   openaiAPIKey,
		geminiAPIKey:   geminiAPIKey,
		ollamaEndpoint: ollamaEndpoint,
	}
}

// GetProvider returns the provider for the given model or explicit provider
// name.
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName string) (Provider, error) {
	if providerName != "" {
		return f.getProviderByName(ctx, providerName)
	}
	return f.getProviderByModel(ctx, model)
}

func (f *ProviderFactory) getProviderByName(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case providerNameOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("openai API key not configured")
		}
		return NewOpenAIProvider(f.openaiAPIKey), nil

	case providerNameGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key not configured")
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)

	case providerNameOllama:
		return NewOllamaProvider(f.ollamaEndpoint), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, gemini, ollama)", providerName)
	}
}

func (f *ProviderFactory) getProviderByModel(ctx context.Context, model string) (Provider, error) {
	modelLower := strings.ToLower(model)

	if strings.HasPrefix(modelLower, "gpt-") {
		return f.getProviderByName(ctx, providerNameOpenAI)
	}
	if strings.HasPrefix(modelLower, "gemini-") {
		return f.getProviderByName(ctx, providerNameGemini)
	}
	if f.ollamaEndpoint != "" {
		return NewOllamaProvider(f.ollamaEndpoint), nil
	}

	// Default to OpenAI for unknown models.
	return f.getProviderByName(ctx, providerNameOpenAI)
}
