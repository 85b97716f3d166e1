// Package llm is the boundary to external language models. The generation
// engine consumes only the Provider interface; concrete adapters for OpenAI,
// Gemini, and local Ollama endpoints live alongside it.
package llm

import (
	"context"
	"time"
)

// Default invocation limits. Callers may override per request.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
)

// InvocationRequest carries one prompt to a provider.
type InvocationRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string

	// OllamaEndpoint overrides the base URL for local-model providers.
	OllamaEndpoint string

	// Timeout bounds this invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxRetries is the number of transport-level retries after the first
	// attempt. Negative means no retries; zero means DefaultMaxRetries.
	MaxRetries int

	// ReasoningEffort is passed through to providers that support it
	// ("minimal", "low", "medium", "high").
	ReasoningEffort string
}

// Provider invokes a language model and returns its raw text output.
// Implementations own their transport, retry, and timeout mechanics; callers
// own the reaction to success, empty output, and failure.
type Provider interface {
	Invoke(ctx context.Context, request *InvocationRequest) (string, error)
	Name() string
}

func (r *InvocationRequest) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

func (r *InvocationRequest) retries() int {
	if r.MaxRetries < 0 {
		return 0
	}
	if r.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	return r.MaxRetries
}
