package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const providerNameGemini = "gemini"

// GeminiProvider invokes models through Google's Gemini API.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Invoke sends the prompt and returns the raw text output.
func (p *GeminiProvider) Invoke(ctx context.Context, request *InvocationRequest) (string, error) {
	transaction := sentry.StartTransaction(ctx, "gemini.invoke")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	budget := request.timeout()
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: request.UserPrompt}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		},
	}

	var lastErr error
	attempts := request.retries() + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		start := time.Now()
		result, err := p.client.Models.GenerateContent(ctx, request.Model, contents, config)
		if err == nil {
			transaction.SetTag("success", "true")
			return result.Text(), nil
		}
		lastErr = err
		log.Printf("[WARN] gemini attempt %d/%d failed after %v: %v", attempt, attempts, time.Since(start), err)
		if ctx.Err() != nil {
			break
		}
	}

	transaction.SetTag("success", "false")
	sentry.CaptureException(lastErr)
	if errors.Is(lastErr, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &TimeoutError{Budget: budget, Err: lastErr}
	}
	return "", &TransportError{Provider: providerNameGemini, Err: lastErr}
}
