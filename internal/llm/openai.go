package llm

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const providerNameOpenAI = "openai"

// OpenAIProvider invokes models through OpenAI's Responses API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{client: &client}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Invoke sends the prompt and returns the raw text output.
func (p *OpenAIProvider) Invoke(ctx context.Context, request *InvocationRequest) (string, error) {
	transaction := sentry.StartTransaction(ctx, "openai.invoke")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	budget := request.timeout()
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	params := responses.ResponseNewParams{
		Model: request.Model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(request.UserPrompt, responses.EasyInputMessageRoleUser),
			},
		},
		Instructions: openai.String(request.SystemPrompt),
	}
	if request.ReasoningEffort != "" {
		params.Reasoning = shared.ReasoningParam{
			Effort: shared.ReasoningEffort(request.ReasoningEffort),
		}
	}

	var lastErr error
	attempts := request.retries() + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		start := time.Now()
		resp, err := p.client.Responses.New(ctx, params)
		if err == nil {
			transaction.SetTag("success", "true")
			return resp.OutputText(), nil
		}
		lastErr = err
		log.Printf("[WARN] openai attempt %d/%d failed after %v: %v", attempt, attempts, time.Since(start), err)
		if ctx.Err() != nil {
			break
		}
	}

	transaction.SetTag("success", "false")
	sentry.CaptureException(lastErr)
	if errors.Is(lastErr, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &TimeoutError{Budget: budget, Err: lastErr}
	}
	return "", &TransportError{Provider: providerNameOpenAI, Err: lastErr}
}
