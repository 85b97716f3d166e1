package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	providerNameOllama   = "ollama"
	defaultOllamaBaseURL = "http://localhost:11434"
)

// OllamaProvider invokes a local Ollama server.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaProvider creates an Ollama provider. Pass an empty baseURL to use
// the local default; per-request endpoints override it.
func NewOllamaProvider(baseURL string) *OllamaProvider {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	return &OllamaProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return providerNameOllama
}

// ollamaGenerateRequest is the /api/generate request body.
type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

// ollamaGenerateResponse is the /api/generate response body.
type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Available checks whether the server is reachable.
func (p *OllamaProvider) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Invoke sends the prompt and returns the raw text output.
func (p *OllamaProvider) Invoke(ctx context.Context, request *InvocationRequest) (string, error) {
	budget := request.timeout()
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	baseURL := p.baseURL
	if request.OllamaEndpoint != "" {
		baseURL = strings.TrimRight(request.OllamaEndpoint, "/")
	}

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  request.Model,
		Prompt: request.UserPrompt,
		System: request.SystemPrompt,
		Stream: false,
	})
	if err != nil {
		return "", &TransportError{Provider: providerNameOllama, Err: fmt.Errorf("marshal: %w", err)}
	}

	var lastErr error
	attempts := request.retries() + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := p.generate(ctx, baseURL, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	if errors.Is(lastErr, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &TimeoutError{Budget: budget, Err: lastErr}
	}
	return "", &TransportError{Provider: providerNameOllama, Err: lastErr}
}

func (p *OllamaProvider) generate(ctx context.Context, baseURL string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return strings.TrimSpace(result.Response), nil
}
