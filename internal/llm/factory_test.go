package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvider_ByName(t *testing.T) {
	f := NewProviderFactory("sk-test", "", "http://localhost:11434")

	p, err := f.GetProvider(context.Background(), "anything", "openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	p, err = f.GetProvider(context.Background(), "anything", "ollama")
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())

	_, err = f.GetProvider(context.Background(), "anything", "gemini")
	assert.Error(t, err, "gemini requested without a key")

	_, err = f.GetProvider(context.Background(), "anything", "bedrock")
	assert.Error(t, err)
}

func TestGetProvider_ByModel(t *testing.T) {
	tests := []struct {
		name           string
		model          string
		ollamaEndpoint string
		wantProvider   string
	}{
		{
			name:         "gpt prefix routes to openai",
			model:        "gpt-5-mini",
			wantProvider: "openai",
		},
		{
			name:         "case insensitive model prefix",
			model:        "GPT-5",
			wantProvider: "openai",
		},
		{
			name:           "unknown model prefers ollama when configured",
			model:          "llama3.2",
			ollamaEndpoint: "http://localhost:11434",
			wantProvider:   "ollama",
		},
		{
			name:         "unknown model defaults to openai",
			model:        "llama3.2",
			wantProvider: "openai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewProviderFactory("sk-test", "", tt.ollamaEndpoint)
			p, err := f.GetProvider(context.Background(), tt.model, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, p.Name())
		})
	}
}

func TestGetProvider_MissingOpenAIKey(t *testing.T) {
	f := NewProviderFactory("", "", "")
	_, err := f.GetProvider(context.Background(), "gpt-5-mini", "")
	assert.Error(t, err)
}

func TestInvocationRequestDefaults(t *testing.T) {
	req := &InvocationRequest{}
	assert.Equal(t, DefaultTimeout, req.timeout())
	assert.Equal(t, DefaultMaxRetries, req.retries())

	req = &InvocationRequest{MaxRetries: -1}
	assert.Equal(t, 0, req.retries())
}
