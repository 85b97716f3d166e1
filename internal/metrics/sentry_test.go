package metrics

import (
	"context"
	"testing"
	"time"
)

// The recorders must be safe to call whether or not Sentry was initialized,
// since the CLI runs without a DSN in local use.
func TestSentryMetrics_RecordsWithoutInit(t *testing.T) {
	m := NewSentryMetrics()
	ctx := context.Background()

	m.RecordGeneration(ctx, "medium", true, false, 120*time.Millisecond)
	m.RecordLLMInvocation(ctx, "openai", "gpt-5-mini", true, 450*time.Millisecond)
	m.RecordLLMInvocation(ctx, "ollama", "llama3.2", false, 8*time.Second)
	m.RecordCacheAccess("thematic_context", true)
	m.RecordCacheAccess("thematic_context", false)
}
