package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordGeneration records one full prompt-generation request
func (m *SentryMetrics) RecordGeneration(ctx context.Context, tier string, storyMode, fallback bool, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "generation.request")
	defer span.Finish()

	span.SetTag("tier", tier)
	span.SetTag("story_mode", fmt.Sprintf("%t", storyMode))
	span.SetTag("story_fallback", fmt.Sprintf("%t", fallback))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("tier", tier)
	span.SetData("story_fallback", fallback)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Generation: %s", tier)
}

// RecordLLMInvocation records one model invocation through the provider boundary
func (m *SentryMetrics) RecordLLMInvocation(ctx context.Context, provider, model string, success bool, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "llm.invocation")
	defer span.Finish()

	span.SetTag("provider", provider)
	span.SetTag("model", model)
	span.SetTag("success", fmt.Sprintf("%t", success))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("provider", provider)
	span.SetData("model", model)

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("LLM Invocation: %s/%s", provider, model)
}

// RecordCacheAccess records a hit or miss on one of the bounded caches
func (m *SentryMetrics) RecordCacheAccess(cache string, hit bool) {
	if !m.enabled {
		return
	}

	ctx := context.Background()
	span := sentry.StartSpan(ctx, "cache.access")
	defer span.Finish()

	span.SetTag("cache", cache)
	span.SetTag("hit", fmt.Sprintf("%t", hit))

	span.SetData("cache", cache)
	span.SetData("hit", hit)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Cache Access: %s", cache)
}
