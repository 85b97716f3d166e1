// Package thematic extracts structured theme/mood/scene metadata from
// free-text descriptions through the LLM boundary, with a bounded cache and
// a deterministic-fallback contract: every failure surfaces as a nil context,
// never as an error.
package thematic

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/tonecraft/promptforge/internal/llm"
	"github.com/tonecraft/promptforge/internal/logger"
	"github.com/tonecraft/promptforge/internal/metrics"
	"github.com/tonecraft/promptforge/internal/observability"
	"github.com/tonecraft/promptforge/internal/prompt"
)

const (
	// minDescriptionLength is the short-description bypass: anything shorter
	// is not worth an LLM round trip.
	minDescriptionLength = 10

	// maxCachedContexts bounds the context cache.
	maxCachedContexts = 10
)

// Extractor owns the thematic-context cache and the LLM boundary call.
type Extractor struct {
	provider     llm.Provider
	model        string
	tracer       *observability.Tracer
	metrics      *metrics.SentryMetrics
	systemPrompt string

	mu    sync.Mutex
	cache map[string]*ThematicContext
	order []string
}

// NewExtractor creates an extractor. A nil provider disables extraction:
// Extract always returns nil and callers take the deterministic path.
// Metrics may be nil.
func NewExtractor(provider llm.Provider, model string, tracer *observability.Tracer, sm *metrics.SentryMetrics) *Extractor {
	return &Extractor{
		provider:     provider,
		model:        model,
		tracer:       tracer,
		metrics:      sm,
		systemPrompt: prompt.NewPromptLoader().GetThematicExtractionPrompt(),
		cache:        make(map[string]*ThematicContext),
	}
}

// Extract distills the description into a ThematicContext. It returns nil for
// short descriptions, on any LLM or validation failure, and when no provider
// is configured; the caller falls back to deterministic extraction. It never
// returns an error.
func (e *Extractor) Extract(ctx context.Context, description string) *ThematicContext {
	trimmed := strings.TrimSpace(description)
	if len(trimmed) < minDescriptionLength {
		return nil
	}
	if e.provider == nil {
		return nil
	}

	key := strings.ToLower(trimmed)
	if cached, ok := e.lookup(key); ok {
		if e.metrics != nil {
			e.metrics.RecordCacheAccess("thematic_context", true)
		}
		return cached
	}
	if e.metrics != nil {
		e.metrics.RecordCacheAccess("thematic_context", false)
	}

	trace := e.tracer.StartTrace(ctx, "thematic.extract", map[string]interface{}{
		"description_len": len(trimmed),
	})
	defer trace.Finish()
	gen := trace.Generation("extract_thematic_context", e.model, trimmed)

	started := time.Now()
	raw, err := e.provider.Invoke(ctx, &llm.InvocationRequest{
		Model:           e.model,
		SystemPrompt:    e.systemPrompt,
		UserPrompt:      trimmed,
		ReasoningEffort: "minimal",
	})
	if e.metrics != nil {
		e.metrics.RecordLLMInvocation(ctx, e.provider.Name(), e.model, err == nil, time.Since(started))
	}
	if err != nil {
		gen.End(nil, err.Error())
		logger.Warn("thematic extraction failed, falling back to deterministic path", logger.Fields{
			"model": e.model,
			"error": err.Error(),
		})
		return nil
	}

	parsed, err := parseContext(raw)
	if err != nil {
		gen.End(raw, err.Error())
		logger.Warn("thematic extraction returned unusable JSON", logger.Fields{
			"model": e.model,
			"error": err.Error(),
		})
		return nil
	}

	gen.End(parsed, "")
	e.store(key, parsed)
	return parsed
}

// parseContext strips markdown fences, parses, validates, and normalizes a
// raw model response.
func parseContext(raw string) (*ThematicContext, error) {
	cleaned := StripCodeFences(raw)
	if cleaned == "" {
		return nil, &llm.ValidationError{Reason: "empty response"}
	}

	var parsed ThematicContext
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &llm.ValidationError{Reason: "not valid JSON: " + err.Error()}
	}

	if len(parsed.Themes) == 0 {
		return nil, &llm.ValidationError{Reason: "missing themes"}
	}
	if len(parsed.Moods) < 2 || len(parsed.Moods) > 3 {
		return nil, &llm.ValidationError{Reason: "moods must contain 2-3 entries"}
	}
	if strings.TrimSpace(parsed.Scene) == "" {
		return nil, &llm.ValidationError{Reason: "missing scene"}
	}

	parsed.Themes = NormalizeThemes(parsed.Themes)
	return &parsed, nil
}

// StripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	if i := strings.IndexByte(out, '\n'); i >= 0 && !strings.HasPrefix(out, "{") {
		// Drop a language tag such as "json" on the fence line.
		out = out[i+1:]
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

func (e *Extractor) lookup(key string) (*ThematicContext, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.cache[key]
	return c, ok
}

func (e *Extractor) store(key string, c *ThematicContext) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.cache[key]; exists {
		// Two concurrent misses for the same key may both land here; the
		// values are equivalent, so last write wins.
		e.cache[key] = c
		return
	}
	e.cache[key] = c
	e.order = append(e.order, key)
	if len(e.order) > maxCachedContexts {
		delete(e.cache, e.order[0])
		e.order = e.order[1:]
	}
}

// CachedCount returns the number of cached contexts. Intended for tests.
func (e *Extractor) CachedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache)
}

// Clear empties the cache. Intended for tests.
func (e *Extractor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*ThematicContext)
	e.order = nil
}
