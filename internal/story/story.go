// Package story generates narrative prose prompts from structured song
// attributes. It sits behind the same fallback contract as the rest of the
// LLM boundary: a failed narrative attempt degrades to the structured prompt
// and never surfaces as an error.
package story

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tonecraft/promptforge/internal/creativity"
	"github.com/tonecraft/promptforge/internal/llm"
	"github.com/tonecraft/promptforge/internal/logger"
	"github.com/tonecraft/promptforge/internal/metrics"
	"github.com/tonecraft/promptforge/internal/observability"
	"github.com/tonecraft/promptforge/internal/prompt"
	"github.com/tonecraft/promptforge/internal/thematic"
)

// storyTimeout caps one narrative attempt end to end, retries included.
const storyTimeout = 8000 * time.Millisecond

// SongAttributes is the structured input to narrative generation, normally
// recovered from an already-formatted structured prompt.
type SongAttributes struct {
	Genre            string   `json:"genre"`
	BPM              string   `json:"bpm"`
	Key              string   `json:"key,omitempty"`
	Moods            []string `json:"moods,omitempty"`
	Instruments      []string `json:"instruments,omitempty"`
	StyleTags        []string `json:"styleTags,omitempty"`
	RecordingContext string   `json:"recordingContext,omitempty"`
	Themes           []string `json:"themes,omitempty"`
	Scene            string   `json:"scene,omitempty"`
	Era              string   `json:"era,omitempty"`
	EnergyLevel      string   `json:"energyLevel,omitempty"`
}

// NarrativeResult is the outcome of one narrative attempt. Failure is a
// value, not an error: Success false plus a diagnostic message.
type NarrativeResult struct {
	Narrative string
	Success   bool
	Err       string
}

// Result is what TryStoryMode hands back to the orchestrator.
type Result struct {
	Text              string
	StoryModeFallback bool
}

// Generator turns song attributes into narrative prose through an LLM
// provider.
type Generator struct {
	provider     llm.Provider
	model        string
	tracer       *observability.Tracer
	metrics      *metrics.SentryMetrics
	systemPrompt string
}

// NewGenerator creates a narrative generator. Provider may be nil, in which
// case TryStoryMode reports story mode unavailable. Metrics may be nil.
func NewGenerator(provider llm.Provider, model string, tracer *observability.Tracer, sm *metrics.SentryMetrics) *Generator {
	return &Generator{
		provider:     provider,
		model:        model,
		tracer:       tracer,
		metrics:      sm,
		systemPrompt: prompt.NewPromptLoader().GetStoryNarrativePrompt(),
	}
}

// GenerateStoryNarrative runs one narrative attempt against the provider.
// The ctx deadline is the only time bound it observes.
func (g *Generator) GenerateStoryNarrative(ctx context.Context, attrs *SongAttributes) *NarrativeResult {
	if g.provider == nil {
		return &NarrativeResult{Err: "no LLM provider configured"}
	}

	payload, err := json.Marshal(attrs)
	if err != nil {
		return &NarrativeResult{Err: fmt.Sprintf("failed to encode song attributes: %v", err)}
	}
	userPrompt := fmt.Sprintf("Write the narrative prompt for this song:\n%s", payload)
	if len(attrs.StyleTags) > 0 {
		userPrompt += "\n\nEmbed the Suno V5 style tags naturally in the prose."
	}

	trace := g.tracer.StartTrace(ctx, "story.narrative", map[string]interface{}{
		"genre": attrs.Genre,
	})
	defer trace.Finish()
	gen := trace.Generation("generate_story_narrative", g.model, attrs)

	started := time.Now()
	raw, err := g.provider.Invoke(ctx, &llm.InvocationRequest{
		Model:           g.model,
		SystemPrompt:    g.systemPrompt,
		UserPrompt:      userPrompt,
		ReasoningEffort: "low",
	})
	if g.metrics != nil {
		g.metrics.RecordLLMInvocation(ctx, g.provider.Name(), g.model, err == nil, time.Since(started))
	}
	if err != nil {
		gen.End(nil, err.Error())
		return &NarrativeResult{Err: err.Error()}
	}

	narrative := sanitizeNarrative(raw)
	if narrative == "" {
		gen.End(raw, "empty narrative")
		return &NarrativeResult{Err: "model returned an empty narrative"}
	}

	gen.End(narrative, "")
	return &NarrativeResult{Narrative: narrative, Success: true}
}

// GenerateStoryNarrativeWithTimeout wraps GenerateStoryNarrative in the
// narrative time budget. Timeouts come back as a failed result.
func (g *Generator) GenerateStoryNarrativeWithTimeout(ctx context.Context, attrs *SongAttributes) *NarrativeResult {
	ctx, cancel := context.WithTimeout(ctx, storyTimeout)
	defer cancel()

	res := g.GenerateStoryNarrative(ctx, attrs)
	if !res.Success && ctx.Err() == context.DeadlineExceeded {
		res.Err = fmt.Sprintf("story narrative timed out after %s", storyTimeout)
	}
	return res
}

// TryStoryMode attempts the narrative rendering of an already-built
// structured prompt, enriched with the thematic context when one was
// extracted. It returns nil when story mode cannot run at all, a narrative
// Result on success, and the structured prompt flagged as a fallback when
// the narrative attempt fails.
func (g *Generator) TryStoryMode(ctx context.Context, structuredPrompt string, tctx *thematic.ThematicContext, storyMode, maxMode bool) *Result {
	if !storyMode {
		return nil
	}
	if g == nil || g.provider == nil {
		logger.Warn("story mode requested without an LLM provider", nil)
		return nil
	}

	attrs := ExtractStructuredDataForStory(structuredPrompt)
	if tctx != nil {
		attrs.Themes = tctx.Themes
		attrs.Scene = tctx.Scene
		attrs.Era = tctx.Era
		attrs.EnergyLevel = tctx.EnergyLevel
	}
	res := g.GenerateStoryNarrativeWithTimeout(ctx, attrs)
	if !res.Success {
		logger.Warn("story narrative failed, keeping structured prompt", logger.Fields{
			"error": res.Err,
		})
		return &Result{Text: structuredPrompt, StoryModeFallback: true}
	}

	text := res.Narrative
	if maxMode {
		text = creativity.MaxModeHeaderBlock() + text
	}
	return &Result{Text: text}
}

var (
	bracketHeaderRe = regexp.MustCompile(`(?m)^\[[^\]]+\](\([^)]*\))?\s*$`)
	sectionMarkerRe = regexp.MustCompile(`\[(?:INTRO|VERSE|CHORUS|BRIDGE|OUTRO)[^\]]*\]`)
	fieldLineRe     = regexp.MustCompile(`(?im)^\s*"?([a-z ]+?)"?\s*:\s*"?(.+?)"?\s*,?\s*$`)
)

// sanitizeNarrative strips markdown fences and any section markers the model
// emitted despite instructions, then collapses the result to a single block.
func sanitizeNarrative(raw string) string {
	out := strings.TrimSpace(raw)
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	out = sectionMarkerRe.ReplaceAllString(out, "")
	out = strings.Join(strings.Fields(out), " ")
	return strings.TrimSpace(out)
}

// ExtractStructuredDataForStory recovers song attributes from a formatted
// structured prompt, both the standard and MAX renderings. Unparseable input
// falls back to a neutral pop prompt at a natural tempo.
func ExtractStructuredDataForStory(structuredPrompt string) *SongAttributes {
	// Drop the MAX header block and any other bracket-only lines first.
	body := bracketHeaderRe.ReplaceAllString(structuredPrompt, "")

	attrs := &SongAttributes{}
	for _, m := range fieldLineRe.FindAllStringSubmatch(body, -1) {
		field := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		if value == "" {
			continue
		}
		switch field {
		case "genre":
			attrs.Genre = value
		case "bpm":
			attrs.BPM = value
		case "key":
			attrs.Key = value
		case "mood", "moods":
			attrs.Moods = splitList(value)
		case "instruments":
			attrs.Instruments = splitList(value)
		case "style tags", "styletags":
			attrs.StyleTags = splitList(value)
		case "recording", "recordingcontext":
			attrs.RecordingContext = value
		}
	}

	if attrs.Genre == "" {
		attrs.Genre = "pop"
	}
	if attrs.BPM == "" {
		attrs.BPM = "natural tempo"
	}
	return attrs
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `"`); p != "" {
			out = append(out, p)
		}
	}
	return out
}
