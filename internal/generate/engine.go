// Package generate is the outer orchestrator: it turns a free-text request
// into a finished prompt, layering the LLM-backed enrichment over the
// deterministic pipeline and degrading silently when the LLM path fails.
package generate

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tonecraft/promptforge/internal/blend"
	"github.com/tonecraft/promptforge/internal/config"
	"github.com/tonecraft/promptforge/internal/creativity"
	"github.com/tonecraft/promptforge/internal/llm"
	"github.com/tonecraft/promptforge/internal/logger"
	"github.com/tonecraft/promptforge/internal/match"
	"github.com/tonecraft/promptforge/internal/metrics"
	"github.com/tonecraft/promptforge/internal/observability"
	"github.com/tonecraft/promptforge/internal/story"
	"github.com/tonecraft/promptforge/internal/thematic"
)

// ErrEmptyOutput is the one error the orchestrator surfaces to callers. Every
// modeled failure inside the pipeline degrades to deterministic output; an
// empty prompt after all fallbacks is not part of that designed path.
var ErrEmptyOutput = errors.New("generation produced empty output after all fallbacks")

// minBPM keeps tempo adjustments from pushing a range into nonsense.
const minBPM = 40

// Request is one generation request.
type Request struct {
	Description  string
	Creativity   int
	SeedGenres   []string
	MoodCategory string
	MaxMode      bool
	StoryMode    bool
	// WordlessVocals appends a wordless-vocal instrument cue.
	WordlessVocals bool
	// Seed drives the injected RNG. Zero means derive from the clock.
	Seed int64
}

// Debug captures how a result was assembled.
type Debug struct {
	RequestID    string
	Tier         string
	Genres       []string
	Era          string
	Intent       string
	UsedThematic bool
}

// Result is a finished generation.
type Result struct {
	Text              string
	Title             string
	Lyrics            string
	StoryModeFallback bool
	Debug             *Debug
}

// Engine owns the full pipeline. Construct one per process; the caches it
// carries are instance state, so parallel test engines never share entries.
type Engine struct {
	matcher   *match.Matcher
	templates *creativity.Engine
	extractor *thematic.Extractor
	stories   *story.Generator
	tracer    *observability.Tracer
	metrics   *metrics.SentryMetrics
}

// New wires an engine from configuration. A nil or LLM-less config yields a
// purely deterministic engine; Generate still works.
func New(ctx context.Context, cfg *config.Config) *Engine {
	e := &Engine{
		matcher:   match.NewMatcher(),
		templates: creativity.NewEngine(),
	}

	if cfg == nil {
		return e
	}

	if cfg.SentryDSN != "" {
		e.metrics = metrics.NewSentryMetrics()
	}

	e.tracer = observability.NewTracer(ctx, cfg.LangfuseEnabled)

	if cfg.HasLLM() {
		factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey, cfg.OllamaEndpoint)
		if p, err := factory.GetProvider(ctx, cfg.ExtractionModel, ""); err != nil {
			logger.Warn("no extraction provider available, thematic enrichment disabled", logger.Fields{"error": err.Error()})
		} else {
			e.extractor = thematic.NewExtractor(p, cfg.ExtractionModel, e.tracer, e.metrics)
		}
		if p, err := factory.GetProvider(ctx, cfg.NarrativeModel, ""); err != nil {
			logger.Warn("no narrative provider available, story mode disabled", logger.Fields{"error": err.Error()})
		} else {
			e.stories = story.NewGenerator(p, cfg.NarrativeModel, e.tracer, e.metrics)
		}
	}
	return e
}

// NewWithParts wires an engine from explicit components. Intended for tests.
func NewWithParts(matcher *match.Matcher, extractor *thematic.Extractor, stories *story.Generator) *Engine {
	return &Engine{
		matcher:   matcher,
		templates: creativity.NewEngine(),
		extractor: extractor,
		stories:   stories,
	}
}

// Generate runs the full pipeline. The only error it returns is
// ErrEmptyOutput; LLM failures degrade to the deterministic path and are
// visible solely through Result.StoryModeFallback and the debug trace.
func (e *Engine) Generate(ctx context.Context, req *Request) (*Result, error) {
	started := time.Now()
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	requestID := uuid.New().String()
	description := strings.TrimSpace(req.Description)

	// Deterministic extraction always runs; the LLM path only enriches it.
	det := e.matcher.ExtractAllKeywords(description)
	var tctx *thematic.ThematicContext
	if e.extractor != nil {
		tctx = e.extractor.Extract(ctx, description)
	}

	seeds := req.SeedGenres
	if len(seeds) == 0 {
		seeds = blend.ParseGenreComponents(description)
	}

	boost := e.templates.BuildDeterministicCreativeBoost(req.Creativity, seeds, req.MaxMode, req.WordlessVocals, r)

	if moods := e.resolveMoods(boost, req.MoodCategory, tctx, det, r); len(moods) > 0 {
		boost.Moods = moods
	}
	applyTempoHint(boost, tctx, det)
	boost.Prompt = creativity.FormatPrompt(boost, req.MaxMode)

	res := &Result{
		Text:  boost.Prompt,
		Title: boost.Title,
		Debug: &Debug{
			RequestID:    requestID,
			Tier:         string(boost.Tier),
			Genres:       boost.Genres,
			Era:          det.Era,
			Intent:       det.Intent,
			UsedThematic: tctx != nil,
		},
	}

	if req.StoryMode && e.stories != nil {
		if sr := e.stories.TryStoryMode(ctx, boost.Prompt, tctx, true, req.MaxMode); sr != nil {
			res.Text = sr.Text
			res.StoryModeFallback = sr.StoryModeFallback
		}
	}

	if strings.TrimSpace(res.Text) == "" {
		logger.Error("empty output after all fallbacks", ErrEmptyOutput, logger.Fields{"request_id": requestID})
		return nil, ErrEmptyOutput
	}

	if e.metrics != nil {
		e.metrics.RecordGeneration(ctx, string(boost.Tier), req.StoryMode, res.StoryModeFallback, time.Since(started))
	}
	return res, nil
}

// resolveMoods picks the mood source by priority: explicit category, then
// LLM thematic moods, then deterministic keyword moods, then the tier's own
// selection already on the boost.
func (e *Engine) resolveMoods(boost *creativity.Boost, category string, tctx *thematic.ThematicContext, det *match.Extraction, r *rand.Rand) []string {
	if category != "" {
		return creativity.SelectMoods(boost.Tier, category, r)
	}
	if tctx != nil && len(tctx.Moods) > 0 {
		return tctx.Moods
	}
	if len(det.Moods) > 0 {
		return det.Moods
	}
	return nil
}

// applyTempoHint shifts the guidance BPM range by a matched tempo keyword.
// Thematic tempo wins over the deterministic match.
func applyTempoHint(boost *creativity.Boost, tctx *thematic.ThematicContext, det *match.Extraction) {
	var adjustment int
	switch {
	case tctx != nil && tctx.Tempo != nil:
		adjustment = tctx.Tempo.Adjustment
	case det.Tempo != nil:
		adjustment = det.Tempo.Adjustment
	default:
		return
	}

	bpm := &boost.Guidance.BPM
	bpm.Min += adjustment
	bpm.Max += adjustment
	if bpm.Min < minBPM {
		bpm.Min = minBPM
	}
	if bpm.Max < bpm.Min {
		bpm.Max = bpm.Min
	}
}
