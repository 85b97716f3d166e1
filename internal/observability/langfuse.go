// Package observability traces LLM generations to Langfuse. Tracing is
// optional: a disabled tracer is a no-op, so callers never branch on
// configuration.
package observability

import (
	"context"
	"log"
	"time"

	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// Tracer wraps the Langfuse client. The zero value is a disabled tracer.
type Tracer struct {
	client  *langfuse.Langfuse
	enabled bool
}

// NewTracer initializes a tracer. The henomis SDK reads its keys from
// LANGFUSE_PUBLIC_KEY / LANGFUSE_SECRET_KEY environment variables.
func NewTracer(ctx context.Context, enabled bool) *Tracer {
	if !enabled {
		log.Println("[INFO] langfuse tracing disabled")
		return &Tracer{}
	}
	return &Tracer{
		client:  langfuse.New(ctx),
		enabled: true,
	}
}

// IsEnabled reports whether the tracer sends data anywhere.
func (t *Tracer) IsEnabled() bool {
	return t != nil && t.enabled && t.client != nil
}

// StartTrace opens a trace for one generation request.
func (t *Tracer) StartTrace(ctx context.Context, name string, metadata map[string]interface{}) *Trace {
	if !t.IsEnabled() {
		return &Trace{}
	}
	trace, err := t.client.Trace(&model.Trace{
		Name:     name,
		Metadata: metadata,
	})
	if err != nil {
		log.Printf("[WARN] failed to create langfuse trace: %v", err)
		return &Trace{}
	}
	return &Trace{trace: trace, client: t.client, ctx: ctx, enabled: true}
}

// Trace is one generation request's trace.
type Trace struct {
	trace   *model.Trace
	client  *langfuse.Langfuse
	ctx     context.Context
	enabled bool
}

// Generation opens a generation span within the trace, meant to wrap a single
// LLM invocation.
func (tr *Trace) Generation(name, modelName string, input interface{}) *Generation {
	if !tr.enabled {
		return &Generation{}
	}
	now := time.Now()
	gen, err := tr.client.Generation(&model.Generation{
		TraceID:   tr.trace.ID,
		Name:      name,
		Model:     modelName,
		Input:     input,
		StartTime: &now,
	}, nil)
	if err != nil {
		log.Printf("[WARN] failed to create langfuse generation: %v", err)
		return &Generation{}
	}
	return &Generation{generation: gen, client: tr.client, enabled: true}
}

// Finish flushes the trace.
func (tr *Trace) Finish() {
	if tr.enabled && tr.client != nil {
		tr.client.Flush(tr.ctx)
	}
}

// Generation is a single LLM invocation span.
type Generation struct {
	generation *model.Generation
	client     *langfuse.Langfuse
	enabled    bool
}

// End records the outcome and closes the span. A non-empty errMsg marks the
// span as an error observation.
func (g *Generation) End(output interface{}, errMsg string) {
	if !g.enabled || g.generation == nil {
		return
	}
	now := time.Now()
	g.generation.EndTime = &now
	g.generation.Output = output
	if errMsg != "" {
		g.generation.Level = model.ObservationLevel("ERROR")
		g.generation.Metadata = map[string]interface{}{"error": errMsg}
	}
	if _, err := g.client.GenerationEnd(g.generation); err != nil {
		log.Printf("[WARN] failed to end langfuse generation: %v", err)
	}
}
