package story

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonecraft/promptforge/internal/creativity"
	"github.com/tonecraft/promptforge/internal/llm"
	"github.com/tonecraft/promptforge/internal/thematic"
)

// MockProvider is a test implementation of the llm.Provider interface.
type MockProvider struct {
	invokeFunc func(ctx context.Context, req *llm.InvocationRequest) (string, error)
	calls      int
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Invoke(ctx context.Context, req *llm.InvocationRequest) (string, error) {
	m.calls++
	if m.invokeFunc != nil {
		return m.invokeFunc(ctx, req)
	}
	return "", nil
}

const sampleNarrative = "You step onto a rain-slicked street as a muted trumpet curls through the dark, the upright bass walking somewhere behind you."

func sampleStructuredPrompt() string {
	return strings.Join([]string{
		"Genre: jazz rock",
		"BPM: 100-140 BPM",
		"Mood: smoky, restless",
		"Instruments: upright bass, muted trumpet, overdriven electric guitar",
		"Style Tags: modal harmony, 4/4, smoky alto vocals",
		"Recording: warm analog tape, small jazz club",
	}, "\n")
}

func TestGenerateStoryNarrative_Success(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(_ context.Context, req *llm.InvocationRequest) (string, error) {
			assert.Equal(t, "low", req.ReasoningEffort)
			assert.Contains(t, req.UserPrompt, `"genre":"jazz rock"`)
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.GenerateStoryNarrative(context.Background(), &SongAttributes{Genre: "jazz rock", BPM: "100-140 BPM"})
	require.True(t, res.Success)
	assert.Equal(t, sampleNarrative, res.Narrative)
	assert.Empty(t, res.Err)
}

func TestGenerateStoryNarrative_ProviderError(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.GenerateStoryNarrative(context.Background(), &SongAttributes{Genre: "pop"})
	assert.False(t, res.Success)
	assert.Empty(t, res.Narrative)
	assert.NotEmpty(t, res.Err)
}

func TestGenerateStoryNarrative_StripsSectionMarkers(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return "[INTRO] You step into the night. [CHORUS] The band swells around you. [OUTRO]", nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.GenerateStoryNarrative(context.Background(), &SongAttributes{Genre: "pop"})
	require.True(t, res.Success)
	for _, marker := range []string{"[INTRO]", "[VERSE]", "[CHORUS]", "[BRIDGE]", "[OUTRO]"} {
		assert.NotContains(t, res.Narrative, marker)
	}
	assert.Contains(t, res.Narrative, "You step into the night.")
}

func TestGenerateStoryNarrativeWithTimeout_Exceeded(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(ctx context.Context, _ *llm.InvocationRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	done := make(chan *NarrativeResult, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		done <- g.GenerateStoryNarrativeWithTimeout(ctx, &SongAttributes{Genre: "pop"})
	}()

	select {
	case res := <-done:
		assert.False(t, res.Success)
		assert.Empty(t, res.Narrative)
		assert.NotEmpty(t, res.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed-out narrative call never returned")
	}
}

func TestTryStoryMode_DisabledReturnsNil(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	assert.Nil(t, g.TryStoryMode(context.Background(), sampleStructuredPrompt(), nil, false, true))
	assert.Equal(t, 0, mock.calls)
}

func TestTryStoryMode_NoProviderReturnsNil(t *testing.T) {
	g := NewGenerator(nil, "gpt-5-mini", nil, nil)
	assert.Nil(t, g.TryStoryMode(context.Background(), sampleStructuredPrompt(), nil, true, false))
}

func TestTryStoryMode_Success(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.TryStoryMode(context.Background(), sampleStructuredPrompt(), nil, true, false)
	require.NotNil(t, res)
	assert.False(t, res.StoryModeFallback)
	assert.Equal(t, sampleNarrative, res.Text)
}

func TestTryStoryMode_MaxModePrependsHeader(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.TryStoryMode(context.Background(), sampleStructuredPrompt(), nil, true, true)
	require.NotNil(t, res)
	assert.True(t, strings.HasPrefix(res.Text, creativity.MaxModeHeaderBlock()))
	assert.True(t, strings.HasSuffix(res.Text, sampleNarrative))
}

func TestGenerateStoryNarrative_StyleTagInstruction(t *testing.T) {
	var userPrompt string
	mock := &MockProvider{
		invokeFunc: func(_ context.Context, req *llm.InvocationRequest) (string, error) {
			userPrompt = req.UserPrompt
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	res := g.GenerateStoryNarrative(context.Background(), &SongAttributes{
		Genre:     "jazz rock",
		StyleTags: []string{"modal harmony", "smoky alto vocals"},
	})
	require.True(t, res.Success)
	assert.Contains(t, userPrompt, `"styleTags":["modal harmony","smoky alto vocals"]`)
	assert.Contains(t, userPrompt, "Suno V5 style tags")

	res = g.GenerateStoryNarrative(context.Background(), &SongAttributes{Genre: "jazz rock"})
	require.True(t, res.Success)
	assert.NotContains(t, userPrompt, "Suno V5")
}

func TestTryStoryMode_ThematicContextReachesNarrative(t *testing.T) {
	var userPrompt string
	mock := &MockProvider{
		invokeFunc: func(_ context.Context, req *llm.InvocationRequest) (string, error) {
			userPrompt = req.UserPrompt
			return sampleNarrative, nil
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	tctx := &thematic.ThematicContext{
		Themes:      []string{"rain", "neon", "distance"},
		Scene:       "a flooded metro platform after midnight",
		Era:         "1980s",
		EnergyLevel: "high",
	}
	res := g.TryStoryMode(context.Background(), sampleStructuredPrompt(), tctx, true, false)
	require.NotNil(t, res)
	assert.False(t, res.StoryModeFallback)
	assert.Contains(t, userPrompt, `"themes":["rain","neon","distance"]`)
	assert.Contains(t, userPrompt, `"scene":"a flooded metro platform after midnight"`)
	assert.Contains(t, userPrompt, `"era":"1980s"`)
	assert.Contains(t, userPrompt, `"energyLevel":"high"`)
}

func TestTryStoryMode_FailureFallsBackToStructured(t *testing.T) {
	mock := &MockProvider{
		invokeFunc: func(context.Context, *llm.InvocationRequest) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	g := NewGenerator(mock, "gpt-5-mini", nil, nil)

	structured := sampleStructuredPrompt()
	res := g.TryStoryMode(context.Background(), structured, nil, true, false)
	require.NotNil(t, res)
	assert.True(t, res.StoryModeFallback)
	assert.Equal(t, structured, res.Text)
}

func TestExtractStructuredDataForStory(t *testing.T) {
	attrs := ExtractStructuredDataForStory(sampleStructuredPrompt())

	assert.Equal(t, "jazz rock", attrs.Genre)
	assert.Equal(t, "100-140 BPM", attrs.BPM)
	assert.Equal(t, []string{"smoky", "restless"}, attrs.Moods)
	assert.Equal(t, []string{"upright bass", "muted trumpet", "overdriven electric guitar"}, attrs.Instruments)
	assert.Contains(t, attrs.StyleTags, "modal harmony")
	assert.Equal(t, "warm analog tape, small jazz club", attrs.RecordingContext)
}

func TestExtractStructuredDataForStory_MaxFormat(t *testing.T) {
	maxPrompt := strings.Join([]string{
		`genre: "synthwave"`,
		`bpm: "90-115 BPM"`,
		`mood: "nocturnal, wistful"`,
		`instruments: "analog synth, drum machine"`,
	}, "\n")

	attrs := ExtractStructuredDataForStory(maxPrompt)
	assert.Equal(t, "synthwave", attrs.Genre)
	assert.Equal(t, "90-115 BPM", attrs.BPM)
	assert.Equal(t, []string{"nocturnal", "wistful"}, attrs.Moods)
}

func TestExtractStructuredDataForStory_Defaults(t *testing.T) {
	attrs := ExtractStructuredDataForStory("just some prose with no labeled fields")
	assert.Equal(t, "pop", attrs.Genre)
	assert.Equal(t, "natural tempo", attrs.BPM)
	assert.Empty(t, attrs.Moods)
}

func TestExtractStructuredDataForStory_StripsBracketHeaders(t *testing.T) {
	withHeaders := creativity.MaxModeHeaderBlock() + sampleStructuredPrompt()
	attrs := ExtractStructuredDataForStory(withHeaders)
	assert.Equal(t, "jazz rock", attrs.Genre)
}
