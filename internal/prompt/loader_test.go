package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetThematicExtractionPrompt(t *testing.T) {
	p := NewPromptLoader().GetThematicExtractionPrompt()

	require.NotEmpty(t, p)
	assert.Contains(t, p, "strict JSON")
	assert.Contains(t, p, `"themes"`)
	assert.Contains(t, p, "Never name artists")
	assert.False(t, strings.HasSuffix(p, "\n"), "loader trims trailing whitespace")
}

func TestGetStoryNarrativePrompt(t *testing.T) {
	p := NewPromptLoader().GetStoryNarrativePrompt()

	require.NotEmpty(t, p)
	assert.Contains(t, p, "second-person prose")
	assert.Contains(t, p, "[CHORUS]")
	assert.Contains(t, p, "No artist names")
}
