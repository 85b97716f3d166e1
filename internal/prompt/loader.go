// Package prompt loads the LLM system prompts from the embedded data files,
// so prompt wording can be edited without touching the callers.
package prompt

import (
	"strings"

	"github.com/tonecraft/promptforge/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetThematicExtractionPrompt loads the thematic-context extraction prompt
func (l *Loader) GetThematicExtractionPrompt() string {
	return strings.TrimSpace(string(embedded.ThematicExtractionPromptTxt))
}

// GetStoryNarrativePrompt loads the story-narrative transformation prompt
func (l *Loader) GetStoryNarrativePrompt() string {
	return strings.TrimSpace(string(embedded.StoryNarrativePromptTxt))
}
