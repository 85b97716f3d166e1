package embedded

import (
	_ "embed"
)

// Embed the LLM system prompt files
//
//go:embed data/thematic_extraction_prompt.txt
var ThematicExtractionPromptTxt []byte

//go:embed data/story_narrative_prompt.txt
var StoryNarrativePromptTxt []byte
