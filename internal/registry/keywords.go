package registry

// RegistryEntry maps a trigger keyword to a single output value. Entries are
// ordered: registry matching returns the value of the first keyword found.
type RegistryEntry struct {
	Keyword string
	Value   string
}

// MappingEntry maps a trigger keyword to a list of output words. Mapping
// matching unions the words of every keyword found.
type MappingEntry struct {
	Keyword string
	Words   []string
}

// TempoHint is a relative tempo nudge extracted from free text.
// Adjustment is in BPM, negative for slower; Curve names how the adjustment
// should be applied over the piece.
type TempoHint struct {
	Adjustment int
	Curve      string
}

// TempoEntry maps a trigger keyword to a tempo hint.
type TempoEntry struct {
	Keyword string
	Hint    TempoHint
}

// EraRegistry maps era-evoking words to a decade label.
var EraRegistry = []RegistryEntry{
	{Keyword: "vintage", Value: "70s"},
	{Keyword: "retro", Value: "80s"},
	{Keyword: "old school", Value: "90s"},
	{Keyword: "classic", Value: "60s"},
	{Keyword: "timeless", Value: "50s"},
	{Keyword: "futuristic", Value: "2080s"},
	{Keyword: "modern", Value: "2020s"},
	{Keyword: "contemporary", Value: "2020s"},
}

// TempoRegistry maps tempo-evoking words to BPM adjustments.
var TempoRegistry = []TempoEntry{
	{Keyword: "slow", Hint: TempoHint{Adjustment: -20, Curve: "steady"}},
	{Keyword: "ballad", Hint: TempoHint{Adjustment: -25, Curve: "steady"}},
	{Keyword: "laid-back", Hint: TempoHint{Adjustment: -10, Curve: "relaxed"}},
	{Keyword: "mellow", Hint: TempoHint{Adjustment: -12, Curve: "relaxed"}},
	{Keyword: "driving", Hint: TempoHint{Adjustment: 15, Curve: "building"}},
	{Keyword: "fast", Hint: TempoHint{Adjustment: 20, Curve: "steady"}},
	{Keyword: "frantic", Hint: TempoHint{Adjustment: 35, Curve: "accelerating"}},
	{Keyword: "uptempo", Hint: TempoHint{Adjustment: 12, Curve: "steady"}},
}

// IntentRegistry maps purpose words to a named listening intent.
var IntentRegistry = []RegistryEntry{
	{Keyword: "dance", Value: "dancefloor"},
	{Keyword: "party", Value: "dancefloor"},
	{Keyword: "study", Value: "background focus"},
	{Keyword: "focus", Value: "background focus"},
	{Keyword: "sleep", Value: "wind-down"},
	{Keyword: "relax", Value: "wind-down"},
	{Keyword: "workout", Value: "high energy"},
	{Keyword: "drive", Value: "road trip"},
	{Keyword: "wedding", Value: "celebration"},
}

// ThemeMappings expand evocative words in a description into theme vocabulary.
var ThemeMappings = []MappingEntry{
	{Keyword: "love", Words: []string{"longing", "devotion", "heartbeat"}},
	{Keyword: "lost", Words: []string{"absence", "memory", "distance"}},
	{Keyword: "heartbreak", Words: []string{"aftermath", "letting go", "empty rooms"}},
	{Keyword: "city", Words: []string{"neon streets", "late trains", "strangers"}},
	{Keyword: "ocean", Words: []string{"tide", "salt air", "horizon"}},
	{Keyword: "night", Words: []string{"moonlight", "insomnia", "quiet hours"}},
	{Keyword: "summer", Words: []string{"heat haze", "open windows", "long days"}},
	{Keyword: "winter", Words: []string{"frost", "stillness", "short light"}},
	{Keyword: "road", Words: []string{"highway", "leaving", "white lines"}},
	{Keyword: "home", Words: []string{"belonging", "kitchen light", "return"}},
	{Keyword: "freedom", Words: []string{"open sky", "escape", "no maps"}},
	{Keyword: "war", Words: []string{"ruins", "letters home", "survival"}},
	{Keyword: "dream", Words: []string{"half-sleep", "floating", "unreal color"}},
	{Keyword: "rain", Words: []string{"wet asphalt", "grey windows", "petrichor"}},
}

// MoodKeywords are mood words matched directly in descriptions.
var MoodKeywords = []string{
	"happy", "sad", "melancholy", "euphoric", "angry", "peaceful",
	"nostalgic", "hopeful", "dark", "dreamy", "tense", "playful",
	"romantic", "lonely", "defiant", "serene",
}
