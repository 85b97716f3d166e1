package registry

// Tier is one of the five discrete creativity levels.
type Tier string

const (
	TierLow         Tier = "low"
	TierSafe        Tier = "safe"
	TierNormal      Tier = "normal"
	TierAdventurous Tier = "adventurous"
	TierHigh        Tier = "high"
)

// CreativityPool holds the per-tier genre selection rules.
type CreativityPool struct {
	Genres        []string
	AllowBlending bool
	MaxGenres     int
}

// TierPools maps each creativity tier to its genre pool and blending rules.
var TierPools = map[Tier]CreativityPool{
	TierLow: {
		Genres:        []string{"pop", "rock", "folk", "country", "soul"},
		AllowBlending: false,
		MaxGenres:     1,
	},
	TierSafe: {
		Genres:        []string{"pop", "rock", "folk", "country", "soul", "blues", "jazz", "house"},
		AllowBlending: true,
		MaxGenres:     2,
	},
	TierNormal: {
		Genres:        []string{"jazz", "rock", "soul", "funk", "electronic", "hip hop", "synthwave", "disco", "reggae"},
		AllowBlending: true,
		MaxGenres:     2,
	},
	TierAdventurous: {
		Genres:        []string{"jazz", "techno", "metal", "ambient", "funk", "classical", "reggae", "lofi", "electronic"},
		AllowBlending: true,
		MaxGenres:     3,
	},
	TierHigh: {
		// The high tier draws from ExperimentalBases and FusionGenres instead.
		Genres:        nil,
		AllowBlending: true,
		MaxGenres:     2,
	},
}

// CuratedCombos are pre-vetted multi-genre pairings for the safe tier.
var CuratedCombos = [][]string{
	{"jazz", "soul"},
	{"folk", "country"},
	{"pop", "rock"},
	{"blues", "rock"},
	{"soul", "house"},
	{"jazz", "blues"},
	{"pop", "house"},
}

// ExperimentalBases and FusionGenres are the two disjoint pools the high tier
// fuses across. A base never appears as a fusion partner and vice versa.
var (
	ExperimentalBases = []string{"techno", "ambient", "metal", "classical"}
	FusionGenres      = []string{"jazz", "reggae", "funk", "lofi", "disco"}
)

// TierMoods maps each tier to its mood pool, used when no mood category
// override is supplied.
var TierMoods = map[Tier][]string{
	TierLow:         {"warm", "uplifting", "gentle", "sentimental"},
	TierSafe:        {"nostalgic", "bittersweet", "confident", "tender", "joyful"},
	TierNormal:      {"hypnotic", "smoky", "restless", "triumphant", "sultry", "wistful"},
	TierAdventurous: {"ominous", "euphoric", "glacial", "feverish", "weightless", "defiant"},
	TierHigh:        {"alien", "vertiginous", "incandescent", "fractured", "transcendent"},
}

// MoodCategories groups moods by caller-selectable category for the
// mood-override path.
var MoodCategories = map[string][]string{
	"melancholy": {"mournful", "aching", "wistful", "rainy", "bittersweet"},
	"energetic":  {"driving", "euphoric", "relentless", "celebratory", "anthemic"},
	"calm":       {"meditative", "weightless", "serene", "cozy", "easy"},
	"dark":       {"ominous", "nocturnal", "dread", "smoldering", "ferocious"},
	"romantic":   {"yearning", "velvet", "tender", "flirtatious", "sultry"},
}

// Title word pools. Low and safe tiers use adjective+noun; higher tiers
// append an action suffix.
var (
	TitleAdjectives = []string{
		"Midnight", "Golden", "Electric", "Silent", "Crimson", "Hollow",
		"Velvet", "Distant", "Burning", "Paper", "Neon", "Wild",
	}
	TitleNouns = []string{
		"River", "Engine", "Garden", "Signal", "Harbor", "Mirror",
		"Season", "Horizon", "Letter", "Satellite", "Avenue", "Ember",
	}
	TitleActions = []string{
		"Coming Home", "Falling Slow", "Running Out of Light", "Waking the Tide",
		"Chasing the Static", "Learning to Drift",
	}
)

// Articulations decorate individual instruments in multi-genre selections.
var Articulations = []string{
	"staccato", "legato", "syncopated", "muted", "soaring",
	"driving", "sparse", "cascading",
}
