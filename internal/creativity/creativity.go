// Package creativity maps a 0-100 creativity slider to a discrete tier and
// assembles full deterministic prompts from the tier's genre, mood, and title
// rules.
package creativity

import (
	"math/rand"
	"strings"

	"github.com/tonecraft/promptforge/internal/blend"
	"github.com/tonecraft/promptforge/internal/registry"
)

// Tier selection probabilities.
const (
	safeCuratedChance     = 0.70
	normalBlendChance     = 0.40
	adventurousTripleOdds = 0.30
	normalTitleSuffixOdds = 0.30
)

// MapSliderToLevel maps a 0-100 slider value to its creativity tier. The
// thresholds are inclusive upper bounds with no gaps, so the mapping is total.
func MapSliderToLevel(value int) registry.Tier {
	switch {
	case value <= 10:
		return registry.TierLow
	case value <= 30:
		return registry.TierSafe
	case value <= 60:
		return registry.TierNormal
	case value <= 85:
		return registry.TierAdventurous
	default:
		return registry.TierHigh
	}
}

// Boost is a fully assembled deterministic prompt.
type Boost struct {
	Tier        registry.Tier
	Genres      []string
	Genre       string
	Moods       []string
	Title       string
	Instruments []string
	Guidance    *blend.Guidance
	Prompt      string
}

// Engine assembles creative boosts. Every randomness consumer takes an
// explicit *rand.Rand; nothing reads a hidden default source.
type Engine struct{}

// NewEngine creates a template engine.
func NewEngine() *Engine {
	return &Engine{}
}

// BuildDeterministicCreativeBoost assembles a complete prompt for the given
// slider level. With the same seeds, flags, and RNG state the output is
// byte-for-byte reproducible.
func (e *Engine) BuildDeterministicCreativeBoost(level int, seeds []string, maxMode, wordlessVocals bool, r *rand.Rand) *Boost {
	tier := MapSliderToLevel(level)

	genres := SelectGenresForTier(tier, seeds, r)
	moods := SelectMoods(tier, "", r)
	title := BuildTitle(tier, r)

	guidance := blend.BuildMultiGenreGuidance(genres, r)
	if guidance == nil {
		// Seeds may name unknown genres; fall back to the tier's own pool.
		genres = SelectGenresForTier(tier, nil, r)
		guidance = blend.BuildMultiGenreGuidance(genres, r)
	}

	instruments := append([]string(nil), guidance.Instruments...)
	if wordlessVocals {
		instruments = append(instruments, "wordless vocals")
	}

	genreLabel := strings.Join(genres, " ")
	boost := &Boost{
		Tier:        tier,
		Genres:      genres,
		Genre:       genreLabel,
		Moods:       moods,
		Title:       title,
		Instruments: instruments,
		Guidance:    guidance,
	}
	boost.Prompt = FormatPrompt(boost, maxMode)
	return boost
}

// SelectGenresForTier applies the tier's blending rule. When seeds are
// supplied the rule is reused but sourced from the seeds (truncated to the
// tier's max-genre count); a non-blending tier with seeds returns the first
// seed.
func SelectGenresForTier(tier registry.Tier, seeds []string, r *rand.Rand) []string {
	pool := registry.TierPools[tier]

	if len(seeds) > 0 {
		return genresFromSeeds(tier, pool, seeds, r)
	}

	switch tier {
	case registry.TierLow:
		return []string{blend.Pick(r, pool.Genres)}
	case registry.TierSafe:
		if r.Float64() < safeCuratedChance {
			combo := blend.Pick(r, registry.CuratedCombos)
			return append([]string(nil), combo...)
		}
		return []string{blend.Pick(r, pool.Genres)}
	case registry.TierNormal:
		if r.Float64() < normalBlendChance {
			return sampleWithoutReplacement(pool.Genres, 2, r)
		}
		return []string{blend.Pick(r, pool.Genres)}
	case registry.TierAdventurous:
		n := 2
		if r.Float64() < adventurousTripleOdds {
			n = 3
		}
		return sampleWithoutReplacement(pool.Genres, n, r)
	case registry.TierHigh:
		return []string{
			blend.Pick(r, registry.ExperimentalBases),
			blend.Pick(r, registry.FusionGenres),
		}
	default:
		return []string{blend.Pick(r, registry.TierPools[registry.TierNormal].Genres)}
	}
}

func genresFromSeeds(tier registry.Tier, pool registry.CreativityPool, seeds []string, r *rand.Rand) []string {
	if !pool.AllowBlending {
		return seeds[:1]
	}

	// Reuse the tier's blend-or-not decision, but draw from the seeds.
	blendCount := pool.MaxGenres
	switch tier {
	case registry.TierSafe:
		if r.Float64() >= safeCuratedChance {
			blendCount = 1
		}
	case registry.TierNormal:
		if r.Float64() >= normalBlendChance {
			blendCount = 1
		}
	case registry.TierAdventurous:
		blendCount = 2
		if r.Float64() < adventurousTripleOdds {
			blendCount = 3
		}
	}

	if blendCount > pool.MaxGenres {
		blendCount = pool.MaxGenres
	}
	if blendCount > len(seeds) {
		blendCount = len(seeds)
	}
	return append([]string(nil), seeds[:blendCount]...)
}

// SelectMoods samples moods for the tier. A non-empty category overrides the
// tier pool: one mood is drawn from that category, falling back to the tier
// pool when the category yields nothing.
func SelectMoods(tier registry.Tier, category string, r *rand.Rand) []string {
	if category != "" {
		if pool, ok := registry.MoodCategories[strings.ToLower(category)]; ok && len(pool) > 0 {
			return []string{blend.Pick(r, pool)}
		}
	}

	pool := registry.TierMoods[tier]
	count := 3
	if tier == registry.TierLow || tier == registry.TierSafe {
		count = 2
	}
	return sampleWithoutReplacement(pool, count, r)
}

// BuildTitle scales title complexity with the tier: low and safe get
// "Adjective Noun", normal adds an action suffix 30% of the time, and the top
// tiers always carry one.
func BuildTitle(tier registry.Tier, r *rand.Rand) string {
	title := blend.Pick(r, registry.TitleAdjectives) + " " + blend.Pick(r, registry.TitleNouns)

	withSuffix := false
	switch tier {
	case registry.TierNormal:
		withSuffix = r.Float64() < normalTitleSuffixOdds
	case registry.TierAdventurous, registry.TierHigh:
		withSuffix = true
	}
	if withSuffix {
		title += " " + blend.Pick(r, registry.TitleActions)
	}
	return title
}

func sampleWithoutReplacement(pool []string, n int, r *rand.Rand) []string {
	if len(pool) == 0 {
		panic(&blend.InvariantError{Msg: "empty selection pool"})
	}
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]string(nil), pool...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
