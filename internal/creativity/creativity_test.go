package creativity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonecraft/promptforge/internal/registry"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestMapSliderToLevel(t *testing.T) {
	tests := []struct {
		value int
		want  registry.Tier
	}{
		{0, registry.TierLow},
		{10, registry.TierLow},
		{11, registry.TierSafe},
		{30, registry.TierSafe},
		{31, registry.TierNormal},
		{50, registry.TierNormal},
		{60, registry.TierNormal},
		{61, registry.TierAdventurous},
		{85, registry.TierAdventurous},
		{86, registry.TierHigh},
		{100, registry.TierHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapSliderToLevel(tt.value), "slider %d", tt.value)
	}
}

func TestBuildDeterministicCreativeBoost_Reproducible(t *testing.T) {
	e := NewEngine()

	first := e.BuildDeterministicCreativeBoost(5, nil, false, false, testRand(42))
	second := e.BuildDeterministicCreativeBoost(5, nil, false, false, testRand(42))

	assert.Equal(t, first.Prompt, second.Prompt)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Genres, second.Genres)
	assert.Equal(t, first.Moods, second.Moods)
	assert.Equal(t, first.Instruments, second.Instruments)
}

func TestBuildDeterministicCreativeBoost_LowTier(t *testing.T) {
	e := NewEngine()

	b := e.BuildDeterministicCreativeBoost(5, nil, false, false, testRand(1))
	require.NotNil(t, b)

	assert.Equal(t, registry.TierLow, b.Tier)
	assert.Len(t, b.Genres, 1)
	assert.Contains(t, registry.TierPools[registry.TierLow].Genres, b.Genres[0])
	assert.Len(t, b.Moods, 2)
	assert.NotEmpty(t, b.Title)
	require.NotNil(t, b.Guidance)
	assert.NotEmpty(t, b.Prompt)
}

func TestBuildDeterministicCreativeBoost_SeedGenres(t *testing.T) {
	e := NewEngine()

	b := e.BuildDeterministicCreativeBoost(5, []string{"jazz", "rock"}, false, false, testRand(1))
	assert.Equal(t, []string{"jazz"}, b.Genres, "non-blending tier keeps only the first seed")

	b = e.BuildDeterministicCreativeBoost(100, []string{"jazz", "rock"}, false, false, testRand(1))
	assert.NotEmpty(t, b.Genres)
	for _, g := range b.Genres {
		assert.Contains(t, []string{"jazz", "rock"}, g)
	}
}

func TestBuildDeterministicCreativeBoost_UnknownSeedsFallBack(t *testing.T) {
	e := NewEngine()

	b := e.BuildDeterministicCreativeBoost(50, []string{"polka"}, false, false, testRand(1))
	require.NotNil(t, b.Guidance)
	assert.NotEmpty(t, b.Genres)
	assert.NotContains(t, b.Genres, "polka")
}

func TestBuildDeterministicCreativeBoost_WordlessVocals(t *testing.T) {
	e := NewEngine()

	b := e.BuildDeterministicCreativeBoost(50, nil, false, true, testRand(1))
	assert.Equal(t, "wordless vocals", b.Instruments[len(b.Instruments)-1])
}

func TestSelectGenresForTier_HighCrossesPools(t *testing.T) {
	got := SelectGenresForTier(registry.TierHigh, nil, testRand(9))
	require.Len(t, got, 2)
	assert.Contains(t, registry.ExperimentalBases, got[0])
	assert.Contains(t, registry.FusionGenres, got[1])
}

func TestSelectMoods(t *testing.T) {
	t.Run("tier pool counts", func(t *testing.T) {
		assert.Len(t, SelectMoods(registry.TierLow, "", testRand(1)), 2)
		assert.Len(t, SelectMoods(registry.TierSafe, "", testRand(1)), 2)
		assert.Len(t, SelectMoods(registry.TierNormal, "", testRand(1)), 3)
		assert.Len(t, SelectMoods(registry.TierHigh, "", testRand(1)), 3)
	})

	t.Run("category override", func(t *testing.T) {
		got := SelectMoods(registry.TierNormal, "melancholy", testRand(1))
		require.Len(t, got, 1)
		assert.Contains(t, registry.MoodCategories["melancholy"], got[0])
	})

	t.Run("unknown category falls back to tier pool", func(t *testing.T) {
		got := SelectMoods(registry.TierNormal, "nonexistent", testRand(1))
		assert.Len(t, got, 3)
	})

	t.Run("no duplicates", func(t *testing.T) {
		got := SelectMoods(registry.TierHigh, "", testRand(4))
		seen := map[string]bool{}
		for _, m := range got {
			assert.False(t, seen[m])
			seen[m] = true
		}
	})
}

func TestBuildTitle(t *testing.T) {
	low := BuildTitle(registry.TierLow, testRand(1))
	assert.Len(t, strings.Fields(low), 2)

	high := BuildTitle(registry.TierHigh, testRand(1))
	assert.Greater(t, len(strings.Fields(high)), 2, "top tiers always carry an action suffix")
}

func TestFormatPrompt_Standard(t *testing.T) {
	e := NewEngine()
	b := e.BuildDeterministicCreativeBoost(50, []string{"jazz"}, false, false, testRand(1))

	for _, label := range []string{"Genre: ", "BPM: ", "Mood: ", "Instruments: ", "Style Tags: ", "Recording: "} {
		assert.Contains(t, b.Prompt, label)
	}
	assert.NotContains(t, b.Prompt, `genre: "`)
}

func TestFormatPrompt_Max(t *testing.T) {
	e := NewEngine()
	b := e.BuildDeterministicCreativeBoost(50, []string{"jazz"}, true, false, testRand(1))

	for _, label := range []string{`genre: "`, `bpm: "`, `mood: "`, `instruments: "`, `style tags: "`, `recording: "`} {
		assert.Contains(t, b.Prompt, label)
	}
	assert.NotContains(t, b.Prompt, "Genre: ")
}

func TestMaxModeHeaderBlock(t *testing.T) {
	block := MaxModeHeaderBlock()

	lines := []string{
		"[Is_MAX_MODE: MAX](MAX)",
		"[QUALITY: MAX](MAX)",
		"[REALISM: MAX](MAX)",
		"[REAL_INSTRUMENTS: MAX](MAX)",
	}
	assert.Equal(t, strings.Join(lines, "\n\n")+"\n\n", block)
}
