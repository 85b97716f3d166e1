// Package blend parses compound genre strings and blends vocal, production,
// instrument, and rhythmic attributes across their components.
package blend

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/tonecraft/promptforge/internal/registry"
)

const (
	// maxCachedGuidance bounds the performance-guidance memo.
	maxCachedGuidance = 100

	// defaultMaxInstruments caps multi-genre instrument selections.
	defaultMaxInstruments = 3

	articulationChance = 0.5
)

// InvariantError reports a programmer error such as an empty constant pool
// handed to a random selector. It is raised via panic; user input can never
// trigger it.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

// Pick returns a uniformly random element of pool using r.
func Pick[T any](r *rand.Rand, pool []T) T {
	if len(pool) == 0 {
		panic(&InvariantError{Msg: "empty selection pool"})
	}
	return pool[r.Intn(len(pool))]
}

// VocalDescriptor is one sampled value per vocal sub-dimension.
type VocalDescriptor struct {
	Range     string
	Delivery  string
	Technique string
}

// ProductionDescriptor is one sampled value per production sub-dimension.
type ProductionDescriptor struct {
	Texture string
	Reverb  string
}

// Guidance is the full blended performance description for a (possibly
// compound) genre.
type Guidance struct {
	Genres        []string
	Vocal         VocalDescriptor
	Production    ProductionDescriptor
	Instruments   []string
	BPM           registry.BPMRange
	HarmonicStyle string
	TimeSignature string
	Polyrhythm    string
}

// Blender owns the guidance memo. Caching is an explicit opt-in at the call
// site, so deterministic tests can inject a seeded RNG without the cache
// interfering.
type Blender struct {
	mu    sync.Mutex
	cache map[string]*Guidance
	order []string
}

// NewBlender creates a blender with an empty guidance cache.
func NewBlender() *Blender {
	return &Blender{cache: make(map[string]*Guidance)}
}

var genreSplitter = regexp.MustCompile(`[\s/\-]+|&`)

// ParseGenreComponents splits a compound genre string on whitespace, hyphen,
// slash, "and", and "&", keeping only tokens that name registry genres. A
// string that is already a valid genre (for example "hip hop") is returned
// unsplit.
func ParseGenreComponents(genreString string) []string {
	trimmed := strings.TrimSpace(genreString)
	if trimmed == "" {
		return nil
	}
	if g, ok := registry.Lookup(trimmed); ok {
		return []string{g.ID}
	}

	seen := make(map[string]struct{})
	var components []string
	for _, tok := range genreSplitter.Split(trimmed, -1) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || tok == "and" {
			continue
		}
		g, ok := registry.Lookup(tok)
		if !ok {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		components = append(components, g.ID)
	}
	return components
}

// BlendedVocalDescriptor samples one vocal value per sub-dimension from the
// union of the component genres' pools. Blending is union-then-sample: the
// candidates of every genre are merged in first-seen order before a single
// pick, rather than rotating per genre.
func BlendedVocalDescriptor(genres []*registry.GenreDefinition, r *rand.Rand) VocalDescriptor {
	ranges := unionStrings(genres, registry.DefaultVocal.Ranges, func(g *registry.GenreDefinition) []string { return g.Vocal.Ranges })
	deliveries := unionStrings(genres, registry.DefaultVocal.Deliveries, func(g *registry.GenreDefinition) []string { return g.Vocal.Deliveries })
	techniques := unionStrings(genres, registry.DefaultVocal.Techniques, func(g *registry.GenreDefinition) []string { return g.Vocal.Techniques })

	return VocalDescriptor{
		Range:     Pick(r, ranges),
		Delivery:  Pick(r, deliveries),
		Technique: Pick(r, techniques),
	}
}

// BlendedProductionDescriptor samples one production value per sub-dimension
// from the union of the component genres' pools.
func BlendedProductionDescriptor(genres []*registry.GenreDefinition, r *rand.Rand) ProductionDescriptor {
	textures := unionStrings(genres, registry.DefaultProduction.Textures, func(g *registry.GenreDefinition) []string { return g.Production.Textures })
	reverbs := unionStrings(genres, registry.DefaultProduction.Reverbs, func(g *registry.GenreDefinition) []string { return g.Production.Reverbs })

	return ProductionDescriptor{
		Texture: Pick(r, textures),
		Reverb:  Pick(r, reverbs),
	}
}

// SelectInstrumentsForMultiGenre takes the first two instruments of each
// component genre, deduplicates, shuffles with r, and returns up to
// maxInstruments, each independently run through an articulation step.
func SelectInstrumentsForMultiGenre(genres []*registry.GenreDefinition, maxInstruments int, r *rand.Rand) []string {
	if maxInstruments <= 0 {
		maxInstruments = defaultMaxInstruments
	}

	seen := make(map[string]struct{})
	var candidates []string
	for _, g := range genres {
		for i, inst := range g.Instruments {
			if i >= 2 {
				break
			}
			if _, dup := seen[inst]; dup {
				continue
			}
			seen[inst] = struct{}{}
			candidates = append(candidates, inst)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxInstruments {
		candidates = candidates[:maxInstruments]
	}

	out := make([]string, len(candidates))
	for i, inst := range candidates {
		out[i] = articulate(inst, r)
	}
	return out
}

// articulate decorates a single instrument with an articulation word.
func articulate(instrument string, r *rand.Rand) string {
	if r.Float64() >= articulationChance {
		return instrument
	}
	return Pick(r, registry.Articulations) + " " + instrument
}

// BuildPerformanceGuidance builds guidance for a compound genre string.
// With useCache, results are memoized by the normalized genre string and
// bounded at 100 entries with oldest-insertion eviction. Callers injecting a
// seeded RNG for reproducibility should pass useCache=false.
func (b *Blender) BuildPerformanceGuidance(genreString string, r *rand.Rand, useCache bool) *Guidance {
	normalized := strings.ToLower(strings.TrimSpace(genreString))

	if useCache {
		b.mu.Lock()
		if g, ok := b.cache[normalized]; ok {
			b.mu.Unlock()
			return g
		}
		b.mu.Unlock()
	}

	guidance := BuildMultiGenreGuidance(ParseGenreComponents(genreString), r)
	if guidance == nil {
		return nil
	}

	if useCache {
		b.mu.Lock()
		if _, exists := b.cache[normalized]; !exists {
			b.cache[normalized] = guidance
			b.order = append(b.order, normalized)
			if len(b.order) > maxCachedGuidance {
				delete(b.cache, b.order[0])
				b.order = b.order[1:]
			}
		}
		b.mu.Unlock()
	}
	return guidance
}

// Clear empties the guidance cache. Intended for tests.
func (b *Blender) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache = make(map[string]*Guidance)
	b.order = nil
}

// BuildMultiGenreGuidance composes vocal, production, instrument, and
// rhythmic blends for the given components. Returns nil when no component
// names a known genre.
func BuildMultiGenreGuidance(components []string, r *rand.Rand) *Guidance {
	var defs []*registry.GenreDefinition
	var ids []string
	for _, c := range components {
		if g, ok := registry.Lookup(c); ok {
			defs = append(defs, g)
			ids = append(ids, g.ID)
		}
	}
	if len(defs) == 0 {
		return nil
	}

	return &Guidance{
		Genres:        ids,
		Vocal:         BlendedVocalDescriptor(defs, r),
		Production:    BlendedProductionDescriptor(defs, r),
		Instruments:   SelectInstrumentsForMultiGenre(defs, defaultMaxInstruments, r),
		BPM:           blendBPM(defs),
		HarmonicStyle: blendHarmonic(defs, r),
		TimeSignature: blendTimeSignature(defs, r),
		Polyrhythm:    blendPolyrhythm(defs, r),
	}
}

// blendBPM intersects the component ranges when they overlap, otherwise
// averages the bounds.
func blendBPM(defs []*registry.GenreDefinition) registry.BPMRange {
	lo, hi := defs[0].BPM.Min, defs[0].BPM.Max
	sumMin, sumMax := 0, 0
	for _, g := range defs {
		if g.BPM.Min > lo {
			lo = g.BPM.Min
		}
		if g.BPM.Max < hi {
			hi = g.BPM.Max
		}
		sumMin += g.BPM.Min
		sumMax += g.BPM.Max
	}
	if lo > hi {
		lo = sumMin / len(defs)
		hi = sumMax / len(defs)
	}
	return registry.BPMRange{Min: lo, Max: hi}
}

func blendHarmonic(defs []*registry.GenreDefinition, r *rand.Rand) string {
	pool := unionStrings(defs, nil, func(g *registry.GenreDefinition) []string { return g.HarmonicStyles })
	if len(pool) == 0 {
		return ""
	}
	return Pick(r, pool)
}

func blendTimeSignature(defs []*registry.GenreDefinition, r *rand.Rand) string {
	pool := unionStrings(defs, nil, func(g *registry.GenreDefinition) []string { return g.TimeSignatures })
	if len(pool) == 0 {
		return "4/4"
	}
	return Pick(r, pool)
}

func blendPolyrhythm(defs []*registry.GenreDefinition, r *rand.Rand) string {
	pool := unionStrings(defs, nil, func(g *registry.GenreDefinition) []string { return g.Polyrhythms })
	if len(pool) == 0 {
		return ""
	}
	return Pick(r, pool)
}

// unionStrings merges each genre's pool in first-seen order. With no genres
// it falls back to the supplied default pool.
func unionStrings(defs []*registry.GenreDefinition, defaults []string, pool func(*registry.GenreDefinition) []string) []string {
	if len(defs) == 0 {
		return defaults
	}
	if len(defs) == 1 {
		return pool(defs[0])
	}
	seen := make(map[string]struct{})
	var union []string
	for _, g := range defs {
		for _, v := range pool(g) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			union = append(union, v)
		}
	}
	return union
}
