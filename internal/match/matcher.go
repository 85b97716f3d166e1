// Package match implements whole-word keyword extraction over free-text
// descriptions, with a per-text result cache and a global compiled-pattern
// cache.
package match

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"sync"

	"github.com/tonecraft/promptforge/internal/registry"
)

const (
	// maxCachedTexts bounds the result cache by distinct source texts.
	maxCachedTexts = 200
)

// MatchOptions controls a MatchKeywords call. The zero value means
// "no limit, caching on".
type MatchOptions struct {
	// Limit truncates the result to at most Limit matches. Zero means no limit.
	Limit int
	// NoCache bypasses the result cache for this call.
	NoCache bool
}

// Matcher owns the pattern and result caches. Construct one per engine
// instance; there is no package-level state, so parallel test instances
// cannot leak into each other.
type Matcher struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
	results  map[string][]string
	order    []string
	texts    map[string]struct{}
}

// NewMatcher creates a matcher with empty caches.
func NewMatcher() *Matcher {
	return &Matcher{
		patterns: make(map[string]*regexp.Regexp),
		results:  make(map[string][]string),
		texts:    make(map[string]struct{}),
	}
}

// Matches reports whether keyword occurs in text as a case-insensitive whole
// word. "jazzman" does not match "jazz".
func (m *Matcher) Matches(text, keyword string) bool {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(keyword) == "" {
		return false
	}
	return m.pattern(keyword).MatchString(text)
}

// MatchKeywords returns the ordered subset of keywords found in text,
// preserving the input keyword order and truncating at opts.Limit.
func (m *Matcher) MatchKeywords(text string, keywords []string, opts MatchOptions) []string {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return nil
	}

	key := cacheKey(text, keywords)
	if !opts.NoCache {
		if cached, ok := m.lookup(key); ok {
			return truncate(cached, opts.Limit)
		}
	}

	var found []string
	for _, kw := range keywords {
		if m.pattern(kw).MatchString(text) {
			found = append(found, kw)
		}
	}

	if !opts.NoCache {
		m.store(key, text, found)
	}
	return truncate(found, opts.Limit)
}

// MatchRegistry returns the value of the first registry keyword (in entry
// order) found in text.
func (m *Matcher) MatchRegistry(text string, entries []registry.RegistryEntry) (string, bool) {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Keyword
	}
	hits := m.MatchKeywords(text, keys, MatchOptions{Limit: 1})
	if len(hits) == 0 {
		return "", false
	}
	for _, e := range entries {
		if e.Keyword == hits[0] {
			return e.Value, true
		}
	}
	return "", false
}

// MatchTempo returns the tempo hint of the first tempo keyword found in text.
func (m *Matcher) MatchTempo(text string, entries []registry.TempoEntry) (registry.TempoHint, bool) {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Keyword
	}
	hits := m.MatchKeywords(text, keys, MatchOptions{Limit: 1})
	if len(hits) == 0 {
		return registry.TempoHint{}, false
	}
	for _, e := range entries {
		if e.Keyword == hits[0] {
			return e.Hint, true
		}
	}
	return registry.TempoHint{}, false
}

// MatchMapping returns the deduplicated union of output words for every
// mapping keyword found in text, in first-seen order.
func (m *Matcher) MatchMapping(text string, entries []registry.MappingEntry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Keyword
	}
	hits := m.MatchKeywords(text, keys, MatchOptions{})
	if len(hits) == 0 {
		return nil
	}

	byKeyword := make(map[string][]string, len(entries))
	for _, e := range entries {
		byKeyword[e.Keyword] = e.Words
	}

	seen := make(map[string]struct{})
	var union []string
	for _, kw := range hits {
		for _, w := range byKeyword[kw] {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			union = append(union, w)
		}
	}
	return union
}

// Extraction is the deterministic category extraction over a description.
type Extraction struct {
	Moods  []string
	Themes []string
	Era    string
	Tempo  *registry.TempoHint
	Intent string
}

// ExtractAllKeywords runs every category extractor over the text.
func (m *Matcher) ExtractAllKeywords(text string) *Extraction {
	ex := &Extraction{
		Moods:  m.MatchKeywords(text, registry.MoodKeywords, MatchOptions{Limit: 3}),
		Themes: m.MatchMapping(text, registry.ThemeMappings),
	}
	if era, ok := m.MatchRegistry(text, registry.EraRegistry); ok {
		ex.Era = era
	}
	if hint, ok := m.MatchTempo(text, registry.TempoRegistry); ok {
		ex.Tempo = &hint
	}
	if intent, ok := m.MatchRegistry(text, registry.IntentRegistry); ok {
		ex.Intent = intent
	}
	return ex
}

// Clear empties the result cache. Intended for tests.
func (m *Matcher) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string][]string)
	m.order = nil
	m.texts = make(map[string]struct{})
}

// CachedTexts returns the number of distinct source texts currently cached.
func (m *Matcher) CachedTexts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.texts)
}

func (m *Matcher) pattern(keyword string) *regexp.Regexp {
	m.mu.Lock()
	defer m.mu.Unlock()
	if re, ok := m.patterns[keyword]; ok {
		return re
	}
	// Keyword vocabularies are small and static, so this cache is unbounded.
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	m.patterns[keyword] = re
	return re
}

func (m *Matcher) lookup(key string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.results[key]
	return res, ok
}

func (m *Matcher) store(key, text string, result []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.results[key]; exists {
		m.results[key] = result
		return
	}
	m.results[key] = result
	m.order = append(m.order, key)
	m.texts[text] = struct{}{}

	if len(m.texts) <= maxCachedTexts {
		return
	}
	// Evict the oldest half by insertion order. This is bounded FIFO, not
	// true LRU; the vocabulary of repeated texts is small enough that
	// recency tracking is not worth the bookkeeping.
	half := len(m.order) / 2
	for _, old := range m.order[:half] {
		delete(m.results, old)
	}
	m.order = append([]string(nil), m.order[half:]...)
	m.texts = make(map[string]struct{}, len(m.order))
	for _, k := range m.order {
		m.texts[keyText(k)] = struct{}{}
	}
}

// cacheKey derives the result-cache key from the source text and a full
// content hash of the keyword set. Hashing every element (rather than
// sampling a prefix) keeps two same-length keyword sets from colliding.
func cacheKey(text string, keywords []string) string {
	h := fnv.New64a()
	for _, kw := range keywords {
		h.Write([]byte(kw))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%s\x00%d:%x", text, len(keywords), h.Sum64())
}

func keyText(key string) string {
	if i := strings.IndexByte(key, 0); i >= 0 {
		return key[:i]
	}
	return key
}

func truncate(in []string, limit int) []string {
	if limit <= 0 || len(in) <= limit {
		return in
	}
	return in[:limit]
}
