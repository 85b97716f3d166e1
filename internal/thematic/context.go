package thematic

// TempoAdjustment is a relative BPM nudge with an application curve.
type TempoAdjustment struct {
	Adjustment int    `json:"adjustment"`
	Curve      string `json:"curve"`
}

// MusicalReference points at a style the description evokes without naming
// an artist.
type MusicalReference struct {
	Style     string `json:"style"`
	Era       string `json:"era,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// ThematicContext is structured theme/mood/scene metadata distilled from a
// free-text description, optionally enriched with up to ten extra fields.
// Themes always holds exactly three entries.
type ThematicContext struct {
	Themes []string `json:"themes"`
	Moods  []string `json:"moods"`
	Scene  string   `json:"scene"`

	Era              string            `json:"era,omitempty"`
	Tempo            *TempoAdjustment  `json:"tempo,omitempty"`
	Intent           string            `json:"intent,omitempty"`
	MusicalReference *MusicalReference `json:"musicalReference,omitempty"`
	NarrativeArc     string            `json:"narrativeArc,omitempty"`
	CulturalContext  string            `json:"culturalContext,omitempty"`
	VocalCharacter   string            `json:"vocalCharacter,omitempty"`
	EnergyLevel      string            `json:"energyLevel,omitempty"`
	SpatialHint      string            `json:"spatialHint,omitempty"`
}

// NormalizeThemes forces themes to exactly three entries: shorter inputs are
// padded by repeating the first theme, longer inputs are truncated. An empty
// input pads with empty strings so the length invariant holds even then.
func NormalizeThemes(themes []string) []string {
	out := append([]string(nil), themes...)
	if len(out) == 0 {
		out = append(out, "")
	}
	for len(out) < 3 {
		out = append(out, out[0])
	}
	return out[:3]
}
