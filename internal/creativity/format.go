package creativity

import (
	"fmt"
	"strings"
)

// maxHeaderLines is the literal MAX-mode header block consumed by the
// downstream generation target. Order matters.
var maxHeaderLines = []string{
	"[Is_MAX_MODE: MAX](MAX)",
	"[QUALITY: MAX](MAX)",
	"[REALISM: MAX](MAX)",
	"[REAL_INSTRUMENTS: MAX](MAX)",
}

// MaxModeHeaderBlock returns the MAX header lines, each followed by a blank
// line, ready to be prepended to narrative output.
func MaxModeHeaderBlock() string {
	return strings.Join(maxHeaderLines, "\n\n") + "\n\n"
}

// FormatPrompt renders a boost in either the standard line-labeled format or
// the MAX quoted-field format. The two formats are mutually exclusive.
func FormatPrompt(b *Boost, maxMode bool) string {
	bpm := fmt.Sprintf("%d-%d BPM", b.Guidance.BPM.Min, b.Guidance.BPM.Max)
	moods := strings.Join(b.Moods, ", ")
	instruments := strings.Join(b.Instruments, ", ")
	styleTags := strings.Join(styleTags(b), ", ")
	recording := recordingContext(b)

	if maxMode {
		var sb strings.Builder
		fmt.Fprintf(&sb, "genre: %q\n", b.Genre)
		fmt.Fprintf(&sb, "bpm: %q\n", bpm)
		fmt.Fprintf(&sb, "mood: %q\n", moods)
		fmt.Fprintf(&sb, "instruments: %q\n", instruments)
		fmt.Fprintf(&sb, "style tags: %q\n", styleTags)
		fmt.Fprintf(&sb, "recording: %q\n", recording)
		return sb.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Genre: %s\n", b.Genre)
	fmt.Fprintf(&sb, "BPM: %s\n", bpm)
	fmt.Fprintf(&sb, "Mood: %s\n", moods)
	fmt.Fprintf(&sb, "Instruments: %s\n", instruments)
	fmt.Fprintf(&sb, "Style Tags: %s\n", styleTags)
	fmt.Fprintf(&sb, "Recording: %s\n", recording)
	return sb.String()
}

func styleTags(b *Boost) []string {
	g := b.Guidance
	tags := []string{
		g.HarmonicStyle,
		g.TimeSignature,
		g.Vocal.Range + " vocals",
		g.Vocal.Delivery + " delivery",
		g.Vocal.Technique,
	}
	if g.Polyrhythm != "" {
		tags = append(tags, g.Polyrhythm)
	}
	out := tags[:0]
	for _, t := range tags {
		if strings.TrimSpace(t) != "" && t != " vocals" && t != " delivery" {
			out = append(out, t)
		}
	}
	return out
}

func recordingContext(b *Boost) string {
	g := b.Guidance
	return g.Production.Texture + ", " + g.Production.Reverb
}
