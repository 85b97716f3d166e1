package registry

import "strings"

// BPMRange is an inclusive tempo range in beats per minute.
type BPMRange struct {
	Min int
	Max int
}

// VocalStylePool holds the vocal descriptor candidates for a genre,
// split by sub-dimension.
type VocalStylePool struct {
	Ranges     []string
	Deliveries []string
	Techniques []string
}

// ProductionStylePool holds the production descriptor candidates for a genre.
type ProductionStylePool struct {
	Textures []string
	Reverbs  []string
}

// GenreDefinition is the static attribute catalog for a single genre.
// Definitions are loaded once at process start and never mutated; consumers
// hold references, never copies.
type GenreDefinition struct {
	ID             string
	Moods          []string
	Instruments    []string
	Vocal          VocalStylePool
	Production     ProductionStylePool
	BPM            BPMRange
	HarmonicStyles []string
	TimeSignatures []string
	Polyrhythms    []string
}

// DefaultVocal is used when no genre component is recognized.
var DefaultVocal = VocalStylePool{
	Ranges:     []string{"mid-range", "tenor", "alto"},
	Deliveries: []string{"smooth", "expressive", "understated"},
	Techniques: []string{"clean sustain", "gentle vibrato", "conversational phrasing"},
}

// DefaultProduction is used when no genre component is recognized.
var DefaultProduction = ProductionStylePool{
	Textures: []string{"polished", "warm analog", "clean digital"},
	Reverbs:  []string{"subtle room", "medium hall", "tight plate"},
}

// Genres is the static genre catalog, keyed by lowercase genre ID.
var Genres = map[string]*GenreDefinition{
	"jazz": {
		ID:          "jazz",
		Moods:       []string{"smoky", "sophisticated", "late-night", "wistful", "playful"},
		Instruments: []string{"upright bass", "brushed drums", "grand piano", "tenor saxophone", "hollow-body guitar", "muted trumpet"},
		Vocal: VocalStylePool{
			Ranges:     []string{"smoky alto", "warm baritone", "agile tenor"},
			Deliveries: []string{"behind-the-beat", "conversational", "crooning"},
			Techniques: []string{"scat runs", "melismatic turns", "breathy phrase endings"},
		},
		Production: ProductionStylePool{
			Textures: []string{"warm analog tape", "intimate club recording", "vintage ribbon mic"},
			Reverbs:  []string{"small jazz club", "short plate", "natural room"},
		},
		BPM:            BPMRange{Min: 80, Max: 140},
		HarmonicStyles: []string{"extended ii-V-I voicings", "modal interchange", "chromatic substitutions"},
		TimeSignatures: []string{"4/4 swing", "3/4", "5/4"},
		Polyrhythms:    []string{"3-over-4 ride patterns", "displaced comping accents"},
	},
	"rock": {
		ID:          "rock",
		Moods:       []string{"driving", "defiant", "anthemic", "raw", "restless"},
		Instruments: []string{"overdriven electric guitar", "electric bass", "full drum kit", "hammond organ", "tambourine"},
		Vocal: VocalStylePool{
			Ranges:     []string{"gritty tenor", "powerful belt", "raspy mid-range"},
			Deliveries: []string{"urgent", "shouted hooks", "half-spoken verses"},
			Techniques: []string{"rasp on sustained notes", "octave jumps", "call-and-response ad-libs"},
		},
		Production: ProductionStylePool{
			Textures: []string{"live room drums", "saturated tape", "wall-of-amps density"},
			Reverbs:  []string{"big room", "slapback", "dry and up-front"},
		},
		BPM:            BPMRange{Min: 100, Max: 160},
		HarmonicStyles: []string{"power-chord riffing", "pentatonic lead lines", "mixolydian vamps"},
		TimeSignatures: []string{"4/4", "6/8"},
		Polyrhythms:    []string{},
	},
	"pop": {
		ID:          "pop",
		Moods:       []string{"uplifting", "bittersweet", "sparkling", "confident", "dreamy"},
		Instruments: []string{"synth pads", "electronic drums", "clean electric guitar", "sub bass", "layered keys"},
		Vocal: VocalStylePool{
			Ranges:     []string{"bright soprano", "radio-ready tenor", "smooth mezzo"},
			Deliveries: []string{"hooky and precise", "breathy verses into belted chorus", "double-tracked"},
			Techniques: []string{"stacked harmonies", "light vocal runs", "whispered pre-chorus"},
		},
		Production: ProductionStylePool{
			Textures: []string{"glossy and compressed", "radio sheen", "punchy modern low end"},
			Reverbs:  []string{"short bright plate", "vocal hall", "tight ambience"},
		},
		BPM:            BPMRange{Min: 95, Max: 125},
		HarmonicStyles: []string{"four-chord loops", "relative-minor lifts", "borrowed iv cadences"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{},
	},
	"blues": {
		ID:          "blues",
		Moods:       []string{"mournful", "weary", "defiant", "smoldering"},
		Instruments: []string{"slide guitar", "harmonica", "upright piano", "shuffle drums", "bass guitar"},
		Vocal: VocalStylePool{
			Ranges:     []string{"weathered baritone", "wailing tenor", "husky alto"},
			Deliveries: []string{"lagging the beat", "moaned phrases", "testifying"},
			Techniques: []string{"blue-note bends", "growled emphasis", "hummed turnarounds"},
		},
		Production: ProductionStylePool{
			Textures: []string{"roadhouse live feel", "dusty mono warmth", "tube amp breakup"},
			Reverbs:  []string{"small room", "spring reverb", "dry porch recording"},
		},
		BPM:            BPMRange{Min: 60, Max: 110},
		HarmonicStyles: []string{"twelve-bar form", "dominant-seventh vamps", "minor blues changes"},
		TimeSignatures: []string{"4/4 shuffle", "12/8"},
		Polyrhythms:    []string{},
	},
	"folk": {
		ID:          "folk",
		Moods:       []string{"earthy", "nostalgic", "tender", "wandering"},
		Instruments: []string{"fingerpicked acoustic guitar", "fiddle", "banjo", "double bass", "harmonica"},
		Vocal: VocalStylePool{
			Ranges:     []string{"plain-spoken tenor", "clear soprano", "low harmony pair"},
			Deliveries: []string{"storytelling", "close and unadorned", "campfire singalong"},
			Techniques: []string{"parallel-third harmonies", "soft head voice", "spoken asides"},
		},
		Production: ProductionStylePool{
			Textures: []string{"single-mic intimacy", "wooden room tone", "field-recording honesty"},
			Reverbs:  []string{"natural room", "barely-there ambience", "chapel bloom"},
		},
		BPM:            BPMRange{Min: 70, Max: 120},
		HarmonicStyles: []string{"open-position triads", "drop-D drones", "modal folk cadences"},
		TimeSignatures: []string{"4/4", "3/4", "6/8"},
		Polyrhythms:    []string{},
	},
	"country": {
		ID:          "country",
		Moods:       []string{"homesick", "rowdy", "sentimental", "sun-baked"},
		Instruments: []string{"pedal steel", "telecaster", "acoustic guitar", "brushed snare", "fiddle", "upright bass"},
		Vocal: VocalStylePool{
			Ranges:     []string{"twangy tenor", "warm alto", "deep baritone"},
			Deliveries: []string{"front-porch plainness", "honky-tonk swagger", "close duet"},
			Techniques: []string{"yodel breaks", "slow vibrato tails", "talk-sung verses"},
		},
		Production: ProductionStylePool{
			Textures: []string{"Nashville polish", "dusty analog", "live dance-hall energy"},
			Reverbs:  []string{"plate on vocals", "short room", "open-air feel"},
		},
		BPM:            BPMRange{Min: 80, Max: 130},
		HarmonicStyles: []string{"I-IV-V progressions", "secondary-dominant walkups", "waltz cadences"},
		TimeSignatures: []string{"4/4", "3/4"},
		Polyrhythms:    []string{},
	},
	"electronic": {
		ID:          "electronic",
		Moods:       []string{"hypnotic", "euphoric", "mechanical", "weightless"},
		Instruments: []string{"analog synthesizer", "drum machine", "arpeggiator", "sub bass", "granular pads"},
		Vocal: VocalStylePool{
			Ranges:     []string{"processed mid-range", "ethereal falsetto", "pitched-down spoken"},
			Deliveries: []string{"chopped and resampled", "robotic deadpan", "soaring top-lines"},
			Techniques: []string{"vocoder layers", "formant shifts", "stutter edits"},
		},
		Production: ProductionStylePool{
			Textures: []string{"sidechained pumping", "crystalline digital", "saturated low end"},
			Reverbs:  []string{"cavernous hall", "gated reverb", "shimmer tails"},
		},
		BPM:            BPMRange{Min: 110, Max: 150},
		HarmonicStyles: []string{"static minor vamps", "filtered chord stabs", "modal synth ostinatos"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{"polymetric arp layers", "3-against-2 hat grids"},
	},
	"ambient": {
		ID:          "ambient",
		Moods:       []string{"weightless", "meditative", "glacial", "luminous"},
		Instruments: []string{"synth pads", "bowed guitar", "tape loops", "field recordings", "soft piano"},
		Vocal: VocalStylePool{
			Ranges:     []string{"wordless soprano", "distant choir", "murmured low register"},
			Deliveries: []string{"sustained and textural", "buried in the mix", "slow swelling"},
			Techniques: []string{"long reverse swells", "layered drones", "breath-as-texture"},
		},
		Production: ProductionStylePool{
			Textures: []string{"oceanic wash", "tape hiss warmth", "slowly evolving layers"},
			Reverbs:  []string{"infinite hall", "modulated shimmer", "cathedral decay"},
		},
		BPM:            BPMRange{Min: 50, Max: 90},
		HarmonicStyles: []string{"static lydian clusters", "slow suspensions", "open-fifth drones"},
		TimeSignatures: []string{"free time", "4/4"},
		Polyrhythms:    []string{},
	},
	"techno": {
		ID:          "techno",
		Moods:       []string{"relentless", "industrial", "nocturnal", "trance-inducing"},
		Instruments: []string{"analog kick", "modular sequencer", "acid bassline", "metallic percussion", "noise sweeps"},
		Vocal: VocalStylePool{
			Ranges:     []string{"monotone spoken", "processed mid-range"},
			Deliveries: []string{"clipped single phrases", "buried chant"},
			Techniques: []string{"heavy delay throws", "bit-crushed repeats"},
		},
		Production: ProductionStylePool{
			Textures: []string{"warehouse grit", "surgical low end", "hypnotic loop discipline"},
			Reverbs:  []string{"concrete room", "dub delay tails", "short metallic"},
		},
		BPM:            BPMRange{Min: 125, Max: 150},
		HarmonicStyles: []string{"single-chord tension", "detuned unison stabs"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{"offbeat ride displacement", "5-step hat cycles"},
	},
	"house": {
		ID:          "house",
		Moods:       []string{"joyful", "sultry", "strutting", "warm"},
		Instruments: []string{"four-on-the-floor kick", "piano stabs", "filtered disco samples", "rubbery bass", "open hats"},
		Vocal: VocalStylePool{
			Ranges:     []string{"gospel-trained alto", "smooth tenor"},
			Deliveries: []string{"uplifting refrains", "diva ad-libs", "spoken-word grooves"},
			Techniques: []string{"chopped vocal hooks", "gospel stacks", "filtered phrase repeats"},
		},
		Production: ProductionStylePool{
			Textures: []string{"pumping sidechain glue", "vinyl-sampled warmth", "glossy club sheen"},
			Reverbs:  []string{"medium club hall", "short plate on stabs", "dubby echo"},
		},
		BPM:            BPMRange{Min: 118, Max: 128},
		HarmonicStyles: []string{"seventh-chord piano vamps", "looped minor grooves"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{},
	},
	"hip hop": {
		ID:          "hip hop",
		Moods:       []string{"confident", "gritty", "laid-back", "triumphant"},
		Instruments: []string{"808 kit", "sampled breaks", "sub bass", "vinyl scratches", "rhodes loops"},
		Vocal: VocalStylePool{
			Ranges:     []string{"low conversational", "agile mid-range", "melodic sing-rap"},
			Deliveries: []string{"pocket-locked flow", "double-time bursts", "drawled"},
			Techniques: []string{"ad-lib layer", "rhyme-chain internal stress", "autotuned hooks"},
		},
		Production: ProductionStylePool{
			Textures: []string{"dusty sample chops", "knocking low end", "modern trap crispness"},
			Reverbs:  []string{"dry and close", "short room on snares", "hall on hooks"},
		},
		BPM:            BPMRange{Min: 70, Max: 100},
		HarmonicStyles: []string{"looped minor samples", "two-bar chord cells"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{"triplet hat rolls against straight kicks"},
	},
	"soul": {
		ID:          "soul",
		Moods:       []string{"yearning", "velvet", "ecstatic", "aching"},
		Instruments: []string{"rhodes piano", "horn section", "picked bass", "tight drum kit", "string pads"},
		Vocal: VocalStylePool{
			Ranges:     []string{"gospel tenor", "rich contralto", "soaring falsetto"},
			Deliveries: []string{"testifying climbs", "silky restraint", "preacher's cadence"},
			Techniques: []string{"long melisma", "choir answers", "controlled rasp"},
		},
		Production: ProductionStylePool{
			Textures: []string{"Motown-era warmth", "live rhythm section glue", "tape-compressed horns"},
			Reverbs:  []string{"chamber reverb", "plate on strings", "room on drums"},
		},
		BPM:            BPMRange{Min: 65, Max: 115},
		HarmonicStyles: []string{"gospel passing chords", "chromatic bass walkdowns", "major-seventh colors"},
		TimeSignatures: []string{"4/4", "12/8"},
		Polyrhythms:    []string{},
	},
	"funk": {
		ID:          "funk",
		Moods:       []string{"strutting", "greasy", "celebratory", "tight"},
		Instruments: []string{"slap bass", "clavinet", "wah guitar", "horn stabs", "syncopated kit"},
		Vocal: VocalStylePool{
			Ranges:     []string{"percussive tenor", "gang-vocal unison"},
			Deliveries: []string{"rhythmic chants", "grunted interjections", "party call-outs"},
			Techniques: []string{"stab-like phrasing", "octave doubling", "scream accents"},
		},
		Production: ProductionStylePool{
			Textures: []string{"bone-dry rhythm section", "analog console punch", "one-take live energy"},
			Reverbs:  []string{"tight room", "dry with slap", "short plate on horns"},
		},
		BPM:            BPMRange{Min: 95, Max: 120},
		HarmonicStyles: []string{"one-chord vamps", "ninth-chord stabs", "dorian grooves"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{"sixteenth-note ghost webs"},
	},
	"classical": {
		ID:          "classical",
		Moods:       []string{"stately", "turbulent", "serene", "heroic"},
		Instruments: []string{"string quartet", "grand piano", "french horn", "timpani", "woodwind choir"},
		Vocal: VocalStylePool{
			Ranges:     []string{"operatic soprano", "dramatic baritone", "chamber choir"},
			Deliveries: []string{"sustained legato", "recitative", "antiphonal exchanges"},
			Techniques: []string{"full vibrato", "messa di voce swells", "counterpoint lines"},
		},
		Production: ProductionStylePool{
			Textures: []string{"concert-hall realism", "wide orchestral image", "close chamber detail"},
			Reverbs:  []string{"long concert hall", "church acoustic", "scoring-stage ambience"},
		},
		BPM:            BPMRange{Min: 55, Max: 140},
		HarmonicStyles: []string{"functional tonality with suspensions", "romantic chromaticism", "counterpoint"},
		TimeSignatures: []string{"4/4", "3/4", "6/8"},
		Polyrhythms:    []string{"hemiola passages"},
	},
	"reggae": {
		ID:          "reggae",
		Moods:       []string{"sun-drenched", "conscious", "easy", "dread"},
		Instruments: []string{"skank guitar", "deep bass", "one-drop drums", "melodica", "organ bubble"},
		Vocal: VocalStylePool{
			Ranges:     []string{"relaxed tenor", "deep toaster"},
			Deliveries: []string{"laid-back behind the one-drop", "chant-style toasting", "harmony trio answers"},
			Techniques: []string{"patois inflection", "held falsetto tails", "dub echo phrases"},
		},
		Production: ProductionStylePool{
			Textures: []string{"heavy dub low end", "spacious mix with dropouts", "spring-driven character"},
			Reverbs:  []string{"spring reverb", "long dub delays", "tape echo throws"},
		},
		BPM:            BPMRange{Min: 65, Max: 90},
		HarmonicStyles: []string{"minor-key skank loops", "two-chord meditations"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{},
	},
	"metal": {
		ID:          "metal",
		Moods:       []string{"ferocious", "ominous", "cathartic", "epic"},
		Instruments: []string{"down-tuned guitars", "double-kick drums", "five-string bass", "orchestral synth layers"},
		Vocal: VocalStylePool{
			Ranges:     []string{"guttural low", "piercing high tenor", "clean mid-range"},
			Deliveries: []string{"screamed verses", "soaring clean choruses", "chanted gang vocals"},
			Techniques: []string{"false-cord growl", "harmonized leads", "whispered bridges"},
		},
		Production: ProductionStylePool{
			Textures: []string{"surgical quad-tracked guitars", "triggered drum punch", "massive wall density"},
			Reverbs:  []string{"tight and dry", "huge hall on leads", "short room on snare"},
		},
		BPM:            BPMRange{Min: 120, Max: 200},
		HarmonicStyles: []string{"phrygian riffing", "tritone tension", "harmonic-minor leads"},
		TimeSignatures: []string{"4/4", "7/8", "5/4"},
		Polyrhythms:    []string{"kick patterns against half-time backbeat"},
	},
	"synthwave": {
		ID:          "synthwave",
		Moods:       []string{"neon", "nocturnal", "nostalgic", "cinematic"},
		Instruments: []string{"analog polysynth", "gated drums", "FM bass", "arpeggiated leads", "retro toms"},
		Vocal: VocalStylePool{
			Ranges:     []string{"breathy tenor", "chorused mid-range"},
			Deliveries: []string{"detached cool", "anthemic chorus lift"},
			Techniques: []string{"heavy chorus doubling", "vocoder shadows", "long delay tails"},
		},
		Production: ProductionStylePool{
			Textures: []string{"VHS-era warmth", "big gated drum stage", "chrome gloss"},
			Reverbs:  []string{"gated reverb", "long plate", "stadium wash"},
		},
		BPM:            BPMRange{Min: 85, Max: 118},
		HarmonicStyles: []string{"minor add9 pads", "aeolian bass ostinatos"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{},
	},
	"lofi": {
		ID:          "lofi",
		Moods:       []string{"rainy", "dusty", "wistful", "cozy"},
		Instruments: []string{"detuned electric piano", "boom-bap drums", "muted bass", "vinyl crackle", "soft guitar loops"},
		Vocal: VocalStylePool{
			Ranges:     []string{"hushed mid-range", "pitched-down murmur"},
			Deliveries: []string{"half-whispered", "sample-chopped phrases"},
			Techniques: []string{"tape-warble pitch drift", "buried double tracks"},
		},
		Production: ProductionStylePool{
			Textures: []string{"tape saturation and wow", "lowpassed haze", "sidechain breathing"},
			Reverbs:  []string{"small dark room", "lo-fi spring", "cassette ambience"},
		},
		BPM:            BPMRange{Min: 60, Max: 90},
		HarmonicStyles: []string{"jazzy seventh loops", "borrowed-chord turnarounds"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{"loose swung hats against straight kick"},
	},
	"disco": {
		ID:          "disco",
		Moods:       []string{"glittering", "euphoric", "flirtatious", "liberated"},
		Instruments: []string{"four-on-the-floor kit", "octave bass", "string section", "chicken-scratch guitar", "congas"},
		Vocal: VocalStylePool{
			Ranges:     []string{"soaring falsetto", "diva soprano", "unison group"},
			Deliveries: []string{"ecstatic refrains", "breathy verses", "group shout answers"},
			Techniques: []string{"octave-leap hooks", "sustained top notes", "layered stack harmonies"},
		},
		Production: ProductionStylePool{
			Textures: []string{"lush orchestral disco", "mirrorball sheen", "tight rhythm-section punch"},
			Reverbs:  []string{"large plate on strings", "medium hall", "short room on drums"},
		},
		BPM:            BPMRange{Min: 110, Max: 126},
		HarmonicStyles: []string{"minor-seventh vamps", "chromatic string rises"},
		TimeSignatures: []string{"4/4"},
		Polyrhythms:    []string{},
	},
}

// Lookup returns the genre definition for a case-insensitive ID.
func Lookup(id string) (*GenreDefinition, bool) {
	g, ok := Genres[strings.ToLower(strings.TrimSpace(id))]
	return g, ok
}

// IsGenre reports whether the token names a known genre.
func IsGenre(id string) bool {
	_, ok := Lookup(id)
	return ok
}
