package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Spell chime: three rising notes over a noise shimmer
const (
	SpellNoteDuration  = 90 * time.Millisecond
	SpellNoteAttack    = 4 * time.Millisecond
	SpellNoteRelease   = 60 * time.Millisecond
	SpellTailDuration  = 420 * time.Millisecond
	SpellTailRelease   = 380 * time.Millisecond
	SpellShimmerLevel  = 0.12
	SpellHarmonicLevel = 0.25
	SpellDefaultVolume = 0.8
	SpellDefaultMaster = 0.7
)

// SpellNotes are the arpeggio frequencies in Hz (E5, G#5, B5)
var SpellNotes = [3]float64{659.25, 830.61, 987.77}
