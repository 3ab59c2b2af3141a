package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/lumos/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; math.Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// spellNote is one arpeggio step: fundamental plus an octave harmonic
func spellNote(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.SpellNoteDuration
	fund := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, parameter.SpellNoteAttack, parameter.SpellNoteRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, d, WaveTriangle, rate), d, parameter.SpellNoteAttack, parameter.SpellNoteRelease, rate)
	return beep.Mix(
		newVolume(fund, 1-parameter.SpellHarmonicLevel),
		newVolume(over, parameter.SpellHarmonicLevel),
	)
}

// spellTail rings the top note an octave up over a fading noise shimmer
func spellTail(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.SpellTailDuration
	ring := NewEnvelope(NewOscillator(freq*2, d, WaveSine, rate), d, parameter.SpellNoteAttack, parameter.SpellTailRelease, rate)
	shimmer := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.SpellNoteAttack, parameter.SpellTailRelease, rate)
	return beep.Mix(
		newVolume(ring, 1-parameter.SpellShimmerLevel),
		newVolume(shimmer, parameter.SpellShimmerLevel),
	)
}

// CreateSpellSound generates the burst chime: a rising arpeggio followed by a shimmering tail
func CreateSpellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	parts := make([]beep.Streamer, 0, len(parameter.SpellNotes)+1)
	for _, freq := range parameter.SpellNotes {
		parts = append(parts, spellNote(freq, rate))
	}
	parts = append(parts, spellTail(parameter.SpellNotes[len(parameter.SpellNotes)-1], rate))

	return newVolume(beep.Seq(parts...), cfg.SpellVolume*cfg.MasterVolume)
}

// SpellSoundLength returns the chime length in samples at the configured rate
func SpellSoundLength(cfg *AudioConfig) int {
	rate := beep.SampleRate(cfg.SampleRate)
	return len(parameter.SpellNotes)*rate.N(parameter.SpellNoteDuration) + rate.N(parameter.SpellTailDuration)
}
