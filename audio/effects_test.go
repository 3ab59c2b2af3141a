package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak magnitude
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Max(math.Abs(buf[i][0]), math.Abs(buf[i][1])))
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > limit {
			t.Fatalf("Streamer did not end within %d samples", limit)
		}
	}
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d out of range or not mono: %v", i, samples[i])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorEndsAtDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(220, 10*time.Millisecond, WaveTriangle, rate)

	total, peak := drain(t, osc, 10000)
	if total != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), total)
	}
	if peak > 1 {
		t.Errorf("Triangle wave peak %v exceeds 1", peak)
	}

	if n, ok := osc.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("Drained oscillator should return 0, false; got %d, %v", n, ok)
	}
}

func TestEnvelopeAttackStartsSilent(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("Expected first sample silenced by attack, got %v", samples[0][0])
	}

	total, _ := drain(t, env, 100000)
	if total+4 != rate.N(d) {
		t.Errorf("Expected %d samples, got %d", rate.N(d), total+4)
	}
}

func TestSpellSoundLengthAndLevel(t *testing.T) {
	cfg := DefaultAudioConfig()
	s := CreateSpellSound(cfg)

	want := SpellSoundLength(cfg)
	total, peak := drain(t, s, want*2)

	if math.Abs(float64(total-want)) > 1024 {
		t.Errorf("Expected about %d samples, got %d", want, total)
	}
	if peak > cfg.SpellVolume*cfg.MasterVolume+1e-9 {
		t.Errorf("Peak %v exceeds configured volume %v", peak, cfg.SpellVolume*cfg.MasterVolume)
	}
	if peak == 0 {
		t.Error("Expected audible output")
	}
}

func TestSpellSoundSilentAtZeroVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateSpellSound(cfg), SpellSoundLength(cfg)*2)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}
}
