package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/status"
)

// Output is the device a mixer is played on
// Lock/Unlock guard streamer mutation against the playback goroutine
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the beep speaker package
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// SoundManager plays the spell chime, restarting it from the start on every request
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	out         Output
	mixer       *beep.Mixer
	spell       *beep.Ctrl
	initialized bool
	muted       bool

	statPlayed *atomic.Int64
	statMuted  *atomic.Bool
}

// NewSoundManager creates a sound manager on the system speaker
// cfg nil uses DefaultAudioConfig, reg nil uses a private registry
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	return NewSoundManagerWithOutput(cfg, reg, speakerOutput{})
}

// NewSoundManagerWithOutput creates a sound manager on a custom output
func NewSoundManagerWithOutput(cfg *AudioConfig, reg *status.Registry, out Output) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	sm := &SoundManager{
		config:     cfg,
		out:        out,
		mixer:      &beep.Mixer{},
		muted:      !cfg.Enabled,
		statPlayed: reg.Ints.Get(status.AudioPlayed),
		statMuted:  reg.Bools.Get(status.AudioMuted),
	}
	sm.statMuted.Store(sm.muted)
	return sm
}

// Initialize opens the output and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.out.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrapf(err, "audio: open output at %d Hz", sm.config.SampleRate)
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Lock()
	sm.mixer.Clear()
	sm.spell = nil
	sm.out.Unlock()

	sm.out.Close()
	sm.initialized = false
}

// PlaySpell starts the spell chime, silencing any instance still ringing
func (sm *SoundManager) PlaySpell() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return ErrMuted
	}

	ctrl := &beep.Ctrl{Streamer: CreateSpellSound(sm.config)}

	sm.out.Lock()
	if sm.spell != nil {
		// A nil streamer ends the Ctrl and the mixer drops it
		sm.spell.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	sm.out.Unlock()

	sm.spell = ctrl
	sm.statPlayed.Add(1)
	return nil
}

// ToggleMute flips mute state, returns true if sound is now audible
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.statMuted.Store(sm.muted)

	if sm.muted && sm.initialized && sm.spell != nil {
		sm.out.Lock()
		sm.spell.Streamer = nil
		sm.out.Unlock()
		sm.spell = nil
	}
	return !sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
