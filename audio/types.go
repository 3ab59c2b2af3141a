package audio

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/lumos/parameter"
)

// Sentinel errors
var (
	ErrDisabled       = errors.New("audio disabled by configuration")
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrMuted          = errors.New("audio muted")
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SpellVolume  float64 // 0.0-1.0, scaled by MasterVolume
	SampleRate   int
}

// DefaultAudioConfig returns the settings used when the environment is silent
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.SpellDefaultMaster,
		SpellVolume:  parameter.SpellDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}
