package audio

import (
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvEnabled      = "LUMOS_AUDIO_ENABLED"
	EnvMasterVolume = "LUMOS_MASTER_VOLUME"
	EnvSpellVolume  = "LUMOS_SPELL_VOLUME"
	EnvSampleRate   = "LUMOS_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and keep their defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are 0-100 converted to 0.0-1.0
	if v, ok := percentEnv(EnvMasterVolume); ok {
		cfg.MasterVolume = v
	}
	if v, ok := percentEnv(EnvSpellVolume); ok {
		cfg.SpellVolume = v
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func percentEnv(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	v := float64(val) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v, true
}
