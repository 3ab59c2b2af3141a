package audio

import (
	"testing"

	"github.com/lixenwraith/lumos/parameter"
)

func TestLoadAudioConfigDefaults(t *testing.T) {
	for _, key := range []string{EnvEnabled, EnvMasterVolume, EnvSpellVolume, EnvSampleRate} {
		t.Setenv(key, "")
	}

	cfg := LoadAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != parameter.SpellDefaultMaster || cfg.SpellVolume != parameter.SpellDefaultVolume {
		t.Errorf("Unexpected default volumes: master=%v spell=%v", cfg.MasterVolume, cfg.SpellVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvEnabled, "false")
	t.Setenv(EnvMasterVolume, "50")
	t.Setenv(EnvSpellVolume, "250")
	t.Setenv(EnvSampleRate, "44100")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected master 0.5, got %v", cfg.MasterVolume)
	}
	if cfg.SpellVolume != 1 {
		t.Errorf("Expected spell volume clamped to 1, got %v", cfg.SpellVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSpellVolume, "-20")
	t.Setenv(EnvSampleRate, "-1")

	cfg := LoadAudioConfig()
	if !cfg.Enabled {
		t.Error("Malformed enabled flag must keep default")
	}
	if cfg.MasterVolume != parameter.SpellDefaultMaster {
		t.Errorf("Malformed master volume must keep default, got %v", cfg.MasterVolume)
	}
	if cfg.SpellVolume != 0 {
		t.Errorf("Negative spell volume must clamp to 0, got %v", cfg.SpellVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Invalid sample rate must keep default, got %d", cfg.SampleRate)
	}
}
