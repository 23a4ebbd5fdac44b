package audio

import (
	"github.com/lixenwraith/tint-arena/core"
)

// AudioConfig holds the chime mix settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64                        // 0.0 - 1.0
	EffectVolumes [core.SoundTypeCount]float64 // Per-sound gain, 0.0 - 1.0
}

// DefaultAudioConfig returns a quiet, enabled mix
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
	}
	cfg.EffectVolumes[core.SoundPlayerTint] = 0.6
	cfg.EffectVolumes[core.SoundPlayerClear] = 0.5
	return cfg
}
