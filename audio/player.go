package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tint-arena/core"
)

// Player mixes one-shot chimes onto the speaker
// Implements engine.AudioPlayer
type Player struct {
	mu     sync.Mutex
	config *AudioConfig
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool
}

// NewPlayer creates a stopped player
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and begins streaming the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Play queues a sound; false when stopped, muted or unknown
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}
	s := GetSoundEffect(st, p.config)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// IsMuted reports the mute flag
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// SetMuted toggles output without closing the device
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()
	speaker.Close()
}
