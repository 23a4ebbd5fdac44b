package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tint-arena/core"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Expected finite stream under %d samples", limit)
	return nil
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveTriangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		samples := drain(t, osc, rate.N(time.Second))

		if len(samples) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d invalid: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got %v", osc.Err())
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 50*time.Millisecond, WaveTriangle, rate) // Constant +1 at phase 0
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(t, env, rate.N(time.Second))
	if len(samples) != rate.N(50*time.Millisecond) {
		t.Fatalf("Expected %d samples, got %d", rate.N(50*time.Millisecond), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid-1) > 1e-9 {
		t.Errorf("Expected full level at sustain, got %v", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("Expected near-silent tail, got %v", last)
	}
}

func TestChimesAreFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := 2 * rate.N(chimeNoteDuration)

	for _, st := range []core.SoundType{core.SoundPlayerTint, core.SoundPlayerClear} {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for sound %d", st)
		}
		samples := drain(t, s, rate.N(time.Second))
		if len(samples) != want {
			t.Errorf("sound %d: expected %d samples, got %d", st, want, len(samples))
		}
	}

	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestPlayerStoppedOrMutedIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	p := NewPlayer(cfg)

	if p.Play(core.SoundPlayerTint) {
		t.Error("Expected Play to fail before Start")
	}
	if p.IsMuted() {
		t.Error("Expected enabled config to start unmuted")
	}
	p.SetMuted(true)
	if !p.IsMuted() {
		t.Error("Expected mute to stick")
	}

	cfg.Enabled = false
	if !NewPlayer(cfg).IsMuted() {
		t.Error("Expected disabled config to start muted")
	}

	// Close on a stopped player is a no-op
	p.Close()
}
