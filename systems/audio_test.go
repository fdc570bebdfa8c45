package systems

import (
	"testing"

	cfg "github.com/hollowmoor/duskfang/config"
)

func TestToggleMuteSilencesCues(t *testing.T) {
	SetMuted(false)
	defer SetMuted(false)

	var cues int
	SetSFXSink(func(id cfg.SoundID, volume float64) { cues++ })
	defer SetSFXSink(nil)

	e := newTestECS(640, 360)

	PlaySFX(e, SoundCoin)
	UpdateAudio(e)
	if cues != 1 {
		t.Fatalf("expected the cue to reach the sink, got %d", cues)
	}

	ToggleMute()
	if !Muted() {
		t.Fatal("toggle should mute")
	}
	PlaySFX(e, SoundCoin)
	UpdateAudio(e)
	if cues != 1 {
		t.Fatalf("muted cue should be dropped, got %d", cues)
	}

	ToggleMute()
	if Muted() {
		t.Fatal("second toggle should unmute")
	}
	PlaySFX(e, SoundCoin)
	UpdateAudio(e)
	if cues != 2 {
		t.Fatalf("unmuted cue should reach the sink again, got %d", cues)
	}
}

func TestSFXVolumeClamped(t *testing.T) {
	defer SetSFXVolume(cfg.Audio.DefaultSFXVol)

	SetSFXVolume(1.7)
	if SFXVolume() != 1 {
		t.Fatalf("volume should clamp to 1, got %f", SFXVolume())
	}
	SetSFXVolume(-0.3)
	if SFXVolume() != 0 {
		t.Fatalf("volume should clamp to 0, got %f", SFXVolume())
	}
}
