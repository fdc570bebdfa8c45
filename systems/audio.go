package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/yohamta/donburi/ecs"
)

// Sound aliases so callers stay inside the systems package.
const (
	SoundJump        = cfg.SoundJump
	SoundAttack      = cfg.SoundAttack
	SoundThrow       = cfg.SoundThrow
	SoundHit         = cfg.SoundHit
	SoundCoin        = cfg.SoundCoin
	SoundEnemyDeath  = cfg.SoundEnemyDeath
	SoundPlayerDeath = cfg.SoundPlayerDeath
)

// Global audio state, created once and shared across scenes.
var (
	globalAudioContext *audio.Context
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	sfxSink            func(cfg.SoundID, float64)
	missingSinkOnce    sync.Once
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// SetSFXSink installs the backend that actually renders a cue. Without a
// sink installed cues are dropped, which keeps headless runs silent
// instead of crashing.
func SetSFXSink(sink func(id cfg.SoundID, volume float64)) {
	sfxSink = sink
}

// SetSFXVolume clamps and stores the effect volume.
func SetSFXVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
}

func SFXVolume() float64 { return globalSFXVolume }

func SetMuted(m bool) { globalMuted = m }

func Muted() bool { return globalMuted }

// ToggleMute flips the mute switch and persists the audio settings so the
// choice survives a restart.
func ToggleMute() {
	SetMuted(!Muted())
	SaveCurrentSettings()
}

// PlaySFX queues a cue for the end-of-frame drain.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio polls the mute key and drains the pending cue queue into
// the installed sink.
func UpdateAudio(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ToggleMute()
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	for _, id := range audioData.PendingSFX {
		playSFX(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}
	if sfxSink == nil {
		missingSinkOnce.Do(func() {
			log.Printf("audio: no sfx backend installed, cues will be dropped")
		})
		return
	}
	initGlobalAudio()
	sfxSink(id, globalSFXVolume)
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
	}
	return components.Audio.Get(entry)
}
