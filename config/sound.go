package config

// SoundID identifies a sound effect cue.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundAttack
	SoundThrow
	SoundHit
	SoundCoin
	SoundEnemyDeath
	SoundPlayerDeath
)

// AudioConfig holds mixer defaults.
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   0.8,
	}
}
