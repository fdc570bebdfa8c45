package systems

import (
	"encoding/json"
	"log"

	"github.com/hollowmoor/duskfang/economy"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings payload stored on disk.
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. On failure the game still runs;
// settings and progress just stop surviving restarts.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "duskfang",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved settings, or nil when none exist.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes the settings payload.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes loaded settings into the audio state. Volumes
// are clamped on the way in, so a hand-edited save cannot blow out the
// mixer.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
}

// SaveCurrentSettings snapshots the live audio state.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SFXVolume: SFXVolume(),
		Muted:     Muted(),
	})
}

// LoadLedger restores the persisted economy, or a fresh one when nothing
// was saved yet.
func LoadLedger() *economy.Ledger {
	ledger := economy.NewLedger()
	if !gdataInitialized || gdataManager == nil {
		return ledger
	}

	data, err := gdataManager.LoadItem("economy")
	if err != nil || data == nil {
		if err != nil {
			log.Printf("Warning: Could not load economy: %v", err)
		}
		return ledger
	}

	if err := json.Unmarshal(data, ledger); err != nil {
		log.Printf("Warning: Could not parse saved economy: %v", err)
		return economy.NewLedger()
	}
	return ledger
}

// SaveLedger persists the economy.
func SaveLedger(ledger *economy.Ledger) error {
	if !gdataInitialized || gdataManager == nil || ledger == nil {
		return nil
	}

	data, err := json.Marshal(ledger)
	if err != nil {
		log.Printf("Warning: Could not serialize economy: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("economy", data); err != nil {
		log.Printf("Warning: Could not save economy: %v", err)
		return err
	}
	return nil
}
