package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume    float64 `json:"sfxVolume"`
	SoundEnabled bool    `json:"soundEnabled"`
	ShowDebug    bool    `json:"showDebug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Missing or unreadable settings
// yield nil so the defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:    s.SFXVolume,
		SoundEnabled: s.SoundEnabled,
		ShowDebug:    s.ShowDebug,
	})
}

// ApplySavedSettings applies loaded settings to a running scene
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	ApplySavedSettingsGlobal(saved)

	settings := GetOrCreateSettings(e)
	settings.SFXVolume = saved.SFXVolume
	settings.SoundEnabled = saved.SoundEnabled
	settings.ShowDebug = saved.ShowDebug
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial startup before the scene is created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
	SetSoundEnabled(saved.SoundEnabled)
	globalShowDebug = saved.ShowDebug
}
