package systems

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/yohamta/donburi/ecs"
)

var globalShowDebug = cfg.Debug.ShowGeometry

// SetShowDebug turns the geometry overlay on or off for scenes created later.
func SetShowDebug(show bool) {
	globalShowDebug = show
}

// CurrentSettings returns the settings a new scene starts with.
func CurrentSettings() components.SettingsData {
	return components.SettingsData{
		SoundEnabled: globalSoundEnabled,
		SFXVolume:    globalSFXVolume,
		ShowDebug:    globalShowDebug,
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the current globals if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		initial := CurrentSettings()
		components.Settings.Set(entry, &initial)
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the sound and debug toggles and saves changes.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if input.JustPressed(cfg.ActionToggleSound) {
		ToggleSound(e)
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.ShowDebug = !settings.ShowDebug
		settings.Dirty = true
	}

	SetSoundEnabled(settings.SoundEnabled)
	SetSFXVolume(settings.SFXVolume)
	globalShowDebug = settings.ShowDebug

	if settings.Dirty {
		settings.Dirty = false
		SaveCurrentSettings(settings)
	}
}

// ToggleSound flips sound on or off and returns the new state.
func ToggleSound(e *ecs.ECS) bool {
	settings := GetOrCreateSettings(e)
	settings.SoundEnabled = !settings.SoundEnabled
	settings.Dirty = true
	SetSoundEnabled(settings.SoundEnabled)
	if settings.SoundEnabled {
		PlaySFX(e, cfg.SoundButton)
	}
	return settings.SoundEnabled
}
