package components

import "github.com/yohamta/donburi"

// SettingsData stores user settings that persist between runs (singleton component).
type SettingsData struct {
	SoundEnabled bool
	SFXVolume    float64 // 0.0 - 1.0
	ShowDebug    bool
	Dirty        bool // set when a change still needs saving
}

var Settings = donburi.NewComponentType[SettingsData]()
