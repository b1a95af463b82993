package config

// SettingsConfig contains persisted user settings defaults
type SettingsConfig struct {
	AppName     string
	StorageKey  string
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "travoltage",
		StorageKey:  "settings",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
