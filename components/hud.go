package components

import "github.com/yohamta/donburi"

// HUDData stores the status panel state (singleton component).
type HUDData struct {
	ArmStatus string
	LegStatus string

	// Drained counts carriers removed while Discharging
	Discharging  bool
	Drained      int
	Message      string
	MessageTimer float64 // seconds left
}

var HUD = donburi.NewComponentType[HUDData]()
