package components

import (
	"github.com/automoto/travoltage/shared/scenedata"
	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi"
)

// SimulationData owns the charge model for the scene (singleton component).
type SimulationData struct {
	Model  *sim.Model
	Clock  *sim.Clock
	Layout *scenedata.Layout

	// Handles for the model subscriptions bridged into the world's event queue
	Handles []func()
}

var Simulation = donburi.NewComponentType[SimulationData]()
