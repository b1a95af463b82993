package systems

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the wall time one Update covers.
func frameSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// GetSimulation returns the scene's model holder, or nil before it is created.
func GetSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// UpdateSimulation runs the fixed-step model ticks owed for this frame.
// Input latched by UpdateAppendages is applied by the first of them.
func UpdateSimulation(e *ecs.ECS) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}

	input := getOrCreateInput(e)
	if input.JustPressed(cfg.ActionResetAll) {
		ResetAll(e)
	}

	sd.Clock.Advance(frameSeconds(), sd.Model.Tick)
}

// ResetAll restores the scene to its initial state.
func ResetAll(e *ecs.ECS) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	sd.Model.ResetAll()
	sd.Clock.Reset()
}
