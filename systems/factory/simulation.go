package factory

import (
	"fmt"

	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/components"
	"github.com/automoto/travoltage/shared/scenedata"
	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation builds the charge model from base with the layout's
// geometry applied, and stores it on a singleton entity.
func CreateSimulation(ecs *ecs.ECS, layout *scenedata.Layout, base sim.Config, tickRate int) (*donburi.Entry, error) {
	model, err := sim.NewModel(layout.Apply(base))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", layout.Name, err)
	}

	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.Set(entry, &components.SimulationData{
		Model:  model,
		Clock:  sim.NewClock(1/float64(tickRate), 5),
		Layout: layout,
	})
	return entry, nil
}
