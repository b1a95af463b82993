package factory

import (
	"math"

	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/components"
	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCarrier spawns the sprite for a minted carrier.
func CreateCarrier(ecs *ecs.ECS, c sim.Carrier) *donburi.Entry {
	entry := archetypes.Carrier.Spawn(ecs)
	components.Carrier.SetValue(entry, components.CarrierData{
		ID:    c.ID,
		Home:  c.Position,
		Phase: float64(c.ID%16) / 16 * 2 * math.Pi,
	})
	return entry
}
