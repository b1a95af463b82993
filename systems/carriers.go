package systems

import (
	"math"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/gamemath"
	"github.com/automoto/travoltage/systems/factory"
	"github.com/automoto/travoltage/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func onCarrierAdded(e *ecs.ECS, ev CarrierAddedEvent) {
	factory.CreateCarrier(e, ev.Carrier)
}

// onCarrierRemoved sends the carrier's sprite to the doorknob. The entity is
// destroyed by UpdateCarriers when it arrives.
func onCarrierRemoved(e *ecs.ECS, ev CarrierRemovedEvent) {
	entry := findCarrier(e, ev.Carrier.ID)
	if entry == nil {
		return
	}
	cd := components.Carrier.Get(entry)
	if cd.Draining {
		return
	}
	cd.DrainFrom = CarrierPosition(cd)
	if sd := GetSimulation(e); sd != nil {
		cd.DrainTo = sd.Model.Doorknob()
	} else {
		cd.DrainTo = cd.DrainFrom
	}
	cd.Draining = true
	cd.Drain = gween.New(0, 1, cfg.Carrier.DrainDuration, ease.InQuad)
}

// onCarriersReset drops every sprite at once; a reset does not animate.
func onCarriersReset(e *ecs.ECS) {
	var gone []*donburi.Entry
	tags.Carrier.Each(e.World, func(entry *donburi.Entry) {
		gone = append(gone, entry)
	})
	for _, entry := range gone {
		e.World.Remove(entry.Entity())
	}
}

func findCarrier(e *ecs.ECS, id uint64) *donburi.Entry {
	var found *donburi.Entry
	tags.Carrier.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Carrier.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

// UpdateCarriers jostles idle carriers and advances draining ones.
func UpdateCarriers(e *ecs.ECS) {
	dt := frameSeconds()
	var arrived []*donburi.Entry

	tags.Carrier.Each(e.World, func(entry *donburi.Entry) {
		cd := components.Carrier.Get(entry)
		if !cd.Draining {
			cd.Phase = math.Mod(cd.Phase+cfg.Carrier.JostleSpeed*dt, 2*math.Pi)
			return
		}
		progress, finished := cd.Drain.Update(float32(dt))
		cd.Progress = progress
		if finished {
			arrived = append(arrived, entry)
		}
	})

	for _, entry := range arrived {
		e.World.Remove(entry.Entity())
	}
}

// CarrierPosition is where the sprite is drawn this frame.
func CarrierPosition(cd *components.CarrierData) dmath.Vec2 {
	if cd.Draining {
		t := float64(cd.Progress)
		return dmath.Vec2{
			X: gamemath.Lerp(cd.DrainFrom.X, cd.DrainTo.X, t),
			Y: gamemath.Lerp(cd.DrainFrom.Y, cd.DrainTo.Y, t),
		}
	}
	r := cfg.Carrier.JostleRadius
	return dmath.Vec2{
		X: cd.Home.X + r*math.Cos(cd.Phase),
		Y: cd.Home.Y + r*math.Sin(2*cd.Phase),
	}
}
