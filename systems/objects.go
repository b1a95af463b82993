package systems

import (
	"github.com/automoto/travoltage/components"
	"github.com/automoto/travoltage/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps every grab handle centered on its limb's tip and
// refreshes the resolv cells of all objects.
func UpdateObjects(ecs *ecs.ECS) {
	if sd := GetSimulation(ecs); sd != nil {
		tags.Appendage.Each(ecs.World, func(entry *donburi.Entry) {
			kind := components.Appendage.Get(entry).Kind
			tip := sd.Model.Appendage(kind).TipPosition()
			obj := components.Object.Get(entry)
			obj.X = tip.X - obj.W/2
			obj.Y = tip.Y - obj.H/2
		})
	}

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
