package factory

import (
	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/sim"
	"github.com/automoto/travoltage/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAppendage spawns the view of a limb with a grab handle centered on its tip.
func CreateAppendage(ecs *ecs.ECS, limb *sim.Appendage) *donburi.Entry {
	entry := archetypes.Appendage.Spawn(ecs)
	components.Appendage.SetValue(entry, components.AppendageData{
		Kind:       limb.Kind(),
		ShowBorder: true,
	})

	view := ViewConfig(limb.Kind())
	tip := limb.TipPosition()
	size := view.GrabSize
	kindTag := tags.ResolvArm
	if limb.Kind() == sim.Leg {
		kindTag = tags.ResolvLeg
	}
	obj := resolv.NewObject(tip.X-size/2, tip.Y-size/2, size, size, tags.ResolvGrab, kindTag)
	addToSpace(ecs, entry, obj)

	return entry
}

// ViewConfig returns the drawing config for a limb kind.
func ViewConfig(kind sim.AppendageKind) *cfg.AppendageViewConfig {
	if kind == sim.Leg {
		return &cfg.Leg
	}
	return &cfg.Arm
}
