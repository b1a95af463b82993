package archetypes

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Simulation = newArchetype(
		components.Simulation,
	)
	Space = newArchetype(
		components.Space,
	)
	Appendage = newArchetype(
		tags.Appendage,
		components.Appendage,
		components.Object,
	)
	Carrier = newArchetype(
		tags.Carrier,
		components.Carrier,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	Doorknob = newArchetype(
		tags.Doorknob,
		components.Object,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Object,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Sonification = newArchetype(
		components.Sonification,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
