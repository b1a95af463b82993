package factory

import (
	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpark(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Spark.Spawn(ecs)
	components.Spark.Set(entry, &components.SparkData{})
	return entry
}

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(entry, &components.HUDData{})
	return entry
}

func CreateSonification(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Sonification.Spawn(ecs)
	components.Sonification.Set(entry, &components.SonificationData{})
	return entry
}

// CreateSettings spawns the settings singleton holding initial.
func CreateSettings(ecs *ecs.ECS, initial components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(entry, &initial)
	return entry
}
