package factory

import (
	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePointer spawns the 1x1 probe the input system moves to the cursor.
func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Pointer.Spawn(ecs)
	addToSpace(ecs, entry, resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer))
	return entry
}
