package factory

import (
	"github.com/automoto/travoltage/archetypes"
	"github.com/automoto/travoltage/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateDoorknob spawns the discharge target with a zone as wide as the
// largest threshold distance.
func CreateDoorknob(ecs *ecs.ECS, at dmath.Vec2, reach float64) *donburi.Entry {
	entry := archetypes.Doorknob.Spawn(ecs)
	obj := resolv.NewObject(at.X-reach, at.Y-reach, reach*2, reach*2, tags.ResolvKnob)
	addToSpace(ecs, entry, obj)
	return entry
}
