// Package scenedata parses the scene layout (pivots, doorknob, spawn box,
// body outline and force lines) from a Tiled map. It has no dependencies on
// ebitengine or resolv, so the headless sweep tool can load the same scene.
package scenedata

import (
	"github.com/automoto/travoltage/sim"
	dmath "github.com/yohamta/donburi/features/math"
)

// Limb is the geometry of one appendage as authored in the map.
type Limb struct {
	Pivot        dmath.Vec2
	Length       float64
	AngleOffset  float64
	MinAngle     float64
	MaxAngle     float64
	InitialAngle float64
}

// Box is an axis-aligned rectangle.
type Box struct {
	X, Y, W, H float64
}

// Layout holds everything a scene map describes.
type Layout struct {
	Name      string
	MapWidth  int
	MapHeight int

	Arm           Limb
	Leg           Limb
	Doorknob      dmath.Vec2
	ElectronSpawn Box

	Body       []dmath.Vec2   // closed outline, debug overlay only
	ForceLines [][]dmath.Vec2 // open polylines, debug overlay only
}

// Apply overlays the layout geometry onto cfg and returns the result.
// Thresholds, friction and drain settings are left untouched.
func (l *Layout) Apply(cfg sim.Config) sim.Config {
	cfg.Arm = l.Arm.appendageConfig()
	cfg.Leg = l.Leg.appendageConfig()
	cfg.Doorknob = l.Doorknob
	cfg.SpawnBox = sim.Rect{
		X:      l.ElectronSpawn.X,
		Y:      l.ElectronSpawn.Y,
		Width:  l.ElectronSpawn.W,
		Height: l.ElectronSpawn.H,
	}
	return cfg
}

func (l Limb) appendageConfig() sim.AppendageConfig {
	return sim.AppendageConfig{
		Pivot:        l.Pivot,
		Length:       l.Length,
		AngleOffset:  l.AngleOffset,
		MinAngle:     l.MinAngle,
		MaxAngle:     l.MaxAngle,
		InitialAngle: l.InitialAngle,
	}
}
