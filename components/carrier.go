package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CarrierData is the sprite of one charge carrier.
type CarrierData struct {
	ID    uint64
	Home  dmath.Vec2 // spawn position from the model
	Phase float64    // jostle phase in radians

	// Draining carriers travel from DrainFrom to DrainTo and are destroyed
	// when the tween finishes.
	Draining  bool
	DrainFrom dmath.Vec2
	DrainTo   dmath.Vec2
	Drain     *gween.Tween
	Progress  float32
}

var Carrier = donburi.NewComponentType[CarrierData]()
