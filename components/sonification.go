package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SonificationData tracks finger motion for the proximity tone (singleton component).
type SonificationData struct {
	PreviousFinger dmath.Vec2
	// TimeAtFinger is how long the finger has rested at PreviousFinger
	TimeAtFinger float64
}

var Sonification = donburi.NewComponentType[SonificationData]()
