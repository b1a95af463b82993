package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SparkData is the discharge bolt between the fingertip and the doorknob.
type SparkData struct {
	Visible bool
	Alpha   float32
	Fade    *gween.Tween // nil unless fading out
	Seed    uint64       // reshuffled every frame for the flicker
}

var Spark = donburi.NewComponentType[SparkData]()
