package tags

import "github.com/yohamta/donburi"

var (
	Appendage = donburi.NewTag().SetName("Appendage")
	Carrier   = donburi.NewTag().SetName("Carrier")
	Spark     = donburi.NewTag().SetName("Spark")
	Doorknob  = donburi.NewTag().SetName("Doorknob")
	Pointer   = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for hit testing
const (
	ResolvGrab    = "grab"
	ResolvArm     = "arm"
	ResolvLeg     = "leg"
	ResolvKnob    = "knob"
	ResolvPointer = "pointer"
)
