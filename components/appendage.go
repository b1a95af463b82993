package components

import (
	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi"
)

// AppendageData is the view state of a draggable limb.
type AppendageData struct {
	Kind     sim.AppendageKind
	Dragging bool
	// GrabOffset is the limb angle minus the pointer angle when the drag began,
	// so the limb does not jump to the pointer.
	GrabOffset float64
	// ShowBorder draws the dashed "drag me" hint; hidden after the first drag
	// and shown again on reset.
	ShowBorder bool
}

var Appendage = donburi.NewComponentType[AppendageData]()
