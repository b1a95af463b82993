package components

import (
	cfg "github.com/automoto/travoltage/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
	InputTouch
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	HeldFrames      [cfg.ActionCount]int
	LastInputMethod InputMethod

	// Pointer merges the mouse and the first active touch
	Pointer             dmath.Vec2
	PointerDown         bool
	PointerJustPressed  bool
	PointerJustReleased bool
}

var Input = donburi.NewComponentType[InputData]()

// JustPressed reports whether action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

// Repeating reports whether a held action should fire this frame: once on
// press, then every interval frames after delay frames.
func (in *InputData) Repeating(action cfg.ActionID, delay, interval int) bool {
	if !in.Current[action] {
		return false
	}
	held := in.HeldFrames[action]
	if held == 1 {
		return true
	}
	if held <= delay || interval <= 0 {
		return false
	}
	return (held-delay)%interval == 0
}
