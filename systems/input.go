package systems

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateAppendages in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	for id := range input.Current {
		if input.Current[id] {
			input.HeldFrames[id]++
		} else {
			input.HeldFrames[id] = 0
		}
	}

	pointerUsed, touched := updatePointer(input)

	switch {
	case touched:
		input.LastInputMethod = components.InputTouch
	case pointerUsed:
		input.LastInputMethod = components.InputMouse
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// updatePointer merges the mouse and the first active touch into one pointer.
// It reports whether the pointer was used and whether that was a touch.
func updatePointer(input *components.InputData) (used, touched bool) {
	wasDown := input.PointerDown

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.Pointer = dmath.Vec2{X: float64(x), Y: float64(y)}
		input.PointerDown = true
		touched = true
	} else {
		x, y := ebiten.CursorPosition()
		moved := float64(x) != input.Pointer.X || float64(y) != input.Pointer.Y
		input.Pointer = dmath.Vec2{X: float64(x), Y: float64(y)}
		input.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		used = moved || input.PointerDown ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	input.PointerJustPressed = input.PointerDown && !wasDown
	input.PointerJustReleased = !input.PointerDown && wasDown
	return used || touched, touched
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
