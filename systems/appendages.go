package systems

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/gamemath"
	"github.com/automoto/travoltage/sim"
	"github.com/automoto/travoltage/systems/factory"
	"github.com/automoto/travoltage/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateAppendages turns pointer drags and key nudges into latched limb
// angles on the model. Must run after UpdateInput and before UpdateSimulation.
func UpdateAppendages(e *ecs.ECS) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	input := getOrCreateInput(e)

	if input.PointerJustPressed {
		beginDrag(e, sd.Model, input.Pointer)
	}

	tags.Appendage.Each(e.World, func(entry *donburi.Entry) {
		ad := components.Appendage.Get(entry)
		limb := sd.Model.Appendage(ad.Kind)

		if ad.Dragging {
			if !input.PointerDown {
				ad.Dragging = false
				return
			}
			target := gamemath.AngleTo(limb.Config().Pivot, input.Pointer) + ad.GrabOffset
			setAngle(sd.Model, ad.Kind, gamemath.NearestAngle(limb.Angle(), target))
			return
		}

		if dir := nudgeDirection(input, ad.Kind); dir != 0 {
			steps := factory.ViewConfig(ad.Kind).KeyboardSteps
			setAngle(sd.Model, ad.Kind, limb.AngleAt(limb.Position(steps)+dir, steps))
			ad.ShowBorder = false
		}
	})
}

// beginDrag starts dragging the limb whose grab handle is under the pointer.
// When handles overlap the one with the nearest tip wins.
func beginDrag(e *ecs.ECS, m *sim.Model, at dmath.Vec2) {
	probe, ok := tags.Pointer.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(probe)
	obj.X, obj.Y = at.X, at.Y
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvGrab)
	if check == nil {
		return
	}

	var best *donburi.Entry
	bestDist := 0.0
	for _, hit := range check.ObjectsByTags(tags.ResolvGrab) {
		if !contains(hit, at) {
			continue
		}
		entry, ok := hit.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		kind := components.Appendage.Get(entry).Kind
		d := gamemath.Distance(m.Appendage(kind).TipPosition(), at)
		if best == nil || d < bestDist {
			best, bestDist = entry, d
		}
	}
	if best == nil {
		return
	}

	ad := components.Appendage.Get(best)
	limb := m.Appendage(ad.Kind)
	ad.Dragging = true
	ad.ShowBorder = false
	ad.GrabOffset = limb.Angle() - gamemath.AngleTo(limb.Config().Pivot, at)
}

func contains(obj *resolv.Object, p dmath.Vec2) bool {
	return p.X >= obj.X && p.X < obj.X+obj.W && p.Y >= obj.Y && p.Y < obj.Y+obj.H
}

// nudgeDirection returns the position step requested from the keyboard.
// Clockwise on screen is increasing angle; the foot swings forward as the
// leg angle decreases.
func nudgeDirection(input *components.InputData, kind sim.AppendageKind) int {
	delay, interval := cfg.Input.RepeatDelay, cfg.Input.RepeatInterval
	plus, minus := cfg.ActionArmClockwise, cfg.ActionArmCounterClockwise
	if kind == sim.Leg {
		plus, minus = cfg.ActionLegBackward, cfg.ActionLegForward
	}
	dir := 0
	if input.Repeating(plus, delay, interval) {
		dir++
	}
	if input.Repeating(minus, delay, interval) {
		dir--
	}
	return dir
}

func setAngle(m *sim.Model, kind sim.AppendageKind, angle float64) {
	if kind == sim.Leg {
		m.SetLegAngle(angle)
		return
	}
	m.SetArmAngle(angle)
}

// onAppendagesReset shows the drag hint again on limbs not being dragged.
func onAppendagesReset(e *ecs.ECS) {
	tags.Appendage.Each(e.World, func(entry *donburi.Entry) {
		ad := components.Appendage.Get(entry)
		if !ad.Dragging {
			ad.ShowBorder = true
		}
	})
}

// armDragging reports whether the pointer is dragging the arm.
func armDragging(e *ecs.ECS) bool {
	dragging := false
	tags.Appendage.Each(e.World, func(entry *donburi.Entry) {
		ad := components.Appendage.Get(entry)
		if ad.Kind == sim.Arm && ad.Dragging {
			dragging = true
		}
	})
	return dragging
}
