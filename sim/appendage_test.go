package sim

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func testAppendage() *Appendage {
	return newAppendage(Leg, AppendageConfig{
		Pivot:        dmath.Vec2{X: 10, Y: 10},
		Length:       20,
		MinAngle:     0,
		MaxAngle:     2,
		InitialAngle: 1,
	})
}

func TestSetAngleClampsAndNotifies(t *testing.T) {
	a := testAppendage()
	var changes []AngleChange
	a.Changed.Subscribe(func(c AngleChange) { changes = append(changes, c) })

	if got := a.SetAngle(5); got != 2 {
		t.Fatalf("SetAngle(5) = %v, want 2", got)
	}
	if got := a.SetAngle(-5); got != 0 {
		t.Fatalf("SetAngle(-5) = %v, want 0", got)
	}
	a.SetAngle(0)
	a.SetAngle(math.NaN())

	if len(changes) != 2 {
		t.Fatalf("changes = %v, want two", changes)
	}
	if changes[0].Kind != Leg || changes[0].Angle != 2 || changes[1].Angle != 0 {
		t.Fatalf("changes = %v", changes)
	}
}

func TestAngularVelocity(t *testing.T) {
	a := testAppendage()
	a.SetAngle(1.5)
	a.Tick(0.5)
	if got := a.AngularVelocity(); got != 1 {
		t.Fatalf("velocity = %v, want 1", got)
	}
	a.Tick(0.5)
	if got := a.AngularVelocity(); got != 0 {
		t.Fatalf("velocity when still = %v, want 0", got)
	}
	a.SetAngle(1)
	a.Tick(0)
	if got := a.AngularVelocity(); got != 0 {
		t.Fatalf("velocity with zero dt = %v, want 0", got)
	}
}

func TestTipPosition(t *testing.T) {
	a := newAppendage(Arm, AppendageConfig{
		Pivot:        dmath.Vec2{X: 10, Y: 10},
		Length:       20,
		AngleOffset:  math.Pi / 2,
		MinAngle:     -math.Pi,
		MaxAngle:     math.Pi,
		InitialAngle: 0,
	})
	tip := a.FingerPosition()
	if math.Abs(tip.X-10) > 1e-9 || math.Abs(tip.Y-30) > 1e-9 {
		t.Fatalf("tip = %v, want (10, 30)", tip)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	a := testAppendage()
	for pos := 0; pos <= 30; pos++ {
		a.SetAngle(a.AngleAt(pos, 30))
		if got := a.Position(30); got != pos {
			t.Fatalf("position %d came back as %d", pos, got)
		}
	}
}
