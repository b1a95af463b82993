package sim

import (
	"math"

	"github.com/automoto/travoltage/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// AppendageKind names a limb.
type AppendageKind int

const (
	Arm AppendageKind = iota
	Leg
)

func (k AppendageKind) String() string {
	switch k {
	case Arm:
		return "arm"
	case Leg:
		return "leg"
	default:
		return "unknown"
	}
}

// AngleChange is published whenever an appendage's angle changes.
type AngleChange struct {
	Kind  AppendageKind
	Angle float64
}

// Appendage is a limb rotating around a pivot within a bounded range.
type Appendage struct {
	kind AppendageKind
	cfg  AppendageConfig

	angle           float64
	previousAngle   float64
	angularVelocity float64

	// Changed fires after SetAngle moves the limb.
	Changed Topic[AngleChange]
}

func newAppendage(kind AppendageKind, cfg AppendageConfig) *Appendage {
	return &Appendage{
		kind:          kind,
		cfg:           cfg,
		angle:         cfg.InitialAngle,
		previousAngle: cfg.InitialAngle,
	}
}

// Kind returns which limb this is.
func (a *Appendage) Kind() AppendageKind { return a.kind }

// Config returns the limb geometry.
func (a *Appendage) Config() AppendageConfig { return a.cfg }

// Angle returns the current angle in radians.
func (a *Appendage) Angle() float64 { return a.angle }

// AngularVelocity returns the signed angle delta per second measured by the last Tick.
func (a *Appendage) AngularVelocity() float64 { return a.angularVelocity }

// SetAngle clamps angle to the configured range and applies it. Out-of-range
// input is not an error; drags routinely overshoot. It returns the applied angle.
func (a *Appendage) SetAngle(angle float64) float64 {
	if math.IsNaN(angle) {
		return a.angle
	}
	clamped := gamemath.Clamp(angle, a.cfg.MinAngle, a.cfg.MaxAngle)
	if clamped == a.angle {
		return clamped
	}
	a.angle = clamped
	a.Changed.Publish(AngleChange{Kind: a.kind, Angle: clamped})
	return clamped
}

// Tick recomputes the angular velocity over dt seconds.
func (a *Appendage) Tick(dt float64) {
	if dt > 0 {
		a.angularVelocity = (a.angle - a.previousAngle) / dt
	} else {
		a.angularVelocity = 0
	}
	a.previousAngle = a.angle
}

// TipPosition returns pivot + length·(cos θ, sin θ) with θ = angle + offset.
func (a *Appendage) TipPosition() dmath.Vec2 {
	return gamemath.PolarOffset(a.cfg.Pivot, a.cfg.Length, a.angle+a.cfg.AngleOffset)
}

// FingerPosition is TipPosition under the name the arm uses.
func (a *Appendage) FingerPosition() dmath.Vec2 {
	return a.TipPosition()
}

// Position quantizes the angle into 0..steps across the configured range.
func (a *Appendage) Position(steps int) int {
	span := a.cfg.MaxAngle - a.cfg.MinAngle
	if span <= 0 || steps <= 0 {
		return 0
	}
	return int(math.Round((a.angle - a.cfg.MinAngle) / span * float64(steps)))
}

// AngleAt is the inverse of Position.
func (a *Appendage) AngleAt(position, steps int) float64 {
	if steps <= 0 {
		return a.cfg.MinAngle
	}
	return a.cfg.MinAngle + float64(position)/float64(steps)*(a.cfg.MaxAngle-a.cfg.MinAngle)
}

// Reset restores the initial pose without notifying subscribers. Model.ResetAll
// uses it and then republishes the angles itself.
func (a *Appendage) Reset() {
	a.angle = a.cfg.InitialAngle
	a.previousAngle = a.cfg.InitialAngle
	a.angularVelocity = 0
}
