// Package sim is the charge accumulation and discharge model: a leg rubbing a
// carpet mints charge carriers, and a spark drains them once the finger is
// close enough to the doorknob for the amount of charge held.
//
// The package has no rendering, audio or input dependencies. A view drives it
// through SetArmAngle, SetLegAngle, ResetAll and Tick, and observes it through
// the Topic fields on the model and its parts.
package sim

import (
	"fmt"

	"github.com/automoto/travoltage/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Model is the single owner of all simulation state.
type Model struct {
	cfg Config

	Arm         *Appendage
	Leg         *Appendage
	Accumulator *Accumulator
	Decider     *Decider

	armInput, legInput     float64
	armPending, legPending bool

	ticks uint64

	// Resets fires after ResetAll, Stepped after every Tick with its dt.
	Resets  Topic[struct{}]
	Stepped Topic[float64]
}

// NewModel validates cfg and builds a model in its initial pose.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Model{
		cfg:         cfg,
		Arm:         newAppendage(Arm, cfg.Arm),
		Leg:         newAppendage(Leg, cfg.Leg),
		Accumulator: newAccumulator(cfg),
		Decider:     newDecider(cfg.Thresholds, cfg.DrainPerTick),
	}
	m.Leg.Changed.Subscribe(func(c AngleChange) {
		m.Accumulator.OnLegAngleChanged(c.Angle)
	})
	return m, nil
}

// MustNewModel is NewModel for configs known to be valid.
func MustNewModel(cfg Config) *Model {
	m, err := NewModel(cfg)
	if err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	return m
}

// Config returns the configuration the model was built with.
func (m *Model) Config() Config { return m.cfg }

// Doorknob returns the discharge target.
func (m *Model) Doorknob() dmath.Vec2 { return m.cfg.Doorknob }

// Ticks returns how many times Tick has run.
func (m *Model) Ticks() uint64 { return m.ticks }

// SetArmAngle latches an arm angle to be applied on the next Tick.
func (m *Model) SetArmAngle(radians float64) {
	m.armInput = radians
	m.armPending = true
}

// SetLegAngle latches a leg angle to be applied on the next Tick.
func (m *Model) SetLegAngle(radians float64) {
	m.legInput = radians
	m.legPending = true
}

// Appendage returns the limb of the given kind.
func (m *Model) Appendage(kind AppendageKind) *Appendage {
	if kind == Leg {
		return m.Leg
	}
	return m.Arm
}

// FingerDistance is the distance from the fingertip to the doorknob.
func (m *Model) FingerDistance() float64 {
	return gamemath.Distance(m.Arm.FingerPosition(), m.cfg.Doorknob)
}

// ShoeOnCarpet reports whether the leg is inside the carpet contact band.
func (m *Model) ShoeOnCarpet() bool {
	return m.cfg.ContactBand.Contains(m.Leg.Angle())
}

// Sparking reports whether a discharge is in progress.
func (m *Model) Sparking() bool {
	return m.Decider.State() == Discharging
}

// Tick advances the simulation by dt seconds in a fixed order: latched input
// is applied (leg angle changes mint carriers synchronously), angular
// velocities are recomputed, then the decider evaluates or drains.
func (m *Model) Tick(dt float64) {
	if m.legPending {
		m.legPending = false
		m.Leg.SetAngle(m.legInput)
	}
	if m.armPending {
		m.armPending = false
		m.Arm.SetAngle(m.armInput)
	}
	m.Leg.Tick(dt)
	m.Arm.Tick(dt)

	m.Decider.Step(m.Accumulator, m.FingerDistance())

	m.ticks++
	m.Stepped.Publish(dt)
}

// ResetAll aborts any discharge, drops every carrier and restores both limbs to
// their initial angles. Pending input is discarded.
func (m *Model) ResetAll() {
	m.armPending, m.legPending = false, false

	m.Decider.Abort()
	m.Accumulator.Clear()

	m.Arm.Reset()
	m.Leg.Reset()
	m.Accumulator.Resync(m.Leg.Angle())

	m.Arm.Changed.Publish(AngleChange{Kind: Arm, Angle: m.Arm.Angle()})
	// Leg subscribers include the accumulator; it is already resynced so
	// republishing the unchanged step mints nothing.
	m.Leg.Changed.Publish(AngleChange{Kind: Leg, Angle: m.Leg.Angle()})

	m.Resets.Publish(struct{}{})
}
