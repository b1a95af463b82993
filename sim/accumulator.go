package sim

import (
	"math"
	"math/rand/v2"

	dmath "github.com/yohamta/donburi/features/math"
)

// Carrier is one unit of accumulated charge.
type Carrier struct {
	ID       uint64
	Position dmath.Vec2
	Removed  bool
}

// All matches every carrier; pass it to Retire to drain everything.
func All(*Carrier) bool { return true }

// Accumulator owns the carriers, mints them as the shoe rubs the carpet and
// sweeps them once they are retired.
type Accumulator struct {
	band  Band
	step  float64
	spawn Rect
	max   int
	rng   *rand.Rand

	carriers []*Carrier
	nextID   uint64
	lastStep int

	// Added fires for every minted carrier, Removed for every dropped one.
	Added   Topic[Carrier]
	Removed Topic[Carrier]
}

func newAccumulator(cfg Config) *Accumulator {
	a := &Accumulator{
		band:  cfg.ContactBand,
		step:  cfg.FrictionStep,
		spawn: cfg.SpawnBox,
		max:   cfg.MaxCarriers,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	a.Resync(cfg.Leg.InitialAngle)
	return a
}

// frictionStep returns the step index of angle, or -1 off the carpet.
func (a *Accumulator) frictionStep(angle float64) int {
	if !a.band.Contains(angle) {
		return -1
	}
	if a.step <= 0 {
		return 0
	}
	return int(math.Floor((angle - a.band.Min) / a.step))
}

// OnLegAngleChanged mints at most one carrier when the leg enters a friction
// step it was not already in. It reports whether a carrier was minted.
func (a *Accumulator) OnLegAngleChanged(angle float64) bool {
	s := a.frictionStep(angle)
	prev := a.lastStep
	a.lastStep = s
	if s < 0 || s == prev {
		return false
	}
	if a.max > 0 && len(a.carriers) >= a.max {
		return false
	}
	a.mint()
	return true
}

func (a *Accumulator) mint() {
	a.nextID++
	c := &Carrier{
		ID: a.nextID,
		Position: dmath.Vec2{
			X: a.spawn.X + a.spawn.Width*a.rng.Float64(),
			Y: a.spawn.Y + a.spawn.Height*a.rng.Float64(),
		},
	}
	a.carriers = append(a.carriers, c)
	a.Added.Publish(*c)
}

// Resync records the leg angle as the current friction step without minting.
func (a *Accumulator) Resync(legAngle float64) {
	a.lastStep = a.frictionStep(legAngle)
}

// Retire marks every carrier matching pred as removed and returns how many
// were newly marked. A nil pred matches nothing.
func (a *Accumulator) Retire(pred func(*Carrier) bool) int {
	if pred == nil {
		return 0
	}
	n := 0
	for _, c := range a.carriers {
		if !c.Removed && pred(c) {
			c.Removed = true
			n++
		}
	}
	return n
}

// Sweep drops every removed carrier and returns how many were dropped.
func (a *Accumulator) Sweep() int {
	return a.SweepN(0)
}

// SweepN drops up to n removed carriers, oldest first. n <= 0 drops them all.
func (a *Accumulator) SweepN(n int) int {
	dropped := 0
	kept := a.carriers[:0]
	var gone []Carrier
	for _, c := range a.carriers {
		if c.Removed && (n <= 0 || dropped < n) {
			dropped++
			gone = append(gone, *c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(a.carriers); i++ {
		a.carriers[i] = nil
	}
	a.carriers = kept
	for _, c := range gone {
		a.Removed.Publish(c)
	}
	return dropped
}

// Clear drops every carrier regardless of state.
func (a *Accumulator) Clear() int {
	gone := a.carriers
	a.carriers = nil
	for _, c := range gone {
		c.Removed = true
		a.Removed.Publish(*c)
	}
	return len(gone)
}

// Count returns the number of carriers held, retired or not.
func (a *Accumulator) Count() int {
	return len(a.carriers)
}

// ActiveCount returns the number of carriers not yet retired.
func (a *Accumulator) ActiveCount() int {
	n := 0
	for _, c := range a.carriers {
		if !c.Removed {
			n++
		}
	}
	return n
}

// Carriers returns a snapshot of the held carriers in insertion order.
func (a *Accumulator) Carriers() []Carrier {
	out := make([]Carrier, len(a.carriers))
	for i, c := range a.carriers {
		out[i] = *c
	}
	return out
}
