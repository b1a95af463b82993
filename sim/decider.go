package sim

import "sort"

// State is the discharge state.
type State int

const (
	Idle State = iota
	Discharging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Discharging:
		return "discharging"
	default:
		return "unknown"
	}
}

// Decider runs the spark state machine.
type Decider struct {
	thresholds []Threshold
	drain      int

	state   State
	trigger int // index of the threshold that started the current episode

	// Spark fires true when a discharge starts and false when it ends.
	Spark Topic[bool]
}

func newDecider(thresholds []Threshold, drainPerTick int) *Decider {
	table := append([]Threshold(nil), thresholds...)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].MinCharge < table[j].MinCharge
	})
	return &Decider{
		thresholds: table,
		drain:      drainPerTick,
		trigger:    -1,
	}
}

// State returns the current state.
func (d *Decider) State() State { return d.state }

// Thresholds returns the table in evaluation order.
func (d *Decider) Thresholds() []Threshold {
	return append([]Threshold(nil), d.thresholds...)
}

// Trigger returns the threshold that started the running episode.
func (d *Decider) Trigger() (Threshold, bool) {
	if d.state != Discharging || d.trigger < 0 {
		return Threshold{}, false
	}
	return d.thresholds[d.trigger], true
}

// Match returns the index of the first threshold satisfied by the given charge
// and distance, or -1.
func (d *Decider) Match(activeCount int, distance float64) int {
	for i, th := range d.thresholds {
		if activeCount > th.MinCharge && distance < th.MaxDistance {
			return i
		}
	}
	return -1
}

// Step advances the machine by one tick against acc.
//
// Idle: if a threshold matches, enter Discharging, publish Spark(true) and
// retire every carrier. Discharging: carriers minted since the spark started
// join the discharge, up to the drain budget is swept, and once the
// accumulator is empty the machine returns to Idle and publishes Spark(false).
func (d *Decider) Step(acc *Accumulator, distance float64) State {
	switch d.state {
	case Idle:
		idx := d.Match(acc.ActiveCount(), distance)
		if idx < 0 {
			return d.state
		}
		d.state = Discharging
		d.trigger = idx
		d.Spark.Publish(true)
		acc.Retire(All)
	case Discharging:
		acc.Retire(All)
		acc.SweepN(d.drain)
		if acc.Count() == 0 {
			d.state = Idle
			d.trigger = -1
			d.Spark.Publish(false)
		}
	}
	return d.state
}

// Abort forces the machine back to Idle. The spark is hidden if it was showing.
func (d *Decider) Abort() {
	if d.state != Discharging {
		return
	}
	d.state = Idle
	d.trigger = -1
	d.Spark.Publish(false)
}
