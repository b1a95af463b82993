// Package sweep runs the charge model headless under scripted rubbing to
// compare threshold tables and arm poses, and stores the outcomes.
package sweep

import (
	"fmt"
	"math"

	"github.com/automoto/travoltage/shared/gamemath"
	"github.com/automoto/travoltage/sim"
	"github.com/ojrac/opensimplex-go"
)

// Scenario is one headless run.
type Scenario struct {
	Name       string
	Thresholds []sim.Threshold
	// ArmPosition holds the arm at this quantized position out of ArmSteps
	// for the whole run.
	ArmPosition int
	ArmSteps    int
	Seed        int64 // leg motion noise
	Ticks       int
	// RubSpeed is noise distance travelled per tick; Amplitude stretches the
	// noise around the middle of the leg range before clamping.
	RubSpeed  float64
	Amplitude float64
}

// Result summarizes a run.
type Result struct {
	Name           string  `db:"name"`
	ArmPosition    int     `db:"arm_position"`
	FingerDistance float64 `db:"finger_distance"`
	Sparks         int     `db:"sparks"`
	FirstSparkTick int     `db:"first_spark_tick"` // -1 when no spark fired
	PeakCharge     int     `db:"peak_charge"`
	Minted         int     `db:"minted"`
	Drained        int     `db:"drained"`
	FinalCharge    int     `db:"final_charge"`
}

// Run drives a model built from base through s. The leg follows layered
// simplex noise so the shoe wanders on and off the carpet.
func Run(base sim.Config, s Scenario) (Result, error) {
	cfg := base
	if s.Thresholds != nil {
		cfg.Thresholds = s.Thresholds
	}
	m, err := sim.NewModel(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	res := Result{Name: s.Name, ArmPosition: s.ArmPosition, FirstSparkTick: -1}
	tick := 0
	m.Accumulator.Added.Subscribe(func(sim.Carrier) { res.Minted++ })
	m.Accumulator.Removed.Subscribe(func(sim.Carrier) { res.Drained++ })
	m.Decider.Spark.Subscribe(func(visible bool) {
		if !visible {
			return
		}
		res.Sparks++
		if res.FirstSparkTick < 0 {
			res.FirstSparkTick = tick
		}
	})

	steps := s.ArmSteps
	if steps <= 0 {
		steps = 100
	}
	m.SetArmAngle(m.Arm.AngleAt(s.ArmPosition, steps))

	noise := opensimplex.NewNormalized(s.Seed)
	leg := cfg.Leg
	dt := 1.0 / 60
	for tick = 0; tick < s.Ticks; tick++ {
		n := octaveNoise(noise, float64(tick)*s.RubSpeed, float64(s.Seed%1000), 3, 1, 0.5)
		t := gamemath.Clamp(0.5+(n-0.5)*s.Amplitude, 0, 1)
		m.SetLegAngle(gamemath.Lerp(leg.MinAngle, leg.MaxAngle, t))
		m.Tick(dt)
		if c := m.Accumulator.Count(); c > res.PeakCharge {
			res.PeakCharge = c
		}
	}

	res.FingerDistance = m.FingerDistance()
	res.FinalCharge = m.Accumulator.Count()
	return res, nil
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Grid builds one scenario per arm position and threshold table.
func Grid(base sim.Config, ticks int, seed int64) []Scenario {
	tables := []struct {
		name  string
		table []sim.Threshold
	}{
		{"default", base.Thresholds},
		{"touch-only", firstRow(base.Thresholds)},
		{"wide", scaleDistances(base.Thresholds, 1.5)},
	}
	positions := []int{50, 47, 44, 40, 35, 30}

	var out []Scenario
	for _, tb := range tables {
		for _, pos := range positions {
			out = append(out, Scenario{
				Name:        fmt.Sprintf("%s/arm%03d", tb.name, pos),
				Thresholds:  tb.table,
				ArmPosition: pos,
				ArmSteps:    100,
				Seed:        seed,
				Ticks:       ticks,
				RubSpeed:    0.02,
				Amplitude:   1.6,
			})
		}
	}
	return out
}

func firstRow(table []sim.Threshold) []sim.Threshold {
	if len(table) == 0 {
		return []sim.Threshold{}
	}
	lowest := table[0]
	for _, th := range table[1:] {
		if th.MinCharge < lowest.MinCharge {
			lowest = th
		}
	}
	return []sim.Threshold{lowest}
}

func scaleDistances(table []sim.Threshold, k float64) []sim.Threshold {
	out := make([]sim.Threshold, len(table))
	for i, th := range table {
		out[i] = sim.Threshold{MinCharge: th.MinCharge, MaxDistance: math.Round(th.MaxDistance * k)}
	}
	return out
}
