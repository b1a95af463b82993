package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/travoltage/sim"
)

func scenario(name string, armPosition int) Scenario {
	return Scenario{
		Name:        name,
		ArmPosition: armPosition,
		ArmSteps:    100,
		Seed:        42,
		Ticks:       3000,
		RubSpeed:    0.02,
		Amplitude:   1.6,
	}
}

func TestRunSparksWithFingerAtKnob(t *testing.T) {
	res, err := Run(sim.DefaultConfig(), scenario("close", 50))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.FingerDistance > 5 {
		t.Fatalf("finger distance = %v, want the closest pose", res.FingerDistance)
	}
	if res.Minted <= 10 {
		t.Fatalf("minted = %d, the leg barely rubbed", res.Minted)
	}
	if res.Sparks == 0 || res.FirstSparkTick < 0 {
		t.Fatalf("no spark with the finger on the knob: %+v", res)
	}
	if res.Drained+res.FinalCharge != res.Minted {
		t.Fatalf("carriers unaccounted for: minted %d drained %d final %d", res.Minted, res.Drained, res.FinalCharge)
	}
}

func TestRunNeverSparksFromFarthestPose(t *testing.T) {
	res, err := Run(sim.DefaultConfig(), scenario("far", 0))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Sparks != 0 || res.FirstSparkTick != -1 || res.Drained != 0 {
		t.Fatalf("sparked from the farthest pose: %+v", res)
	}
	if res.PeakCharge != res.FinalCharge || res.PeakCharge <= 10 {
		t.Fatalf("charge should only grow: peak %d final %d", res.PeakCharge, res.FinalCharge)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(sim.DefaultConfig(), scenario("a", 44))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(sim.DefaultConfig(), scenario("a", 44))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a != b {
		t.Fatalf("same scenario gave %+v and %+v", a, b)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	base := sim.DefaultConfig()
	base.Arm.Length = 0
	if _, err := Run(base, scenario("bad", 50)); !errors.Is(err, sim.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestGrid(t *testing.T) {
	base := sim.DefaultConfig()
	grid := Grid(base, 500, 3)
	if len(grid) != 18 {
		t.Fatalf("grid size = %d, want 18", len(grid))
	}
	names := map[string]bool{}
	for _, s := range grid {
		if names[s.Name] {
			t.Fatalf("duplicate scenario %s", s.Name)
		}
		names[s.Name] = true
		if s.Ticks != 500 || s.Seed != 3 {
			t.Fatalf("scenario %s lost ticks or seed", s.Name)
		}
	}
	if got := grid[6].Thresholds; len(got) != 1 || got[0].MinCharge != 10 {
		t.Fatalf("touch-only table = %v", got)
	}
	if got := grid[12].Thresholds[0].MaxDistance; got != 30 {
		t.Fatalf("wide table first distance = %v, want 30", got)
	}
}

func TestRunAllKeepsScenarioOrder(t *testing.T) {
	var scenarios []Scenario
	for _, pos := range []int{50, 0, 47, 30} {
		s := scenario("", pos)
		s.Name = string(rune('a' + len(scenarios)))
		s.Ticks = 600
		scenarios = append(scenarios, s)
	}

	results, err := RunAll(context.Background(), sim.DefaultConfig(), scenarios, 3)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(scenarios) {
		t.Fatalf("results = %d, want %d", len(results), len(scenarios))
	}
	for i, r := range results {
		if r.Name != scenarios[i].Name || r.ArmPosition != scenarios[i].ArmPosition {
			t.Fatalf("result %d is %s/%d, want %s/%d", i, r.Name, r.ArmPosition, scenarios[i].Name, scenarios[i].ArmPosition)
		}
	}
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scenarios := []Scenario{scenario("a", 50), scenario("b", 40)}
	results, err := RunAll(ctx, sim.DefaultConfig(), scenarios, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) > len(scenarios) {
		t.Fatalf("more results than scenarios: %d", len(results))
	}
}
