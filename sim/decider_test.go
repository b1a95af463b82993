package sim

import "testing"

func TestThresholdsEvaluatedInAscendingOrder(t *testing.T) {
	d := newDecider([]Threshold{
		{MinCharge: 30, MaxDistance: 60},
		{MinCharge: 10, MaxDistance: 20},
		{MinCharge: 20, MaxDistance: 40},
	}, 0)
	got := d.Thresholds()
	for i := 1; i < len(got); i++ {
		if got[i-1].MinCharge > got[i].MinCharge {
			t.Fatalf("thresholds not sorted: %v", got)
		}
	}
}

func TestMatch(t *testing.T) {
	d := newDecider(DefaultConfig().Thresholds, 0)
	tests := []struct {
		name     string
		active   int
		distance float64
		want     int
	}{
		{"no charge", 0, 0, -1},
		{"charge at boundary", 10, 5, -1},
		{"first row", 11, 19, 0},
		{"distance at boundary", 11, 20, -1},
		{"more charge reaches further", 16, 29, 1},
		{"lowest row wins", 100, 5, 0},
		{"lots of charge far away", 71, 139, 9},
		{"too far for anything", 100, 140, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Match(tt.active, tt.distance); got != tt.want {
				t.Fatalf("Match(%d, %v) = %d, want %d", tt.active, tt.distance, got, tt.want)
			}
		})
	}
}

func TestTriggerReportsStartingRow(t *testing.T) {
	cfg := testConfig(15)
	cfg.DrainPerTick = 1
	m := MustNewModel(cfg)
	if _, ok := m.Decider.Trigger(); ok {
		t.Fatalf("trigger reported while idle")
	}
	rub(m, 11)
	m.SetArmAngle(0)
	m.Tick(dt)
	th, ok := m.Decider.Trigger()
	if !ok || th.MinCharge != 10 || th.MaxDistance != 20 {
		t.Fatalf("trigger = %+v, %v", th, ok)
	}
}

func TestAbortWhileIdleIsSilent(t *testing.T) {
	d := newDecider(nil, 0)
	fired := false
	d.Spark.Subscribe(func(bool) { fired = true })
	d.Abort()
	if fired || d.State() != Idle {
		t.Fatalf("abort on an idle decider published a spark change")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Discharging.String() != "discharging" || State(9).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
