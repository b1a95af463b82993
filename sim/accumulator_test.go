package sim

import "testing"

func TestOutsideBandNeverMints(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	for _, a := range []float64{0, 0.3, 0.99, 2.01, 2.5, 3, -1, 0.5} {
		if acc.OnLegAngleChanged(a) {
			t.Fatalf("angle %v outside the band minted a carrier", a)
		}
	}
	if got := acc.Count(); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
}

func TestCrossingsMintOnePerEntry(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	const n = 7
	for i := 0; i < n; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.2)
		// Staying inside the band is not another crossing.
		acc.OnLegAngleChanged(1.4)
		acc.OnLegAngleChanged(1.9)
	}
	if got := acc.Count(); got != n {
		t.Fatalf("count = %d, want %d", got, n)
	}
}

func TestFrictionStepsMintPerStep(t *testing.T) {
	cfg := testConfig(0)
	cfg.FrictionStep = 0.25
	acc := newAccumulator(cfg)

	// 1.0 .. 2.0 in quarter steps crosses into five distinct steps.
	for _, a := range []float64{1.0, 1.1, 1.25, 1.3, 1.5, 1.75, 2.0} {
		acc.OnLegAngleChanged(a)
	}
	if got := acc.Count(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	// Sweeping back down mints again for every step re-entered.
	for _, a := range []float64{1.75, 1.5, 1.25, 1.0} {
		acc.OnLegAngleChanged(a)
	}
	if got := acc.Count(); got != 9 {
		t.Fatalf("count = %d, want 9", got)
	}
}

func TestMaxCarriersCapsMinting(t *testing.T) {
	cfg := testConfig(0)
	cfg.MaxCarriers = 3
	acc := newAccumulator(cfg)
	for i := 0; i < 10; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.5)
	}
	if got := acc.Count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
}

func TestCarriersSpawnInsideBox(t *testing.T) {
	cfg := testConfig(0)
	acc := newAccumulator(cfg)
	for i := 0; i < 50; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.5)
	}
	box := cfg.SpawnBox
	for _, c := range acc.Carriers() {
		if c.Position.X < box.X || c.Position.X > box.X+box.Width ||
			c.Position.Y < box.Y || c.Position.Y > box.Y+box.Height {
			t.Fatalf("carrier %d at %v outside spawn box %+v", c.ID, c.Position, box)
		}
	}
}

func TestSeedMakesSpawnDeterministic(t *testing.T) {
	a := newAccumulator(testConfig(0))
	b := newAccumulator(testConfig(0))
	for i := 0; i < 5; i++ {
		a.OnLegAngleChanged(0.5)
		a.OnLegAngleChanged(1.5)
		b.OnLegAngleChanged(0.5)
		b.OnLegAngleChanged(1.5)
	}
	ca, cb := a.Carriers(), b.Carriers()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("carrier %d differs: %+v vs %+v", i, ca[i], cb[i])
		}
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	for i := 0; i < 4; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.5)
	}
	removed := 0
	acc.Removed.Subscribe(func(Carrier) { removed++ })

	acc.Retire(func(c *Carrier) bool { return c.ID%2 == 0 })
	if got := acc.Sweep(); got != 2 {
		t.Fatalf("first sweep dropped %d, want 2", got)
	}
	if got := acc.Sweep(); got != 0 {
		t.Fatalf("second sweep dropped %d, want 0", got)
	}
	if acc.Count() != 2 || removed != 2 {
		t.Fatalf("count = %d removed = %d, want 2 and 2", acc.Count(), removed)
	}
}

func TestRetireNilMatchesNothing(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	acc.OnLegAngleChanged(1.5)
	if n := acc.Retire(nil); n != 0 || acc.ActiveCount() != 1 {
		t.Fatalf("nil predicate retired %d", n)
	}
	if n := acc.Retire(All); n != 1 {
		t.Fatalf("retired %d, want 1", n)
	}
	if n := acc.Retire(All); n != 0 {
		t.Fatalf("retiring twice marked %d again", n)
	}
}

func TestSweepNDropsOldestFirst(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	for i := 0; i < 5; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.5)
	}
	var order []uint64
	acc.Removed.Subscribe(func(c Carrier) { order = append(order, c.ID) })
	acc.Retire(All)

	if got := acc.SweepN(2); got != 2 {
		t.Fatalf("dropped %d, want 2", got)
	}
	if got := acc.SweepN(2); got != 2 {
		t.Fatalf("dropped %d, want 2", got)
	}
	if got := acc.SweepN(2); got != 1 {
		t.Fatalf("dropped %d, want 1", got)
	}
	want := []uint64{1, 2, 3, 4, 5}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("removal order = %v, want %v", order, want)
		}
	}
}

func TestClearNotifiesEveryCarrier(t *testing.T) {
	acc := newAccumulator(testConfig(0))
	for i := 0; i < 3; i++ {
		acc.OnLegAngleChanged(0.5)
		acc.OnLegAngleChanged(1.5)
	}
	var gone []Carrier
	acc.Removed.Subscribe(func(c Carrier) { gone = append(gone, c) })
	if n := acc.Clear(); n != 3 {
		t.Fatalf("cleared %d, want 3", n)
	}
	for _, c := range gone {
		if !c.Removed {
			t.Fatalf("carrier %d notified without the removed flag", c.ID)
		}
	}
	if acc.Count() != 0 || len(gone) != 3 {
		t.Fatalf("count = %d notified = %d", acc.Count(), len(gone))
	}
}
