package sweep

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sweep.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	run := NewRunInfo(1200, 9, 2)
	results := []Result{
		{Name: "b", ArmPosition: 40, FingerDistance: 31.5, Sparks: 0, FirstSparkTick: -1, PeakCharge: 100, Minted: 100, FinalCharge: 100},
		{Name: "a", ArmPosition: 50, FingerDistance: 2.25, Sparks: 4, FirstSparkTick: 180, PeakCharge: 11, Minted: 50, Drained: 44, FinalCharge: 6},
	}
	if err := store.SaveRun(run, results); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := store.Results(run.ID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(got) != 2 || got[0] != results[1] || got[1] != results[0] {
		t.Fatalf("Results = %+v", got)
	}

	stored, err := store.Run(run.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stored != run {
		t.Fatalf("Run = %+v, want %+v", stored, run)
	}

	runs, err := store.Runs()
	if err != nil || len(runs) != 1 {
		t.Fatalf("Runs = %v, %v", runs, err)
	}
}

func TestStoreRejectsDuplicateRun(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sweep.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	run := NewRunInfo(10, 1, 1)
	if err := store.SaveRun(run, []Result{{Name: "x", FirstSparkTick: -1}}); err != nil {
		t.Fatalf("first SaveRun: %v", err)
	}
	if err := store.SaveRun(run, nil); err == nil {
		t.Fatalf("second SaveRun with the same id succeeded")
	}
	got, err := store.Results(run.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("results after failed save = %v, %v", got, err)
	}
}

func TestStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.db")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	run := NewRunInfo(10, 1, 0)
	if err := store.SaveRun(run, nil); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	store.Close()

	store, err = OpenStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	if _, err := store.Run(run.ID); err != nil {
		t.Fatalf("run lost after reopen: %v", err)
	}
}
