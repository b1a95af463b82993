package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"syscall"
	"time"

	"github.com/automoto/travoltage/shared/scenedata"
	"github.com/automoto/travoltage/sim"
	"github.com/automoto/travoltage/sweep"
	"github.com/dustin/go-humanize"
)

func main() {
	dbPath := flag.String("db", "travoltage-sweep.db", "SQLite file results are stored in")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	ticks := flag.Int("ticks", 3600, "ticks to simulate per scenario")
	seed := flag.Int64("seed", 1, "leg motion noise seed")
	scenePath := flag.String("scene", "", "TMX scene supplying the geometry (default: the stock scene)")
	flag.Parse()

	base := sim.DefaultConfig()
	if *scenePath != "" {
		layout, err := scenedata.Load(os.DirFS(filepath.Dir(*scenePath)), filepath.Base(*scenePath))
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		base = layout.Apply(base)
	}

	store, err := sweep.OpenStore(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *dbPath, err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping sweep...")
		cancel()
	}()

	scenarios := sweep.Grid(base, *ticks, *seed)
	run := sweep.NewRunInfo(*ticks, *seed, len(scenarios))
	fmt.Printf("Sweeping %d scenarios (%d workers, %s ticks each)\n",
		len(scenarios), *workers, humanize.Comma(int64(*ticks)))

	start := time.Now()
	results, err := sweep.RunAll(ctx, base, scenarios, *workers)
	if err != nil {
		log.Printf("Warning: sweep incomplete: %v", err)
	}
	elapsed := time.Since(start)

	if err := store.SaveRun(run, results); err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}

	report(run, results, elapsed)
}

func report(run sweep.RunInfo, results []sweep.Result, elapsed time.Duration) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Sparks > results[j].Sparks
	})

	var minted, drained int64
	for _, r := range results {
		minted += int64(r.Minted)
		drained += int64(r.Drained)
	}

	fmt.Printf("\nRun %s: %d results in %s, %s carriers minted, %s drained\n",
		run.ID, len(results), elapsed.Round(time.Millisecond), humanize.Comma(minted), humanize.Comma(drained))
	for i, r := range results {
		first := "never"
		if r.FirstSparkTick >= 0 {
			first = "tick " + humanize.Comma(int64(r.FirstSparkTick))
		}
		fmt.Printf("%2d) %-18s dist=%6.1f sparks=%-4d first=%-12s peak=%-3d final=%d\n",
			i+1, r.Name, r.FingerDistance, r.Sparks, first, r.PeakCharge, r.FinalCharge)
	}
}
