package sweep

import (
	"context"
	"sync"

	"github.com/automoto/travoltage/sim"
)

type job struct {
	index    int
	scenario Scenario
}

type outcome struct {
	index  int
	result Result
	err    error
}

// RunAll runs scenarios on workers goroutines and returns the results in
// scenario order. The first scenario error, or ctx's error when it is
// cancelled first, is returned alongside the results gathered so far.
func RunAll(ctx context.Context, base sim.Config, scenarios []Scenario, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan job)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := Run(base, j.scenario)
				outcomes <- outcome{index: j.index, result: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		defer close(jobs)
		for i, s := range scenarios {
			select {
			case jobs <- job{index: i, scenario: s}:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, len(scenarios))
	done := make([]bool, len(scenarios))
	var firstErr error
	for o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results[o.index] = o.result
		done[o.index] = true
	}

	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		kept := results[:0]
		for i, ok := range done {
			if ok {
				kept = append(kept, results[i])
			}
		}
		return kept, firstErr
	}
	return results, nil
}
