package runner

import (
	"context"
	"fmt"
	"sync"

	"digital.vasic.webassert/pkg/suite"
)

// runParallel executes independent suites concurrently. Each
// suite run opens its own session through the runner's factory,
// so runs never share browser state; steps within each suite
// remain strictly sequential.
//
// Results are returned in submission order regardless of
// completion order. The first hard execution error is reported,
// but every suite still runs to completion.
func runParallel(
	ctx context.Context,
	r *DefaultRunner,
	ids []suite.ID,
	config *suite.Config,
	maxConcurrency int,
) ([]*suite.Result, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	// Suites in the same batch must be mutually independent;
	// ordering between them is undefined.
	batch := make(map[suite.ID]bool, len(ids))
	for _, id := range ids {
		batch[id] = true
	}
	for _, id := range ids {
		def, err := r.registry.Get(id)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to get suite %s: %w", id, err,
			)
		}
		for _, dep := range def.Dependencies {
			if batch[dep] {
				return nil, fmt.Errorf(
					"suite %s depends on %s in the same "+
						"parallel batch", id, dep,
				)
			}
		}
	}

	results := make([]*suite.Result, len(ids))
	errs := make([]error, len(ids))
	sem := make(chan struct{}, maxConcurrency)

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(idx int, suiteID suite.ID) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Each goroutine gets its own config copy so the
			// per-run results directory never collides.
			cfg := *config
			cfg.SuiteID = suiteID
			cfg.ResultsDir = ""

			def, err := r.registry.Get(suiteID)
			if err != nil {
				errs[idx] = err
				return
			}

			result, err := r.executeSuite(ctx, def, &cfg)
			results[idx] = result
			errs[idx] = err
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
