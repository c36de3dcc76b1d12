package runner

import (
	"context"
	"time"

	"digital.vasic.webassert/pkg/logging"
	"digital.vasic.webassert/pkg/suite"
)

// startLivenessMonitor watches a progress reporter and cancels
// the run if no step completes within staleThreshold. It
// distinguishes a hung browser (no progress at all) from a
// slow-but-advancing run, which is never killed here no matter
// how long it takes.
//
// Returns a stop function and a buffered channel that receives
// one value if the monitor declared the run stuck. A zero
// threshold disables monitoring entirely.
func startLivenessMonitor(
	progress *suite.ProgressReporter,
	staleThreshold time.Duration,
	cancel context.CancelFunc,
	logger logging.Logger,
	suiteID suite.ID,
) (stop func(), stuck <-chan struct{}) {
	if staleThreshold <= 0 {
		return func() {}, nil
	}

	stuckCh := make(chan struct{}, 1)
	done := make(chan struct{})
	var stopOnce func()

	go func() {
		// Poll at a fraction of the threshold so detection lag
		// stays small relative to the threshold itself.
		interval := staleThreshold / 4
		if interval < time.Second {
			interval = time.Second
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		lastSeen := time.Now()

		for {
			select {
			case <-done:
				return

			case update, ok := <-progress.Channel():
				if !ok {
					return
				}
				lastSeen = update.Timestamp

			case <-ticker.C:
				idle := time.Since(lastSeen)
				if idle < staleThreshold {
					continue
				}
				if logger != nil {
					logger.Warn("liveness_stuck",
						logging.Field{
							Key: "suite_id", Value: suiteID,
						},
						logging.Field{
							Key:   "idle_seconds",
							Value: idle.Seconds(),
						},
					)
				}
				stuckCh <- struct{}{}
				cancel()
				return
			}
		}
	}()

	var stopped bool
	stopOnce = func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}

	return stopOnce, stuckCh
}
