// Package runner provides the suite execution engine. It
// compiles suite definitions into steps and runs them strictly
// in order against a browser session, with configurable
// timeouts, lifecycle hooks, and progress-based liveness
// detection.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"digital.vasic.webassert/pkg/logging"
	"digital.vasic.webassert/pkg/metrics"
	"digital.vasic.webassert/pkg/registry"
	"digital.vasic.webassert/pkg/session"
	"digital.vasic.webassert/pkg/step"
	"digital.vasic.webassert/pkg/suite"
)

// SessionFactory opens a browser session for one suite run,
// pointed at the suite's start URL. The returned close function
// releases the session when the run finishes.
type SessionFactory func(
	ctx context.Context,
	def *suite.Definition,
	cfg *suite.Config,
) (sess session.Session, close func() error, err error)

// Hook is a function invoked before or after suite execution.
// It receives the suite definition and its config.
type Hook func(
	ctx context.Context,
	def *suite.Definition,
	cfg *suite.Config,
) error

// Runner defines the interface for suite execution.
type Runner interface {
	// Run executes a single suite by ID.
	Run(
		ctx context.Context,
		id suite.ID,
		config *suite.Config,
	) (*suite.Result, error)

	// RunAll executes all registered suites in dependency
	// order.
	RunAll(
		ctx context.Context,
		config *suite.Config,
	) ([]*suite.Result, error)

	// RunSequence executes the given suites in order, checking
	// that dependencies have been met.
	RunSequence(
		ctx context.Context,
		ids []suite.ID,
		config *suite.Config,
	) ([]*suite.Result, error)

	// RunParallel executes independent suites concurrently
	// with the given concurrency limit. Each suite gets its
	// own session; steps within a suite stay serialized.
	RunParallel(
		ctx context.Context,
		ids []suite.ID,
		config *suite.Config,
		maxConcurrency int,
	) ([]*suite.Result, error)
}

// DefaultRunner is the standard Runner implementation.
type DefaultRunner struct {
	registry       registry.Registry
	sessions       SessionFactory
	builders       map[string]suite.CheckBuilder
	logger         logging.Logger
	metrics        metrics.StepMetrics
	timeout        time.Duration
	staleThreshold time.Duration
	resultsDir     string
	preHooks       []Hook
	postHooks      []Hook
}

// NewRunner creates a DefaultRunner with the supplied options.
// A session factory must be provided before Run is called.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		registry: registry.Default,
		metrics:  metrics.NoopMetrics{},
		timeout:  10 * time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single suite by ID.
func (r *DefaultRunner) Run(
	ctx context.Context,
	id suite.ID,
	config *suite.Config,
) (*suite.Result, error) {
	def, err := r.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get suite: %w", err)
	}
	return r.executeSuite(ctx, def, config)
}

// RunAll executes all registered suites in dependency order.
// If a suite passes, its results directory is propagated to
// downstream dependents.
func (r *DefaultRunner) RunAll(
	ctx context.Context,
	config *suite.Config,
) ([]*suite.Result, error) {
	ordered, err := r.registry.DependencyOrder()
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get dependency order: %w", err,
		)
	}

	var results []*suite.Result
	depResults := make(map[suite.ID]string)

	for _, def := range ordered {
		cfg := *config
		cfg.SuiteID = def.ID
		cfg.Dependencies = depResults

		result, execErr := r.executeSuite(ctx, def, &cfg)
		if execErr != nil {
			return results, fmt.Errorf(
				"suite %s failed: %w", def.ID, execErr,
			)
		}

		results = append(results, result)

		if result.Status == suite.StatusPassed {
			depResults[def.ID] = cfg.ResultsDir
		}
	}

	return results, nil
}

// RunSequence executes suites in the given order, verifying
// that each suite's dependencies have already been executed
// and passed within this sequence.
func (r *DefaultRunner) RunSequence(
	ctx context.Context,
	ids []suite.ID,
	config *suite.Config,
) ([]*suite.Result, error) {
	var results []*suite.Result
	depResults := make(map[suite.ID]string)

	for _, id := range ids {
		def, err := r.registry.Get(id)
		if err != nil {
			return results, fmt.Errorf(
				"failed to get suite %s: %w", id, err,
			)
		}

		for _, dep := range def.Dependencies {
			if _, exists := depResults[dep]; !exists {
				return results, fmt.Errorf(
					"suite %s has unmet dependency: %s",
					id, dep,
				)
			}
		}

		cfg := *config
		cfg.SuiteID = id
		cfg.Dependencies = depResults

		result, execErr := r.executeSuite(ctx, def, &cfg)
		if execErr != nil {
			return results, fmt.Errorf(
				"suite %s failed: %w", id, execErr,
			)
		}

		results = append(results, result)

		if result.Status == suite.StatusPassed {
			depResults[id] = cfg.ResultsDir
		}
	}

	return results, nil
}

// RunParallel executes the given suites concurrently using at
// most maxConcurrency goroutines. It delegates to the parallel
// runner implementation.
func (r *DefaultRunner) RunParallel(
	ctx context.Context,
	ids []suite.ID,
	config *suite.Config,
	maxConcurrency int,
) ([]*suite.Result, error) {
	return runParallel(ctx, r, ids, config, maxConcurrency)
}

// executeSuite runs a single suite through its full lifecycle:
// setup dir -> pre-hooks -> compile -> open session -> run
// steps in order with timeout and liveness -> post-hooks ->
// close session.
func (r *DefaultRunner) executeSuite(
	ctx context.Context,
	def *suite.Definition,
	config *suite.Config,
) (*suite.Result, error) {
	result := &suite.Result{
		RunID:     uuid.NewString(),
		SuiteID:   def.ID,
		SuiteName: def.Name,
		Status:    suite.StatusRunning,
		StartTime: time.Now(),
	}

	finish := func(status, errMsg string) *suite.Result {
		result.Status = status
		result.Error = errMsg
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(result.StartTime)
		return result
	}

	// Setup results directory.
	if err := r.setupResultsDir(config); err != nil {
		return finish(suite.StatusError, fmt.Sprintf(
			"failed to setup results directory: %v", err,
		)), nil
	}

	r.logEvent("suite_started",
		logging.Field{Key: "suite_id", Value: def.ID},
		logging.Field{Key: "run_id", Value: result.RunID},
	)

	// Pre-hooks.
	for _, hook := range r.preHooks {
		if err := hook(ctx, def, config); err != nil {
			return finish(suite.StatusError, fmt.Sprintf(
				"pre-hook failed: %v", err,
			)), nil
		}
	}

	// Compile the declarative checks into steps.
	steps, err := suite.Compile(def, r.builders)
	if err != nil {
		r.logEvent("suite_error",
			logging.Field{Key: "suite_id", Value: def.ID},
			logging.Field{Key: "error", Value: err.Error()},
		)
		return finish(suite.StatusError, fmt.Sprintf(
			"compilation failed: %v", err,
		)), nil
	}

	if r.sessions == nil {
		return finish(
			suite.StatusError, "no session factory configured",
		), nil
	}

	// Determine timeout and stale threshold: per-suite config
	// overrides the runner default.
	timeout := config.Timeout
	if timeout == 0 {
		timeout = r.timeout
	}
	staleThreshold := config.StaleThreshold
	if staleThreshold == 0 {
		staleThreshold = r.staleThreshold
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sess, closeSess, err := r.sessions(execCtx, def, config)
	if err != nil {
		r.logEvent("session_error",
			logging.Field{Key: "suite_id", Value: def.ID},
			logging.Field{Key: "error", Value: err.Error()},
		)
		return finish(suite.StatusError, fmt.Sprintf(
			"failed to open session: %v", err,
		)), nil
	}
	defer func() {
		if closeErr := closeSess(); closeErr != nil {
			r.logEvent("session_close_warning",
				logging.Field{Key: "suite_id", Value: def.ID},
				logging.Field{
					Key: "warning", Value: closeErr.Error(),
				},
			)
		}
	}()

	// Start the liveness monitor. Every completed step reports
	// progress; if none arrives within the stale threshold the
	// browser is considered hung and the run is cancelled.
	progress := suite.NewProgressReporter()
	defer progress.Close()

	stopLiveness, stuckCh := startLivenessMonitor(
		progress, staleThreshold, cancel, r.logger, def.ID,
	)
	defer stopLiveness()

	runErr := r.runSteps(
		execCtx, sess, steps, progress, result,
	)

	stopLiveness()

	wasStuck := false
	if stuckCh != nil {
		select {
		case <-stuckCh:
			wasStuck = true
		default:
		}
	}

	switch {
	case wasStuck:
		// Stuck takes priority over timeout since the liveness
		// monitor cancelled the context itself.
		r.logEvent("suite_stuck",
			logging.Field{Key: "suite_id", Value: def.ID},
			logging.Field{
				Key:   "stale_threshold_seconds",
				Value: staleThreshold.Seconds(),
			},
		)
		finish(suite.StatusStuck, fmt.Sprintf(
			"suite stuck: no step completed within %v",
			staleThreshold,
		))

	case execCtx.Err() == context.DeadlineExceeded:
		r.logEvent("suite_timeout",
			logging.Field{Key: "suite_id", Value: def.ID},
			logging.Field{
				Key: "timeout_seconds", Value: timeout.Seconds(),
			},
		)
		finish(suite.StatusTimedOut, "suite execution timed out")

	case runErr != nil:
		r.logEvent("suite_error",
			logging.Field{Key: "suite_id", Value: def.ID},
			logging.Field{Key: "error", Value: runErr.Error()},
		)
		finish(suite.StatusError, fmt.Sprintf(
			"execution failed: %v", runErr,
		))

	default:
		if result.AllPassed() {
			finish(suite.StatusPassed, "")
		} else {
			finish(suite.StatusFailed, "")
		}
	}

	// Post-hooks run regardless of outcome; failures are
	// warnings only.
	for _, hook := range r.postHooks {
		if err := hook(ctx, def, config); err != nil {
			r.logEvent("post_hook_warning",
				logging.Field{Key: "suite_id", Value: def.ID},
				logging.Field{Key: "warning", Value: err.Error()},
			)
		}
	}

	r.metrics.RecordSuite(
		string(def.ID), result.Status, result.Duration,
	)
	r.logEvent("suite_completed",
		logging.Field{Key: "suite_id", Value: def.ID},
		logging.Field{Key: "status", Value: result.Status},
		logging.Field{
			Key:   "duration_seconds",
			Value: result.Duration.Seconds(),
		},
	)

	return result, nil
}

// runSteps executes the compiled steps strictly in order
// against the shared session, recording one StepResult per
// step. The first driver error aborts the remaining steps.
func (r *DefaultRunner) runSteps(
	ctx context.Context,
	sess session.Session,
	steps []step.Step,
	progress *suite.ProgressReporter,
	result *suite.Result,
) error {
	total := len(steps)
	result.Steps = make([]suite.StepResult, 0, total)

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		v, err := s.Run(ctx, sess)
		elapsed := time.Since(started)

		if err != nil {
			return fmt.Errorf("step %q: %w", s.Name(), err)
		}

		result.Steps = append(result.Steps, suite.StepResult{
			Name:     s.Name(),
			Kind:     string(s.Kind()),
			Passed:   v.OK(),
			Message:  v.Message(),
			Duration: elapsed,
		})

		r.metrics.RecordStep(
			string(result.SuiteID), s.Name(), v.OK(), elapsed,
		)
		progress.ReportProgress(s.Name(), map[string]any{
			"steps_done":  i + 1,
			"steps_total": total,
		})
	}

	return nil
}

// setupResultsDir creates the results directory structure.
func (r *DefaultRunner) setupResultsDir(
	config *suite.Config,
) error {
	if config.ResultsDir == "" {
		now := time.Now()
		baseDir := r.resultsDir
		if baseDir == "" {
			baseDir = "results"
		}

		config.ResultsDir = filepath.Join(
			baseDir,
			string(config.SuiteID),
			now.Format("2006"),
			now.Format("01"),
			now.Format("02"),
			now.Format("20060102_150405"),
		)
	}

	config.LogsDir = filepath.Join(config.ResultsDir, "logs")

	if err := os.MkdirAll(config.LogsDir, 0755); err != nil {
		return err
	}

	resultsDir := filepath.Join(config.ResultsDir, "results")
	return os.MkdirAll(resultsDir, 0755)
}

// logEvent emits a structured log entry if a logger is
// configured.
func (r *DefaultRunner) logEvent(
	event string,
	fields ...logging.Field,
) {
	if r.logger == nil {
		return
	}
	r.logger.Info(event, fields...)
}
