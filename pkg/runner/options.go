package runner

import (
	"time"

	"digital.vasic.webassert/pkg/logging"
	"digital.vasic.webassert/pkg/metrics"
	"digital.vasic.webassert/pkg/registry"
	"digital.vasic.webassert/pkg/suite"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithRegistry sets the suite registry to resolve IDs against.
// Defaults to the package-level registry.
func WithRegistry(reg registry.Registry) RunnerOption {
	return func(r *DefaultRunner) {
		r.registry = reg
	}
}

// WithSessionFactory sets the factory used to open a browser
// session for each suite run.
func WithSessionFactory(factory SessionFactory) RunnerOption {
	return func(r *DefaultRunner) {
		r.sessions = factory
	}
}

// WithCheckBuilders supplies custom check builders (usually
// collected from plugins) for suite compilation.
func WithCheckBuilders(
	builders map[string]suite.CheckBuilder,
) RunnerOption {
	return func(r *DefaultRunner) {
		r.builders = builders
	}
}

// WithLogger sets the structured logger for run events.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics sink for per-step and per-suite
// recording. Defaults to a no-op sink.
func WithMetrics(m metrics.StepMetrics) RunnerOption {
	return func(r *DefaultRunner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTimeout sets the default total execution timeout per
// suite, used when the suite config does not set one.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *DefaultRunner) {
		r.timeout = timeout
	}
}

// WithStaleThreshold sets how long a run may go without
// completing a step before it is declared stuck. Zero disables
// liveness monitoring.
func WithStaleThreshold(threshold time.Duration) RunnerOption {
	return func(r *DefaultRunner) {
		r.staleThreshold = threshold
	}
}

// WithResultsDir sets the base directory for run artifacts.
func WithResultsDir(dir string) RunnerOption {
	return func(r *DefaultRunner) {
		r.resultsDir = dir
	}
}

// WithPreHook appends a hook that runs before suite execution.
// A pre-hook error aborts the run.
func WithPreHook(hook Hook) RunnerOption {
	return func(r *DefaultRunner) {
		r.preHooks = append(r.preHooks, hook)
	}
}

// WithPostHook appends a hook that runs after suite execution
// regardless of outcome. Post-hook errors are logged as
// warnings.
func WithPostHook(hook Hook) RunnerOption {
	return func(r *DefaultRunner) {
		r.postHooks = append(r.postHooks, hook)
	}
}
