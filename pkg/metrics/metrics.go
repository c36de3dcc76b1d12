// Package metrics records suite and step execution metrics.
package metrics

import "time"

// StepMetrics defines the interface for recording run metrics.
type StepMetrics interface {
	// RecordSuite records a completed suite run.
	RecordSuite(suiteID, status string, duration time.Duration)
	// RecordStep records a single step verdict.
	RecordStep(suiteID, stepName string, passed bool, duration time.Duration)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
	// SetActiveSuites sets the gauge of currently running suites.
	SetActiveSuites(count int)
}

// NoopMetrics is a no-op implementation of StepMetrics useful
// for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordSuite(_, _ string, _ time.Duration)        {}
func (NoopMetrics) RecordStep(_, _ string, _ bool, _ time.Duration) {}
func (NoopMetrics) IncrementRunTotal()                              {}
func (NoopMetrics) SetActiveSuites(_ int)                           {}
