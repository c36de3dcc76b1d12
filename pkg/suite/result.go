package suite

import "time"

// Status constants for suite execution outcomes.
const (
	StatusPending  = "pending"
	StatusRunning  = "running"
	StatusPassed   = "passed"
	StatusFailed   = "failed"
	StatusSkipped  = "skipped"
	StatusTimedOut = "timed_out"
	StatusStuck    = "stuck"
	StatusError    = "error"
)

// Result captures the complete outcome of a suite run,
// including timing and per-step outcomes.
type Result struct {
	// RunID is the unique identifier of this run.
	RunID string `json:"run_id"`

	// SuiteID is the unique identifier of the suite.
	SuiteID ID `json:"suite_id"`

	// SuiteName is the human-readable name.
	SuiteName string `json:"suite_name"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// StartTime is when execution began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when execution finished.
	EndTime time.Time `json:"end_time"`

	// Duration is the wall-clock execution time.
	Duration time.Duration `json:"duration"`

	// Steps holds per-step outcomes in execution order.
	Steps []StepResult `json:"steps"`

	// Error contains the message if the run ended with a
	// driver or framework error rather than a verdict.
	Error string `json:"error,omitempty"`
}

// StepResult captures the outcome of a single executed step.
type StepResult struct {
	// Name is the step's descriptive name.
	Name string `json:"name"`

	// Kind is the step's result-shape tag.
	Kind string `json:"kind"`

	// Passed indicates whether the verdict passed.
	Passed bool `json:"passed"`

	// Message is the failure message for failing verdicts.
	Message string `json:"message,omitempty"`

	// Duration is the step's wall-clock execution time.
	Duration time.Duration `json:"duration"`
}

// AllPassed returns true if every step in the result passed.
func (r *Result) AllPassed() bool {
	for _, s := range r.Steps {
		if !s.Passed {
			return false
		}
	}
	return true
}

// IsFinal returns true if the status is a terminal state.
func (r *Result) IsFinal() bool {
	switch r.Status {
	case StatusPassed, StatusFailed, StatusSkipped,
		StatusTimedOut, StatusStuck, StatusError:
		return true
	}
	return false
}
