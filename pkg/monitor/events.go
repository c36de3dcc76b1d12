// Package monitor provides live observation of suite runs: an
// event collector, an aggregated dashboard, and an HTTP server
// streaming events over WebSocket and SSE.
package monitor

import (
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// EventType represents the type of suite event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventStep      EventType = "step"
	EventCompleted EventType = "completed"
	EventFailed    EventType = "failed"
	EventStuck     EventType = "stuck"
	EventTimedOut  EventType = "timed_out"
	EventLog       EventType = "log"
)

// SuiteEvent represents a lifecycle event during suite
// execution.
type SuiteEvent struct {
	Type       EventType     `json:"type"`
	SuiteID    suite.ID      `json:"suite_id"`
	Name       string        `json:"name"`
	StepName   string        `json:"step_name,omitempty"`
	Status     string        `json:"status,omitempty"`
	Message    string        `json:"message,omitempty"`
	StepsDone  int           `json:"steps_done,omitempty"`
	StepsTotal int           `json:"steps_total,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}
