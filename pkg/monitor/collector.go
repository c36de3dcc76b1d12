package monitor

import (
	"sync"
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// EventCollector captures suite events and timing data.
type EventCollector struct {
	mu       sync.RWMutex
	events   []SuiteEvent
	handlers []func(SuiteEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Stuck     int           `json:"stuck"`
	TimedOut  int           `json:"timed_out"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]SuiteEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(SuiteEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event SuiteEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventCompleted:
		c.stats.Passed++
	case EventFailed:
		c.stats.Failed++
	case EventStuck:
		c.stats.Stuck++
	case EventTimedOut:
		c.stats.TimedOut++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(SuiteEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitStarted emits a suite started event.
func (c *EventCollector) EmitStarted(id suite.ID, name string) {
	c.Emit(SuiteEvent{
		Type:      EventStarted,
		SuiteID:   id,
		Name:      name,
		Timestamp: time.Now(),
	})
}

// EmitStep emits a step completion event with progress
// counters.
func (c *EventCollector) EmitStep(
	id suite.ID,
	stepName string,
	passed bool,
	done, total int,
) {
	status := "failed"
	if passed {
		status = "passed"
	}
	c.Emit(SuiteEvent{
		Type:       EventStep,
		SuiteID:    id,
		StepName:   stepName,
		Status:     status,
		StepsDone:  done,
		StepsTotal: total,
		Timestamp:  time.Now(),
	})
}

// EmitCompleted emits a suite completed event.
func (c *EventCollector) EmitCompleted(
	id suite.ID,
	name string,
	duration time.Duration,
) {
	c.Emit(SuiteEvent{
		Type:      EventCompleted,
		SuiteID:   id,
		Name:      name,
		Status:    suite.StatusPassed,
		Duration:  duration,
		Timestamp: time.Now(),
	})
}

// EmitFailed emits a suite failed event.
func (c *EventCollector) EmitFailed(
	id suite.ID,
	name string,
	msg string,
) {
	c.Emit(SuiteEvent{
		Type:      EventFailed,
		SuiteID:   id,
		Name:      name,
		Status:    suite.StatusFailed,
		Message:   msg,
		Timestamp: time.Now(),
	})
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []SuiteEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]SuiteEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}
