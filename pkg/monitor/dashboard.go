package monitor

import (
	"sync"
	"time"

	"digital.vasic.webassert/pkg/suite"
)

// Dashboard aggregates suite events into a real-time view of
// execution state.
type Dashboard struct {
	mu        sync.RWMutex
	runID     string
	startTime time.Time
	status    string
	suites    map[suite.ID]SuiteState
	summary   DashboardSummary
}

// Snapshot is a point-in-time copy of the dashboard state,
// safe to marshal and hand to clients.
type Snapshot struct {
	RunID     string                  `json:"run_id"`
	StartTime time.Time               `json:"start_time"`
	Status    string                  `json:"status"`
	Suites    map[suite.ID]SuiteState `json:"suites"`
	Summary   DashboardSummary        `json:"summary"`
}

// SuiteState represents the current state of a suite in the
// dashboard.
type SuiteState struct {
	ID         suite.ID      `json:"id"`
	Name       string        `json:"name"`
	Status     string        `json:"status"`
	StepsDone  int           `json:"steps_done"`
	StepsTotal int           `json:"steps_total"`
	StartTime  *time.Time    `json:"start_time,omitempty"`
	EndTime    *time.Time    `json:"end_time,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// DashboardSummary holds aggregate stats for the dashboard.
type DashboardSummary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Running  int     `json:"running"`
	Pending  int     `json:"pending"`
	PassRate float64 `json:"pass_rate"`
	Elapsed  string  `json:"elapsed"`
}

// NewDashboard creates a new dashboard instance.
func NewDashboard(runID string) *Dashboard {
	return &Dashboard{
		runID:     runID,
		startTime: time.Now(),
		status:    "running",
		suites:    make(map[suite.ID]SuiteState),
	}
}

// UpdateFromEvent updates dashboard state from a suite event.
func (d *Dashboard) UpdateFromEvent(event SuiteEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	state, exists := d.suites[event.SuiteID]
	if !exists {
		state = SuiteState{
			ID:   event.SuiteID,
			Name: event.Name,
		}
	}

	switch event.Type {
	case EventStarted:
		state.Status = suite.StatusRunning
		state.StartTime = &now
	case EventStep:
		state.StepsDone = event.StepsDone
		state.StepsTotal = event.StepsTotal
	case EventCompleted:
		state.Status = suite.StatusPassed
		state.EndTime = &now
		state.Duration = event.Duration
	case EventFailed:
		state.Status = suite.StatusFailed
		state.EndTime = &now
		state.Message = event.Message
	case EventStuck:
		state.Status = suite.StatusStuck
		state.EndTime = &now
		state.Message = event.Message
	case EventTimedOut:
		state.Status = suite.StatusTimedOut
		state.EndTime = &now
	}

	d.suites[event.SuiteID] = state
	d.recalcSummary()
}

func (d *Dashboard) recalcSummary() {
	s := DashboardSummary{}
	for _, st := range d.suites {
		s.Total++
		switch st.Status {
		case suite.StatusPassed:
			s.Passed++
		case suite.StatusFailed, suite.StatusStuck,
			suite.StatusTimedOut:
			s.Failed++
		case suite.StatusRunning:
			s.Running++
		default:
			s.Pending++
		}
	}
	if completed := s.Passed + s.Failed; completed > 0 {
		s.PassRate = float64(s.Passed) /
			float64(completed) * 100
	}
	s.Elapsed = time.Since(d.startTime).
		Round(time.Millisecond).String()
	d.summary = s
}

// Snapshot returns a copy of the current dashboard state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	suites := make(
		map[suite.ID]SuiteState, len(d.suites),
	)
	for k, v := range d.suites {
		suites[k] = v
	}
	return Snapshot{
		RunID:     d.runID,
		StartTime: d.startTime,
		Status:    d.status,
		Suites:    suites,
		Summary:   d.summary,
	}
}

// SetStatus sets the overall run status.
func (d *Dashboard) SetStatus(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

// BuildDashboard creates a dashboard from an EventCollector by
// replaying all collected events.
func BuildDashboard(collector *EventCollector) *Dashboard {
	d := NewDashboard("snapshot")
	for _, event := range collector.Events() {
		d.UpdateFromEvent(event)
	}
	return d
}
