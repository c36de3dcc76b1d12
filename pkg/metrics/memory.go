package metrics

import (
	"sync"
	"time"
)

// MemoryMetrics implements StepMetrics using in-memory counters
// and duration samples. It is safe for concurrent use; parallel
// suite runs record into the same instance. Real Prometheus
// integration is done by the host application using
// prometheus/client_golang.
type MemoryMetrics struct {
	mu        sync.Mutex
	suites    map[string]int
	steps     map[string]int
	durations map[string][]time.Duration
	runTotal  int
	active    int
}

// NewMemoryMetrics creates a new MemoryMetrics instance.
func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{
		suites:    make(map[string]int),
		steps:     make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

func (m *MemoryMetrics) RecordSuite(
	suiteID, status string, duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := suiteID + ":" + status
	m.suites[key]++
	m.durations[suiteID] = append(
		m.durations[suiteID], duration,
	)
}

func (m *MemoryMetrics) RecordStep(
	suiteID, stepName string,
	passed bool,
	duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := "failed"
	if passed {
		status = "passed"
	}
	key := suiteID + ":" + stepName + ":" + status
	m.steps[key]++
}

func (m *MemoryMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

func (m *MemoryMetrics) SetActiveSuites(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = count
}

// SuiteCount returns the count for a suite+status combination.
func (m *MemoryMetrics) SuiteCount(
	suiteID, status string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suites[suiteID+":"+status]
}

// StepCount returns the count for a suite+step+status
// combination, where status is "passed" or "failed".
func (m *MemoryMetrics) StepCount(
	suiteID, stepName, status string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps[suiteID+":"+stepName+":"+status]
}

// Durations returns the recorded suite durations.
func (m *MemoryMetrics) Durations(
	suiteID string,
) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(
		[]time.Duration, len(m.durations[suiteID]),
	)
	copy(out, m.durations[suiteID])
	return out
}

// RunTotal returns the total number of runs.
func (m *MemoryMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}

// ActiveSuites returns the current active suites gauge.
func (m *MemoryMetrics) ActiveSuites() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
