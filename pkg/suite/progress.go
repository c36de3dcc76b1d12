package suite

import (
	"sync"
	"time"
)

// ProgressUpdate represents a single progress report from a
// running suite. The runner emits one per completed step to
// signal that the browser is still responding.
type ProgressUpdate struct {
	// Timestamp is when the progress was reported.
	Timestamp time.Time `json:"timestamp"`

	// Message is a human-readable description of the step
	// that just completed.
	Message string `json:"message"`

	// Data holds arbitrary key-value progress metrics
	// (e.g., "steps_done": 12, "steps_total": 40).
	Data map[string]any `json:"data,omitempty"`
}

// ProgressReporter lets a suite run signal that it is alive and
// making forward progress. The runner's liveness monitor
// watches these updates and cancels execution only when none
// has arrived within the configured stale threshold.
//
// Unlike a timeout, which limits total duration, the stale
// threshold limits idle duration. A suite walking hundreds of
// pages can run for a long time — as long as steps keep
// completing, it will never be killed.
type ProgressReporter struct {
	ch     chan ProgressUpdate
	mu     sync.Mutex
	last   *ProgressUpdate
	closed bool
}

// NewProgressReporter creates a buffered progress channel. The
// buffer keeps slow consumers from blocking the run; older
// updates are dropped if the buffer fills.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressUpdate, 64),
	}
}

// ReportProgress emits a progress update. Safe to call from any
// goroutine. If the buffer is full, the update is dropped (the
// liveness monitor still sees the most recent buffered one).
func (p *ProgressReporter) ReportProgress(
	msg string,
	data map[string]any,
) {
	update := ProgressUpdate{
		Timestamp: time.Now(),
		Message:   msg,
		Data:      data,
	}

	p.mu.Lock()
	p.last = &update
	closed := p.closed
	p.mu.Unlock()

	if closed {
		return
	}

	// Non-blocking send; drop if buffer is full.
	select {
	case p.ch <- update:
	default:
	}
}

// Channel returns the read-only channel for consuming progress
// updates. The runner's liveness monitor reads from it.
func (p *ProgressReporter) Channel() <-chan ProgressUpdate {
	return p.ch
}

// LastUpdate returns the most recent progress update, or nil if
// no progress has been reported yet.
func (p *ProgressReporter) LastUpdate() *ProgressUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Close signals that no more progress updates will be sent.
// Safe to call multiple times.
func (p *ProgressReporter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
}
