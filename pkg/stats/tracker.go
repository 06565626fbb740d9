// Package stats tracks in-process analytics for the responder: branch
// counts, response times, and recent errors. Counters reset on restart.
package stats

import (
	"sync"
	"time"

	"github.com/asiet-labs/festbot/pkg/chat"
)

const (
	// maxResponseTimes bounds the rolling latency window.
	maxResponseTimes = 100

	// maxErrors bounds the recent-error ring.
	maxErrors = 50
)

// ErrorRecord is one captured failure.
type ErrorRecord struct {
	Time    time.Time `json:"time"`
	Context string    `json:"context"`
	Message string    `json:"message"`
}

// Summary is the stats endpoint payload.
type Summary struct {
	UptimeSeconds   float64            `json:"uptime_seconds"`
	TotalQueries    int                `json:"total_queries"`
	BranchCounts    map[string]int     `json:"pattern_matches"`
	ExternalCalls   map[string]int     `json:"external_calls"`
	AvgResponseMs   float64            `json:"avg_response_ms"`
	ResponseSamples int                `json:"response_samples"`
	RecentErrors    []ErrorRecord      `json:"recent_errors"`
}

// Tracker accumulates analytics. All methods are safe for concurrent use.
type Tracker struct {
	mu            sync.Mutex
	startedAt     time.Time
	totalQueries  int
	branchCounts  map[string]int
	externalCalls map[string]int
	responseTimes []time.Duration
	errors        []ErrorRecord
}

var _ chat.Observer = (*Tracker)(nil)

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		startedAt:     time.Now(),
		branchCounts:  make(map[string]int),
		externalCalls: make(map[string]int),
	}
}

// Branch records one classified intent.
func (t *Tracker) Branch(tag string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalQueries++
	t.branchCounts[tag]++
}

// ExternalCall records one collaborator invocation.
func (t *Tracker) ExternalCall(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.externalCalls[name]++
}

// RecordResponseTime adds one request latency to the rolling window.
func (t *Tracker) RecordResponseTime(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responseTimes = append(t.responseTimes, d)
	if len(t.responseTimes) > maxResponseTimes {
		t.responseTimes = t.responseTimes[len(t.responseTimes)-maxResponseTimes:]
	}
}

// RecordError captures a failure with its context label.
func (t *Tracker) RecordError(context string, err error) {
	if err == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors = append(t.errors, ErrorRecord{
		Time:    time.Now(),
		Context: context,
		Message: err.Error(),
	})
	if len(t.errors) > maxErrors {
		t.errors = t.errors[len(t.errors)-maxErrors:]
	}
}

// Snapshot returns a copy of the current counters.
func (t *Tracker) Snapshot() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	branches := make(map[string]int, len(t.branchCounts))
	for k, v := range t.branchCounts {
		branches[k] = v
	}
	calls := make(map[string]int, len(t.externalCalls))
	for k, v := range t.externalCalls {
		calls[k] = v
	}
	recent := make([]ErrorRecord, len(t.errors))
	copy(recent, t.errors)

	var avgMs float64
	if len(t.responseTimes) > 0 {
		var total time.Duration
		for _, d := range t.responseTimes {
			total += d
		}
		avgMs = float64(total.Milliseconds()) / float64(len(t.responseTimes))
	}

	return Summary{
		UptimeSeconds:   time.Since(t.startedAt).Seconds(),
		TotalQueries:    t.totalQueries,
		BranchCounts:    branches,
		ExternalCalls:   calls,
		AvgResponseMs:   avgMs,
		ResponseSamples: len(t.responseTimes),
		RecentErrors:    recent,
	}
}
