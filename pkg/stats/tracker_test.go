package stats

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerBranchCounts(t *testing.T) {
	tr := NewTracker()
	tr.Branch("greeting")
	tr.Branch("greeting")
	tr.Branch("event_match")

	s := tr.Snapshot()
	assert.Equal(t, 3, s.TotalQueries)
	assert.Equal(t, 2, s.BranchCounts["greeting"])
	assert.Equal(t, 1, s.BranchCounts["event_match"])
}

func TestTrackerExternalCalls(t *testing.T) {
	tr := NewTracker()
	tr.ExternalCall("search")
	tr.ExternalCall("generate")
	tr.ExternalCall("search")

	s := tr.Snapshot()
	assert.Equal(t, 2, s.ExternalCalls["search"])
	assert.Equal(t, 1, s.ExternalCalls["generate"])
	// External calls don't count as queries.
	assert.Equal(t, 0, s.TotalQueries)
}

func TestTrackerResponseTimeWindow(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < maxResponseTimes+20; i++ {
		tr.RecordResponseTime(10 * time.Millisecond)
	}

	s := tr.Snapshot()
	assert.Equal(t, maxResponseTimes, s.ResponseSamples)
	assert.InDelta(t, 10.0, s.AvgResponseMs, 0.01)
}

func TestTrackerErrorRing(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < maxErrors+10; i++ {
		tr.RecordError("generate", fmt.Errorf("failure %d", i))
	}
	tr.RecordError("ignored", nil)

	s := tr.Snapshot()
	require.Len(t, s.RecentErrors, maxErrors)
	// Oldest entries are evicted first.
	assert.Equal(t, fmt.Sprintf("failure %d", 10), s.RecentErrors[0].Message)
	assert.Equal(t, "generate", s.RecentErrors[0].Context)
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	tr := NewTracker()
	tr.Branch("greeting")

	s := tr.Snapshot()
	s.BranchCounts["greeting"] = 99
	tr.RecordError("x", errors.New("boom"))

	fresh := tr.Snapshot()
	assert.Equal(t, 1, fresh.BranchCounts["greeting"])
}

func TestTrackerConcurrentUse(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Branch("fallback")
				tr.RecordResponseTime(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, tr.Snapshot().TotalQueries)
}
