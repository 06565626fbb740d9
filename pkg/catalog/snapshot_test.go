package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiet-labs/festbot/pkg/models"
)

func TestNewSnapshotPreservesOrder(t *testing.T) {
	snap := NewSnapshot([]*models.Event{
		{Name: "C"}, {Name: "A"}, {Name: "B"},
	})
	names := make([]string, 0, snap.Len())
	for _, ev := range snap.Events() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestNewSnapshotCapsAtMaxEvents(t *testing.T) {
	events := make([]*models.Event, MaxEvents+25)
	for i := range events {
		events[i] = &models.Event{Name: fmt.Sprintf("Event %d", i)}
	}
	snap := NewSnapshot(events)
	assert.Equal(t, MaxEvents, snap.Len())

	// The cap keeps the head of the list.
	_, ok := snap.ByName("event 0")
	assert.True(t, ok)
	_, ok = snap.ByName(fmt.Sprintf("event %d", MaxEvents))
	assert.False(t, ok)
}

func TestNewSnapshotSkipsUnnamedEvents(t *testing.T) {
	snap := NewSnapshot([]*models.Event{
		{Name: "Real"}, {Name: ""}, nil, {Name: "   "},
	})
	assert.Equal(t, 1, snap.Len())
}

func TestSnapshotByNameCaseInsensitive(t *testing.T) {
	snap := NewSnapshot([]*models.Event{{Name: "Theme Show"}})
	ev, ok := snap.ByName("THEME show")
	require.True(t, ok)
	assert.Equal(t, "Theme Show", ev.Name)
}

func TestSnapshotByNameFirstWinsOnDuplicates(t *testing.T) {
	snap := NewSnapshot([]*models.Event{
		{ID: "1", Name: "Quiz"},
		{ID: "2", Name: "quiz"},
	})
	ev, ok := snap.ByName("quiz")
	require.True(t, ok)
	assert.Equal(t, "1", ev.ID)
	assert.Equal(t, 2, snap.Len())
}

func TestSnapshotByID(t *testing.T) {
	snap := NewSnapshot([]*models.Event{{ID: "e1", Name: "Quiz"}})
	ev, ok := snap.ByID("e1")
	require.True(t, ok)
	assert.Equal(t, "Quiz", ev.Name)

	_, ok = snap.ByID("missing")
	assert.False(t, ok)
	_, ok = snap.ByID("")
	assert.False(t, ok)
}

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store.Current())
	assert.Equal(t, 0, store.Current().Len())
}

func TestStoreSwap(t *testing.T) {
	store := NewStore()
	store.Swap(NewSnapshot([]*models.Event{{Name: "Quiz"}}))
	assert.Equal(t, 1, store.Current().Len())

	// A nil swap resets to empty rather than publishing nil.
	store.Swap(nil)
	require.NotNil(t, store.Current())
	assert.Equal(t, 0, store.Current().Len())
}
