// Package catalog holds the in-memory event catalog the responder matches
// against. A Snapshot is built wholesale by a loader and published atomically;
// readers never observe a partially loaded catalog.
package catalog

import (
	"strings"
	"sync/atomic"

	"github.com/asiet-labs/festbot/pkg/models"
)

// MaxEvents bounds the number of cached events per snapshot.
const MaxEvents = 100

// Snapshot is an ordered, immutable view of the event catalog plus a
// lowercase-name index. Iteration order is insertion order; the entity
// resolver relies on it to break ties deterministically.
type Snapshot struct {
	events []*models.Event
	index  map[string]*models.Event
}

// NewSnapshot builds a snapshot from the given events, preserving order.
// Events beyond MaxEvents are dropped; events without a name are skipped.
func NewSnapshot(events []*models.Event) *Snapshot {
	if len(events) > MaxEvents {
		events = events[:MaxEvents]
	}

	kept := make([]*models.Event, 0, len(events))
	index := make(map[string]*models.Event, len(events))
	for _, ev := range events {
		if ev == nil || strings.TrimSpace(ev.Name) == "" {
			continue
		}
		kept = append(kept, ev)
		key := strings.ToLower(ev.Name)
		if _, exists := index[key]; !exists {
			index[key] = ev
		}
	}

	return &Snapshot{events: kept, index: index}
}

// Events returns the events in snapshot order. Callers must not mutate the
// returned slice or the entries.
func (s *Snapshot) Events() []*models.Event {
	return s.events
}

// ByName looks up an event by its lowercased name.
func (s *Snapshot) ByName(name string) (*models.Event, bool) {
	ev, ok := s.index[strings.ToLower(name)]
	return ev, ok
}

// ByID looks up an event by its id in snapshot order.
func (s *Snapshot) ByID(id string) (*models.Event, bool) {
	if id == "" {
		return nil, false
	}
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return nil, false
}

// Len returns the number of events in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.events)
}

// Store publishes catalog snapshots. Swap replaces the whole snapshot with a
// single pointer store, so a classification in progress always sees one
// consistent catalog even while a reload is running.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(nil))
	return s
}

// Current returns the latest published snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap publishes a new snapshot.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		snap = NewSnapshot(nil)
	}
	s.current.Store(snap)
}
