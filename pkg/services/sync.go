// Package services wires the catalog pipeline: loading events from a source,
// publishing a snapshot, and rebuilding the retrieval index.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/apperrors"
	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/models"
)

// EventSource provides the events to sync from. Implementations exist for the
// events JSON file and for the Postgres catalog.
type EventSource interface {
	LoadAll(ctx context.Context) ([]*models.Event, error)
}

// Indexer rebuilds the retrieval index from a fresh catalog. Optional: a
// deployment without an embedding provider runs without one.
type Indexer interface {
	Build(ctx context.Context, events []*models.Event, sections []string) error
}

// SyncService reloads the catalog and republishes it.
type SyncService interface {
	// Sync loads events from the source, swaps the snapshot, and rebuilds
	// the retrieval index. Returns the number of events published. When the
	// catalog loads but the index rebuild fails, the count is returned
	// together with apperrors.ErrIndexStale: the new catalog is live and
	// keyword matching works, only retrieval is degraded.
	Sync(ctx context.Context) (int, error)
}

type syncService struct {
	source   EventSource
	store    *catalog.Store
	indexer  Indexer
	sections []string
	logger   *zap.Logger
}

// NewSyncService creates a sync service. indexer may be nil when no embedding
// client is configured; sections are the festival info documents indexed
// alongside the events.
func NewSyncService(source EventSource, store *catalog.Store, indexer Indexer, sections []string, logger *zap.Logger) SyncService {
	return &syncService{
		source:   source,
		store:    store,
		indexer:  indexer,
		sections: sections,
		logger:   logger,
	}
}

func (s *syncService) Sync(ctx context.Context) (int, error) {
	events, err := s.source.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load events: %w", err)
	}

	snap := catalog.NewSnapshot(events)
	s.store.Swap(snap)
	s.logger.Info("catalog published", zap.Int("events", snap.Len()))

	if s.indexer != nil {
		if err := s.indexer.Build(ctx, snap.Events(), s.sections); err != nil {
			// The snapshot is already live; keyword matching keeps
			// working with a stale or empty index.
			s.logger.Warn("retrieval index rebuild failed", zap.Error(err))
			return snap.Len(), fmt.Errorf("%w: %v", apperrors.ErrIndexStale, err)
		}
	}

	return snap.Len(), nil
}

// FileSource loads events from a JSON file on each sync.
type FileSource struct {
	Path string
}

func (f FileSource) LoadAll(ctx context.Context) ([]*models.Event, error) {
	return catalog.LoadEventsFromFile(f.Path)
}
