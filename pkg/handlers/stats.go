package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/apperrors"
	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/config"
	"github.com/asiet-labs/festbot/pkg/stats"
)

// Syncer reloads the event catalog from its source of truth.
type Syncer interface {
	Sync(ctx context.Context) (int, error)
}

// StatsResponse is the GET /stats payload.
type StatsResponse struct {
	Status       string        `json:"status"`
	CurrentTime  time.Time     `json:"current_time"`
	Version      string        `json:"version"`
	CachedEvents int           `json:"cached_events"`
	IndexedDocs  int           `json:"indexed_docs"`
	Analytics    stats.Summary `json:"analytics"`
}

// SyncResponse is the POST /sync payload.
type SyncResponse struct {
	Status       string `json:"status"`
	EventsLoaded int    `json:"events_loaded"`
}

// Lenner reports how many documents the retrieval index holds.
type Lenner interface {
	Len() int
}

// StatsHandler serves the token-guarded operations endpoints.
type StatsHandler struct {
	cfg     *config.Config
	tracker *stats.Tracker
	store   *catalog.Store
	index   Lenner
	syncer  Syncer
	logger  *zap.Logger
}

// NewStatsHandler creates a StatsHandler. index and syncer may be nil.
func NewStatsHandler(cfg *config.Config, tracker *stats.Tracker, store *catalog.Store, index Lenner, syncer Syncer, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		cfg:     cfg,
		tracker: tracker,
		store:   store,
		index:   index,
		syncer:  syncer,
		logger:  logger.Named("stats_handler"),
	}
}

// RegisterRoutes registers the stats handler's routes on the given mux.
func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /stats", RequireBearer(h.cfg.SyncToken, h.Stats))
	mux.HandleFunc("POST /sync", RequireBearer(h.cfg.SyncToken, h.Sync))
}

// Stats handles GET /stats requests.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	indexed := 0
	if h.index != nil {
		indexed = h.index.Len()
	}

	response := StatsResponse{
		Status:       "healthy",
		CurrentTime:  time.Now(),
		Version:      h.cfg.Version,
		CachedEvents: h.store.Current().Len(),
		IndexedDocs:  indexed,
		Analytics:    h.tracker.Snapshot(),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode stats response", zap.Error(err))
	}
}

// Sync handles POST /sync requests by reloading the catalog.
func (h *StatsHandler) Sync(w http.ResponseWriter, r *http.Request) {
	if h.syncer == nil {
		_ = ErrorResponse(w, http.StatusServiceUnavailable, "sync_unavailable", "no catalog source configured")
		return
	}

	status := "ok"
	count, err := h.syncer.Sync(r.Context())
	if errors.Is(err, apperrors.ErrIndexStale) {
		// Catalog loaded; only retrieval is degraded.
		h.tracker.RecordError("sync", err)
		status = "partial"
	} else if err != nil {
		h.logger.Error("catalog sync failed", zap.Error(err))
		h.tracker.RecordError("sync", err)
		_ = ErrorResponse(w, http.StatusInternalServerError, "sync_failed", "catalog sync failed")
		return
	}

	h.logger.Info("catalog synced", zap.Int("events", count), zap.String("status", status))
	if err := WriteJSON(w, http.StatusOK, SyncResponse{Status: status, EventsLoaded: count}); err != nil {
		h.logger.Error("Failed to encode sync response", zap.Error(err))
	}
}
