package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/config"
	"github.com/asiet-labs/festbot/pkg/models"
)

func testHealthHandler() *HealthHandler {
	store := catalog.NewStore()
	store.Swap(catalog.NewSnapshot([]*models.Event{
		{Name: "Theme Show"}, {Name: "Robo Wars"},
	}))
	cfg := &config.Config{Version: "test", Env: "local"}
	return NewHealthHandler(cfg, store, zap.NewNop())
}

func TestRootReportsCatalogSize(t *testing.T) {
	h := testHealthHandler()

	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 2, resp.EventsLoaded)
}

func TestHealthReturnsOK(t *testing.T) {
	h := testHealthHandler()

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPingReturnsServiceInfo(t *testing.T) {
	h := testHealthHandler()

	rec := httptest.NewRecorder()
	h.Ping(rec, httptest.NewRequest("GET", "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "festbot", resp.Service)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, "local", resp.Environment)
}
