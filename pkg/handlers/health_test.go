package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/config"
	"github.com/policyradar/policyradar-engine/pkg/database"
)

func newHealthTestMux() *http.ServeMux {
	cfg := &config.Config{Version: "1.0.0", Env: "test"}
	health := database.NewHealth(nil, nil, zap.NewNop())
	mux := http.NewServeMux()
	NewHealthHandler(cfg, health, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestHealth_DegradedDependenciesStillReturn200(t *testing.T) {
	mux := newHealthTestMux()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "degraded", response.Status)
	assert.False(t, response.Database)
	assert.False(t, response.Cache)
	assert.Equal(t, "1.0.0", response.Version)
}

func TestPing_ReturnsServiceMetadata(t *testing.T) {
	mux := newHealthTestMux()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response PingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "policyradar-engine", response.Service)
	assert.Equal(t, "test", response.Environment)
}

func TestRoot_Banner(t *testing.T) {
	mux := newHealthTestMux()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PolicyRadar API")
}
