package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/config"
	"github.com/policyradar/policyradar-engine/pkg/database"
)

// HealthResponse reports overall service health plus per-dependency probes.
// Probes report false on failure; a failing dependency never turns the
// health endpoint itself into an error.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  bool      `json:"database"`
	Cache     bool      `json:"cache"`
}

// PingResponse contains service status and version information.
type PingResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	GoVersion   string `json:"go_version"`
	Hostname    string `json:"hostname"`
	Environment string `json:"environment"`
}

// RootResponse is the banner served at /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthHandler handles the health check, ping, and root banner endpoints.
type HealthHandler struct {
	cfg    *config.Config
	health *database.Health
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, health *database.Health, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, health: health, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ping", h.Ping)
	mux.HandleFunc("GET /{$}", h.Root)
}

// Health handles GET /health requests. The response is 200 even when a
// dependency probe fails; consumers read the probe booleans.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbOK := h.health.CheckDatabase(r.Context())
	cacheOK := h.health.CheckCache(r.Context())

	status := "healthy"
	if !dbOK || !cacheOK {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   h.cfg.Version,
		Database:  dbOK,
		Cache:     cacheOK,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// Ping handles GET /ping requests.
// Returns detailed service information including version and environment.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	hostname, err := os.Hostname()
	if err != nil {
		http.Error(w, "failed to get hostname", http.StatusInternalServerError)
		return
	}

	response := PingResponse{
		Status:      "ok",
		Version:     h.cfg.Version,
		Service:     "policyradar-engine",
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		Environment: h.cfg.Env,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode ping response", zap.Error(err))
	}
}

// Root handles GET / requests with a short service banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response := RootResponse{
		Message: "PolicyRadar API",
		Version: h.cfg.Version,
		Status:  "operational",
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode root response", zap.Error(err))
	}
}
