package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardAlert is one entry in the dashboard's recent alert feed.
type DashboardAlert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsHandler serves the dashboard and reporting endpoints. These
// return representative synthetic payloads; nothing here is persisted.
type AnalyticsHandler struct {
	logger *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger}
}

// RegisterRoutes registers the analytics routes on the given mux.
func (h *AnalyticsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/dashboard/summary", h.DashboardSummary)
	mux.HandleFunc("GET /api/v1/analytics/trends", h.Trends)
	mux.HandleFunc("GET /api/v1/reports/generate", h.GenerateReport)
}

// DashboardSummary handles GET /api/v1/dashboard/summary.
func (h *AnalyticsHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	summary := map[string]any{
		"total_policies":           1250,
		"active_policies":          890,
		"high_risk_policies":       45,
		"total_companies":          500,
		"affected_companies":       320,
		"total_impact_assessments": 2800,
		"average_impact":           -15.5,
		"prediction_accuracy":      0.82,
		"recent_alerts": []DashboardAlert{
			{
				ID:        1,
				Type:      "policy_change",
				Title:     "Basel III Implementation Update",
				Severity:  "high",
				Timestamp: now.Add(-2 * time.Hour),
			},
			{
				ID:        2,
				Type:      "impact_alert",
				Title:     "Trade Tariff Impact on Manufacturing",
				Severity:  "medium",
				Timestamp: now.Add(-6 * time.Hour),
			},
		},
		"risk_distribution": map[string]int{
			"low":      45,
			"medium":   35,
			"high":     15,
			"critical": 5,
		},
	}

	h.writeData(w, summary)
}

// Trends handles GET /api/v1/analytics/trends. Filter parameters are
// accepted for interface compatibility but do not shape the synthetic
// series.
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	dates := []string{"2026-01", "2026-02", "2026-03", "2026-04", "2026-05"}

	trends := map[string]any{
		"policy_trends": map[string]any{
			"total_policies":    []int{1200, 1250, 1300, 1350, 1400},
			"enacted_policies":  []int{800, 850, 900, 950, 1000},
			"proposed_policies": []int{400, 400, 400, 400, 400},
			"dates":             dates,
		},
		"impact_trends": map[string]any{
			"average_impact":   []float64{-10, -12, -15, -18, -20},
			"positive_impacts": []int{30, 25, 20, 15, 10},
			"negative_impacts": []int{70, 75, 80, 85, 90},
			"dates":            dates,
		},
		"risk_trends": map[string]any{
			"high_risk_policies":     []int{40, 42, 45, 48, 50},
			"critical_risk_policies": []int{5, 6, 7, 8, 9},
			"dates":                  dates,
		},
	}

	h.writeData(w, trends)
}

// GenerateReport handles GET /api/v1/reports/generate. Only report
// metadata is produced; the download URL is a placeholder.
func (h *AnalyticsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("report_type")
	if reportType == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "report_type is required"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}

	companyID, err := queryInt64Ptr(r, "company_id")
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}
	policyID, err := queryInt64Ptr(r, "policy_id")
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	reportID := fmt.Sprintf("REP_%s", uuid.New().String())

	report := map[string]any{
		"report_id":    reportID,
		"report_type":  reportType,
		"company_id":   companyID,
		"policy_id":    policyID,
		"format":       format,
		"status":       "generated",
		"download_url": "/api/v1/reports/download/" + reportID,
		"generated_at": time.Now().UTC(),
	}

	h.writeData(w, report)
}

func (h *AnalyticsHandler) writeData(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
