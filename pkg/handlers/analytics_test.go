package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAnalyticsTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	NewAnalyticsHandler(zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestDashboardSummary_ReturnsRiskDistribution(t *testing.T) {
	mux := newAnalyticsTestMux()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "risk_distribution")
	assert.Contains(t, rec.Body.String(), "recent_alerts")
}

func TestTrends_ReturnsSeries(t *testing.T) {
	mux := newAnalyticsTestMux()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?jurisdiction=US", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "policy_trends")
	assert.Contains(t, rec.Body.String(), "impact_trends")
	assert.Contains(t, rec.Body.String(), "risk_trends")
}

func TestGenerateReport_RequiresType(t *testing.T) {
	mux := newAnalyticsTestMux()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/generate", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateReport_ReturnsMetadata(t *testing.T) {
	mux := newAnalyticsTestMux()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/generate?report_type=policy_impact&format=json", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "report_id")
	assert.Contains(t, rec.Body.String(), `"format":"json"`)
	assert.Contains(t, rec.Body.String(), "download_url")
}
