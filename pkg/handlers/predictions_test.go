package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

func newPredictionTestMux(svc services.PredictionService) *http.ServeMux {
	mux := http.NewServeMux()
	NewPredictionHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestGeneratePrediction_StoresSuppliedValues(t *testing.T) {
	var captured *models.PolicyPrediction
	svc := &mockPredictionService{
		createFunc: func(ctx context.Context, prediction *models.PolicyPrediction) error {
			prediction.PredictionID = "3f0c9a4e"
			captured = prediction
			return nil
		},
	}
	mux := newPredictionTestMux(svc)

	body, _ := json.Marshal(map[string]any{
		"prediction_type":     "impact_forecast",
		"target_jurisdiction": "US",
		"confidence_level":    0.7,
		"predicted_value":     -42.5,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "impact_forecast", captured.PredictionType)
	require.NotNil(t, captured.PredictedValue)
	assert.InDelta(t, -42.5, *captured.PredictedValue, 1e-9)
	assert.False(t, captured.PredictionDate.IsZero())
}

func TestGeneratePrediction_RequiresType(t *testing.T) {
	mux := newPredictionTestMux(&mockPredictionService{})

	body := []byte(`{"target_jurisdiction":"US"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

func TestGeneratePrediction_RejectsConfidenceOutOfRange(t *testing.T) {
	mux := newPredictionTestMux(&mockPredictionService{})

	body := []byte(`{"prediction_type":"impact_forecast","target_jurisdiction":"US","confidence_level":1.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPredictions_ModelsRouteNotShadowed(t *testing.T) {
	called := false
	svc := &mockPredictionService{
		modelsFunc: func(ctx context.Context) ([]*models.PredictionModel, error) {
			called = true
			return []*models.PredictionModel{}, nil
		},
	}
	mux := newPredictionTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/models", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
