package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

func newMarketTestMux(svc services.MarketService) *http.ServeMux {
	mux := http.NewServeMux()
	NewMarketHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListMarketData_PassesDateWindow(t *testing.T) {
	var captured services.MarketDataParams
	svc := &mockMarketService{
		marketFunc: func(ctx context.Context, params services.MarketDataParams) ([]*models.MarketData, error) {
			captured = params
			return []*models.MarketData{}, nil
		},
	}
	mux := newMarketTestMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/market?symbol=SPX&asset_type=INDEX&start_date=2025-01-01&end_date=2025-06-30", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SPX", captured.Symbol)
	assert.Equal(t, "INDEX", captured.AssetType)
	require.NotNil(t, captured.StartDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)
	require.NotNil(t, captured.EndDate)
}

func TestListMarketData_RejectsMalformedDate(t *testing.T) {
	mux := newMarketTestMux(&mockMarketService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market?start_date=junk", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListIndicators_RouteNotShadowed(t *testing.T) {
	var captured services.IndicatorParams
	svc := &mockMarketService{
		indicatorsFunc: func(ctx context.Context, params services.IndicatorParams) ([]*models.EconomicIndicator, error) {
			captured = params
			return []*models.EconomicIndicator{}, nil
		},
	}
	mux := newMarketTestMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/market/economic-indicators?indicator_code=GDP_US_2025Q1&country=US", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GDP_US_2025Q1", captured.IndicatorCode)
	assert.Equal(t, "US", captured.Country)
}

func TestListTradeFlows_PassesCountries(t *testing.T) {
	var captured services.TradeFlowParams
	svc := &mockMarketService{
		flowsFunc: func(ctx context.Context, params services.TradeFlowParams) ([]*models.TradeFlow, error) {
			captured = params
			return []*models.TradeFlow{}, nil
		},
	}
	mux := newMarketTestMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/market/trade-flows?origin_country=CN&destination_country=US", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CN", captured.OriginCountry)
	assert.Equal(t, "US", captured.DestinationCountry)
}
