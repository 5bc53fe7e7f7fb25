package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/services"
)

// MarketHandler handles market data HTTP requests.
type MarketHandler struct {
	marketService services.MarketService
	logger        *zap.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketService, logger *zap.Logger) *MarketHandler {
	return &MarketHandler{marketService: marketService, logger: logger}
}

// RegisterRoutes registers the market data routes on the given mux.
func (h *MarketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/market", h.ListMarketData)
	mux.HandleFunc("GET /api/v1/market/economic-indicators", h.ListIndicators)
	mux.HandleFunc("GET /api/v1/market/trade-flows", h.ListTradeFlows)
}

// ListMarketData handles GET /api/v1/market. Series are returned newest
// first.
func (h *MarketHandler) ListMarketData(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "market data")
		return
	}

	startDate, err := queryTimePtr(r, "start_date")
	if err != nil {
		h.writeError(w, err, "market data")
		return
	}
	endDate, err := queryTimePtr(r, "end_date")
	if err != nil {
		h.writeError(w, err, "market data")
		return
	}

	data, err := h.marketService.ListMarketData(r.Context(), services.MarketDataParams{
		Symbol:    r.URL.Query().Get("symbol"),
		AssetType: r.URL.Query().Get("asset_type"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
	})
	if err != nil {
		h.writeError(w, err, "market data")
		return
	}

	h.writeData(w, data)
}

// ListIndicators handles GET /api/v1/market/economic-indicators.
func (h *MarketHandler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "economic indicators")
		return
	}

	indicators, err := h.marketService.ListIndicators(r.Context(), services.IndicatorParams{
		IndicatorCode: r.URL.Query().Get("indicator_code"),
		Country:       r.URL.Query().Get("country"),
		Page:          page,
	})
	if err != nil {
		h.writeError(w, err, "economic indicators")
		return
	}

	h.writeData(w, indicators)
}

// ListTradeFlows handles GET /api/v1/market/trade-flows.
func (h *MarketHandler) ListTradeFlows(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "trade flows")
		return
	}

	flows, err := h.marketService.ListTradeFlows(r.Context(), services.TradeFlowParams{
		OriginCountry:      r.URL.Query().Get("origin_country"),
		DestinationCountry: r.URL.Query().Get("destination_country"),
		Page:               page,
	})
	if err != nil {
		h.writeError(w, err, "trade flows")
		return
	}

	h.writeData(w, flows)
}

func (h *MarketHandler) writeData(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *MarketHandler) writeError(w http.ResponseWriter, err error, resource string) {
	h.logger.Error("Market request failed", zap.String("resource", resource), zap.Error(err))
	if err := serviceError(w, err, resource); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
