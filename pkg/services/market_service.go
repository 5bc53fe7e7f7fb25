package services

import (
	"context"
	"time"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
)

// MarketDataParams are the optional filters for a market data listing.
type MarketDataParams struct {
	Symbol    string
	AssetType string
	StartDate *time.Time
	EndDate   *time.Time
	Page      query.Page
}

// IndicatorParams are the optional filters for an economic indicator listing.
type IndicatorParams struct {
	IndicatorCode string
	Country       string
	Page          query.Page
}

// TradeFlowParams are the optional filters for a trade flow listing.
type TradeFlowParams struct {
	OriginCountry      string
	DestinationCountry string
	Page               query.Page
}

// MarketService provides read access to market data, economic indicators,
// and trade flows.
type MarketService interface {
	ListMarketData(ctx context.Context, params MarketDataParams) ([]*models.MarketData, error)
	ListIndicators(ctx context.Context, params IndicatorParams) ([]*models.EconomicIndicator, error)
	ListTradeFlows(ctx context.Context, params TradeFlowParams) ([]*models.TradeFlow, error)
}

type marketService struct {
	repo repositories.MarketRepository
}

// NewMarketService creates a new MarketService.
func NewMarketService(repo repositories.MarketRepository) MarketService {
	return &marketService{repo: repo}
}

var _ MarketService = (*marketService)(nil)

func (s *marketService) ListMarketData(ctx context.Context, params MarketDataParams) ([]*models.MarketData, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}

	spec := &query.Spec{Page: params.Page}
	if params.Symbol != "" {
		spec.Eq("symbol", params.Symbol)
	}
	if params.AssetType != "" {
		spec.Eq("asset_type", params.AssetType)
	}
	if params.StartDate != nil {
		spec.Gte("date", *params.StartDate)
	}
	if params.EndDate != nil {
		spec.Lte("date", *params.EndDate)
	}

	return s.repo.MarketData(ctx, spec)
}

func (s *marketService) ListIndicators(ctx context.Context, params IndicatorParams) ([]*models.EconomicIndicator, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}

	spec := &query.Spec{Page: params.Page}
	if params.IndicatorCode != "" {
		spec.Eq("indicator_code", params.IndicatorCode)
	}
	if params.Country != "" {
		spec.Eq("country", params.Country)
	}

	return s.repo.EconomicIndicators(ctx, spec)
}

func (s *marketService) ListTradeFlows(ctx context.Context, params TradeFlowParams) ([]*models.TradeFlow, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}

	spec := &query.Spec{Page: params.Page}
	if params.OriginCountry != "" {
		spec.Eq("origin_country", params.OriginCountry)
	}
	if params.DestinationCountry != "" {
		spec.Eq("destination_country", params.DestinationCountry)
	}

	return s.repo.TradeFlows(ctx, spec)
}
