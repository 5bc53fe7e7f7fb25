package repositories

import (
	"context"
	"fmt"

	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// MarketRepository provides read access to the independent market,
// indicator, and trade-flow time series.
type MarketRepository interface {
	MarketData(ctx context.Context, spec *query.Spec) ([]*models.MarketData, error)
	EconomicIndicators(ctx context.Context, spec *query.Spec) ([]*models.EconomicIndicator, error)
	TradeFlows(ctx context.Context, spec *query.Spec) ([]*models.TradeFlow, error)
}

type marketRepository struct {
	db *database.DB
}

// NewMarketRepository creates a new MarketRepository.
func NewMarketRepository(db *database.DB) MarketRepository {
	return &marketRepository{db: db}
}

var _ MarketRepository = (*marketRepository)(nil)

// MarketData returns the page of price bars matching the filter spec,
// most recent date first.
func (r *marketRepository) MarketData(ctx context.Context, spec *query.Spec) ([]*models.MarketData, error) {
	where, args := spec.Where(1)

	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       symbol, asset_type, exchange, date,
		       open_price, high_price, low_price, close_price, adjusted_close,
		       volume, daily_return, volatility, market_cap, pe_ratio,
		       dividend_yield, data_source
		FROM market_data`
	if where != "" {
		sql += " " + where
	}
	sql += fmt.Sprintf(" ORDER BY date DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, spec.Page.Skip, spec.Page.Limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query market data: %w", err)
	}
	defer rows.Close()

	records := []*models.MarketData{}
	for rows.Next() {
		var m models.MarketData
		err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, &m.Metadata,
			&m.Symbol, &m.AssetType, &m.Exchange, &m.Date,
			&m.OpenPrice, &m.HighPrice, &m.LowPrice, &m.ClosePrice, &m.AdjustedClose,
			&m.Volume, &m.DailyReturn, &m.Volatility, &m.MarketCap, &m.PERatio,
			&m.DividendYield, &m.DataSource,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market data: %w", err)
		}
		records = append(records, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market data: %w", err)
	}

	return records, nil
}

// EconomicIndicators returns the page of indicator observations matching
// the filter spec, most recent date first.
func (r *marketRepository) EconomicIndicators(ctx context.Context, spec *query.Spec) ([]*models.EconomicIndicator, error) {
	where, args := spec.Where(1)

	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       indicator_name, indicator_code, category, country, region,
		       date, frequency, value, previous_value, change, change_percentage,
		       unit, scale, source_agency
		FROM economic_indicators`
	if where != "" {
		sql += " " + where
	}
	sql += fmt.Sprintf(" ORDER BY date DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, spec.Page.Skip, spec.Page.Limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query economic indicators: %w", err)
	}
	defer rows.Close()

	indicators := []*models.EconomicIndicator{}
	for rows.Next() {
		var e models.EconomicIndicator
		err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy, &e.Metadata,
			&e.IndicatorName, &e.IndicatorCode, &e.Category, &e.Country, &e.Region,
			&e.Date, &e.Frequency, &e.Value, &e.PreviousValue, &e.Change, &e.ChangePercentage,
			&e.Unit, &e.Scale, &e.SourceAgency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan economic indicator: %w", err)
		}
		indicators = append(indicators, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating economic indicators: %w", err)
	}

	return indicators, nil
}

// TradeFlows returns the page of trade flows matching the filter spec,
// most recent date first.
func (r *marketRepository) TradeFlows(ctx context.Context, spec *query.Spec) ([]*models.TradeFlow, error) {
	where, args := spec.Where(1)

	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       trade_id, trade_type, origin_country, destination_country,
		       product_category, product_code, date, quantity, quantity_unit,
		       value_usd, tariff_rate, duty_amount, transport_mode,
		       exporter_company, importer_company
		FROM trade_flows`
	if where != "" {
		sql += " " + where
	}
	sql += fmt.Sprintf(" ORDER BY date DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, spec.Page.Skip, spec.Page.Limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade flows: %w", err)
	}
	defer rows.Close()

	flows := []*models.TradeFlow{}
	for rows.Next() {
		var t models.TradeFlow
		err := rows.Scan(
			&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy, &t.Metadata,
			&t.TradeID, &t.TradeType, &t.OriginCountry, &t.DestinationCountry,
			&t.ProductCategory, &t.ProductCode, &t.Date, &t.Quantity, &t.QuantityUnit,
			&t.ValueUSD, &t.TariffRate, &t.DutyAmount, &t.TransportMode,
			&t.ExporterCompany, &t.ImporterCompany,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade flow: %w", err)
		}
		flows = append(flows, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade flows: %w", err)
	}

	return flows, nil
}
