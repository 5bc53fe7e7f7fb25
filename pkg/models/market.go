package models

import "time"

// MarketData is one bar of an asset's price series, keyed by (symbol, date).
// It carries no foreign keys into the policy or company tables.
type MarketData struct {
	Base
	Symbol    string  `json:"symbol"`
	AssetType string  `json:"asset_type"`
	Exchange  *string `json:"exchange,omitempty"`

	Date time.Time `json:"date"`

	OpenPrice     *float64 `json:"open_price,omitempty"`
	HighPrice     *float64 `json:"high_price,omitempty"`
	LowPrice      *float64 `json:"low_price,omitempty"`
	ClosePrice    *float64 `json:"close_price,omitempty"`
	AdjustedClose *float64 `json:"adjusted_close,omitempty"`

	Volume        *float64 `json:"volume,omitempty"`
	DailyReturn   *float64 `json:"daily_return,omitempty"`
	Volatility    *float64 `json:"volatility,omitempty"`
	MarketCap     *float64 `json:"market_cap,omitempty"`
	PERatio       *float64 `json:"pe_ratio,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`

	DataSource *string `json:"data_source,omitempty"`
}

// EconomicIndicator is one observation of a macro indicator series.
// IndicatorCode is the unique natural key.
type EconomicIndicator struct {
	Base
	IndicatorName string  `json:"indicator_name"`
	IndicatorCode string  `json:"indicator_code"`
	Category      *string `json:"category,omitempty"`

	Country string  `json:"country"`
	Region  *string `json:"region,omitempty"`

	Date      time.Time `json:"date"`
	Frequency *string   `json:"frequency,omitempty"`

	Value            *float64 `json:"value,omitempty"`
	PreviousValue    *float64 `json:"previous_value,omitempty"`
	Change           *float64 `json:"change,omitempty"`
	ChangePercentage *float64 `json:"change_percentage,omitempty"`

	Unit  *string `json:"unit,omitempty"`
	Scale *string `json:"scale,omitempty"`

	SourceAgency *string `json:"source_agency,omitempty"`
}

// TradeFlow is one recorded import/export movement. Company references are
// free-text names, not foreign keys.
type TradeFlow struct {
	Base
	TradeID   string `json:"trade_id"`
	TradeType string `json:"trade_type"`

	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`

	ProductCategory *string `json:"product_category,omitempty"`
	ProductCode     *string `json:"product_code,omitempty"`

	Date         time.Time `json:"date"`
	Quantity     *float64  `json:"quantity,omitempty"`
	QuantityUnit *string   `json:"quantity_unit,omitempty"`
	ValueUSD     *float64  `json:"value_usd,omitempty"`

	TariffRate *float64 `json:"tariff_rate,omitempty"`
	DutyAmount *float64 `json:"duty_amount,omitempty"`

	TransportMode *string `json:"transport_mode,omitempty"`

	ExporterCompany *string `json:"exporter_company,omitempty"`
	ImporterCompany *string `json:"importer_company,omitempty"`
}
