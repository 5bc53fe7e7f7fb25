package models

import "time"

// Company is a corporation whose policy exposure is tracked.
// Ticker, ISIN, and CUSIP are each nullable but unique when present.
type Company struct {
	Base
	Name         string  `json:"name"`
	TickerSymbol *string `json:"ticker_symbol,omitempty"`
	ISIN         *string `json:"isin,omitempty"`
	CUSIP        *string `json:"cusip,omitempty"`

	Industry  string  `json:"industry"`
	Sector    *string `json:"sector,omitempty"`
	SubSector *string `json:"sub_sector,omitempty"`

	HeadquartersCountry  string  `json:"headquarters_country"`
	HeadquartersCity     *string `json:"headquarters_city,omitempty"`
	IncorporationCountry *string `json:"incorporation_country,omitempty"`

	// MarketCap and Revenue are in millions USD.
	MarketCap *float64 `json:"market_cap,omitempty"`
	Revenue   *float64 `json:"revenue,omitempty"`
	Employees *int64   `json:"employees,omitempty"`

	Fortune500Rank *int64 `json:"fortune_500_rank,omitempty"`
	Fortune500Year *int64 `json:"fortune_500_year,omitempty"`

	BusinessModel  *string  `json:"business_model,omitempty"`
	PrimaryMarkets []string `json:"primary_markets,omitempty"`

	RegulatoryJurisdictions []string `json:"regulatory_jurisdictions,omitempty"`
}

// CompanyProfile is the optional one-to-one detail record for a company.
type CompanyProfile struct {
	Base
	CompanyID int64 `json:"company_id"`

	Description      *string `json:"description,omitempty"`
	MissionStatement *string `json:"mission_statement,omitempty"`

	CEO            *string `json:"ceo,omitempty"`
	CFO            *string `json:"cfo,omitempty"`
	GeneralCounsel *string `json:"general_counsel,omitempty"`

	Website *string `json:"website,omitempty"`
	Email   *string `json:"email,omitempty"`

	ESGRating       *string  `json:"esg_rating,omitempty"`
	CarbonFootprint *float64 `json:"carbon_footprint,omitempty"`

	RiskTolerance       *string  `json:"risk_tolerance,omitempty"`
	PoliticalExposure   *float64 `json:"political_exposure,omitempty"`
	RegulatoryRiskScore *float64 `json:"regulatory_risk_score,omitempty"`
}

// FinancialMetrics is one row of a company's financial time series,
// keyed by (company, date). Monetary values are in millions USD.
type FinancialMetrics struct {
	Base
	CompanyID int64     `json:"company_id"`
	Date      time.Time `json:"date"`

	TotalRevenue  *float64 `json:"total_revenue,omitempty"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`

	NetIncome       *float64 `json:"net_income,omitempty"`
	OperatingIncome *float64 `json:"operating_income,omitempty"`
	EBITDA          *float64 `json:"ebitda,omitempty"`
	ProfitMargin    *float64 `json:"profit_margin,omitempty"`

	TotalAssets        *float64 `json:"total_assets,omitempty"`
	TotalLiabilities   *float64 `json:"total_liabilities,omitempty"`
	ShareholdersEquity *float64 `json:"shareholders_equity,omitempty"`
	DebtToEquity       *float64 `json:"debt_to_equity,omitempty"`

	OperatingCashFlow *float64 `json:"operating_cash_flow,omitempty"`
	FreeCashFlow      *float64 `json:"free_cash_flow,omitempty"`

	MarketCap *float64 `json:"market_cap,omitempty"`
	PERatio   *float64 `json:"pe_ratio,omitempty"`

	EffectiveTaxRate *float64 `json:"effective_tax_rate,omitempty"`
}
