package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// CompanyRepository provides data access for companies, their profiles,
// and their financial time series.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	Get(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context, spec *query.Spec) ([]*models.Company, error)
	Profile(ctx context.Context, companyID int64) (*models.CompanyProfile, error)
	FinancialMetrics(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error)
}

type companyRepository struct {
	db *database.DB
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(db *database.DB) CompanyRepository {
	return &companyRepository{db: db}
}

var _ CompanyRepository = (*companyRepository)(nil)

const companyColumns = `
	id, created_at, updated_at, created_by, updated_by, metadata,
	name, ticker_symbol, isin, cusip, industry, sector, sub_sector,
	headquarters_country, headquarters_city, incorporation_country,
	market_cap, revenue, employees, fortune_500_rank, fortune_500_year,
	business_model, primary_markets, regulatory_jurisdictions`

// Create inserts a new company. The identifier is server-assigned.
func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	now := time.Now().UTC()

	sql := `
		INSERT INTO companies (
			created_at, updated_at, created_by, updated_by, metadata,
			name, ticker_symbol, isin, cusip, industry, sector, sub_sector,
			headquarters_country, headquarters_city, incorporation_country,
			market_cap, revenue, employees, fortune_500_rank, fortune_500_year,
			business_model, primary_markets, regulatory_jurisdictions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, sql,
		now,
		now,
		company.CreatedBy,
		company.UpdatedBy,
		company.Metadata,
		company.Name,
		company.TickerSymbol,
		company.ISIN,
		company.CUSIP,
		company.Industry,
		company.Sector,
		company.SubSector,
		company.HeadquartersCountry,
		company.HeadquartersCity,
		company.IncorporationCountry,
		company.MarketCap,
		company.Revenue,
		company.Employees,
		company.Fortune500Rank,
		company.Fortune500Year,
		company.BusinessModel,
		jsonbValue(company.PrimaryMarkets),
		jsonbValue(company.RegulatoryJurisdictions),
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// Get retrieves a company by ID. Returns (nil, nil) when it does not exist.
func (r *companyRepository) Get(ctx context.Context, id int64) (*models.Company, error) {
	sql := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

// List returns the page of companies matching the filter spec.
func (r *companyRepository) List(ctx context.Context, spec *query.Spec) ([]*models.Company, error) {
	where, args := spec.Where(1)

	sql := `SELECT ` + companyColumns + ` FROM companies`
	if where != "" {
		sql += " " + where
	}
	if spec.Page.Limit > 0 {
		sql += fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
		args = append(args, spec.Page.Skip, spec.Page.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

// Profile returns the optional one-to-one profile for the company, or
// (nil, nil) when the company has none.
func (r *companyRepository) Profile(ctx context.Context, companyID int64) (*models.CompanyProfile, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       company_id, description, mission_statement, ceo, cfo, general_counsel,
		       website, email, esg_rating, carbon_footprint,
		       risk_tolerance, political_exposure, regulatory_risk_score
		FROM company_profiles
		WHERE company_id = $1`

	var p models.CompanyProfile
	err := r.db.QueryRow(ctx, sql, companyID).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.Metadata,
		&p.CompanyID, &p.Description, &p.MissionStatement, &p.CEO, &p.CFO, &p.GeneralCounsel,
		&p.Website, &p.Email, &p.ESGRating, &p.CarbonFootprint,
		&p.RiskTolerance, &p.PoliticalExposure, &p.RegulatoryRiskScore,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query company profile: %w", err)
	}

	return &p, nil
}

// FinancialMetrics returns the company's financial time series, most
// recent date first.
func (r *companyRepository) FinancialMetrics(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       company_id, date, total_revenue, revenue_growth,
		       net_income, operating_income, ebitda, profit_margin,
		       total_assets, total_liabilities, shareholders_equity, debt_to_equity,
		       operating_cash_flow, free_cash_flow, market_cap, pe_ratio,
		       effective_tax_rate
		FROM financial_metrics
		WHERE company_id = $1
		ORDER BY date DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, sql, companyID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial metrics: %w", err)
	}
	defer rows.Close()

	metrics := []*models.FinancialMetrics{}
	for rows.Next() {
		var m models.FinancialMetrics
		err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, &m.Metadata,
			&m.CompanyID, &m.Date, &m.TotalRevenue, &m.RevenueGrowth,
			&m.NetIncome, &m.OperatingIncome, &m.EBITDA, &m.ProfitMargin,
			&m.TotalAssets, &m.TotalLiabilities, &m.ShareholdersEquity, &m.DebtToEquity,
			&m.OperatingCashFlow, &m.FreeCashFlow, &m.MarketCap, &m.PERatio,
			&m.EffectiveTaxRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financial metrics: %w", err)
		}
		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial metrics: %w", err)
	}

	return metrics, nil
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	var primaryMarkets, regulatoryJurisdictions []byte

	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy, &c.Metadata,
		&c.Name, &c.TickerSymbol, &c.ISIN, &c.CUSIP, &c.Industry, &c.Sector, &c.SubSector,
		&c.HeadquartersCountry, &c.HeadquartersCity, &c.IncorporationCountry,
		&c.MarketCap, &c.Revenue, &c.Employees, &c.Fortune500Rank, &c.Fortune500Year,
		&c.BusinessModel, &primaryMarkets, &regulatoryJurisdictions,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}

	if err := jsonUnmarshal(primaryMarkets, &c.PrimaryMarkets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal primary_markets: %w", err)
	}
	if err := jsonUnmarshal(regulatoryJurisdictions, &c.RegulatoryJurisdictions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal regulatory_jurisdictions: %w", err)
	}

	return &c, nil
}
