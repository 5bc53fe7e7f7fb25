package services

import (
	"context"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
)

// CompanyListParams are the optional filters for a company listing.
type CompanyListParams struct {
	Industry string
	Country  string
	Page     query.Page
}

// CompanyService provides read access to companies, their profiles, and
// their financial metrics history.
type CompanyService interface {
	ListCompanies(ctx context.Context, params CompanyListParams) ([]*models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	GetProfile(ctx context.Context, companyID int64) (*models.CompanyProfile, error)
	GetFinancialMetrics(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error)
}

type companyService struct {
	repo repositories.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(repo repositories.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

var _ CompanyService = (*companyService)(nil)

func (s *companyService) ListCompanies(ctx context.Context, params CompanyListParams) ([]*models.Company, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}

	spec := &query.Spec{Page: params.Page}
	if params.Industry != "" {
		spec.Eq("industry", params.Industry)
	}
	if params.Country != "" {
		spec.Eq("headquarters_country", params.Country)
	}

	return s.repo.List(ctx, spec)
}

func (s *companyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.repo.Get(ctx, id)
}

func (s *companyService) GetProfile(ctx context.Context, companyID int64) (*models.CompanyProfile, error) {
	return s.repo.Profile(ctx, companyID)
}

func (s *companyService) GetFinancialMetrics(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error) {
	if err := page.Validate(0); err != nil {
		return nil, err
	}
	return s.repo.FinancialMetrics(ctx, companyID, page)
}
