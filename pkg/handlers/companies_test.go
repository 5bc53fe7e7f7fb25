package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

func newCompanyTestMux(svc services.CompanyService) *http.ServeMux {
	mux := http.NewServeMux()
	NewCompanyHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListCompanies_PassesFilters(t *testing.T) {
	var captured services.CompanyListParams
	svc := &mockCompanyService{
		listFunc: func(ctx context.Context, params services.CompanyListParams) ([]*models.Company, error) {
			captured = params
			return []*models.Company{}, nil
		},
	}
	mux := newCompanyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies?industry=energy&country=US&limit=5", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "energy", captured.Industry)
	assert.Equal(t, "US", captured.Country)
	assert.Equal(t, 5, captured.Page.Limit)
}

func TestGetCompany_NotFound(t *testing.T) {
	mux := newCompanyTestMux(&mockCompanyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/404", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfile_MissingProfileIs404(t *testing.T) {
	mux := newCompanyTestMux(&mockCompanyService{
		getFunc: func(ctx context.Context, id int64) (*models.Company, error) {
			return &models.Company{Name: "Acme"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/3/profile", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFinancialMetrics_PassesPage(t *testing.T) {
	var gotID int64
	var gotPage query.Page
	svc := &mockCompanyService{
		metricsFunc: func(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error) {
			gotID = companyID
			gotPage = page
			return []*models.FinancialMetrics{}, nil
		},
	}
	mux := newCompanyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/8/financial-metrics?skip=4&limit=2", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(8), gotID)
	assert.Equal(t, query.Page{Skip: 4, Limit: 2}, gotPage)
}
