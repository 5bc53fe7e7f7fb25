package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

func newPolicyTestMux(svc services.PolicyService) *http.ServeMux {
	mux := http.NewServeMux()
	NewPolicyHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListPolicies_PassesFilters(t *testing.T) {
	var captured services.PolicyListParams
	svc := &mockPolicyService{
		listFunc: func(ctx context.Context, params services.PolicyListParams) ([]*models.Policy, error) {
			captured = params
			return []*models.Policy{{Title: "Act", Jurisdiction: "US"}}, nil
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/policies?jurisdiction=US&industry=energy&status=ENACTED&skip=20&limit=10", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "US", captured.Jurisdiction)
	assert.Equal(t, "energy", captured.Industry)
	assert.Equal(t, "ENACTED", captured.Status)
	assert.Equal(t, query.Page{Skip: 20, Limit: 10}, captured.Page)

	var response ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
}

func TestListPolicies_EmptyPageIsNotAnError(t *testing.T) {
	mux := newPolicyTestMux(&mockPolicyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies?skip=5000&limit=100", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListPolicies_RejectsMalformedPagination(t *testing.T) {
	mux := newPolicyTestMux(&mockPolicyService{
		listFunc: func(ctx context.Context, params services.PolicyListParams) ([]*models.Policy, error) {
			if err := params.Page.Validate(0); err != nil {
				return nil, err
			}
			return []*models.Policy{}, nil
		},
	})

	for _, target := range []string{
		"/api/v1/policies?skip=abc",
		"/api/v1/policies?limit=abc",
		"/api/v1/policies?skip=-1",
		"/api/v1/policies?limit=0",
		"/api/v1/policies?limit=1001",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestGetPolicy_NotFound(t *testing.T) {
	mux := newPolicyTestMux(&mockPolicyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetPolicy_InvalidID(t *testing.T) {
	mux := newPolicyTestMux(&mockPolicyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/abc", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePolicy_ReturnsCreated(t *testing.T) {
	svc := &mockPolicyService{
		createFunc: func(ctx context.Context, policy *models.Policy) error {
			policy.ID = 7
			return nil
		},
	}
	mux := newPolicyTestMux(svc)

	body, _ := json.Marshal(map[string]any{
		"title":         "Carbon Border Adjustment",
		"policy_number": "EU-2026-17",
		"jurisdiction":  "EU",
		"policy_type":   "REGULATION",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/policies", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestCreatePolicy_ValidationErrorIs400(t *testing.T) {
	svc := &mockPolicyService{
		createFunc: func(ctx context.Context, policy *models.Policy) error {
			return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/policies", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

func TestUpdatePolicy_UsesPathID(t *testing.T) {
	var captured int64
	svc := &mockPolicyService{
		updateFunc: func(ctx context.Context, policy *models.Policy) error {
			captured = policy.ID
			return nil
		},
	}
	mux := newPolicyTestMux(svc)

	body, _ := json.Marshal(map[string]any{
		"id":            999,
		"title":         "Act",
		"policy_number": "HR-1",
		"jurisdiction":  "US",
		"policy_type":   "LEGISLATION",
		"status":        "ENACTED",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/policies/12", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), captured)
}

func TestUpdatePolicy_NotFoundIs404(t *testing.T) {
	svc := &mockPolicyService{
		updateFunc: func(ctx context.Context, policy *models.Policy) error {
			return apperrors.ErrNotFound
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/policies/99", bytes.NewReader([]byte(`{"title":"x"}`)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePolicy_NotFoundIs404(t *testing.T) {
	svc := &mockPolicyService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return apperrors.ErrNotFound
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/policies/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPolicyChanges_UnknownPolicyYieldsEmptyList(t *testing.T) {
	mux := newPolicyTestMux(&mockPolicyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/99/changes", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCategoriesRouteNotShadowedByID(t *testing.T) {
	called := false
	svc := &mockPolicyService{
		categoriesFunc: func(ctx context.Context) ([]*models.PolicyCategory, error) {
			called = true
			return []*models.PolicyCategory{}, nil
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/categories", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestSearchPolicies_RejectsInjectionPatterns(t *testing.T) {
	searched := false
	svc := &mockPolicyService{
		searchFunc: func(ctx context.Context, term string, page query.Page) ([]*models.Policy, error) {
			searched = true
			return []*models.Policy{}, nil
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/policies/search?q="+"%27%3B+DROP+TABLE+policies--", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_query")
	assert.False(t, searched)
}

func TestSearchPolicies_PassesTermAndPage(t *testing.T) {
	var gotTerm string
	var gotPage query.Page
	svc := &mockPolicyService{
		searchFunc: func(ctx context.Context, term string, page query.Page) ([]*models.Policy, error) {
			gotTerm = term
			gotPage = page
			return []*models.Policy{}, nil
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/search?q=tariff&skip=10&limit=25", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tariff", gotTerm)
	assert.Equal(t, query.Page{Skip: 10, Limit: 25}, gotPage)
}

func TestRecentPolicies_Defaults(t *testing.T) {
	var gotDays, gotLimit int
	svc := &mockPolicyService{
		recentFunc: func(ctx context.Context, days, limit int) ([]*models.Policy, error) {
			gotDays = days
			gotLimit = limit
			return []*models.Policy{}, nil
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/recent", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, gotDays)
	assert.Equal(t, 50, gotLimit)
}

func TestHighRiskPolicies_ServiceValidationIs400(t *testing.T) {
	svc := &mockPolicyService{
		highRiskFunc: func(ctx context.Context, limit int) ([]*models.Policy, error) {
			return nil, fmt.Errorf("%w: limit must be within 1..500", apperrors.ErrValidation)
		},
	}
	mux := newPolicyTestMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies/high-risk?limit=501", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
