package handlers

import (
	"context"

	"github.com/policyradar/policyradar-engine/pkg/analytics"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

// mockPolicyService implements services.PolicyService with overridable
// function fields. Unset fields return zero values.
type mockPolicyService struct {
	listFunc       func(ctx context.Context, params services.PolicyListParams) ([]*models.Policy, error)
	getFunc        func(ctx context.Context, id int64) (*models.Policy, error)
	createFunc     func(ctx context.Context, policy *models.Policy) error
	updateFunc     func(ctx context.Context, policy *models.Policy) error
	deleteFunc     func(ctx context.Context, id int64) error
	changesFunc    func(ctx context.Context, policyID int64) ([]*models.PolicyChange, error)
	categoriesFunc func(ctx context.Context) ([]*models.PolicyCategory, error)
	summaryFunc    func(ctx context.Context, params services.SummaryParams) (*analytics.Summary, error)
	searchFunc     func(ctx context.Context, term string, page query.Page) ([]*models.Policy, error)
	recentFunc     func(ctx context.Context, days, limit int) ([]*models.Policy, error)
	highRiskFunc   func(ctx context.Context, limit int) ([]*models.Policy, error)
}

func (m *mockPolicyService) ListPolicies(ctx context.Context, params services.PolicyListParams) ([]*models.Policy, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, params)
	}
	return []*models.Policy{}, nil
}

func (m *mockPolicyService) GetPolicy(ctx context.Context, id int64) (*models.Policy, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPolicyService) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, policy)
	}
	return nil
}

func (m *mockPolicyService) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, policy)
	}
	return nil
}

func (m *mockPolicyService) DeletePolicy(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPolicyService) GetChanges(ctx context.Context, policyID int64) ([]*models.PolicyChange, error) {
	if m.changesFunc != nil {
		return m.changesFunc(ctx, policyID)
	}
	return []*models.PolicyChange{}, nil
}

func (m *mockPolicyService) GetCategories(ctx context.Context) ([]*models.PolicyCategory, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return []*models.PolicyCategory{}, nil
}

func (m *mockPolicyService) Summary(ctx context.Context, params services.SummaryParams) (*analytics.Summary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, params)
	}
	return analytics.Summarize(nil), nil
}

func (m *mockPolicyService) Search(ctx context.Context, term string, page query.Page) ([]*models.Policy, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, term, page)
	}
	return []*models.Policy{}, nil
}

func (m *mockPolicyService) Recent(ctx context.Context, days, limit int) ([]*models.Policy, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, days, limit)
	}
	return []*models.Policy{}, nil
}

func (m *mockPolicyService) HighRisk(ctx context.Context, limit int) ([]*models.Policy, error) {
	if m.highRiskFunc != nil {
		return m.highRiskFunc(ctx, limit)
	}
	return []*models.Policy{}, nil
}

// mockCompanyService implements services.CompanyService.
type mockCompanyService struct {
	listFunc    func(ctx context.Context, params services.CompanyListParams) ([]*models.Company, error)
	getFunc     func(ctx context.Context, id int64) (*models.Company, error)
	profileFunc func(ctx context.Context, companyID int64) (*models.CompanyProfile, error)
	metricsFunc func(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error)
}

func (m *mockCompanyService) ListCompanies(ctx context.Context, params services.CompanyListParams) ([]*models.Company, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, params)
	}
	return []*models.Company{}, nil
}

func (m *mockCompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyService) GetProfile(ctx context.Context, companyID int64) (*models.CompanyProfile, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockCompanyService) GetFinancialMetrics(ctx context.Context, companyID int64, page query.Page) ([]*models.FinancialMetrics, error) {
	if m.metricsFunc != nil {
		return m.metricsFunc(ctx, companyID, page)
	}
	return []*models.FinancialMetrics{}, nil
}

// mockImpactService implements services.ImpactService.
type mockImpactService struct {
	listFunc    func(ctx context.Context, params services.ImpactListParams) ([]*models.ImpactAssessment, error)
	getFunc     func(ctx context.Context, id int64) (*models.ImpactAssessment, error)
	metricsFunc func(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error)
	scoresFunc  func(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error)
}

func (m *mockImpactService) ListAssessments(ctx context.Context, params services.ImpactListParams) ([]*models.ImpactAssessment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, params)
	}
	return []*models.ImpactAssessment{}, nil
}

func (m *mockImpactService) GetAssessment(ctx context.Context, id int64) (*models.ImpactAssessment, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockImpactService) GetMetrics(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error) {
	if m.metricsFunc != nil {
		return m.metricsFunc(ctx, assessmentID)
	}
	return []*models.ImpactMetric{}, nil
}

func (m *mockImpactService) GetRiskScores(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error) {
	if m.scoresFunc != nil {
		return m.scoresFunc(ctx, assessmentID)
	}
	return []*models.RiskScore{}, nil
}

// mockMarketService implements services.MarketService.
type mockMarketService struct {
	marketFunc     func(ctx context.Context, params services.MarketDataParams) ([]*models.MarketData, error)
	indicatorsFunc func(ctx context.Context, params services.IndicatorParams) ([]*models.EconomicIndicator, error)
	flowsFunc      func(ctx context.Context, params services.TradeFlowParams) ([]*models.TradeFlow, error)
}

func (m *mockMarketService) ListMarketData(ctx context.Context, params services.MarketDataParams) ([]*models.MarketData, error) {
	if m.marketFunc != nil {
		return m.marketFunc(ctx, params)
	}
	return []*models.MarketData{}, nil
}

func (m *mockMarketService) ListIndicators(ctx context.Context, params services.IndicatorParams) ([]*models.EconomicIndicator, error) {
	if m.indicatorsFunc != nil {
		return m.indicatorsFunc(ctx, params)
	}
	return []*models.EconomicIndicator{}, nil
}

func (m *mockMarketService) ListTradeFlows(ctx context.Context, params services.TradeFlowParams) ([]*models.TradeFlow, error) {
	if m.flowsFunc != nil {
		return m.flowsFunc(ctx, params)
	}
	return []*models.TradeFlow{}, nil
}

// mockPredictionService implements services.PredictionService.
type mockPredictionService struct {
	listFunc   func(ctx context.Context, params services.PredictionListParams) ([]*models.PolicyPrediction, error)
	createFunc func(ctx context.Context, prediction *models.PolicyPrediction) error
	modelsFunc func(ctx context.Context) ([]*models.PredictionModel, error)
}

func (m *mockPredictionService) ListPredictions(ctx context.Context, params services.PredictionListParams) ([]*models.PolicyPrediction, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, params)
	}
	return []*models.PolicyPrediction{}, nil
}

func (m *mockPredictionService) CreatePrediction(ctx context.Context, prediction *models.PolicyPrediction) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, prediction)
	}
	return nil
}

func (m *mockPredictionService) ListModels(ctx context.Context) ([]*models.PredictionModel, error) {
	if m.modelsFunc != nil {
		return m.modelsFunc(ctx)
	}
	return []*models.PredictionModel{}, nil
}
