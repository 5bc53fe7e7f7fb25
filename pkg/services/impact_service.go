package services

import (
	"context"
	"fmt"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
)

// ImpactListParams are the optional filters for an impact assessment listing.
type ImpactListParams struct {
	PolicyID  *int64
	CompanyID *int64
	RiskLevel string
	Page      query.Page
}

// ImpactService provides read access to policy-company impact assessments
// and their metric and risk score breakdowns.
type ImpactService interface {
	ListAssessments(ctx context.Context, params ImpactListParams) ([]*models.ImpactAssessment, error)
	GetAssessment(ctx context.Context, id int64) (*models.ImpactAssessment, error)
	GetMetrics(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error)
	GetRiskScores(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error)
}

type impactService struct {
	repo repositories.ImpactRepository
}

// NewImpactService creates a new ImpactService.
func NewImpactService(repo repositories.ImpactRepository) ImpactService {
	return &impactService{repo: repo}
}

var _ ImpactService = (*impactService)(nil)

func (s *impactService) ListAssessments(ctx context.Context, params ImpactListParams) ([]*models.ImpactAssessment, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}
	if params.RiskLevel != "" && !models.RiskLevel(params.RiskLevel).Valid() {
		return nil, fmt.Errorf("%w: unknown risk level %q", apperrors.ErrValidation, params.RiskLevel)
	}

	spec := &query.Spec{Page: params.Page}
	if params.PolicyID != nil {
		spec.Eq("policy_id", *params.PolicyID)
	}
	if params.CompanyID != nil {
		spec.Eq("company_id", *params.CompanyID)
	}
	if params.RiskLevel != "" {
		spec.Eq("risk_level", params.RiskLevel)
	}

	return s.repo.List(ctx, spec)
}

func (s *impactService) GetAssessment(ctx context.Context, id int64) (*models.ImpactAssessment, error) {
	return s.repo.Get(ctx, id)
}

func (s *impactService) GetMetrics(ctx context.Context, assessmentID int64) ([]*models.ImpactMetric, error) {
	return s.repo.Metrics(ctx, assessmentID)
}

func (s *impactService) GetRiskScores(ctx context.Context, assessmentID int64) ([]*models.RiskScore, error) {
	return s.repo.RiskScores(ctx, assessmentID)
}
