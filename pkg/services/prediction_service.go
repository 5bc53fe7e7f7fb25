package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
)

// PredictionListParams are the optional filters for a prediction listing.
type PredictionListParams struct {
	Status         string
	TargetPolicyID *int64
	Page           query.Page
}

// PredictionService provides access to model-generated policy predictions
// and the registered prediction models.
type PredictionService interface {
	ListPredictions(ctx context.Context, params PredictionListParams) ([]*models.PolicyPrediction, error)
	CreatePrediction(ctx context.Context, prediction *models.PolicyPrediction) error
	ListModels(ctx context.Context) ([]*models.PredictionModel, error)
}

type predictionService struct {
	repo repositories.PredictionRepository
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(repo repositories.PredictionRepository) PredictionService {
	return &predictionService{repo: repo}
}

var _ PredictionService = (*predictionService)(nil)

func (s *predictionService) ListPredictions(ctx context.Context, params PredictionListParams) ([]*models.PolicyPrediction, error) {
	if err := params.Page.Validate(0); err != nil {
		return nil, err
	}
	if params.Status != "" && !models.PredictionStatus(params.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown prediction status %q", apperrors.ErrValidation, params.Status)
	}

	spec := &query.Spec{Page: params.Page}
	if params.Status != "" {
		spec.Eq("status", params.Status)
	}
	if params.TargetPolicyID != nil {
		spec.Eq("target_policy_id", *params.TargetPolicyID)
	}

	return s.repo.List(ctx, spec)
}

func (s *predictionService) CreatePrediction(ctx context.Context, prediction *models.PolicyPrediction) error {
	if strings.TrimSpace(prediction.PredictionType) == "" {
		return fmt.Errorf("%w: prediction_type is required", apperrors.ErrValidation)
	}
	if prediction.Status == "" {
		prediction.Status = models.PredictionPending
	}
	if !prediction.Status.Valid() {
		return fmt.Errorf("%w: unknown prediction status %q", apperrors.ErrValidation, prediction.Status)
	}
	if prediction.PredictionID == "" {
		prediction.PredictionID = uuid.New().String()
	}

	prediction.ID = 0

	return s.repo.Create(ctx, prediction)
}

func (s *predictionService) ListModels(ctx context.Context) ([]*models.PredictionModel, error) {
	return s.repo.Models(ctx)
}
