package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// PredictionRepository provides data access for prediction records and the
// registered model metadata. Predictions store caller-supplied values only;
// no inference runs here.
type PredictionRepository interface {
	Create(ctx context.Context, prediction *models.PolicyPrediction) error
	List(ctx context.Context, spec *query.Spec) ([]*models.PolicyPrediction, error)
	Models(ctx context.Context) ([]*models.PredictionModel, error)
}

type predictionRepository struct {
	db *database.DB
}

// NewPredictionRepository creates a new PredictionRepository.
func NewPredictionRepository(db *database.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

var _ PredictionRepository = (*predictionRepository)(nil)

const predictionColumns = `
	id, created_at, updated_at, created_by, updated_by, metadata,
	prediction_id, prediction_type, target_policy_id, target_jurisdiction,
	target_industry, prediction_horizon, confidence_level, scenario,
	model_id, model_version, predicted_value, predicted_probability,
	prediction_date, target_date, status, actual_outcome, accuracy_score`

// Create inserts a new prediction record.
func (r *predictionRepository) Create(ctx context.Context, prediction *models.PolicyPrediction) error {
	now := time.Now().UTC()

	sql := `
		INSERT INTO policy_predictions (
			created_at, updated_at, created_by, updated_by, metadata,
			prediction_id, prediction_type, target_policy_id, target_jurisdiction,
			target_industry, prediction_horizon, confidence_level, scenario,
			model_id, model_version, predicted_value, predicted_probability,
			prediction_date, target_date, status, actual_outcome, accuracy_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, sql,
		now,
		now,
		prediction.CreatedBy,
		prediction.UpdatedBy,
		prediction.Metadata,
		prediction.PredictionID,
		prediction.PredictionType,
		prediction.TargetPolicyID,
		prediction.TargetJurisdiction,
		prediction.TargetIndustry,
		prediction.PredictionHorizon,
		prediction.ConfidenceLevel,
		prediction.Scenario,
		prediction.ModelID,
		prediction.ModelVersion,
		prediction.PredictedValue,
		prediction.PredictedProbability,
		prediction.PredictionDate,
		prediction.TargetDate,
		prediction.Status,
		prediction.ActualOutcome,
		prediction.AccuracyScore,
	).Scan(&prediction.ID, &prediction.CreatedAt, &prediction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create prediction: %w", err)
	}

	return nil
}

// List returns the page of predictions matching the filter spec.
func (r *predictionRepository) List(ctx context.Context, spec *query.Spec) ([]*models.PolicyPrediction, error) {
	where, args := spec.Where(1)

	sql := `SELECT ` + predictionColumns + ` FROM policy_predictions`
	if where != "" {
		sql += " " + where
	}
	if spec.Page.Limit > 0 {
		sql += fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
		args = append(args, spec.Page.Skip, spec.Page.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	predictions := []*models.PolicyPrediction{}
	for rows.Next() {
		var p models.PolicyPrediction
		err := rows.Scan(
			&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.Metadata,
			&p.PredictionID, &p.PredictionType, &p.TargetPolicyID, &p.TargetJurisdiction,
			&p.TargetIndustry, &p.PredictionHorizon, &p.ConfidenceLevel, &p.Scenario,
			&p.ModelID, &p.ModelVersion, &p.PredictedValue, &p.PredictedProbability,
			&p.PredictionDate, &p.TargetDate, &p.Status, &p.ActualOutcome, &p.AccuracyScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating predictions: %w", err)
	}

	return predictions, nil
}

// Models returns all registered prediction models.
func (r *predictionRepository) Models(ctx context.Context) ([]*models.PredictionModel, error) {
	sql := `
		SELECT id, created_at, updated_at, created_by, updated_by, metadata,
		       model_name, model_type, model_version, description,
		       accuracy_score, trained_at, is_active
		FROM prediction_models`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction models: %w", err)
	}
	defer rows.Close()

	predictionModels := []*models.PredictionModel{}
	for rows.Next() {
		var m models.PredictionModel
		err := rows.Scan(
			&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy, &m.Metadata,
			&m.ModelName, &m.ModelType, &m.ModelVersion, &m.Description,
			&m.AccuracyScore, &m.TrainedAt, &m.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction model: %w", err)
		}
		predictionModels = append(predictionModels, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prediction models: %w", err)
	}

	return predictionModels, nil
}
