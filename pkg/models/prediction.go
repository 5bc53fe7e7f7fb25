package models

import "time"

// PredictionStatus tracks the lifecycle of a prediction record.
// Predictions are inert metadata; no inference populates their values.
type PredictionStatus string

const (
	PredictionPending   PredictionStatus = "PENDING"
	PredictionConfirmed PredictionStatus = "CONFIRMED"
	PredictionRejected  PredictionStatus = "REJECTED"
	PredictionExpired   PredictionStatus = "EXPIRED"
)

// Valid reports whether s is a known prediction status.
func (s PredictionStatus) Valid() bool {
	switch s {
	case PredictionPending, PredictionConfirmed, PredictionRejected, PredictionExpired:
		return true
	}
	return false
}

// PolicyPrediction is a metadata record describing a hypothetical
// prediction. PredictionID is the unique natural key.
type PolicyPrediction struct {
	Base
	PredictionID   string `json:"prediction_id"`
	PredictionType string `json:"prediction_type"`

	TargetPolicyID     *int64  `json:"target_policy_id,omitempty"`
	TargetJurisdiction string  `json:"target_jurisdiction"`
	TargetIndustry     *string `json:"target_industry,omitempty"`

	PredictionHorizon *int64   `json:"prediction_horizon,omitempty"`
	ConfidenceLevel   *float64 `json:"confidence_level,omitempty"`
	Scenario          *string  `json:"scenario,omitempty"`

	ModelID      *int64  `json:"model_id,omitempty"`
	ModelVersion *string `json:"model_version,omitempty"`

	PredictedValue       *float64 `json:"predicted_value,omitempty"`
	PredictedProbability *float64 `json:"predicted_probability,omitempty"`

	PredictionDate time.Time  `json:"prediction_date"`
	TargetDate     *time.Time `json:"target_date,omitempty"`

	Status        PredictionStatus `json:"status"`
	ActualOutcome *float64         `json:"actual_outcome,omitempty"`
	AccuracyScore *float64         `json:"accuracy_score,omitempty"`
}

// PredictionModel is metadata describing a registered model.
type PredictionModel struct {
	Base
	ModelName    string  `json:"model_name"`
	ModelType    string  `json:"model_type"`
	ModelVersion string  `json:"model_version"`
	Description  *string `json:"description,omitempty"`

	AccuracyScore *float64   `json:"accuracy_score,omitempty"`
	TrainedAt     *time.Time `json:"trained_at,omitempty"`
	IsActive      bool       `json:"is_active"`
}
