package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

// GeneratePredictionRequest is the payload for POST /api/v1/predictions/generate.
// Supplied values are stored as-is; nothing runs a model.
type GeneratePredictionRequest struct {
	PredictionType     string  `json:"prediction_type" validate:"required"`
	TargetJurisdiction string  `json:"target_jurisdiction" validate:"required"`
	TargetIndustry     *string `json:"target_industry,omitempty"`
	TargetPolicyID     *int64  `json:"target_policy_id,omitempty"`

	// PredictionHorizon is in days.
	PredictionHorizon *int64   `json:"prediction_horizon,omitempty" validate:"omitempty,gte=1,lte=3650"`
	ConfidenceLevel   *float64 `json:"confidence_level,omitempty" validate:"omitempty,gte=0,lte=1"`
	Scenario          *string  `json:"scenario,omitempty"`

	ModelID      *int64  `json:"model_id,omitempty"`
	ModelVersion *string `json:"model_version,omitempty"`

	PredictedValue       *float64 `json:"predicted_value,omitempty"`
	PredictedProbability *float64 `json:"predicted_probability,omitempty" validate:"omitempty,gte=0,lte=1"`

	TargetDate *time.Time `json:"target_date,omitempty"`
}

// PredictionHandler handles prediction-related HTTP requests.
type PredictionHandler struct {
	predictionService services.PredictionService
	validate          *validator.Validate
	logger            *zap.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService services.PredictionService, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		logger:            logger,
	}
}

// RegisterRoutes registers the prediction routes on the given mux.
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/predictions", h.ListPredictions)
	mux.HandleFunc("GET /api/v1/predictions/models", h.ListModels)
	mux.HandleFunc("POST /api/v1/predictions/generate", h.GeneratePrediction)
}

// ListPredictions handles GET /api/v1/predictions.
func (h *PredictionHandler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "predictions")
		return
	}

	targetPolicyID, err := queryInt64Ptr(r, "target_policy_id")
	if err != nil {
		h.writeError(w, err, "predictions")
		return
	}

	predictions, err := h.predictionService.ListPredictions(r.Context(), services.PredictionListParams{
		Status:         r.URL.Query().Get("status"),
		TargetPolicyID: targetPolicyID,
		Page:           page,
	})
	if err != nil {
		h.writeError(w, err, "predictions")
		return
	}

	h.writeData(w, http.StatusOK, predictions)
}

// ListModels handles GET /api/v1/predictions/models.
func (h *PredictionHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	predictionModels, err := h.predictionService.ListModels(r.Context())
	if err != nil {
		h.writeError(w, err, "prediction models")
		return
	}

	h.writeData(w, http.StatusOK, predictionModels)
}

// GeneratePrediction handles POST /api/v1/predictions/generate. The record
// is stored with a fresh prediction id and PENDING status.
func (h *PredictionHandler) GeneratePrediction(w http.ResponseWriter, r *http.Request) {
	var req GeneratePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error()); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	prediction := &models.PolicyPrediction{
		PredictionType:       req.PredictionType,
		TargetJurisdiction:   req.TargetJurisdiction,
		TargetIndustry:       req.TargetIndustry,
		TargetPolicyID:       req.TargetPolicyID,
		PredictionHorizon:    req.PredictionHorizon,
		ConfidenceLevel:      req.ConfidenceLevel,
		Scenario:             req.Scenario,
		ModelID:              req.ModelID,
		ModelVersion:         req.ModelVersion,
		PredictedValue:       req.PredictedValue,
		PredictedProbability: req.PredictedProbability,
		PredictionDate:       time.Now().UTC(),
		TargetDate:           req.TargetDate,
	}

	if err := h.predictionService.CreatePrediction(r.Context(), prediction); err != nil {
		h.writeError(w, err, "prediction")
		return
	}

	h.writeData(w, http.StatusCreated, prediction)
}

func (h *PredictionHandler) writeData(w http.ResponseWriter, status int, data any) {
	if err := WriteJSON(w, status, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *PredictionHandler) writeError(w http.ResponseWriter, err error, resource string) {
	h.logger.Error("Prediction request failed", zap.String("resource", resource), zap.Error(err))
	if err := serviceError(w, err, resource); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
