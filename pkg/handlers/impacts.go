package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/services"
)

// ImpactHandler handles impact assessment HTTP requests.
type ImpactHandler struct {
	impactService services.ImpactService
	logger        *zap.Logger
}

// NewImpactHandler creates a new ImpactHandler.
func NewImpactHandler(impactService services.ImpactService, logger *zap.Logger) *ImpactHandler {
	return &ImpactHandler{impactService: impactService, logger: logger}
}

// RegisterRoutes registers the impact assessment routes on the given mux.
func (h *ImpactHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/impacts", h.ListAssessments)
	mux.HandleFunc("GET /api/v1/impacts/{id}", h.GetAssessment)
	mux.HandleFunc("GET /api/v1/impacts/{id}/metrics", h.GetMetrics)
	mux.HandleFunc("GET /api/v1/impacts/{id}/risk-scores", h.GetRiskScores)
}

// ListAssessments handles GET /api/v1/impacts.
func (h *ImpactHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "impact assessments")
		return
	}

	policyID, err := queryInt64Ptr(r, "policy_id")
	if err != nil {
		h.writeError(w, err, "impact assessments")
		return
	}
	companyID, err := queryInt64Ptr(r, "company_id")
	if err != nil {
		h.writeError(w, err, "impact assessments")
		return
	}

	assessments, err := h.impactService.ListAssessments(r.Context(), services.ImpactListParams{
		PolicyID:  policyID,
		CompanyID: companyID,
		RiskLevel: r.URL.Query().Get("risk_level"),
		Page:      page,
	})
	if err != nil {
		h.writeError(w, err, "impact assessments")
		return
	}

	h.writeData(w, assessments)
}

// GetAssessment handles GET /api/v1/impacts/{id}.
func (h *ImpactHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "impact assessment")
		return
	}

	assessment, err := h.impactService.GetAssessment(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "impact assessment")
		return
	}
	if assessment == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "not_found", "Impact assessment not found"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	h.writeData(w, assessment)
}

// GetMetrics handles GET /api/v1/impacts/{id}/metrics.
func (h *ImpactHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "impact metrics")
		return
	}

	metrics, err := h.impactService.GetMetrics(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "impact metrics")
		return
	}

	h.writeData(w, metrics)
}

// GetRiskScores handles GET /api/v1/impacts/{id}/risk-scores.
func (h *ImpactHandler) GetRiskScores(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "risk scores")
		return
	}

	scores, err := h.impactService.GetRiskScores(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "risk scores")
		return
	}

	h.writeData(w, scores)
}

func (h *ImpactHandler) writeData(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ImpactHandler) writeError(w http.ResponseWriter, err error, resource string) {
	h.logger.Error("Impact request failed", zap.String("resource", resource), zap.Error(err))
	if err := serviceError(w, err, resource); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
