package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/models"
	"github.com/policyradar/policyradar-engine/pkg/services"
	sqlguard "github.com/policyradar/policyradar-engine/pkg/sql"
)

// PolicyHandler handles policy-related HTTP requests.
type PolicyHandler struct {
	policyService services.PolicyService
	logger        *zap.Logger
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policyService services.PolicyService, logger *zap.Logger) *PolicyHandler {
	return &PolicyHandler{policyService: policyService, logger: logger}
}

// RegisterRoutes registers the policy routes on the given mux. Literal
// segments (categories, search, recent) take precedence over {id} in the
// route table, so the fixed-path listings must never collide with lookups.
func (h *PolicyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/policies", h.ListPolicies)
	mux.HandleFunc("POST /api/v1/policies", h.CreatePolicy)
	mux.HandleFunc("GET /api/v1/policies/{id}", h.GetPolicy)
	mux.HandleFunc("PUT /api/v1/policies/{id}", h.UpdatePolicy)
	mux.HandleFunc("DELETE /api/v1/policies/{id}", h.DeletePolicy)
	mux.HandleFunc("GET /api/v1/policies/{id}/changes", h.GetPolicyChanges)
	mux.HandleFunc("GET /api/v1/policies/categories", h.GetCategories)
	mux.HandleFunc("GET /api/v1/policies/analytics/summary", h.GetAnalyticsSummary)
	mux.HandleFunc("GET /api/v1/policies/search", h.SearchPolicies)
	mux.HandleFunc("GET /api/v1/policies/recent", h.GetRecentPolicies)
	mux.HandleFunc("GET /api/v1/policies/high-risk", h.GetHighRiskPolicies)
}

// ListPolicies handles GET /api/v1/policies. All supplied filters are
// combined with AND.
func (h *PolicyHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "policies")
		return
	}

	categoryID, err := queryInt64Ptr(r, "category_id")
	if err != nil {
		h.writeError(w, err, "policies")
		return
	}
	startDate, err := queryTimePtr(r, "start_date")
	if err != nil {
		h.writeError(w, err, "policies")
		return
	}
	endDate, err := queryTimePtr(r, "end_date")
	if err != nil {
		h.writeError(w, err, "policies")
		return
	}

	params := services.PolicyListParams{
		Jurisdiction: r.URL.Query().Get("jurisdiction"),
		Industry:     r.URL.Query().Get("industry"),
		Status:       r.URL.Query().Get("status"),
		CategoryID:   categoryID,
		StartDate:    startDate,
		EndDate:      endDate,
		Page:         page,
	}

	policies, err := h.policyService.ListPolicies(r.Context(), params)
	if err != nil {
		h.writeError(w, err, "policies")
		return
	}

	h.writeData(w, http.StatusOK, policies)
}

// GetPolicy handles GET /api/v1/policies/{id}.
func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "policy")
		return
	}

	policy, err := h.policyService.GetPolicy(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "policy")
		return
	}
	if policy == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "not_found", "Policy not found"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	h.writeData(w, http.StatusOK, policy)
}

// CreatePolicy handles POST /api/v1/policies. The identifier is assigned
// by the server; one supplied in the body is ignored.
func (h *PolicyHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var policy models.Policy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	if err := h.policyService.CreatePolicy(r.Context(), &policy); err != nil {
		h.writeError(w, err, "policy")
		return
	}

	h.writeData(w, http.StatusCreated, &policy)
}

// UpdatePolicy handles PUT /api/v1/policies/{id}. The update is a full
// overwrite; omitted optional fields are cleared.
func (h *PolicyHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "policy")
		return
	}

	var policy models.Policy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}
	policy.ID = id

	if err := h.policyService.UpdatePolicy(r.Context(), &policy); err != nil {
		h.writeError(w, err, "policy")
		return
	}

	h.writeData(w, http.StatusOK, &policy)
}

// DeletePolicy handles DELETE /api/v1/policies/{id}.
func (h *PolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "policy")
		return
	}

	if err := h.policyService.DeletePolicy(r.Context(), id); err != nil {
		h.writeError(w, err, "policy")
		return
	}

	response := ApiResponse{Success: true, Message: "Policy deleted successfully"}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode delete response", zap.Error(err))
	}
}

// GetPolicyChanges handles GET /api/v1/policies/{id}/changes. An unknown
// policy yields an empty list, not a 404.
func (h *PolicyHandler) GetPolicyChanges(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "policy changes")
		return
	}

	changes, err := h.policyService.GetChanges(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "policy changes")
		return
	}

	h.writeData(w, http.StatusOK, changes)
}

// GetCategories handles GET /api/v1/policies/categories.
func (h *PolicyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.policyService.GetCategories(r.Context())
	if err != nil {
		h.writeError(w, err, "policy categories")
		return
	}

	h.writeData(w, http.StatusOK, categories)
}

// GetAnalyticsSummary handles GET /api/v1/policies/analytics/summary.
func (h *PolicyHandler) GetAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	startDate, err := queryTimePtr(r, "start_date")
	if err != nil {
		h.writeError(w, err, "policy analytics")
		return
	}
	endDate, err := queryTimePtr(r, "end_date")
	if err != nil {
		h.writeError(w, err, "policy analytics")
		return
	}

	summary, err := h.policyService.Summary(r.Context(), services.SummaryParams{
		Jurisdiction: r.URL.Query().Get("jurisdiction"),
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		h.writeError(w, err, "policy analytics")
		return
	}

	h.writeData(w, http.StatusOK, summary)
}

// SearchPolicies handles GET /api/v1/policies/search. The q parameter is
// screened for SQL injection patterns before reaching the query layer.
func (h *PolicyHandler) SearchPolicies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	if result := sqlguard.CheckParameterForInjection("q", q); result != nil {
		h.logger.Warn("Rejected search query with injection pattern",
			zap.String("fingerprint", result.Fingerprint))
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_query", "Search query contains disallowed patterns"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "policy search")
		return
	}

	policies, err := h.policyService.Search(r.Context(), q, page)
	if err != nil {
		h.writeError(w, err, "policy search")
		return
	}

	h.writeData(w, http.StatusOK, policies)
}

// GetRecentPolicies handles GET /api/v1/policies/recent.
func (h *PolicyHandler) GetRecentPolicies(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		h.writeError(w, err, "recent policies")
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		h.writeError(w, err, "recent policies")
		return
	}

	policies, err := h.policyService.Recent(r.Context(), days, limit)
	if err != nil {
		h.writeError(w, err, "recent policies")
		return
	}

	h.writeData(w, http.StatusOK, policies)
}

// GetHighRiskPolicies handles GET /api/v1/policies/high-risk. Results are
// ordered most negative estimated impact first.
func (h *PolicyHandler) GetHighRiskPolicies(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		h.writeError(w, err, "high-risk policies")
		return
	}

	policies, err := h.policyService.HighRisk(r.Context(), limit)
	if err != nil {
		h.writeError(w, err, "high-risk policies")
		return
	}

	h.writeData(w, http.StatusOK, policies)
}

func (h *PolicyHandler) writeData(w http.ResponseWriter, status int, data any) {
	if err := WriteJSON(w, status, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *PolicyHandler) writeError(w http.ResponseWriter, err error, resource string) {
	h.logger.Error("Policy request failed", zap.String("resource", resource), zap.Error(err))
	if err := serviceError(w, err, resource); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
