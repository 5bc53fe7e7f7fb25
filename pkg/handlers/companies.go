package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/services"
)

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	companyService services.CompanyService
	logger         *zap.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService services.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, logger: logger}
}

// RegisterRoutes registers the company routes on the given mux.
func (h *CompanyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/companies", h.ListCompanies)
	mux.HandleFunc("GET /api/v1/companies/{id}", h.GetCompany)
	mux.HandleFunc("GET /api/v1/companies/{id}/profile", h.GetProfile)
	mux.HandleFunc("GET /api/v1/companies/{id}/financial-metrics", h.GetFinancialMetrics)
}

// ListCompanies handles GET /api/v1/companies.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "companies")
		return
	}

	companies, err := h.companyService.ListCompanies(r.Context(), services.CompanyListParams{
		Industry: r.URL.Query().Get("industry"),
		Country:  r.URL.Query().Get("country"),
		Page:     page,
	})
	if err != nil {
		h.writeError(w, err, "companies")
		return
	}

	h.writeData(w, companies)
}

// GetCompany handles GET /api/v1/companies/{id}.
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "company")
		return
	}

	company, err := h.companyService.GetCompany(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "company")
		return
	}
	if company == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "not_found", "Company not found"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	h.writeData(w, company)
}

// GetProfile handles GET /api/v1/companies/{id}/profile. A company without
// a stored profile yields a 404.
func (h *CompanyHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "company profile")
		return
	}

	profile, err := h.companyService.GetProfile(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "company profile")
		return
	}
	if profile == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "not_found", "Company profile not found"); err != nil {
			h.logger.Error("Failed to encode error response", zap.Error(err))
		}
		return
	}

	h.writeData(w, profile)
}

// GetFinancialMetrics handles GET /api/v1/companies/{id}/financial-metrics.
// History is returned newest first.
func (h *CompanyHandler) GetFinancialMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r, "id")
	if err != nil {
		h.writeError(w, err, "financial metrics")
		return
	}

	page, err := ParsePage(r)
	if err != nil {
		h.writeError(w, err, "financial metrics")
		return
	}

	metrics, err := h.companyService.GetFinancialMetrics(r.Context(), id, page)
	if err != nil {
		h.writeError(w, err, "financial metrics")
		return
	}

	h.writeData(w, metrics)
}

func (h *CompanyHandler) writeData(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *CompanyHandler) writeError(w http.ResponseWriter, err error, resource string) {
	h.logger.Error("Company request failed", zap.String("resource", resource), zap.Error(err))
	if err := serviceError(w, err, resource); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}
