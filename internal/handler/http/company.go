package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/company"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	CreateZone(w http.ResponseWriter, r *http.Request)
	ListZones(w http.ResponseWriter, r *http.Request)
	UpdateZone(w http.ResponseWriter, r *http.Request)
	DeleteZone(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// Get implements CompanyHandler.
func (h *companyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	resp, err := h.companyService.Get(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements CompanyHandler.
func (h *companyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.companyService.Update(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated", resp)
}

// CreateZone implements CompanyHandler.
func (h *companyHandlerImpl) CreateZone(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req company.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.companyService.CreateZone(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Geofence zone created", resp)
}

// ListZones implements CompanyHandler.
func (h *companyHandlerImpl) ListZones(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	resp, err := h.companyService.ListZones(r.Context(), claims.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateZone implements CompanyHandler.
func (h *companyHandlerImpl) UpdateZone(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req company.UpdateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.companyService.UpdateZone(r.Context(), claims.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence zone updated", resp)
}

// DeleteZone implements CompanyHandler.
func (h *companyHandlerImpl) DeleteZone(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	if err := h.companyService.DeleteZone(r.Context(), claims.CompanyID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence zone deleted", nil)
}
