package handlers

import (
	"errors"
	"net/http"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// SettingsHandler handles HTTP requests for the calculation profile.
type SettingsHandler struct {
	settingsService *service.SettingsService
	dealService     *service.DealService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependencies.
func NewSettingsHandler(settingsService *service.SettingsService, dealService *service.DealService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		dealService:     dealService,
	}
}

// Settings handles GET requests for the calculation profile. A fresh
// install returns the default profile, materialized on first read.
//
// Endpoint: GET /api/settings
// Response: 200 OK with SettingsRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	record, err := h.settingsService.GetSettings(service.DefaultUserID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}

// UpdateSettings handles PUT requests to replace the calculation profile.
// The profile is validated as a whole: every method selector must name a
// known method and every rate must be in range.
//
// Endpoint: PUT /api/settings
// Request Body: UpdateSettingsRequest
// Response: 200 OK with updated SettingsRecord
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.settingsService.UpdateSettings(service.DefaultUserID, req.Profile)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}

// Preview handles POST requests to compute a deal report from ad-hoc inputs
// and an optional profile override, without touching stored data.
//
// Endpoint: POST /api/settings/preview
// Request Body: PreviewRequest
// Response: 200 OK with Report
// Error: 400 Bad Request if the override profile fails validation
// Error: 500 Internal Server Error if the computation fails
func (h *SettingsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PreviewRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	report, err := h.dealService.Preview(req.Inputs, req.Profile)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute preview", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
