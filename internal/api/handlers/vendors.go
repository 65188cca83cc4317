package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// VendorHandler handles HTTP requests for vendor directory endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the vendorService.
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new VendorHandler with the provided service dependency.
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// Vendors handles GET requests to retrieve the vendor directory.
//
// Endpoint: GET /api/vendor
// Response: 200 OK with array of Vendor
// Error: 500 Internal Server Error if retrieval fails
func (h *VendorHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorService.GetVendors()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve vendors", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, vendors)
}

// GetVendor handles GET requests to retrieve a single vendor by ID.
//
// Endpoint: GET /api/vendor/{uuid}
// Response: 200 OK with Vendor
// Error: 400 Bad Request if vendor ID is invalid (validated by middleware)
// Error: 404 Not Found if vendor not found
// Error: 500 Internal Server Error if retrieval fails
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "uuid")

	vendor, err := h.vendorService.GetVendor(vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrVendorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrVendorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve vendor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, vendor)
}

// CreateVendor handles POST requests to add a vendor.
//
// Endpoint: POST /api/vendor
// Request Body: CreateVendorRequest (name required)
// Response: 201 Created with Vendor
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateVendorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateVendor(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	vendor, err := h.vendorService.CreateVendor(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create vendor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, vendor)
}

// UpdateVendor handles PUT requests to update a vendor.
//
// Endpoint: PUT /api/vendor/{uuid}
// Request Body: UpdateVendorRequest (all fields optional)
// Response: 200 OK with updated Vendor
// Error: 400 Bad Request if vendor ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if vendor not found
// Error: 500 Internal Server Error if update fails
func (h *VendorHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateVendorRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateVendor(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	vendor, err := h.vendorService.UpdateVendor(vendorID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrVendorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrVendorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update vendor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, vendor)
}

// DeleteVendor handles DELETE requests to remove a vendor.
// Draws referencing the vendor keep their rows with the link cleared.
//
// Endpoint: DELETE /api/vendor/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if vendor ID is invalid (validated by middleware)
// Error: 404 Not Found if vendor not found
// Error: 500 Internal Server Error if deletion fails
func (h *VendorHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "uuid")

	if err := h.vendorService.DeleteVendor(vendorID); err != nil {
		if errors.Is(err, apperrors.ErrVendorNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrVendorNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete vendor", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
