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

// DrawHandler handles HTTP requests for draw schedule endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the drawService.
type DrawHandler struct {
	drawService *service.DrawService
}

// NewDrawHandler creates a new DrawHandler with the provided service dependency.
func NewDrawHandler(drawService *service.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// Draws handles GET requests to retrieve a project's draw schedule.
//
// Endpoint: GET /api/project/{uuid}/draw
// Response: 200 OK with array of Draw
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if retrieval fails
func (h *DrawHandler) Draws(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	draws, err := h.drawService.GetDraws(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve draws", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, draws)
}

// DrawTotals handles GET requests for a project's draw totals.
//
// Endpoint: GET /api/project/{uuid}/draw/totals
// Response: 200 OK with DrawTotals
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if aggregation fails
func (h *DrawHandler) DrawTotals(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	totals, err := h.drawService.GetDrawTotals(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve draw totals", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, totals)
}

// CreateDraw handles POST requests to schedule a draw on a project.
//
// Endpoint: POST /api/project/{uuid}/draw
// Request Body: CreateDrawRequest (number, amount and dueDate required)
// Response: 201 Created with Draw
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if creation fails
func (h *DrawHandler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateDrawRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDraw(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	draw, err := h.drawService.CreateDraw(projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create draw", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, draw)
}

// UpdateDraw handles PUT requests to update a draw. Paid draws only accept
// cancellation; moving into paid status without a paid date stamps today.
//
// Endpoint: PUT /api/draw/{uuid}
// Request Body: UpdateDrawRequest (all fields optional)
// Response: 200 OK with updated Draw
// Error: 400 Bad Request if draw ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if draw not found
// Error: 409 Conflict if the draw was already paid
// Error: 500 Internal Server Error if update fails
func (h *DrawHandler) UpdateDraw(w http.ResponseWriter, r *http.Request) {
	drawID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateDrawRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateDraw(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	draw, err := h.drawService.UpdateDraw(drawID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDrawNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDrawNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrDrawAlreadyPaid) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDrawAlreadyPaid.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update draw", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, draw)
}

// DeleteDraw handles DELETE requests to remove a draw from the schedule.
//
// Endpoint: DELETE /api/draw/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if draw ID is invalid (validated by middleware)
// Error: 404 Not Found if draw not found
// Error: 500 Internal Server Error if deletion fails
func (h *DrawHandler) DeleteDraw(w http.ResponseWriter, r *http.Request) {
	drawID := chi.URLParam(r, "uuid")

	if err := h.drawService.DeleteDraw(drawID); err != nil {
		if errors.Is(err, apperrors.ErrDrawNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDrawNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete draw", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
