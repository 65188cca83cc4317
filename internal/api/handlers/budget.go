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

// BudgetHandler handles HTTP requests for budget table endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the budgetService.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Budget handles GET requests to retrieve a project's budget lines.
// Each line carries its computed variances.
//
// Endpoint: GET /api/project/{uuid}/budget
// Response: 200 OK with array of BudgetLine
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if retrieval fails
func (h *BudgetHandler) Budget(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	lines, err := h.budgetService.GetBudget(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, lines)
}

// BudgetRollup handles GET requests for the per-category budget aggregate.
//
// Endpoint: GET /api/project/{uuid}/budget/rollup
// Response: 200 OK with array of CategoryRollup
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if aggregation fails
func (h *BudgetHandler) BudgetRollup(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	rollups, err := h.budgetService.GetCategoryRollup(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to build budget rollup", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rollups)
}

// CreateBudgetLine handles POST requests to add a budget line to a project.
//
// Endpoint: POST /api/project/{uuid}/budget
// Request Body: CreateBudgetLineRequest (category and item required)
// Response: 201 Created with BudgetLine
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if creation fails
func (h *BudgetHandler) CreateBudgetLine(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateBudgetLineRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateBudgetLine(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	line, err := h.budgetService.CreateLine(projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create budget line", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, line)
}

// UpdateBudgetLine handles PUT requests to update a budget line.
// Setting clearActual wipes the recorded actual amount back to pending.
//
// Endpoint: PUT /api/budget-line/{uuid}
// Request Body: UpdateBudgetLineRequest (all fields optional)
// Response: 200 OK with updated BudgetLine
// Error: 400 Bad Request if line ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if budget line not found
// Error: 500 Internal Server Error if update fails
func (h *BudgetHandler) UpdateBudgetLine(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateBudgetLineRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateBudgetLine(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	line, err := h.budgetService.UpdateLine(lineID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetLineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetLineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update budget line", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, line)
}

// DeleteBudgetLine handles DELETE requests to remove a budget line.
//
// Endpoint: DELETE /api/budget-line/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if line ID is invalid (validated by middleware)
// Error: 404 Not Found if budget line not found
// Error: 500 Internal Server Error if deletion fails
func (h *BudgetHandler) DeleteBudgetLine(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "uuid")

	if err := h.budgetService.DeleteLine(lineID); err != nil {
		if errors.Is(err, apperrors.ErrBudgetLineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetLineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete budget line", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
