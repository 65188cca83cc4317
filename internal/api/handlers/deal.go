package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

// DealHandler handles HTTP requests for deal report endpoints.
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler creates a new DealHandler with the provided service dependency.
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// DealReport handles GET requests to compute a project's full metric set:
// contingency, holding and selling costs, total investment, profit, ROI,
// MAO, spread and the sensitivity table. Nothing is persisted; the report
// is recomputed from stored inputs on every call.
//
// Endpoint: GET /api/project/{uuid}/deal-report
// Response: 200 OK with Report
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if the computation fails
func (h *DealHandler) DealReport(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	report, err := h.dealService.GetDealReport(projectID, service.DefaultUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute deal report", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
